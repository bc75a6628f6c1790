package outbound

import (
	"context"

	"github.com/medmarket/bot/internal/domain/user"
)

// AIService defines the interface to the AI dietitian. Implementations must
// never propagate transport faults to callers: on failure they substitute a
// static fallback answer.
type AIService interface {
	// AskDietician answers a free-text nutrition question with the user's
	// diagnoses as context.
	AskDietician(ctx context.Context, question string, flags user.DiagnosisFlags) (string, error)

	// GenerateMealPlan produces a meal plan for the given number of days
	// (clamped to 1-14) respecting the user's diagnoses.
	GenerateMealPlan(ctx context.Context, days int, flags user.DiagnosisFlags) (string, error)
}
