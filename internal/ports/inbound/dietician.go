package inbound

import (
	"context"

	"github.com/medmarket/bot/internal/domain/user"
)

// Dietician defines the AI nutrition consultation use cases. Answers are
// always text: when the AI collaborator is unavailable the implementation
// returns a static fallback, never an error the transport has to special-case.
type Dietician interface {
	Ask(ctx context.Context, question string, flags user.DiagnosisFlags) (string, error)
	MealPlan(ctx context.Context, days int, flags user.DiagnosisFlags) (string, error)
}
