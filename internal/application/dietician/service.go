// Package dietician implements the AI nutrition consultation use cases as a
// thin layer over the AI collaborator: input validation and clamping live
// here, prompt construction and fallback behavior live in the adapter.
package dietician

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/medmarket/bot/internal/domain/user"
	"github.com/medmarket/bot/internal/ports/outbound"
	"github.com/medmarket/bot/pkg/errors"
)

// MaxPlanDays bounds meal plan length; longer plans degrade answer quality
// and blow the completion budget.
const MaxPlanDays = 14

// Service implements the dietician use cases.
type Service struct {
	ai     outbound.AIService
	logger *zap.Logger
}

// NewService creates the dietician service.
func NewService(ai outbound.AIService, logger *zap.Logger) *Service {
	return &Service{
		ai:     ai,
		logger: logger.Named("dietician"),
	}
}

// Ask answers a free-text nutrition question with the user's diagnoses as
// context.
func (s *Service) Ask(ctx context.Context, question string, flags user.DiagnosisFlags) (string, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return "", errors.NewInvalidArgumentError("question must not be blank")
	}
	return s.ai.AskDietician(ctx, q, flags)
}

// MealPlan produces a meal plan for the given number of days, clamped to
// [1, MaxPlanDays].
func (s *Service) MealPlan(ctx context.Context, days int, flags user.DiagnosisFlags) (string, error) {
	if days < 1 {
		days = 1
	}
	if days > MaxPlanDays {
		s.logger.Debug("meal plan length clamped", zap.Int("requested_days", days))
		days = MaxPlanDays
	}
	return s.ai.GenerateMealPlan(ctx, days, flags)
}
