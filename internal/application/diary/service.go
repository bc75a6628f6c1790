// Package diary implements the user-facing bookkeeping use cases: profile
// registration, diagnosis toggles, the meal diary and the shopping list.
package diary

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/medmarket/bot/internal/domain/user"
	"github.com/medmarket/bot/internal/ports/inbound"
	"github.com/medmarket/bot/internal/ports/outbound"
	"github.com/medmarket/bot/pkg/errors"
)

// Service implements the profile, diary and shopping list use cases.
type Service struct {
	users        outbound.UserRepository
	entries      outbound.DiaryRepository
	shopping     outbound.ShoppingListRepository
	catalog      outbound.Catalog
	purinesLimit float64
	logger       *zap.Logger
}

// NewService creates the diary service. purinesLimit is the daily purine
// budget (mg) used by TodaySummary for gout users.
func NewService(
	users outbound.UserRepository,
	entries outbound.DiaryRepository,
	shopping outbound.ShoppingListRepository,
	catalog outbound.Catalog,
	purinesLimit float64,
	logger *zap.Logger,
) *Service {
	return &Service{
		users:        users,
		entries:      entries,
		shopping:     shopping,
		catalog:      catalog,
		purinesLimit: purinesLimit,
		logger:       logger.Named("diary"),
	}
}

// RegisterUser creates a profile on first interaction or returns the
// existing one.
func (s *Service) RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*user.Profile, error) {
	existing, err := s.users.FindByTelegramID(ctx, telegramID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errors.CodeUserNotFound) {
		return nil, err
	}

	profile := user.NewProfile(telegramID, username, firstName, lastName)
	if err := s.users.Create(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", zap.Int64("telegram_id", telegramID))
	return profile, nil
}

// Profile returns the stored profile.
func (s *Service) Profile(ctx context.Context, telegramID int64) (*user.Profile, error) {
	return s.users.FindByTelegramID(ctx, telegramID)
}

// ToggleDiagnosis flips one diagnosis flag and returns the updated profile.
func (s *Service) ToggleDiagnosis(ctx context.Context, telegramID int64, name string) (*user.Profile, error) {
	profile, err := s.users.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "diabetes":
		profile.Diagnoses.Diabetes = !profile.Diagnoses.Diabetes
	case "gout":
		profile.Diagnoses.Gout = !profile.Diagnoses.Gout
	case "celiac":
		profile.Diagnoses.Celiac = !profile.Diagnoses.Celiac
	default:
		return nil, errors.NewInvalidArgumentError("unknown diagnosis " + name)
	}

	profile.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateBodyMetrics stores weight, height and age on the profile. Nil fields
// keep the stored value.
func (s *Service) UpdateBodyMetrics(ctx context.Context, telegramID int64, metrics inbound.BodyMetrics) (*user.Profile, error) {
	if metrics.WeightKg != nil && (*metrics.WeightKg <= 0 || *metrics.WeightKg > 500) {
		return nil, errors.NewInvalidArgumentError("weight must be in (0, 500] kg")
	}
	if metrics.HeightCm != nil && (*metrics.HeightCm <= 0 || *metrics.HeightCm > 300) {
		return nil, errors.NewInvalidArgumentError("height must be in (0, 300] cm")
	}
	if metrics.Age != nil && (*metrics.Age <= 0 || *metrics.Age > 150) {
		return nil, errors.NewInvalidArgumentError("age must be in (0, 150] years")
	}

	profile, err := s.users.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	if metrics.WeightKg != nil {
		profile.WeightKg = metrics.WeightKg
	}
	if metrics.HeightCm != nil {
		profile.HeightCm = metrics.HeightCm
	}
	if metrics.Age != nil {
		profile.Age = metrics.Age
	}

	profile.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// LogMeal records a consumed catalog recipe with a nutrition snapshot, so
// later catalog changes never rewrite diary history. Nutrition is scaled
// from the recipe's per-serving values by portion weight, assuming a 100g
// reference portion when none is given.
func (s *Service) LogMeal(ctx context.Context, cmd inbound.LogMealCommand) (*user.DiaryEntry, error) {
	if !cmd.MealType.Valid() {
		return nil, errors.NewInvalidArgumentError("unknown meal type " + string(cmd.MealType))
	}
	if cmd.PortionG < 0 {
		return nil, errors.NewInvalidArgumentError("portion must not be negative")
	}
	if _, err := s.users.FindByTelegramID(ctx, cmd.TelegramID); err != nil {
		return nil, err
	}

	r, ok := s.catalog.RecipeByID(cmd.RecipeID)
	if !ok {
		return nil, errors.NewRecipeNotFoundError(cmd.RecipeID)
	}

	portion := cmd.PortionG
	if portion == 0 {
		portion = 100
	}
	scale := portion / 100

	now := time.Now().UTC()
	entry := &user.DiaryEntry{
		ID:            uuid.New(),
		TelegramID:    cmd.TelegramID,
		RecipeID:      r.ID,
		RecipeName:    r.Name,
		Calories:      r.Nutrition.Calories * scale,
		Proteins:      r.Nutrition.Proteins * scale,
		Fats:          r.Nutrition.Fats * scale,
		Carbs:         r.Nutrition.Carbs * scale,
		GlycemicIndex: r.GlycemicIndex,
		PurinesMg:     r.PurinesMg * scale,
		PortionG:      portion,
		MealType:      cmd.MealType,
		DateEaten:     now,
		Notes:         cmd.Notes,
		CreatedAt:     now,
	}
	if err := s.entries.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// TodaySummary returns today's diary entries with calorie and purine totals
// against the daily purine budget.
func (s *Service) TodaySummary(ctx context.Context, telegramID int64) (*inbound.DailySummary, error) {
	if _, err := s.users.FindByTelegramID(ctx, telegramID); err != nil {
		return nil, err
	}

	entries, err := s.entries.ListByDay(ctx, telegramID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	summary := &inbound.DailySummary{
		Entries:      entries,
		PurinesLimit: s.purinesLimit,
	}
	for _, entry := range entries {
		summary.TotalCalories += entry.Calories
		summary.TotalPurines += entry.PurinesMg
	}
	summary.OverPurines = summary.TotalPurines > s.purinesLimit
	return summary, nil
}

// AddShoppingItem puts a product on the user's shopping list.
func (s *Service) AddShoppingItem(ctx context.Context, telegramID int64, productName string, quantity float64, unit string) (*user.ShoppingItem, error) {
	name := strings.TrimSpace(productName)
	if name == "" {
		return nil, errors.NewInvalidArgumentError("product name must not be blank")
	}
	if quantity < 0 {
		return nil, errors.NewInvalidArgumentError("quantity must not be negative")
	}
	if _, err := s.users.FindByTelegramID(ctx, telegramID); err != nil {
		return nil, err
	}

	item := &user.ShoppingItem{
		ID:          uuid.New(),
		TelegramID:  telegramID,
		ProductName: name,
		Quantity:    quantity,
		Unit:        strings.TrimSpace(unit),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.shopping.Add(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ShoppingList returns the user's unpurchased items.
func (s *Service) ShoppingList(ctx context.Context, telegramID int64) ([]user.ShoppingItem, error) {
	if _, err := s.users.FindByTelegramID(ctx, telegramID); err != nil {
		return nil, err
	}
	return s.shopping.ListActive(ctx, telegramID)
}

// MarkPurchased marks one shopping list item as bought.
func (s *Service) MarkPurchased(ctx context.Context, telegramID int64, itemID uuid.UUID) error {
	if _, err := s.users.FindByTelegramID(ctx, telegramID); err != nil {
		return err
	}
	return s.shopping.MarkPurchased(ctx, telegramID, itemID)
}
