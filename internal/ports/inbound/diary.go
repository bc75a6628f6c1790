package inbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/medmarket/bot/internal/domain/user"
)

// LogMealCommand contains data for logging a consumed recipe.
type LogMealCommand struct {
	TelegramID int64
	RecipeID   string
	MealType   user.MealType
	PortionG   float64
	Notes      string
}

// DailySummary aggregates one day of diary entries against the medical
// limits relevant to the user's diagnoses.
type DailySummary struct {
	Entries       []user.DiaryEntry
	TotalCalories float64
	TotalPurines  float64
	PurinesLimit  float64
	OverPurines   bool
}

// BodyMetrics carries an update to a user's physical attributes. Nil fields
// leave the stored value untouched.
type BodyMetrics struct {
	WeightKg *float64
	HeightCm *float64
	Age      *int
}

// Diary defines the user profile, meal diary and shopping list use cases.
type Diary interface {
	// RegisterUser creates a profile on first interaction or returns the
	// existing one.
	RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*user.Profile, error)

	// Profile returns the stored profile, or an error with code
	// USER_NOT_FOUND when the user never registered.
	Profile(ctx context.Context, telegramID int64) (*user.Profile, error)

	// ToggleDiagnosis flips one diagnosis flag and returns the updated
	// profile. Name is one of "diabetes", "gout", "celiac".
	ToggleDiagnosis(ctx context.Context, telegramID int64, name string) (*user.Profile, error)

	// UpdateBodyMetrics stores weight, height and age on the profile and
	// returns the updated profile.
	UpdateBodyMetrics(ctx context.Context, telegramID int64, metrics BodyMetrics) (*user.Profile, error)

	// LogMeal records a consumed catalog recipe with a nutrition snapshot.
	LogMeal(ctx context.Context, cmd LogMealCommand) (*user.DiaryEntry, error)

	// TodaySummary returns today's diary entries with totals.
	TodaySummary(ctx context.Context, telegramID int64) (*DailySummary, error)

	// AddShoppingItem puts a product on the user's shopping list.
	AddShoppingItem(ctx context.Context, telegramID int64, productName string, quantity float64, unit string) (*user.ShoppingItem, error)

	// ShoppingList returns the user's unpurchased items.
	ShoppingList(ctx context.Context, telegramID int64) ([]user.ShoppingItem, error)

	// MarkPurchased marks one shopping list item as bought.
	MarkPurchased(ctx context.Context, telegramID int64, itemID uuid.UUID) error
}
