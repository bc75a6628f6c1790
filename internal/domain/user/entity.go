// Package user contains the domain model for bot users: their Telegram
// identity, medical diagnoses and the meal diary / shopping list entries
// owned by them. The search and pricing engines never see this entity;
// they receive plain DiagnosisFlags values.
package user

import (
	"time"

	"github.com/google/uuid"
)

// DiagnosisFlags carries the three independent medical constraints a user
// may have. Inactive flags impose no constraint.
type DiagnosisFlags struct {
	Diabetes bool
	Gout     bool
	Celiac   bool
}

// Any reports whether at least one diagnosis is active.
func (f DiagnosisFlags) Any() bool {
	return f.Diabetes || f.Gout || f.Celiac
}

// Profile represents a Telegram user with medical and physical attributes.
type Profile struct {
	TelegramID   int64
	Username     string
	FirstName    string
	LastName     string
	LanguageCode string
	IsActive     bool

	Diagnoses DiagnosisFlags

	WeightKg *float64
	HeightCm *float64
	Age      *int

	NotificationEnabled bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProfile creates a profile for a first-time user with defaults matching
// a fresh registration.
func NewProfile(telegramID int64, username, firstName, lastName string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		TelegramID:          telegramID,
		Username:            username,
		FirstName:           firstName,
		LastName:            lastName,
		LanguageCode:        "ru",
		IsActive:            true,
		NotificationEnabled: true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// MealType classifies a diary entry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Valid reports whether the meal type is one of the known values.
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// DiaryEntry is one logged meal with a nutrition snapshot taken at the time
// of logging, so later catalog changes never rewrite history.
type DiaryEntry struct {
	ID         uuid.UUID
	TelegramID int64
	RecipeID   string
	RecipeName string

	Calories      float64
	Proteins      float64
	Fats          float64
	Carbs         float64
	GlycemicIndex int
	PurinesMg     float64
	PortionG      float64

	MealType  MealType
	DateEaten time.Time
	Notes     string
	CreatedAt time.Time
}

// ShoppingItem is one product on a user's shopping list.
type ShoppingItem struct {
	ID            uuid.UUID
	TelegramID    int64
	ProductName   string
	Quantity      float64
	Unit          string
	IsPurchased   bool
	PriceEstimate *float64
	CreatedAt     time.Time
	PurchasedAt   *time.Time
}
