// Package gorm provides GORM model definitions and repository
// implementations for user data. Catalog data never lives here; only what
// users create (profiles, diary entries, shopping lists) is persisted.
package gorm

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the GORM model for user profiles. Telegram id is the
// natural primary key.
type UserModel struct {
	TelegramID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255)"`
	FirstName    string `gorm:"type:varchar(255)"`
	LastName     string `gorm:"type:varchar(255)"`
	LanguageCode string `gorm:"type:varchar(10);default:'ru'"`
	IsActive     bool   `gorm:"default:true"`

	HasDiabetes bool `gorm:"default:false"`
	HasGout     bool `gorm:"default:false"`
	HasCeliac   bool `gorm:"default:false"`

	WeightKg *float64
	HeightCm *float64
	Age      *int

	NotificationEnabled bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	DiaryEntries  []DiaryEntryModel   `gorm:"foreignKey:TelegramID;references:TelegramID"`
	ShoppingItems []ShoppingItemModel `gorm:"foreignKey:TelegramID;references:TelegramID"`
}

// TableName overrides the default pluralization.
func (UserModel) TableName() string { return "users" }

// DiaryEntryModel represents the GORM model for meal diary entries. The
// nutrition columns are a snapshot taken at logging time.
type DiaryEntryModel struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	TelegramID int64     `gorm:"not null;index"`
	RecipeID   string    `gorm:"type:varchar(64);not null"`
	RecipeName string    `gorm:"type:varchar(255);not null"`

	Calories      float64
	Proteins      float64
	Fats          float64
	Carbs         float64
	GlycemicIndex int
	PurinesMg     float64
	PortionG      float64

	MealType  string    `gorm:"type:varchar(20);not null"`
	DateEaten time.Time `gorm:"index"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time
}

func (DiaryEntryModel) TableName() string { return "diary_entries" }

// ShoppingItemModel represents the GORM model for shopping list items.
type ShoppingItemModel struct {
	ID            uuid.UUID `gorm:"type:char(36);primaryKey"`
	TelegramID    int64     `gorm:"not null;index"`
	ProductName   string    `gorm:"type:varchar(255);not null"`
	Quantity      float64
	Unit          string `gorm:"type:varchar(50)"`
	IsPurchased   bool   `gorm:"default:false;index"`
	PriceEstimate *float64
	CreatedAt     time.Time
	PurchasedAt   *time.Time
}

func (ShoppingItemModel) TableName() string { return "shopping_items" }
