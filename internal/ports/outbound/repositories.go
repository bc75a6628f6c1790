package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medmarket/bot/internal/domain/user"
)

// UserRepository defines the interface for user profile persistence.
type UserRepository interface {
	Create(ctx context.Context, profile *user.Profile) error
	Update(ctx context.Context, profile *user.Profile) error
	FindByTelegramID(ctx context.Context, telegramID int64) (*user.Profile, error)
	Exists(ctx context.Context, telegramID int64) (bool, error)
}

// DiaryRepository defines the interface for meal diary persistence.
type DiaryRepository interface {
	Add(ctx context.Context, entry *user.DiaryEntry) error
	ListByDay(ctx context.Context, telegramID int64, day time.Time) ([]user.DiaryEntry, error)
}

// ShoppingListRepository defines the interface for shopping list persistence.
type ShoppingListRepository interface {
	Add(ctx context.Context, item *user.ShoppingItem) error
	ListActive(ctx context.Context, telegramID int64) ([]user.ShoppingItem, error)
	MarkPurchased(ctx context.Context, telegramID int64, itemID uuid.UUID) error
}
