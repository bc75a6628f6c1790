package gorm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medmarket/bot/internal/domain/user"
	"github.com/medmarket/bot/internal/ports/outbound"
	"github.com/medmarket/bot/pkg/errors"
)

// ShoppingListRepository implements the shopping list repository interface
// using GORM.
type ShoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository creates a new shopping list repository.
func NewShoppingListRepository(db *gorm.DB) outbound.ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// Add stores one shopping list item.
func (r *ShoppingListRepository) Add(ctx context.Context, item *user.ShoppingItem) error {
	model := ShoppingItemToModel(item)

	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return errors.NewDatabaseError("create shopping item", result.Error)
	}
	return nil
}

// ListActive returns a user's unpurchased items, oldest first.
func (r *ShoppingListRepository) ListActive(ctx context.Context, telegramID int64) ([]user.ShoppingItem, error) {
	var models []ShoppingItemModel

	result := r.db.WithContext(ctx).
		Where("telegram_id = ? AND is_purchased = ?", telegramID, false).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("list shopping items", result.Error)
	}

	items := make([]user.ShoppingItem, len(models))
	for i := range models {
		items[i] = ModelToShoppingItem(&models[i])
	}
	return items, nil
}

// MarkPurchased marks one item as bought. The telegram id guards against
// marking another user's item.
func (r *ShoppingListRepository) MarkPurchased(ctx context.Context, telegramID int64, itemID uuid.UUID) error {
	now := time.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&ShoppingItemModel{}).
		Where("id = ? AND telegram_id = ?", itemID, telegramID).
		Updates(map[string]interface{}{
			"is_purchased": true,
			"purchased_at": &now,
		})
	if result.Error != nil {
		return errors.NewDatabaseError("mark item purchased", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("shopping item")
	}
	return nil
}
