package gorm

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/medmarket/bot/internal/domain/user"
	"github.com/medmarket/bot/internal/ports/outbound"
	"github.com/medmarket/bot/pkg/errors"
)

// UserRepository implements the user repository interface using GORM.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) outbound.UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user profile.
func (r *UserRepository) Create(ctx context.Context, profile *user.Profile) error {
	model := UserToModel(profile)

	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return errors.NewDatabaseError("create user", result.Error)
	}
	return nil
}

// Update updates an existing user profile.
func (r *UserRepository) Update(ctx context.Context, profile *user.Profile) error {
	model := UserToModel(profile)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return errors.NewDatabaseError("update user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewUserNotFoundError(profile.TelegramID)
	}
	return nil
}

// FindByTelegramID finds a user profile by Telegram id.
func (r *UserRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*user.Profile, error) {
	var model UserModel

	result := r.db.WithContext(ctx).First(&model, "telegram_id = ?", telegramID)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewUserNotFoundError(telegramID)
		}
		return nil, errors.NewDatabaseError("find user", result.Error)
	}
	return ModelToUser(&model), nil
}

// Exists checks whether a user profile exists.
func (r *UserRepository) Exists(ctx context.Context, telegramID int64) (bool, error) {
	var count int64

	result := r.db.WithContext(ctx).Model(&UserModel{}).Where("telegram_id = ?", telegramID).Count(&count)
	if result.Error != nil {
		return false, errors.NewDatabaseError("count users", result.Error)
	}
	return count > 0, nil
}
