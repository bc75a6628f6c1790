package gorm

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/medmarket/bot/internal/domain/user"
	"github.com/medmarket/bot/internal/ports/outbound"
	"github.com/medmarket/bot/pkg/errors"
)

// DiaryRepository implements the meal diary repository interface using GORM.
type DiaryRepository struct {
	db *gorm.DB
}

// NewDiaryRepository creates a new diary repository.
func NewDiaryRepository(db *gorm.DB) outbound.DiaryRepository {
	return &DiaryRepository{db: db}
}

// Add stores one diary entry.
func (r *DiaryRepository) Add(ctx context.Context, entry *user.DiaryEntry) error {
	model := DiaryEntryToModel(entry)

	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return errors.NewDatabaseError("create diary entry", result.Error)
	}
	return nil
}

// ListByDay returns a user's entries for the UTC calendar day containing
// day, oldest first.
func (r *DiaryRepository) ListByDay(ctx context.Context, telegramID int64, day time.Time) ([]user.DiaryEntry, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var models []DiaryEntryModel
	result := r.db.WithContext(ctx).
		Where("telegram_id = ? AND date_eaten >= ? AND date_eaten < ?", telegramID, dayStart, dayEnd).
		Order("date_eaten ASC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("list diary entries", result.Error)
	}

	entries := make([]user.DiaryEntry, len(models))
	for i := range models {
		entries[i] = ModelToDiaryEntry(&models[i])
	}
	return entries, nil
}
