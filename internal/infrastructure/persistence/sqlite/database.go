// Package sqlite provides SQLite database setup and migration.
package sqlite

import (
	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "github.com/medmarket/bot/internal/infrastructure/persistence/gorm"
	"github.com/medmarket/bot/pkg/errors"
)

// SetupDatabase creates and configures the SQLite database. An empty path
// means an in-memory database, used by tests.
func SetupDatabase(dbPath string, logQueries bool, autoMigrate bool) (*gormlib.DB, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}

	logLevel := logger.Silent
	if logQueries {
		logLevel = logger.Info
	}

	db, err := gormlib.Open(sqlite.Open(dbPath), &gormlib.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, errors.NewDatabaseError("open sqlite database", err)
	}

	// Every pooled connection to :memory: would get its own database, so
	// the in-memory mode must stay on a single connection.
	if dbPath == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.NewDatabaseError("access sqlite pool", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if autoMigrate {
		err = db.AutoMigrate(
			&gormModels.UserModel{},
			&gormModels.DiaryEntryModel{},
			&gormModels.ShoppingItemModel{},
		)
		if err != nil {
			return nil, errors.NewDatabaseError("migrate database", err)
		}
	}

	return db, nil
}
