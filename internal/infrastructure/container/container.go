// Package container provides dependency injection using Uber FX.
package container

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/medmarket/bot/internal/application/diary"
	"github.com/medmarket/bot/internal/application/dietician"
	"github.com/medmarket/bot/internal/application/pricing"
	"github.com/medmarket/bot/internal/application/search"
	"github.com/medmarket/bot/internal/infrastructure/ai/openai"
	"github.com/medmarket/bot/internal/infrastructure/catalog"
	"github.com/medmarket/bot/internal/infrastructure/config"
	gormRepo "github.com/medmarket/bot/internal/infrastructure/persistence/gorm"
	"github.com/medmarket/bot/internal/infrastructure/persistence/sqlite"
	"github.com/medmarket/bot/internal/infrastructure/telegram"
	"github.com/medmarket/bot/internal/ports/inbound"
	"github.com/medmarket/bot/internal/ports/outbound"
	"github.com/medmarket/bot/pkg/logger"
)

// Module provides all dependency injection modules.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CatalogModule,
	RepositoryModule,
	ServiceModule,
	TransportModule,
	LifecycleModule,
)

// ConfigModule provides configuration.
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging.
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.IsDevelopment(),
		})
	},
)

// DatabaseModule provides the SQLite connection.
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		db, err := sqlite.SetupDatabase(cfg.Database.Path, cfg.Database.LogQueries, cfg.Database.AutoMigrate)
		if err != nil {
			return nil, err
		}
		log.Info("connected to sqlite database", zap.String("path", cfg.Database.Path))
		return db, nil
	},
)

// CatalogModule provides the catalog store, loading the override file when
// one is configured.
var CatalogModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*catalog.Store, error) {
		if cfg.Catalog.OverridePath == "" {
			return catalog.NewEmbeddedStore(log)
		}
		snap, err := catalog.LoadOverride(cfg.Catalog.OverridePath)
		if err != nil {
			return nil, err
		}
		return catalog.NewStore(snap, log)
	},
	func(store *catalog.Store) outbound.Catalog {
		return store
	},
)

// RepositoryModule provides repository implementations.
var RepositoryModule = fx.Provide(
	gormRepo.NewUserRepository,
	gormRepo.NewDiaryRepository,
	gormRepo.NewShoppingListRepository,
)

// ServiceModule provides application services behind their inbound ports.
var ServiceModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.AIService {
		return openai.NewClient(cfg.AI, log)
	},
	func(cfg *config.Config, cat outbound.Catalog, log *zap.Logger) inbound.RecipeSearch {
		filter := search.NewDiagnosisFilter(cfg.Search.MaxGlycemicIndex)
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		return search.NewEngine(cat, filter, rng, log)
	},
	func(cat outbound.Catalog, log *zap.Logger) inbound.PriceComparison {
		return pricing.NewEngine(cat, log)
	},
	func(
		cfg *config.Config,
		users outbound.UserRepository,
		entries outbound.DiaryRepository,
		shopping outbound.ShoppingListRepository,
		cat outbound.Catalog,
		log *zap.Logger,
	) inbound.Diary {
		return diary.NewService(users, entries, shopping, cat, cfg.Search.DailyPurinesLimit, log)
	},
	func(ai outbound.AIService, log *zap.Logger) inbound.Dietician {
		return dietician.NewService(ai, log)
	},
)

// TransportModule provides the Telegram bot.
var TransportModule = fx.Provide(
	func(
		cfg *config.Config,
		search inbound.RecipeSearch,
		pricing inbound.PriceComparison,
		diarySvc inbound.Diary,
		dieticianSvc inbound.Dietician,
		log *zap.Logger,
	) (*telegram.Bot, error) {
		return telegram.NewBot(*cfg, search, pricing, diarySvc, dieticianSvc, log)
	},
)

// LifecycleModule registers application lifecycle hooks.
var LifecycleModule = fx.Invoke(RegisterLifecycleHooks)

// RegisterLifecycleHooks starts the bot and the optional catalog watcher,
// and closes the database on shutdown.
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	store *catalog.Store,
	bot *telegram.Bot,
) {
	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting application",
				zap.String("name", cfg.App.Name),
				zap.String("environment", cfg.App.Environment),
			)

			if cfg.Catalog.OverridePath != "" && cfg.Catalog.WatchChanges {
				reloader, err := catalog.NewReloader(store, cfg.Catalog.OverridePath, log)
				if err != nil {
					return err
				}
				go func() {
					if err := reloader.Run(runCtx); err != nil && runCtx.Err() == nil {
						log.Error("catalog watcher stopped", zap.Error(err))
					}
				}()
			}

			go func() {
				if err := bot.Start(runCtx); err != nil && runCtx.Err() == nil {
					log.Error("bot stopped", zap.Error(err))
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down application")
			cancel()

			if sqlDB, err := db.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("close database failed", zap.Error(err))
				}
			}
			_ = log.Sync()
			return nil
		},
	})
}
