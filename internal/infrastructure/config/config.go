// Package config provides centralized configuration management using Viper
// for loading and validation. Everything has a default; only the Telegram
// token must come from the environment.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/medmarket/bot/pkg/errors"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Search   SearchConfig   `mapstructure:"search"`
	AI       AIConfig       `mapstructure:"ai"`
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"oneof=development staging production"`
	LogLevel    string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat   string `mapstructure:"log_format" validate:"oneof=console json"`
}

// TelegramConfig contains bot transport configuration.
type TelegramConfig struct {
	Token          string `mapstructure:"token"`
	Debug          bool   `mapstructure:"debug"`
	UpdateTimeout  int    `mapstructure:"update_timeout" validate:"min=1,max=300"`
	WorkerPoolSize int    `mapstructure:"worker_pool_size" validate:"min=1,max=64"`
}

// DatabaseConfig contains SQLite persistence configuration.
type DatabaseConfig struct {
	Path        string `mapstructure:"path" validate:"required"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
	LogQueries  bool   `mapstructure:"log_queries"`
}

// CatalogConfig contains catalog data source configuration.
type CatalogConfig struct {
	// OverridePath points to an optional JSON file replacing the embedded
	// dataset. Empty disables the override and the file watcher.
	OverridePath string `mapstructure:"override_path"`
	WatchChanges bool   `mapstructure:"watch_changes"`
}

// SearchConfig contains the medical filtering and result sizing knobs.
type SearchConfig struct {
	// MaxGlycemicIndex is the GI ceiling applied for diabetic users.
	MaxGlycemicIndex int `mapstructure:"max_glycemic_index" validate:"gt=0,lte=100"`
	// MaxRecipeResults caps one search response.
	MaxRecipeResults int `mapstructure:"max_recipe_results" validate:"min=1,max=50"`
	// MaxShopsResults caps one nearby-shops response.
	MaxShopsResults int `mapstructure:"max_shops_results" validate:"min=1,max=50"`
	// DefaultSearchRadiusKm is the nearby-shops radius when the user gives
	// none.
	DefaultSearchRadiusKm float64 `mapstructure:"default_search_radius_km" validate:"gt=0"`
	// DailyPurinesLimit is the diary purine budget (mg per day) for gout
	// users.
	DailyPurinesLimit float64 `mapstructure:"daily_purines_limit" validate:"gt=0"`
}

// AIConfig contains the AI dietitian configuration.
type AIConfig struct {
	APIKey         string  `mapstructure:"api_key"`
	Model          string  `mapstructure:"model" validate:"required"`
	MaxTokens      int     `mapstructure:"max_tokens" validate:"min=1"`
	Temperature    float64 `mapstructure:"temperature" validate:"gte=0,lte=2"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"min=1,max=300"`
}

// Load loads configuration from an optional file and MEDMARKET_* environment
// variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/medmarket")
	}

	v.SetEnvPrefix("MEDMARKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine, defaults plus env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.NewConfigurationError("read config: " + err.Error())
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigurationError("unmarshal config: " + err.Error())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "MedMarket Bot")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "console")

	// Empty defaults keep secret keys visible to AutomaticEnv.
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.update_timeout", 30)
	v.SetDefault("telegram.worker_pool_size", 8)

	v.SetDefault("database.path", "medmarket.db")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.log_queries", false)

	v.SetDefault("catalog.override_path", "")
	v.SetDefault("catalog.watch_changes", true)

	v.SetDefault("search.max_glycemic_index", 55)
	v.SetDefault("search.max_recipe_results", 10)
	v.SetDefault("search.max_shops_results", 5)
	v.SetDefault("search.default_search_radius_km", 2.0)
	v.SetDefault("search.daily_purines_limit", 200.0)

	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("ai.max_tokens", 1000)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.timeout_seconds", 30)
}

// Validate checks the configuration against the struct tags plus the rules
// the tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.NewConfigurationError(err.Error())
	}
	if c.IsProduction() && c.Telegram.Token == "" {
		return errors.NewConfigurationError("telegram.token is required in production")
	}
	return nil
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
