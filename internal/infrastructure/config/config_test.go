package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/medmarket/bot/pkg/errors"
)

// ConfigTestSuite provides a test suite for configuration loading.
type ConfigTestSuite struct {
	suite.Suite
}

func (suite *ConfigTestSuite) TestDefaults() {
	cfg, err := Load("")

	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "MedMarket Bot", cfg.App.Name)
	assert.Equal(suite.T(), "development", cfg.App.Environment)
	assert.True(suite.T(), cfg.IsDevelopment())
	assert.False(suite.T(), cfg.IsProduction())

	assert.Equal(suite.T(), 30, cfg.Telegram.UpdateTimeout)
	assert.Equal(suite.T(), 8, cfg.Telegram.WorkerPoolSize)

	assert.Equal(suite.T(), "medmarket.db", cfg.Database.Path)
	assert.True(suite.T(), cfg.Database.AutoMigrate)

	assert.Equal(suite.T(), 55, cfg.Search.MaxGlycemicIndex)
	assert.Equal(suite.T(), 10, cfg.Search.MaxRecipeResults)
	assert.Equal(suite.T(), 5, cfg.Search.MaxShopsResults)
	assert.Equal(suite.T(), 2.0, cfg.Search.DefaultSearchRadiusKm)
	assert.Equal(suite.T(), 200.0, cfg.Search.DailyPurinesLimit)

	assert.Equal(suite.T(), "gpt-4o-mini", cfg.AI.Model)
	assert.Equal(suite.T(), 1000, cfg.AI.MaxTokens)
}

func (suite *ConfigTestSuite) TestEnvironmentOverrides() {
	suite.T().Setenv("MEDMARKET_SEARCH_MAX_GLYCEMIC_INDEX", "40")
	suite.T().Setenv("MEDMARKET_TELEGRAM_WORKER_POOL_SIZE", "2")
	suite.T().Setenv("MEDMARKET_AI_MODEL", "gpt-4o")

	cfg, err := Load("")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 40, cfg.Search.MaxGlycemicIndex)
	assert.Equal(suite.T(), 2, cfg.Telegram.WorkerPoolSize)
	assert.Equal(suite.T(), "gpt-4o", cfg.AI.Model)
}

func (suite *ConfigTestSuite) TestConfigFile() {
	dir := suite.T().TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
app:
  name: Test Bot
  environment: staging
search:
  default_search_radius_km: 5.0
`)
	require.NoError(suite.T(), os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Test Bot", cfg.App.Name)
	assert.Equal(suite.T(), "staging", cfg.App.Environment)
	assert.Equal(suite.T(), 5.0, cfg.Search.DefaultSearchRadiusKm)
	// Untouched keys keep their defaults.
	assert.Equal(suite.T(), 55, cfg.Search.MaxGlycemicIndex)
}

func (suite *ConfigTestSuite) TestValidation() {
	suite.Run("InvalidEnvironment", func() {
		suite.T().Setenv("MEDMARKET_APP_ENVIRONMENT", "testing")

		_, err := Load("")

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeConfiguration))
	})

	suite.Run("GlycemicIndexOutOfRange", func() {
		suite.T().Setenv("MEDMARKET_SEARCH_MAX_GLYCEMIC_INDEX", "150")

		_, err := Load("")

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeConfiguration))
	})

	suite.Run("ProductionRequiresToken", func() {
		suite.T().Setenv("MEDMARKET_APP_ENVIRONMENT", "production")

		_, err := Load("")

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeConfiguration))
	})

	suite.Run("ProductionWithToken", func() {
		suite.T().Setenv("MEDMARKET_APP_ENVIRONMENT", "production")
		suite.T().Setenv("MEDMARKET_TELEGRAM_TOKEN", "123456:token")

		cfg, err := Load("")

		require.NoError(suite.T(), err)
		assert.True(suite.T(), cfg.IsProduction())
	})
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
