package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/medmarket/bot/pkg/errors"
	"github.com/medmarket/bot/pkg/logger"
)

// ReloadTestSuite provides a test suite for catalog override loading.
type ReloadTestSuite struct {
	suite.Suite
	dir string
}

func (suite *ReloadTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
}

func (suite *ReloadTestSuite) writeOverride(name, content string) string {
	path := filepath.Join(suite.dir, name)
	require.NoError(suite.T(), os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (suite *ReloadTestSuite) TestLoadOverride() {
	suite.Run("RecipesSectionReplacesWholesale", func() {
		path := suite.writeOverride("catalog.json", `{
			"recipes": [
				{
					"ID": "r_override",
					"Name": "Тестовый омлет",
					"Servings": 1,
					"Category": "breakfast",
					"Nutrition": {"Calories": 100, "Proteins": 8, "Fats": 6, "Carbs": 2},
					"Ingredients": [{"Name": "Яйца", "Amount": 2, "Unit": "шт"}],
					"Instructions": ["Взбить и пожарить"]
				}
			]
		}`)

		snap, err := LoadOverride(path)

		require.NoError(suite.T(), err)
		require.Len(suite.T(), snap.Recipes, 1)
		assert.Equal(suite.T(), "r_override", snap.Recipes[0].ID)
		// Omitted sections keep the embedded data.
		assert.Len(suite.T(), snap.Shops, 5)
		assert.NotEmpty(suite.T(), snap.Prices)
	})

	suite.Run("PricesSectionReplacesWholesale", func() {
		path := suite.writeOverride("catalog.json", `{
			"prices": {
				"shop_001": [{"Product": "Гречневая крупа", "Price": 42}]
			}
		}`)

		snap, err := LoadOverride(path)

		require.NoError(suite.T(), err)
		require.Len(suite.T(), snap.Prices, 1)
		assert.Equal(suite.T(), 42.0, snap.Prices["shop_001"][0].Price)
		assert.Len(suite.T(), snap.Recipes, 10)
	})

	suite.Run("MalformedJSON_ShouldReturnConfigurationError", func() {
		path := suite.writeOverride("catalog.json", `{"recipes": [`)

		_, err := LoadOverride(path)

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeConfiguration))
	})

	suite.Run("MissingFile_ShouldReturnConfigurationError", func() {
		_, err := LoadOverride(filepath.Join(suite.dir, "absent.json"))

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeConfiguration))
	})
}

func (suite *ReloadTestSuite) TestOverrideRoundTripsThroughStore() {
	path := suite.writeOverride("catalog.json", `{
		"prices": {
			"shop_002": [{"Product": "Киноа", "Price": 250}]
		}
	}`)

	snap, err := LoadOverride(path)
	require.NoError(suite.T(), err)

	store, err := NewStore(snap, logger.NewNop())
	require.NoError(suite.T(), err)

	price, ok := store.PriceFor("shop_002", "Киноа")
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), 250.0, price)

	_, ok = store.PriceFor("shop_001", "Киноа")
	assert.False(suite.T(), ok, "override drops the embedded price tables")
}

func TestReloadTestSuite(t *testing.T) {
	suite.Run(t, new(ReloadTestSuite))
}
