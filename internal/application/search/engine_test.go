package search

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/medmarket/bot/internal/domain/recipe"
	"github.com/medmarket/bot/internal/domain/user"
	"github.com/medmarket/bot/internal/infrastructure/catalog"
	"github.com/medmarket/bot/pkg/errors"
	"github.com/medmarket/bot/pkg/logger"
)

// EngineTestSuite provides a test suite for the recipe search engine over
// the embedded catalog.
type EngineTestSuite struct {
	suite.Suite
	engine *Engine
	ctx    context.Context
}

func (suite *EngineTestSuite) SetupTest() {
	store, err := catalog.NewEmbeddedStore(logger.NewNop())
	require.NoError(suite.T(), err)

	suite.engine = NewEngine(
		store,
		NewDiagnosisFilter(55),
		rand.New(rand.NewSource(42)),
		logger.NewNop(),
	)
	suite.ctx = context.Background()
}

func (suite *EngineTestSuite) TestSearch() {
	suite.Run("NameMatch_WithDiabetes", func() {
		recipes, err := suite.engine.Search(suite.ctx, "курица", user.DiagnosisFlags{Diabetes: true}, 10)

		require.NoError(suite.T(), err)
		require.Len(suite.T(), recipes, 1)
		assert.Equal(suite.T(), "Курица с брокколи на пару", recipes[0].Name)
	})

	suite.Run("IngredientMatch", func() {
		// Гречневая крупа is an ingredient of Гречневая каша с овощами.
		recipes, err := suite.engine.Search(suite.ctx, "гречневая крупа", user.DiagnosisFlags{}, 10)

		require.NoError(suite.T(), err)
		require.Len(suite.T(), recipes, 1)
		assert.Equal(suite.T(), "r_003", recipes[0].ID)
	})

	suite.Run("QueryIsCaseAndSpaceInsensitive", func() {
		recipes, err := suite.engine.Search(suite.ctx, "  КУРИЦА  ", user.DiagnosisFlags{}, 10)

		require.NoError(suite.T(), err)
		assert.Len(suite.T(), recipes, 1)
	})

	suite.Run("GoutExcludesHighPurineMatches", func() {
		// Тунец recipe matches "салат" but carries 150 mg purines.
		recipes, err := suite.engine.Search(suite.ctx, "салат", user.DiagnosisFlags{Gout: true}, 10)

		require.NoError(suite.T(), err)
		require.NotEmpty(suite.T(), recipes)
		for _, r := range recipes {
			assert.LessOrEqual(suite.T(), r.PurinesMg, GoutPurineLimit)
		}
	})

	suite.Run("AddingDiagnosesNeverWidensResults", func() {
		all, err := suite.engine.Search(suite.ctx, "о", user.DiagnosisFlags{}, 50)
		require.NoError(suite.T(), err)

		flagSets := []user.DiagnosisFlags{
			{Diabetes: true},
			{Gout: true},
			{Celiac: true},
			{Diabetes: true, Gout: true, Celiac: true},
		}
		for _, flags := range flagSets {
			filtered, err := suite.engine.Search(suite.ctx, "о", flags, 50)
			require.NoError(suite.T(), err)
			assert.LessOrEqual(suite.T(), len(filtered), len(all))
		}
	})

	suite.Run("LimitTruncatesInCatalogOrder", func() {
		recipes, err := suite.engine.Search(suite.ctx, "о", user.DiagnosisFlags{}, 2)

		require.NoError(suite.T(), err)
		require.Len(suite.T(), recipes, 2)
		assert.Equal(suite.T(), "r_001", recipes[0].ID)
	})

	suite.Run("BlankQuery_ShouldReturnInvalidArgument", func() {
		_, err := suite.engine.Search(suite.ctx, "   ", user.DiagnosisFlags{}, 10)

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeInvalidArgument))
	})

	suite.Run("NonPositiveLimit_ShouldReturnInvalidArgument", func() {
		_, err := suite.engine.Search(suite.ctx, "курица", user.DiagnosisFlags{}, 0)

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeInvalidArgument))
	})

	suite.Run("NoMatches_ShouldReturnEmptyWithoutError", func() {
		recipes, err := suite.engine.Search(suite.ctx, "пельмени", user.DiagnosisFlags{}, 10)

		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), recipes)
	})
}

func (suite *EngineTestSuite) TestByCategory() {
	suite.Run("CeliacFiltersBreakfast", func() {
		// Овсянка is flagged unsuitable for celiac, Омлет is fine.
		recipes, err := suite.engine.ByCategory(suite.ctx, recipe.CategoryBreakfast, user.DiagnosisFlags{Celiac: true})

		require.NoError(suite.T(), err)
		require.Len(suite.T(), recipes, 1)
		assert.Equal(suite.T(), "Омлет с зеленью и сыром", recipes[0].Name)
	})

	suite.Run("UnknownCategory_ShouldReturnInvalidArgument", func() {
		_, err := suite.engine.ByCategory(suite.ctx, recipe.Category("brunch"), user.DiagnosisFlags{})

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeInvalidArgument))
	})
}

func (suite *EngineTestSuite) TestRandom() {
	suite.Run("PickStaysWithinFilteredSet", func() {
		flags := user.DiagnosisFlags{Gout: true, Celiac: true}
		for i := 0; i < 50; i++ {
			r, err := suite.engine.Random(suite.ctx, flags)

			require.NoError(suite.T(), err)
			require.NotNil(suite.T(), r)
			assert.LessOrEqual(suite.T(), r.PurinesMg, GoutPurineLimit)
			assert.True(suite.T(), r.SuitableForCeliac)
		}
	})

	suite.Run("SeededSourceReachesMultipleRecipes", func() {
		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			r, err := suite.engine.Random(suite.ctx, user.DiagnosisFlags{})
			require.NoError(suite.T(), err)
			seen[r.ID] = struct{}{}
		}
		assert.Greater(suite.T(), len(seen), 1, "uniform pick should reach more than one recipe")
	})
}

func (suite *EngineTestSuite) TestByID() {
	suite.Run("ExistingID", func() {
		r, err := suite.engine.ByID(suite.ctx, "r_007")

		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), r)
		assert.Equal(suite.T(), "Суп-пюре из тыквы", r.Name)
	})

	suite.Run("UnknownID_ShouldReturnNilWithoutError", func() {
		r, err := suite.engine.ByID(suite.ctx, "r_404")

		require.NoError(suite.T(), err)
		assert.Nil(suite.T(), r)
	})

	suite.Run("BlankID_ShouldReturnInvalidArgument", func() {
		_, err := suite.engine.ByID(suite.ctx, "")

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeInvalidArgument))
	})
}

func (suite *EngineTestSuite) TestDiagnosisFilter() {
	filter := NewDiagnosisFilter(55)

	suite.Run("DiabetesRespectsGICeiling", func() {
		r := recipe.Recipe{GlycemicIndex: 56}
		assert.False(suite.T(), filter.Admits(r, user.DiagnosisFlags{Diabetes: true}))

		r.GlycemicIndex = 55
		assert.True(suite.T(), filter.Admits(r, user.DiagnosisFlags{Diabetes: true}))
	})

	suite.Run("GoutRespectsPurineLimit", func() {
		r := recipe.Recipe{PurinesMg: 100.5}
		assert.False(suite.T(), filter.Admits(r, user.DiagnosisFlags{Gout: true}))

		r.PurinesMg = 100
		assert.True(suite.T(), filter.Admits(r, user.DiagnosisFlags{Gout: true}))
	})

	suite.Run("NoDiagnosesAdmitsEverything", func() {
		r := recipe.Recipe{GlycemicIndex: 100, PurinesMg: 500}
		assert.True(suite.T(), filter.Admits(r, user.DiagnosisFlags{}))
	})

	suite.Run("SuitabilityFlagsDoNotGateNumericDiagnoses", func() {
		// Diabetes and gout filter on numbers alone; a catalog override may
		// carry flags that disagree with the thresholds.
		r := recipe.Recipe{
			SuitableForDiabetes: false,
			SuitableForGout:     false,
			GlycemicIndex:       30,
			PurinesMg:           10,
		}
		assert.True(suite.T(), filter.Admits(r, user.DiagnosisFlags{Diabetes: true}))
		assert.True(suite.T(), filter.Admits(r, user.DiagnosisFlags{Gout: true}))
	})

	suite.Run("FlagsCombineWithAND", func() {
		r := recipe.Recipe{
			GlycemicIndex: 30,
			PurinesMg:     150,
		}
		assert.True(suite.T(), filter.Admits(r, user.DiagnosisFlags{Diabetes: true}))
		assert.False(suite.T(), filter.Admits(r, user.DiagnosisFlags{Diabetes: true, Gout: true}))
	})
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
