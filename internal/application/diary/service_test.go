package diary

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/medmarket/bot/internal/domain/user"
	"github.com/medmarket/bot/internal/infrastructure/catalog"
	gormRepo "github.com/medmarket/bot/internal/infrastructure/persistence/gorm"
	"github.com/medmarket/bot/internal/infrastructure/persistence/sqlite"
	"github.com/medmarket/bot/internal/ports/inbound"
	"github.com/medmarket/bot/pkg/errors"
	"github.com/medmarket/bot/pkg/logger"
)

// ServiceTestSuite runs the diary use cases against an in-memory SQLite
// database and the embedded catalog.
type ServiceTestSuite struct {
	suite.Suite
	service *Service
	faker   *gofakeit.Faker
	ctx     context.Context
}

func (suite *ServiceTestSuite) SetupTest() {
	db, err := sqlite.SetupDatabase("", false, true)
	require.NoError(suite.T(), err)

	store, err := catalog.NewEmbeddedStore(logger.NewNop())
	require.NoError(suite.T(), err)

	suite.service = NewService(
		gormRepo.NewUserRepository(db),
		gormRepo.NewDiaryRepository(db),
		gormRepo.NewShoppingListRepository(db),
		store,
		200,
		logger.NewNop(),
	)
	suite.faker = gofakeit.New(7)
	suite.ctx = context.Background()
}

func (suite *ServiceTestSuite) registerUser() *user.Profile {
	profile, err := suite.service.RegisterUser(
		suite.ctx,
		suite.faker.Int64(),
		suite.faker.Username(),
		suite.faker.FirstName(),
		suite.faker.LastName(),
	)
	require.NoError(suite.T(), err)
	return profile
}

func (suite *ServiceTestSuite) TestRegisterUser() {
	suite.Run("FirstInteraction_CreatesProfile", func() {
		profile := suite.registerUser()

		assert.True(suite.T(), profile.IsActive)
		assert.False(suite.T(), profile.Diagnoses.Any())
		assert.Equal(suite.T(), "ru", profile.LanguageCode)
	})

	suite.Run("RepeatedStart_ReturnsExistingProfile", func() {
		first := suite.registerUser()

		again, err := suite.service.RegisterUser(suite.ctx, first.TelegramID, "other", "Other", "Name")

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), first.TelegramID, again.TelegramID)
		assert.Equal(suite.T(), first.Username, again.Username, "existing profile must not be overwritten")
	})
}

func (suite *ServiceTestSuite) TestProfile() {
	suite.Run("UnknownUser_ShouldReturnUserNotFound", func() {
		_, err := suite.service.Profile(suite.ctx, 424242)

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeUserNotFound))
	})
}

func (suite *ServiceTestSuite) TestToggleDiagnosis() {
	suite.Run("TogglesOnAndOff", func() {
		profile := suite.registerUser()

		updated, err := suite.service.ToggleDiagnosis(suite.ctx, profile.TelegramID, "gout")
		require.NoError(suite.T(), err)
		assert.True(suite.T(), updated.Diagnoses.Gout)

		updated, err = suite.service.ToggleDiagnosis(suite.ctx, profile.TelegramID, "gout")
		require.NoError(suite.T(), err)
		assert.False(suite.T(), updated.Diagnoses.Gout)
	})

	suite.Run("TogglePersists", func() {
		profile := suite.registerUser()

		_, err := suite.service.ToggleDiagnosis(suite.ctx, profile.TelegramID, "diabetes")
		require.NoError(suite.T(), err)

		reloaded, err := suite.service.Profile(suite.ctx, profile.TelegramID)
		require.NoError(suite.T(), err)
		assert.True(suite.T(), reloaded.Diagnoses.Diabetes)
	})

	suite.Run("UnknownDiagnosis_ShouldReturnInvalidArgument", func() {
		profile := suite.registerUser()

		_, err := suite.service.ToggleDiagnosis(suite.ctx, profile.TelegramID, "migraine")

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeInvalidArgument))
	})
}

func (suite *ServiceTestSuite) TestUpdateBodyMetrics() {
	suite.Run("StoresAndPersists", func() {
		profile := suite.registerUser()
		weight := 82.5
		age := 45

		updated, err := suite.service.UpdateBodyMetrics(suite.ctx, profile.TelegramID, inbound.BodyMetrics{
			WeightKg: &weight,
			Age:      &age,
		})

		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), updated.WeightKg)
		assert.Equal(suite.T(), 82.5, *updated.WeightKg)
		assert.Nil(suite.T(), updated.HeightCm, "untouched fields stay unset")

		reloaded, err := suite.service.Profile(suite.ctx, profile.TelegramID)
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), reloaded.Age)
		assert.Equal(suite.T(), 45, *reloaded.Age)
	})

	suite.Run("NilFieldsKeepStoredValues", func() {
		profile := suite.registerUser()
		height := 178.0

		_, err := suite.service.UpdateBodyMetrics(suite.ctx, profile.TelegramID, inbound.BodyMetrics{HeightCm: &height})
		require.NoError(suite.T(), err)

		updated, err := suite.service.UpdateBodyMetrics(suite.ctx, profile.TelegramID, inbound.BodyMetrics{})
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), updated.HeightCm)
		assert.Equal(suite.T(), 178.0, *updated.HeightCm)
	})

	suite.Run("OutOfRangeWeight_ShouldReturnInvalidArgument", func() {
		profile := suite.registerUser()
		weight := -3.0

		_, err := suite.service.UpdateBodyMetrics(suite.ctx, profile.TelegramID, inbound.BodyMetrics{WeightKg: &weight})

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeInvalidArgument))
	})
}

func (suite *ServiceTestSuite) TestLogMeal() {
	suite.Run("SnapshotsNutritionScaledByPortion", func() {
		profile := suite.registerUser()

		entry, err := suite.service.LogMeal(suite.ctx, inbound.LogMealCommand{
			TelegramID: profile.TelegramID,
			RecipeID:   "r_001",
			MealType:   user.MealLunch,
			PortionG:   200,
		})

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Курица с брокколи на пару", entry.RecipeName)
		// 320 kcal and 120 mg purines per 100 g, doubled for 200 g.
		assert.Equal(suite.T(), 640.0, entry.Calories)
		assert.Equal(suite.T(), 240.0, entry.PurinesMg)
	})

	suite.Run("ZeroPortionDefaultsToReference", func() {
		profile := suite.registerUser()

		entry, err := suite.service.LogMeal(suite.ctx, inbound.LogMealCommand{
			TelegramID: profile.TelegramID,
			RecipeID:   "r_002",
			MealType:   user.MealDinner,
		})

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 100.0, entry.PortionG)
		assert.Equal(suite.T(), 180.0, entry.Calories)
	})

	suite.Run("UnknownRecipe_ShouldReturnRecipeNotFound", func() {
		profile := suite.registerUser()

		_, err := suite.service.LogMeal(suite.ctx, inbound.LogMealCommand{
			TelegramID: profile.TelegramID,
			RecipeID:   "r_404",
			MealType:   user.MealSnack,
		})

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeRecipeNotFound))
	})

	suite.Run("InvalidMealType_ShouldReturnInvalidArgument", func() {
		profile := suite.registerUser()

		_, err := suite.service.LogMeal(suite.ctx, inbound.LogMealCommand{
			TelegramID: profile.TelegramID,
			RecipeID:   "r_001",
			MealType:   user.MealType("brunch"),
		})

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeInvalidArgument))
	})
}

func (suite *ServiceTestSuite) TestTodaySummary() {
	suite.Run("EmptyDiary", func() {
		profile := suite.registerUser()

		summary, err := suite.service.TodaySummary(suite.ctx, profile.TelegramID)

		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), summary.Entries)
		assert.Zero(suite.T(), summary.TotalPurines)
		assert.False(suite.T(), summary.OverPurines)
	})

	suite.Run("TotalsAndPurineWarning", func() {
		profile := suite.registerUser()

		// Two chicken meals: 2 * 240 mg purines exceed the 200 mg budget.
		for i := 0; i < 2; i++ {
			_, err := suite.service.LogMeal(suite.ctx, inbound.LogMealCommand{
				TelegramID: profile.TelegramID,
				RecipeID:   "r_001",
				MealType:   user.MealLunch,
				PortionG:   200,
			})
			require.NoError(suite.T(), err)
		}

		summary, err := suite.service.TodaySummary(suite.ctx, profile.TelegramID)

		require.NoError(suite.T(), err)
		require.Len(suite.T(), summary.Entries, 2)
		assert.Equal(suite.T(), 1280.0, summary.TotalCalories)
		assert.Equal(suite.T(), 480.0, summary.TotalPurines)
		assert.Equal(suite.T(), 200.0, summary.PurinesLimit)
		assert.True(suite.T(), summary.OverPurines)
	})
}

func (suite *ServiceTestSuite) TestShoppingList() {
	suite.Run("AddListAndMarkPurchased", func() {
		profile := suite.registerUser()

		item, err := suite.service.AddShoppingItem(suite.ctx, profile.TelegramID, "Гречневая крупа", 2, "шт")
		require.NoError(suite.T(), err)
		assert.NotEqual(suite.T(), uuid.Nil, item.ID)

		items, err := suite.service.ShoppingList(suite.ctx, profile.TelegramID)
		require.NoError(suite.T(), err)
		require.Len(suite.T(), items, 1)
		assert.False(suite.T(), items[0].IsPurchased)

		require.NoError(suite.T(), suite.service.MarkPurchased(suite.ctx, profile.TelegramID, item.ID))

		items, err = suite.service.ShoppingList(suite.ctx, profile.TelegramID)
		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), items, "purchased items leave the active list")
	})

	suite.Run("BlankProductName_ShouldReturnInvalidArgument", func() {
		profile := suite.registerUser()

		_, err := suite.service.AddShoppingItem(suite.ctx, profile.TelegramID, "  ", 1, "шт")

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeInvalidArgument))
	})

	suite.Run("MarkForeignItem_ShouldReturnNotFound", func() {
		owner := suite.registerUser()
		intruder := suite.registerUser()

		item, err := suite.service.AddShoppingItem(suite.ctx, owner.TelegramID, "Киноа", 1, "шт")
		require.NoError(suite.T(), err)

		err = suite.service.MarkPurchased(suite.ctx, intruder.TelegramID, item.ID)

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeNotFound))
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
