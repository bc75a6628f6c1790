package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/medmarket/bot/internal/domain/recipe"
	"github.com/medmarket/bot/internal/domain/shop"
	"github.com/medmarket/bot/internal/domain/user"
	"github.com/medmarket/bot/internal/ports/inbound"
)

// FormatTestSuite provides a test suite for the Telegram HTML renderers.
type FormatTestSuite struct {
	suite.Suite
}

func (suite *FormatTestSuite) TestFormatSearchResults() {
	suite.Run("EmptyResults", func() {
		text := formatSearchResults("пельмени", nil)

		assert.Contains(suite.T(), text, "❌ По запросу 'пельмени' рецепты не найдены.")
	})

	suite.Run("ListsRecipesWithMedicalNumbers", func() {
		recipes := []recipe.Recipe{
			{
				Name:           "Курица с брокколи на пару",
				GlycemicIndex:  35,
				PurinesMg:      120,
				CookingTimeMin: 30,
				Nutrition:      recipe.NutritionFacts{Calories: 320},
			},
		}

		text := formatSearchResults("курица", recipes)

		assert.Contains(suite.T(), text, "✅ <b>Найдено рецептов: 1</b>")
		assert.Contains(suite.T(), text, "<b>1. Курица с брокколи на пару</b>")
		assert.Contains(suite.T(), text, "ГИ: 35")
		assert.Contains(suite.T(), text, "Пурины: 120 мг")
	})
}

func (suite *FormatTestSuite) TestFormatRecipe() {
	r := recipe.Recipe{
		Name:           "Омлет с зеленью",
		Description:    "Быстрый завтрак",
		CookingTimeMin: 10,
		Servings:       2,
		GlycemicIndex:  25,
		PurinesMg:      80,
		Nutrition:      recipe.NutritionFacts{Calories: 210, Proteins: 15, Fats: 16, Carbs: 3},
		Ingredients: []recipe.Ingredient{
			{Name: "Яйца", Amount: 3, Unit: "шт"},
		},
		Instructions: []string{"Взбить яйца", "Жарить 5 минут"},
	}

	text := formatRecipe(r)

	assert.Contains(suite.T(), text, "<b>Омлет с зеленью</b>")
	assert.Contains(suite.T(), text, "Время: 10 мин | Порций: 2")
	assert.Contains(suite.T(), text, "• Яйца: 3 шт")
	assert.Contains(suite.T(), text, "1. Взбить яйца")
	assert.Contains(suite.T(), text, "2. Жарить 5 минут")
}

func (suite *FormatTestSuite) TestFormatShops() {
	suite.Run("Empty", func() {
		assert.Equal(suite.T(), "Магазины поблизости не найдены.", formatShops(nil))
	})

	suite.Run("RatingStarsAndDelivery", func() {
		shops := []inbound.ShopDistance{
			{
				Shop: shop.Shop{
					Name:         "Пятёрочка",
					Address:      "ул. Тверская, 1",
					Rating:       4.2,
					WorkingHours: "08:00-23:00",
					HasDelivery:  true,
				},
				DistanceKm: 0.38,
			},
		}

		text := formatShops(shops)

		assert.Contains(suite.T(), text, "<b>Пятёрочка</b> (0.38 км)")
		assert.Contains(suite.T(), text, "⭐⭐⭐⭐ (4.2)")
		assert.Contains(suite.T(), text, "🚚 Доставка доступна")
	})
}

func (suite *FormatTestSuite) TestFormatPrices() {
	suite.Run("Empty", func() {
		assert.Contains(suite.T(), formatPrices("Ананас", nil), "Цены на 'Ананас' не найдены")
	})

	suite.Run("MedalsAndSavings", func() {
		offers := []inbound.ShopPrice{
			{Shop: shop.Shop{Name: "Магнит"}, Price: 79},
			{Shop: shop.Shop{Name: "Дикси"}, Price: 85},
			{Shop: shop.Shop{Name: "Пятёрочка"}, Price: 89},
			{Shop: shop.Shop{Name: "ВкусВилл"}, Price: 99},
		}

		text := formatPrices("Гречневая крупа", offers)

		assert.Contains(suite.T(), text, "🥇 <b>Магнит</b>")
		assert.Contains(suite.T(), text, "🥈 <b>Дикси</b>")
		assert.Contains(suite.T(), text, "🥉 <b>Пятёрочка</b>")
		assert.Contains(suite.T(), text, "4. <b>ВкусВилл</b>")
		assert.Contains(suite.T(), text, "💡 Экономия: до 20 руб.")
	})

	suite.Run("SingleOfferHasNoSavingsLine", func() {
		offers := []inbound.ShopPrice{
			{Shop: shop.Shop{Name: "Магнит"}, Price: 79},
		}

		text := formatPrices("Гречневая крупа", offers)

		assert.NotContains(suite.T(), text, "Экономия")
	})
}

func (suite *FormatTestSuite) TestFormatDiary() {
	suite.Run("Empty", func() {
		text := formatDiary(&inbound.DailySummary{})

		assert.Contains(suite.T(), text, "Ваш дневник пока пуст.")
	})

	suite.Run("TotalsAndPurineWarning", func() {
		summary := &inbound.DailySummary{
			Entries: []user.DiaryEntry{
				{
					RecipeName:    "Курица с брокколи на пару",
					DateEaten:     time.Date(2025, 3, 10, 13, 30, 0, 0, time.UTC),
					Calories:      640,
					GlycemicIndex: 35,
				},
			},
			TotalCalories: 640,
			TotalPurines:  240,
			PurinesLimit:  200,
			OverPurines:   true,
		}

		text := formatDiary(summary)

		assert.Contains(suite.T(), text, "10.03 13:30")
		assert.Contains(suite.T(), text, "Калории: 640 ккал")
		assert.Contains(suite.T(), text, "Пурины: 240.0 мг (лимит 200 мг)")
		assert.Contains(suite.T(), text, "⚠️ Дневной лимит пуринов превышен!")
	})
}

func (suite *FormatTestSuite) TestTrimFloat() {
	assert.Equal(suite.T(), "79", trimFloat(79.0))
	assert.Equal(suite.T(), "79.5", trimFloat(79.50))
	assert.Equal(suite.T(), "79.99", trimFloat(79.99))
	assert.Equal(suite.T(), "0.5", trimFloat(0.5))
}

func TestFormatTestSuite(t *testing.T) {
	suite.Run(t, new(FormatTestSuite))
}
