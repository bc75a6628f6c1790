package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/medmarket/bot/internal/domain/user"
)

// Callback data values routed by handleCallback.
const (
	cbMainMenu       = "main_menu"
	cbSearchRecipes  = "search_recipes"
	cbDailyRecipe    = "daily_recipe"
	cbFindShops      = "find_shops"
	cbComparePrices  = "compare_prices"
	cbViewDiary      = "view_diary"
	cbShoppingList   = "shopping_list"
	cbAskDietician   = "ask_dietician"
	cbSettings       = "settings"
	cbHelp           = "help"
	cbShowCategories = "show_categories"
	cbAddShopping    = "add_shopping_item"
	cbCategoryPrefix = "cat_"
	cbLogMealPrefix  = "log_meal_"
	cbToggleDiabetes = "toggle_diabetes"
	cbToggleGout     = "toggle_gout"
	cbToggleCeliac   = "toggle_celiac"
)

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔍 Поиск рецептов", cbSearchRecipes),
			tgbotapi.NewInlineKeyboardButtonData("🍽 Рецепт дня", cbDailyRecipe),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📍 Магазины рядом", cbFindShops),
			tgbotapi.NewInlineKeyboardButtonData("💰 Сравнить цены", cbComparePrices),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📔 Мой дневник", cbViewDiary),
			tgbotapi.NewInlineKeyboardButtonData("🛒 Список покупок", cbShoppingList),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🤖 AI-диетолог", cbAskDietician),
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Настройки", cbSettings),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❓ Помощь", cbHelp),
		),
	)
}

func settingsKeyboard(flags user.DiagnosisFlags) tgbotapi.InlineKeyboardMarkup {
	status := func(on bool) string {
		if on {
			return "✅"
		}
		return "❌"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(status(flags.Diabetes)+" Сахарный диабет", cbToggleDiabetes),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(status(flags.Gout)+" Подагра", cbToggleGout),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(status(flags.Celiac)+" Целиакия (глютен)", cbToggleCeliac),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Назад в меню", cbMainMenu),
		),
	)
}

func recipeKeyboard(recipeID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📔 Добавить в дневник", cbLogMealPrefix+recipeID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Главное меню", cbMainMenu),
		),
	)
}

func backToMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Главное меню", cbMainMenu),
		),
	)
}

func categoryKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🍳 Завтраки", cbCategoryPrefix+"breakfast"),
			tgbotapi.NewInlineKeyboardButtonData("🍲 Основные", cbCategoryPrefix+"main"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🥗 Салаты", cbCategoryPrefix+"salad"),
			tgbotapi.NewInlineKeyboardButtonData("🍜 Супы", cbCategoryPrefix+"soup"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🍰 Десерты", cbCategoryPrefix+"dessert"),
			tgbotapi.NewInlineKeyboardButtonData("◀️ Назад", cbMainMenu),
		),
	)
}

func searchKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📂 По категориям", cbShowCategories),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Назад", cbMainMenu),
		),
	)
}

func shoppingListKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить", cbAddShopping),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Назад", cbMainMenu),
		),
	)
}
