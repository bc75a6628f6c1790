package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/medmarket/bot/internal/domain/recipe"
	"github.com/medmarket/bot/internal/domain/user"
	"github.com/medmarket/bot/internal/ports/inbound"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if msg.Location != nil {
		b.handleLocation(ctx, chatID, userID, msg.Location.Latitude, msg.Location.Longitude)
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.handleStart(ctx, msg)
		case "help":
			b.showHelp(chatID)
		case "settings":
			b.showSettings(ctx, chatID, userID)
		case "diary":
			b.showDiary(ctx, chatID, userID)
		case "list":
			b.showShoppingList(ctx, chatID, userID)
		default:
			b.showMainMenu(chatID, userID)
		}
		return
	}

	switch b.sessions.Get(userID) {
	case ActionSearchRecipes:
		b.processRecipeSearch(ctx, chatID, userID, msg.Text)
	case ActionAskDietician:
		b.processDieticianQuestion(ctx, chatID, userID, msg.Text)
	case ActionComparePrices:
		b.processPriceComparison(ctx, chatID, userID, msg.Text)
	case ActionAddToShopping:
		b.processAddToShopping(ctx, chatID, userID, msg.Text)
	default:
		b.send(chatID, "👋 Используйте меню для навигации:", ptr(mainMenuKeyboard()))
	}
}

func (b *Bot) handleCallback(ctx context.Context, call *tgbotapi.CallbackQuery) {
	// Answer the callback to clear the spinner on the button.
	if _, err := b.api.Request(tgbotapi.NewCallback(call.ID, "")); err != nil {
		b.logger.Debug("answer callback failed", zap.Error(err))
	}

	userID := call.From.ID
	chatID := call.Message.Chat.ID
	data := call.Data

	switch {
	case data == cbMainMenu:
		b.showMainMenu(chatID, userID)
	case data == cbSearchRecipes:
		b.startRecipeSearch(chatID, userID)
	case data == cbDailyRecipe:
		b.showDailyRecipe(ctx, chatID, userID)
	case data == cbFindShops:
		b.startFindShops(chatID, userID)
	case data == cbComparePrices:
		b.startComparePrices(chatID, userID)
	case data == cbViewDiary:
		b.showDiary(ctx, chatID, userID)
	case data == cbShoppingList:
		b.showShoppingList(ctx, chatID, userID)
	case data == cbAddShopping:
		b.startAddToShopping(chatID, userID)
	case data == cbAskDietician:
		b.startDietician(chatID, userID)
	case data == cbSettings:
		b.showSettings(ctx, chatID, userID)
	case data == cbHelp:
		b.showHelp(chatID)
	case data == cbShowCategories:
		b.send(chatID, "📂 <b>Выберите категорию:</b>", ptr(categoryKeyboard()))
	case strings.HasPrefix(data, cbCategoryPrefix):
		b.showCategory(ctx, chatID, userID, recipe.Category(strings.TrimPrefix(data, cbCategoryPrefix)))
	case strings.HasPrefix(data, cbLogMealPrefix):
		b.logMeal(ctx, chatID, userID, strings.TrimPrefix(data, cbLogMealPrefix))
	case data == cbToggleDiabetes:
		b.toggleDiagnosis(ctx, chatID, userID, "diabetes")
	case data == cbToggleGout:
		b.toggleDiagnosis(ctx, chatID, userID, "gout")
	case data == cbToggleCeliac:
		b.toggleDiagnosis(ctx, chatID, userID, "celiac")
	default:
		b.logger.Warn("unknown callback", zap.String("data", data))
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	profile, err := b.diary.RegisterUser(ctx, msg.From.ID, msg.From.UserName, msg.From.FirstName, msg.From.LastName)
	if err != nil {
		b.logger.Error("register user failed", zap.Int64("telegram_id", msg.From.ID), zap.Error(err))
		b.sendError(msg.Chat.ID)
		return
	}

	name := profile.FirstName
	if name == "" {
		name = "друг"
	}
	text := fmt.Sprintf(
		"👋 <b>Добро пожаловать, %s!</b>\n\n"+
			"🥗 <b>%s</b> — ваш персональный помощник по питанию при подагре и диабете.\n\n"+
			"<b>Что умеет бот:</b>\n"+
			"• 🔍 Поиск рецептов средиземноморской диеты\n"+
			"• 🤖 AI-диетолог для консультаций\n"+
			"• 📍 Поиск магазинов и сравнение цен\n"+
			"• 📔 Ведение дневника питания\n"+
			"• 🛒 Список покупок с ценами\n\n"+
			"Выберите действие:",
		name, b.cfg.App.Name,
	)
	b.send(msg.Chat.ID, text, ptr(mainMenuKeyboard()))
}

func (b *Bot) showMainMenu(chatID, userID int64) {
	b.sessions.Clear(userID)
	b.send(chatID, "<b>Главное меню</b>\n\nВыберите действие:", ptr(mainMenuKeyboard()))
}

func (b *Bot) showHelp(chatID int64) {
	text := fmt.Sprintf(
		"<b>📚 Справка по %s</b>\n\n"+
			"<b>Основные команды:</b>\n"+
			"/start — Главное меню\n"+
			"/help — Эта справка\n"+
			"/settings — Настройки профиля\n"+
			"/diary — Дневник питания\n"+
			"/list — Список покупок\n\n"+
			"<b>Функции бота:</b>\n\n"+
			"🔍 <b>Поиск рецептов</b>\n"+
			"Находит рецепты средиземноморской диеты, подходящие для вашего диагноза.\n\n"+
			"🤖 <b>AI-диетолог</b>\n"+
			"Отвечает на вопросы о питании.\n\n"+
			"📍 <b>Магазины рядом</b>\n"+
			"Показывает ближайшие магазины и сравнивает цены.\n\n"+
			"📔 <b>Дневник питания</b>\n"+
			"Отслеживание съеденного: калории, пурины, ГИ.\n\n"+
			"🛒 <b>Список покупок</b>\n"+
			"Добавляйте продукты и отмечайте купленные.",
		b.cfg.App.Name,
	)
	b.send(chatID, text, ptr(backToMenuKeyboard()))
}

func (b *Bot) showSettings(ctx context.Context, chatID, userID int64) {
	profile, err := b.diary.Profile(ctx, userID)
	if err != nil {
		b.send(chatID, "❌ Пользователь не найден. Нажмите /start.", nil)
		return
	}

	text := "<b>⚙️ Настройки профиля</b>\n\n" +
		"Укажите ваши диагнозы для фильтрации рецептов:\n\n" +
		"✅ = учитывается при поиске\n" +
		"❌ = не учитывается"
	b.send(chatID, text, ptr(settingsKeyboard(profile.Diagnoses)))
}

func (b *Bot) toggleDiagnosis(ctx context.Context, chatID, userID int64, name string) {
	if _, err := b.diary.ToggleDiagnosis(ctx, userID, name); err != nil {
		b.logger.Error("toggle diagnosis failed", zap.String("diagnosis", name), zap.Error(err))
		b.sendError(chatID)
		return
	}
	b.showSettings(ctx, chatID, userID)
}

func (b *Bot) startRecipeSearch(chatID, userID int64) {
	b.sessions.Set(userID, ActionSearchRecipes)
	text := "🔍 <b>Поиск рецептов</b>\n\n" +
		"Введите название блюда или ингредиент:\n" +
		"(например: 'курица', 'гречка', 'салат')"
	b.send(chatID, text, ptr(searchKeyboard()))
}

func (b *Bot) processRecipeSearch(ctx context.Context, chatID, userID int64, query string) {
	b.sessions.Clear(userID)

	recipes, err := b.search.Search(ctx, query, b.userFlags(ctx, userID), b.cfg.Search.MaxRecipeResults)
	if err != nil {
		b.send(chatID, fmt.Sprintf("❌ По запросу '%s' рецепты не найдены.\n\n"+
			"Попробуйте другой запрос или выберите категорию.", query), ptr(backToMenuKeyboard()))
		return
	}
	b.send(chatID, formatSearchResults(query, recipes), ptr(backToMenuKeyboard()))
}

func (b *Bot) showDailyRecipe(ctx context.Context, chatID, userID int64) {
	r, err := b.search.Random(ctx, b.userFlags(ctx, userID))
	if err != nil {
		b.logger.Error("daily recipe failed", zap.Error(err))
		b.sendError(chatID)
		return
	}
	if r == nil {
		b.send(chatID, "❌ Не удалось подобрать рецепт для ваших диагнозов.", ptr(backToMenuKeyboard()))
		return
	}
	b.send(chatID, "🍽 <b>Рецепт дня</b>\n\n"+formatRecipe(*r), ptr(recipeKeyboard(r.ID)))
}

// logMeal records one reference portion of the recipe in the diary, with the
// meal type inferred from the current time of day.
func (b *Bot) logMeal(ctx context.Context, chatID, userID int64, recipeID string) {
	entry, err := b.diary.LogMeal(ctx, inbound.LogMealCommand{
		TelegramID: userID,
		RecipeID:   recipeID,
		MealType:   mealTypeForHour(time.Now().Hour()),
	})
	if err != nil {
		b.logger.Error("log meal failed", zap.String("recipe_id", recipeID), zap.Error(err))
		b.send(chatID, "❌ Не удалось добавить блюдо в дневник. Нажмите /start.", ptr(backToMenuKeyboard()))
		return
	}

	text := fmt.Sprintf("✅ '%s' добавлен в дневник (%.0f ккал).", entry.RecipeName, entry.Calories)
	b.send(chatID, text, ptr(backToMenuKeyboard()))
}

func mealTypeForHour(hour int) user.MealType {
	switch {
	case hour >= 6 && hour < 11:
		return user.MealBreakfast
	case hour >= 11 && hour < 16:
		return user.MealLunch
	case hour >= 16 && hour < 21:
		return user.MealDinner
	default:
		return user.MealSnack
	}
}

func (b *Bot) showCategory(ctx context.Context, chatID, userID int64, category recipe.Category) {
	recipes, err := b.search.ByCategory(ctx, category, b.userFlags(ctx, userID))
	if err != nil {
		b.logger.Error("category listing failed", zap.String("category", string(category)), zap.Error(err))
		b.sendError(chatID)
		return
	}
	b.send(chatID, formatCategoryResults(category, recipes), ptr(backToMenuKeyboard()))
}

func (b *Bot) startFindShops(chatID, userID int64) {
	b.sessions.Set(userID, ActionFindShops)
	text := "📍 <b>Поиск магазинов</b>\n\n" +
		"Отправьте свою геолокацию для поиска ближайших магазинов.\n\n" +
		"Нажмите кнопку 📎 → Геолокация"
	b.send(chatID, text, ptr(backToMenuKeyboard()))
}

func (b *Bot) handleLocation(ctx context.Context, chatID, userID int64, lat, lon float64) {
	b.sessions.Clear(userID)

	shops, err := b.pricing.NearbyShops(ctx, lat, lon, b.cfg.Search.DefaultSearchRadiusKm, b.cfg.Search.MaxShopsResults)
	if err != nil {
		b.logger.Error("nearby shops failed", zap.Error(err))
		b.send(chatID, "❌ Не удалось найти магазины. Попробуйте позже.", ptr(backToMenuKeyboard()))
		return
	}
	b.send(chatID, formatShops(shops), ptr(backToMenuKeyboard()))
}

func (b *Bot) startComparePrices(chatID, userID int64) {
	b.sessions.Set(userID, ActionComparePrices)
	text := "💰 <b>Сравнение цен</b>\n\n" +
		"Введите название продукта для сравнения цен:\n" +
		"(например: 'гречка', 'оливковое масло', 'творог')"
	b.send(chatID, text, ptr(backToMenuKeyboard()))
}

func (b *Bot) processPriceComparison(ctx context.Context, chatID, userID int64, productName string) {
	b.sessions.Clear(userID)

	offers, err := b.pricing.ComparePrices(ctx, productName)
	if err != nil {
		b.send(chatID, fmt.Sprintf("❌ Цены на '%s' не найдены.", productName), ptr(backToMenuKeyboard()))
		return
	}
	b.send(chatID, formatPrices(productName, offers), ptr(backToMenuKeyboard()))
}

func (b *Bot) showDiary(ctx context.Context, chatID, userID int64) {
	summary, err := b.diary.TodaySummary(ctx, userID)
	if err != nil {
		b.send(chatID, "❌ Пользователь не найден. Нажмите /start.", nil)
		return
	}
	b.send(chatID, formatDiary(summary), ptr(backToMenuKeyboard()))
}

func (b *Bot) showShoppingList(ctx context.Context, chatID, userID int64) {
	items, err := b.diary.ShoppingList(ctx, userID)
	if err != nil {
		b.send(chatID, "❌ Пользователь не найден. Нажмите /start.", nil)
		return
	}

	var text string
	if len(items) == 0 {
		text = "🛒 <b>Список покупок</b>\n\nСписок пуст. Добавьте продукты!"
	} else {
		var sb strings.Builder
		sb.WriteString("🛒 <b>Список покупок</b>\n\n")
		for _, item := range items {
			fmt.Fprintf(&sb, "• %s (%s %s)\n", item.ProductName, trimFloat(item.Quantity), item.Unit)
		}
		text = sb.String()
	}
	b.send(chatID, text, ptr(shoppingListKeyboard()))
}

func (b *Bot) startAddToShopping(chatID, userID int64) {
	b.sessions.Set(userID, ActionAddToShopping)
	text := "🛒 <b>Добавление в список</b>\n\n" +
		"Введите название продукта:\n" +
		"(например: 'Гречневая крупа')"
	b.send(chatID, text, ptr(backToMenuKeyboard()))
}

func (b *Bot) processAddToShopping(ctx context.Context, chatID, userID int64, productName string) {
	b.sessions.Clear(userID)

	item, err := b.diary.AddShoppingItem(ctx, userID, productName, 1, "шт")
	if err != nil {
		b.logger.Error("add shopping item failed", zap.Error(err))
		b.sendError(chatID)
		return
	}

	text := fmt.Sprintf("✅ '%s' добавлен в список покупок.", item.ProductName)
	if cheapest, err := b.pricing.CheapestShopForProduct(ctx, item.ProductName); err == nil && cheapest != nil {
		text += fmt.Sprintf("\n\n💡 Дешевле всего в %s: %s руб.", cheapest.Shop.Name, trimFloat(cheapest.Price))
	}
	b.send(chatID, text, ptr(backToMenuKeyboard()))
}

func (b *Bot) startDietician(chatID, userID int64) {
	b.sessions.Set(userID, ActionAskDietician)
	text := "🤖 <b>AI-диетолог</b>\n\n" +
		"Задайте любой вопрос о питании:\n" +
		"(например: 'Что можно есть при подагре?')"
	b.send(chatID, text, ptr(backToMenuKeyboard()))
}

func (b *Bot) processDieticianQuestion(ctx context.Context, chatID, userID int64, question string) {
	b.sessions.Clear(userID)
	b.send(chatID, "🤔 Диетолог думает...", nil)

	answer, err := b.dietician.Ask(ctx, question, b.userFlags(ctx, userID))
	if err != nil {
		b.send(chatID, "❌ Диетолог временно недоступен. Попробуйте позже.", ptr(backToMenuKeyboard()))
		return
	}
	b.send(chatID, "🤖 <b>AI-диетолог:</b>\n\n"+answer, ptr(backToMenuKeyboard()))
}

// userFlags loads the user's diagnosis flags; unregistered users get no
// constraints, same as an empty profile.
func (b *Bot) userFlags(ctx context.Context, userID int64) user.DiagnosisFlags {
	profile, err := b.diary.Profile(ctx, userID)
	if err != nil {
		return user.DiagnosisFlags{}
	}
	return profile.Diagnoses
}

func ptr(k tgbotapi.InlineKeyboardMarkup) *tgbotapi.InlineKeyboardMarkup {
	return &k
}
