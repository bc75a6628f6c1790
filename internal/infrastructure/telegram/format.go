package telegram

import (
	"fmt"
	"strings"

	"github.com/medmarket/bot/internal/domain/recipe"
	"github.com/medmarket/bot/internal/ports/inbound"
)

var categoryTitles = map[recipe.Category]string{
	recipe.CategoryBreakfast: "🍳 Завтраки",
	recipe.CategoryMain:      "🍲 Основные блюда",
	recipe.CategorySalad:     "🥗 Салаты",
	recipe.CategorySoup:      "🍜 Супы",
	recipe.CategoryDessert:   "🍰 Десерты",
}

// formatRecipe renders one recipe as Telegram HTML.
func formatRecipe(r recipe.Recipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>%s</b>\n\n", r.Name)
	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", r.Description)
	}
	fmt.Fprintf(&b, "Время: %d мин | Порций: %d\n\n", r.CookingTimeMin, r.Servings)

	fmt.Fprintf(&b, "<b>Пищевая ценность (на порцию):</b>\n")
	fmt.Fprintf(&b, "Калории: %.0f ккал\n", r.Nutrition.Calories)
	fmt.Fprintf(&b, "Белки: %.0f г | Жиры: %.0f г | Углеводы: %.0f г\n",
		r.Nutrition.Proteins, r.Nutrition.Fats, r.Nutrition.Carbs)
	fmt.Fprintf(&b, "ГИ: %d | Пурины: %.0f мг\n\n", r.GlycemicIndex, r.PurinesMg)

	b.WriteString("<b>Ингредиенты:</b>\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "• %s: %s %s\n", ing.Name, trimFloat(ing.Amount), ing.Unit)
	}

	b.WriteString("\n<b>Приготовление:</b>\n")
	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	return b.String()
}

// formatSearchResults renders a search result list with the key medical
// numbers per recipe.
func formatSearchResults(query string, recipes []recipe.Recipe) string {
	if len(recipes) == 0 {
		return fmt.Sprintf(
			"❌ По запросу '%s' рецепты не найдены.\n\n"+
				"Попробуйте другой запрос или выберите категорию.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ <b>Найдено рецептов: %d</b>\n\n", len(recipes))
	for i, r := range recipes {
		fmt.Fprintf(&b, "<b>%d. %s</b>\n", i+1, r.Name)
		fmt.Fprintf(&b, "   Калории: %.0f ккал | ГИ: %d | Пурины: %.0f мг\n",
			r.Nutrition.Calories, r.GlycemicIndex, r.PurinesMg)
		fmt.Fprintf(&b, "   ⏱ %d мин\n\n", r.CookingTimeMin)
	}
	return b.String()
}

// formatCategoryResults renders a short per-category recipe list.
func formatCategoryResults(category recipe.Category, recipes []recipe.Recipe) string {
	title, ok := categoryTitles[category]
	if !ok {
		title = string(category)
	}

	if len(recipes) == 0 {
		return fmt.Sprintf("В категории '%s' нет подходящих рецептов.", title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n\n", title)
	for i, r := range recipes {
		fmt.Fprintf(&b, "%d. %s (%.0f ккал)\n", i+1, r.Name, r.Nutrition.Calories)
	}
	return b.String()
}

// formatShops renders a nearby-shop list with distance, rating stars and
// delivery marker.
func formatShops(shops []inbound.ShopDistance) string {
	if len(shops) == 0 {
		return "Магазины поблизости не найдены."
	}

	var b strings.Builder
	b.WriteString("<b>Магазины поблизости:</b>\n\n")
	for _, sd := range shops {
		stars := strings.Repeat("⭐", int(sd.Shop.Rating))
		fmt.Fprintf(&b, "<b>%s</b> (%.2f км)\n", sd.Shop.Name, sd.DistanceKm)
		fmt.Fprintf(&b, "📍 %s\n", sd.Shop.Address)
		fmt.Fprintf(&b, "🕐 %s\n", sd.Shop.WorkingHours)
		fmt.Fprintf(&b, "Рейтинг: %s (%.1f)\n", stars, sd.Shop.Rating)
		if sd.Shop.HasDelivery {
			b.WriteString("🚚 Доставка доступна\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatPrices renders a price comparison with medals for the top three and
// the spread between the cheapest and the dearest offer.
func formatPrices(productName string, offers []inbound.ShopPrice) string {
	if len(offers) == 0 {
		return fmt.Sprintf("❌ Цены на '%s' не найдены.", productName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>Сравнение цен: %s</b>\n\n", productName)
	for i, offer := range offers {
		var marker string
		switch i {
		case 0:
			marker = "🥇"
		case 1:
			marker = "🥈"
		case 2:
			marker = "🥉"
		default:
			marker = fmt.Sprintf("%d.", i+1)
		}
		fmt.Fprintf(&b, "%s <b>%s</b>\n", marker, offer.Shop.Name)
		fmt.Fprintf(&b, "   Цена: %s руб.\n", trimFloat(offer.Price))
		fmt.Fprintf(&b, "   %s\n\n", offer.Shop.Address)
	}

	if len(offers) >= 2 {
		savings := offers[len(offers)-1].Price - offers[0].Price
		if savings > 0 {
			fmt.Fprintf(&b, "💡 Экономия: до %s руб.", trimFloat(savings))
		}
	}
	return b.String()
}

// formatDiary renders today's diary entries with totals and the purine
// budget warning.
func formatDiary(summary *inbound.DailySummary) string {
	if len(summary.Entries) == 0 {
		return "📔 <b>Дневник питания</b>\n\nВаш дневник пока пуст.\nНачните добавлять рецепты!"
	}

	var b strings.Builder
	b.WriteString("📔 <b>Дневник питания за сегодня</b>\n\n")
	for _, entry := range summary.Entries {
		fmt.Fprintf(&b, "<b>%s</b>\n", entry.RecipeName)
		fmt.Fprintf(&b, "   %s | %.0f ккал | ГИ: %d\n\n",
			entry.DateEaten.Format("02.01 15:04"), entry.Calories, entry.GlycemicIndex)
	}
	fmt.Fprintf(&b, "<b>Итого за день:</b>\n")
	fmt.Fprintf(&b, "Калории: %.0f ккал\n", summary.TotalCalories)
	fmt.Fprintf(&b, "Пурины: %.1f мг (лимит %.0f мг)", summary.TotalPurines, summary.PurinesLimit)
	if summary.OverPurines {
		b.WriteString("\n\n⚠️ Дневной лимит пуринов превышен!")
	}
	return b.String()
}

// trimFloat renders a float without trailing zeros: whole prices stay whole.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
