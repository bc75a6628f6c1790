package catalog

import (
	"github.com/medmarket/bot/internal/domain/recipe"
	"github.com/medmarket/bot/internal/domain/shop"
)

// EmbeddedSnapshot returns the built-in Mediterranean-diet catalog: recipes
// curated for gout, diabetes and celiac constraints, plus demo shops with
// price tables. Swapping this for a live data source is a collaborator
// concern; the field set and invariants stay the same.
func EmbeddedSnapshot() Snapshot {
	return Snapshot{
		Recipes: embeddedRecipes(),
		Shops:   embeddedShops(),
		Prices:  embeddedPrices(),
	}
}

func embeddedRecipes() []recipe.Recipe {
	return []recipe.Recipe{
		{
			ID:   "r_001",
			Name: "Курица с брокколи на пару",
			Description: "Лёгкое диетическое блюдо, идеальное для диабетиков. " +
				"Низкий гликемический индекс и умеренное содержание белка.",
			Nutrition:           recipe.NutritionFacts{Calories: 320, Proteins: 42, Fats: 9, Carbs: 18},
			GlycemicIndex:       35,
			PurinesMg:           120,
			CookingTimeMin:      25,
			Servings:            2,
			SuitableForDiabetes: true,
			SuitableForGout:     false, // курица содержит пурины
			SuitableForCeliac:   true,
			Category:            recipe.CategoryMain,
			Ingredients: []recipe.Ingredient{
				{Name: "Куриное филе", Amount: 300, Unit: "г"},
				{Name: "Брокколи", Amount: 200, Unit: "г"},
				{Name: "Оливковое масло", Amount: 10, Unit: "мл"},
				{Name: "Лимонный сок", Amount: 15, Unit: "мл"},
				{Name: "Соль, перец", Amount: 1, Unit: "по вкусу"},
			},
			Instructions: []string{
				"Нарезать куриное филе на небольшие кусочки.",
				"Разделить брокколи на соцветия, промыть.",
				"Выложить курицу и брокколи в пароварку.",
				"Готовить на пару 20-25 минут до готовности.",
				"Полить оливковым маслом и лимонным соком.",
				"Посолить и поперчить по вкусу.",
			},
		},
		{
			ID:   "r_002",
			Name: "Салат Средиземноморский",
			Description: "Классический овощной салат, богатый антиоксидантами. " +
				"Подходит для всех диагнозов.",
			Nutrition:           recipe.NutritionFacts{Calories: 180, Proteins: 5, Fats: 12, Carbs: 15},
			GlycemicIndex:       20,
			PurinesMg:           15,
			CookingTimeMin:      15,
			Servings:            2,
			SuitableForDiabetes: true,
			SuitableForGout:     true,
			SuitableForCeliac:   true,
			Category:            recipe.CategorySalad,
			Ingredients: []recipe.Ingredient{
				{Name: "Помидоры черри", Amount: 150, Unit: "г"},
				{Name: "Огурец", Amount: 1, Unit: "шт"},
				{Name: "Болгарский перец", Amount: 1, Unit: "шт"},
				{Name: "Красный лук", Amount: 50, Unit: "г"},
				{Name: "Маслины", Amount: 50, Unit: "г"},
				{Name: "Оливковое масло Extra Virgin", Amount: 30, Unit: "мл"},
				{Name: "Лимонный сок", Amount: 15, Unit: "мл"},
				{Name: "Орегано сушёный", Amount: 1, Unit: "ч.л."},
			},
			Instructions: []string{
				"Нарезать помидоры пополам.",
				"Огурец нарезать полукольцами.",
				"Перец нарезать кубиками.",
				"Лук нарезать тонкими полукольцами.",
				"Смешать все овощи в салатнике.",
				"Добавить маслины.",
				"Заправить оливковым маслом и лимонным соком.",
				"Посыпать орегано, посолить по вкусу.",
			},
		},
		{
			ID:   "r_003",
			Name: "Гречневая каша с овощами",
			Description: "Питательное блюдо с низким ГИ, богатое клетчаткой. " +
				"Идеально для завтрака или гарнира.",
			Nutrition:           recipe.NutritionFacts{Calories: 250, Proteins: 9, Fats: 6, Carbs: 42},
			GlycemicIndex:       40,
			PurinesMg:           25,
			CookingTimeMin:      30,
			Servings:            2,
			SuitableForDiabetes: true,
			SuitableForGout:     true,
			SuitableForCeliac:   true,
			Category:            recipe.CategoryMain,
			Ingredients: []recipe.Ingredient{
				{Name: "Гречневая крупа", Amount: 150, Unit: "г"},
				{Name: "Морковь", Amount: 1, Unit: "шт"},
				{Name: "Лук репчатый", Amount: 1, Unit: "шт"},
				{Name: "Кабачок", Amount: 150, Unit: "г"},
				{Name: "Оливковое масло", Amount: 15, Unit: "мл"},
				{Name: "Вода", Amount: 300, Unit: "мл"},
			},
			Instructions: []string{
				"Промыть гречку под холодной водой.",
				"Нарезать овощи мелкими кубиками.",
				"Обжарить лук и морковь на оливковом масле 5 минут.",
				"Добавить кабачок, тушить ещё 3 минуты.",
				"Добавить гречку и воду.",
				"Довести до кипения, уменьшить огонь.",
				"Варить 20 минут до готовности гречки.",
				"Посолить по вкусу.",
			},
		},
		{
			ID:   "r_004",
			Name: "Запечённая рыба с травами",
			Description: "Белая рыба, запечённая с ароматными травами. " +
				"Отличный источник омега-3 жирных кислот.",
			Nutrition:           recipe.NutritionFacts{Calories: 280, Proteins: 38, Fats: 12, Carbs: 2},
			GlycemicIndex:       0,
			PurinesMg:           80,
			CookingTimeMin:      35,
			Servings:            2,
			SuitableForDiabetes: true,
			SuitableForGout:     true, // белая рыба допустима
			SuitableForCeliac:   true,
			Category:            recipe.CategoryMain,
			Ingredients: []recipe.Ingredient{
				{Name: "Треска (филе)", Amount: 400, Unit: "г"},
				{Name: "Лимон", Amount: 1, Unit: "шт"},
				{Name: "Чеснок", Amount: 2, Unit: "зубчика"},
				{Name: "Розмарин свежий", Amount: 2, Unit: "веточки"},
				{Name: "Тимьян свежий", Amount: 3, Unit: "веточки"},
				{Name: "Оливковое масло", Amount: 20, Unit: "мл"},
			},
			Instructions: []string{
				"Разогреть духовку до 180°C.",
				"Выложить рыбу на фольгу.",
				"Полить оливковым маслом и лимонным соком.",
				"Посыпать мелко нарезанным чесноком.",
				"Положить сверху веточки трав.",
				"Завернуть фольгу, оставив небольшое отверстие.",
				"Запекать 25-30 минут.",
				"Подавать с дольками лимона.",
			},
		},
		{
			ID:   "r_005",
			Name: "Овсянка с ягодами и орехами",
			Description: "Полезный завтрак с низким ГИ, богатый клетчаткой " +
				"и антиоксидантами.",
			Nutrition:           recipe.NutritionFacts{Calories: 350, Proteins: 12, Fats: 14, Carbs: 48},
			GlycemicIndex:       45,
			PurinesMg:           20,
			CookingTimeMin:      15,
			Servings:            1,
			SuitableForDiabetes: true,
			SuitableForGout:     true,
			SuitableForCeliac:   false, // овёс может содержать глютен
			Category:            recipe.CategoryBreakfast,
			Ingredients: []recipe.Ingredient{
				{Name: "Овсяные хлопья (долгой варки)", Amount: 50, Unit: "г"},
				{Name: "Вода или молоко", Amount: 200, Unit: "мл"},
				{Name: "Черника", Amount: 50, Unit: "г"},
				{Name: "Малина", Amount: 50, Unit: "г"},
				{Name: "Грецкие орехи", Amount: 20, Unit: "г"},
				{Name: "Мёд (опционально)", Amount: 5, Unit: "мл"},
			},
			Instructions: []string{
				"Залить овсянку водой или молоком.",
				"Варить на среднем огне 10-12 минут, помешивая.",
				"Переложить в тарелку.",
				"Добавить свежие ягоды.",
				"Посыпать измельчёнными орехами.",
				"По желанию добавить немного мёда.",
			},
		},
		{
			ID:   "r_006",
			Name: "Творожная запеканка без сахара",
			Description: "Нежная запеканка из творога без добавления сахара. " +
				"Отличный десерт для диабетиков.",
			Nutrition:           recipe.NutritionFacts{Calories: 180, Proteins: 18, Fats: 5, Carbs: 15},
			GlycemicIndex:       30,
			PurinesMg:           10,
			CookingTimeMin:      45,
			Servings:            4,
			SuitableForDiabetes: true,
			SuitableForGout:     true,
			SuitableForCeliac:   false, // содержит муку
			Category:            recipe.CategoryDessert,
			Ingredients: []recipe.Ingredient{
				{Name: "Творог 5%", Amount: 500, Unit: "г"},
				{Name: "Яйцо", Amount: 2, Unit: "шт"},
				{Name: "Мука рисовая", Amount: 30, Unit: "г"},
				{Name: "Стевия", Amount: 1, Unit: "ч.л."},
				{Name: "Ванилин", Amount: 1, Unit: "щепотка"},
			},
			Instructions: []string{
				"Разогреть духовку до 170°C.",
				"Смешать творог с яйцами.",
				"Добавить муку, стевию и ванилин.",
				"Тщательно перемешать до однородности.",
				"Выложить в смазанную форму.",
				"Запекать 35-40 минут до золотистой корочки.",
				"Остудить перед подачей.",
			},
		},
		{
			ID:   "r_007",
			Name: "Суп-пюре из тыквы",
			Description: "Кремовый тыквенный суп с имбирём. " +
				"Низкокалорийный и согревающий.",
			Nutrition:           recipe.NutritionFacts{Calories: 120, Proteins: 3, Fats: 4, Carbs: 18},
			GlycemicIndex:       65, // умеренный ГИ
			PurinesMg:           10,
			CookingTimeMin:      40,
			Servings:            4,
			SuitableForDiabetes: true,
			SuitableForGout:     true,
			SuitableForCeliac:   true,
			Category:            recipe.CategorySoup,
			Ingredients: []recipe.Ingredient{
				{Name: "Тыква", Amount: 500, Unit: "г"},
				{Name: "Лук репчатый", Amount: 1, Unit: "шт"},
				{Name: "Имбирь свежий", Amount: 10, Unit: "г"},
				{Name: "Овощной бульон", Amount: 500, Unit: "мл"},
				{Name: "Оливковое масло", Amount: 15, Unit: "мл"},
				{Name: "Тыквенные семечки", Amount: 20, Unit: "г"},
			},
			Instructions: []string{
				"Нарезать тыкву кубиками, лук мелко.",
				"Обжарить лук на оливковом масле 3 минуты.",
				"Добавить тыкву и тёртый имбирь.",
				"Залить бульоном и варить 25-30 минут.",
				"Пюрировать блендером до однородности.",
				"Подавать с тыквенными семечками.",
			},
		},
		{
			ID:   "r_008",
			Name: "Киноа с овощами",
			Description: "Питательный гарнир из киноа с разноцветными овощами. " +
				"Отличный источник растительного белка.",
			Nutrition:           recipe.NutritionFacts{Calories: 280, Proteins: 10, Fats: 8, Carbs: 42},
			GlycemicIndex:       35,
			PurinesMg:           20,
			CookingTimeMin:      25,
			Servings:            2,
			SuitableForDiabetes: true,
			SuitableForGout:     true,
			SuitableForCeliac:   true,
			Category:            recipe.CategoryMain,
			Ingredients: []recipe.Ingredient{
				{Name: "Киноа", Amount: 150, Unit: "г"},
				{Name: "Болгарский перец", Amount: 1, Unit: "шт"},
				{Name: "Помидоры", Amount: 150, Unit: "г"},
				{Name: "Огурец", Amount: 1, Unit: "шт"},
				{Name: "Петрушка", Amount: 30, Unit: "г"},
				{Name: "Лимонный сок", Amount: 30, Unit: "мл"},
				{Name: "Оливковое масло", Amount: 20, Unit: "мл"},
			},
			Instructions: []string{
				"Промыть киноа и отварить по инструкции.",
				"Остудить киноа.",
				"Нарезать все овощи мелкими кубиками.",
				"Мелко нарезать петрушку.",
				"Смешать киноа с овощами.",
				"Заправить лимонным соком и оливковым маслом.",
				"Посолить по вкусу.",
			},
		},
		{
			ID:   "r_009",
			Name: "Омлет с зеленью и сыром",
			Description: "Белковый завтрак с минимальным содержанием углеводов. " +
				"Быстрое и питательное блюдо.",
			Nutrition:           recipe.NutritionFacts{Calories: 250, Proteins: 18, Fats: 18, Carbs: 3},
			GlycemicIndex:       0,
			PurinesMg:           15,
			CookingTimeMin:      10,
			Servings:            1,
			SuitableForDiabetes: true,
			SuitableForGout:     true,
			SuitableForCeliac:   true,
			Category:            recipe.CategoryBreakfast,
			Ingredients: []recipe.Ingredient{
				{Name: "Яйца", Amount: 2, Unit: "шт"},
				{Name: "Молоко", Amount: 30, Unit: "мл"},
				{Name: "Сыр твёрдый", Amount: 30, Unit: "г"},
				{Name: "Шпинат", Amount: 30, Unit: "г"},
				{Name: "Укроп", Amount: 10, Unit: "г"},
				{Name: "Оливковое масло", Amount: 5, Unit: "мл"},
			},
			Instructions: []string{
				"Взбить яйца с молоком.",
				"Натереть сыр на тёрке.",
				"Мелко нарезать зелень.",
				"Разогреть масло на сковороде.",
				"Вылить яичную смесь.",
				"Добавить шпинат и зелень.",
				"Посыпать сыром.",
				"Готовить под крышкой 5-7 минут.",
			},
		},
		{
			ID:   "r_010",
			Name: "Фасолевый салат с тунцом",
			Description: "Сытный салат с высоким содержанием белка. " +
				"Отличный вариант для обеда.",
			Nutrition:           recipe.NutritionFacts{Calories: 320, Proteins: 28, Fats: 12, Carbs: 25},
			GlycemicIndex:       25,
			PurinesMg:           150,
			CookingTimeMin:      15,
			Servings:            2,
			SuitableForDiabetes: true,
			SuitableForGout:     false, // тунец содержит много пуринов
			SuitableForCeliac:   true,
			Category:            recipe.CategorySalad,
			Ingredients: []recipe.Ingredient{
				{Name: "Тунец консервированный", Amount: 150, Unit: "г"},
				{Name: "Фасоль белая (отварная)", Amount: 200, Unit: "г"},
				{Name: "Красный лук", Amount: 50, Unit: "г"},
				{Name: "Помидоры черри", Amount: 100, Unit: "г"},
				{Name: "Петрушка", Amount: 20, Unit: "г"},
				{Name: "Оливковое масло", Amount: 20, Unit: "мл"},
				{Name: "Лимонный сок", Amount: 15, Unit: "мл"},
			},
			Instructions: []string{
				"Слить жидкость из тунца, размять вилкой.",
				"Нарезать лук тонкими полукольцами.",
				"Помидоры нарезать пополам.",
				"Мелко нарезать петрушку.",
				"Смешать фасоль, тунец, лук, помидоры.",
				"Добавить петрушку.",
				"Заправить маслом и лимонным соком.",
				"Посолить и поперчить по вкусу.",
			},
		},
	}
}

func embeddedShops() []shop.Shop {
	return []shop.Shop{
		{
			ID:           "shop_001",
			Name:         "Пятёрочка",
			Chain:        "X5 Retail Group",
			Latitude:     55.7558,
			Longitude:    37.6173,
			Address:      "Москва, Красная площадь, 1",
			Rating:       4.7,
			WorkingHours: "08:00-23:00",
			HasDelivery:  true,
		},
		{
			ID:           "shop_002",
			Name:         "Магнит",
			Chain:        "Магнит",
			Latitude:     55.7500,
			Longitude:    37.6200,
			Address:      "Москва, ул. Тверская, 15",
			Rating:       4.5,
			WorkingHours: "07:00-23:00",
			HasDelivery:  true,
		},
		{
			ID:           "shop_003",
			Name:         "Дикси",
			Chain:        "Дикси",
			Latitude:     55.7600,
			Longitude:    37.6100,
			Address:      "Москва, Охотный ряд, 2",
			Rating:       4.3,
			WorkingHours: "06:00-23:00",
			HasDelivery:  false,
		},
		{
			ID:           "shop_004",
			Name:         "ВкусВилл",
			Chain:        "ВкусВилл",
			Latitude:     55.7520,
			Longitude:    37.6150,
			Address:      "Москва, ул. Никольская, 10",
			Rating:       4.8,
			WorkingHours: "08:00-22:00",
			HasDelivery:  true,
		},
		{
			ID:           "shop_005",
			Name:         "Перекрёсток",
			Chain:        "X5 Retail Group",
			Latitude:     55.7580,
			Longitude:    37.6220,
			Address:      "Москва, ул. Петровка, 5",
			Rating:       4.6,
			WorkingHours: "07:00-24:00",
			HasDelivery:  true,
		},
	}
}

func embeddedPrices() map[string][]shop.PriceEntry {
	return map[string][]shop.PriceEntry{
		"shop_001": { // Пятёрочка
			{Product: "Куриное филе", Price: 289},
			{Product: "Брокколи", Price: 149},
			{Product: "Гречневая крупа", Price: 89},
			{Product: "Оливковое масло", Price: 549},
			{Product: "Творог 5%", Price: 89},
			{Product: "Яйца (10 шт)", Price: 99},
			{Product: "Овсяные хлопья", Price: 79},
			{Product: "Треска (филе)", Price: 449},
			{Product: "Помидоры черри", Price: 199},
			{Product: "Киноа", Price: 299},
		},
		"shop_002": { // Магнит
			{Product: "Куриное филе", Price: 279},
			{Product: "Брокколи", Price: 159},
			{Product: "Гречневая крупа", Price: 79},
			{Product: "Оливковое масло", Price: 529},
			{Product: "Творог 5%", Price: 79},
			{Product: "Яйца (10 шт)", Price: 89},
			{Product: "Овсяные хлопья", Price: 69},
			{Product: "Треска (филе)", Price: 429},
			{Product: "Помидоры черри", Price: 189},
			{Product: "Киноа", Price: 319},
		},
		"shop_003": { // Дикси
			{Product: "Куриное филе", Price: 299},
			{Product: "Брокколи", Price: 139},
			{Product: "Гречневая крупа", Price: 85},
			{Product: "Оливковое масло", Price: 569},
			{Product: "Творог 5%", Price: 85},
			{Product: "Яйца (10 шт)", Price: 95},
			{Product: "Овсяные хлопья", Price: 75},
			{Product: "Треска (филе)", Price: 459},
			{Product: "Помидоры черри", Price: 179},
			{Product: "Киноа", Price: 289},
		},
		"shop_004": { // ВкусВилл
			{Product: "Куриное филе", Price: 329},
			{Product: "Брокколи", Price: 169},
			{Product: "Гречневая крупа", Price: 99},
			{Product: "Оливковое масло", Price: 599},
			{Product: "Творог 5%", Price: 99},
			{Product: "Яйца (10 шт)", Price: 129},
			{Product: "Овсяные хлопья", Price: 89},
			{Product: "Треска (филе)", Price: 499},
			{Product: "Помидоры черри", Price: 229},
			{Product: "Киноа", Price: 349},
		},
		"shop_005": { // Перекрёсток
			{Product: "Куриное филе", Price: 309},
			{Product: "Брокколи", Price: 159},
			{Product: "Гречневая крупа", Price: 95},
			{Product: "Оливковое масло", Price: 579},
			{Product: "Творог 5%", Price: 95},
			{Product: "Яйца (10 шт)", Price: 109},
			{Product: "Овсяные хлопья", Price: 85},
			{Product: "Треска (филе)", Price: 479},
			{Product: "Помидоры черри", Price: 209},
			{Product: "Киноа", Price: 329},
		},
	}
}
