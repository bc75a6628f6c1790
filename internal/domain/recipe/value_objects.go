package recipe

// Value objects for the recipe domain.

// Ingredient represents an ingredient line of a recipe.
type Ingredient struct {
	Name   string
	Amount float64
	Unit   string
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return ErrEmptyIngredientName
	}
	if i.Amount < 0 {
		return ErrNegativeIngredientAmount
	}
	return nil
}

// NutritionFacts contains per-serving nutritional information.
type NutritionFacts struct {
	Calories float64
	Proteins float64 // grams
	Fats     float64 // grams
	Carbs    float64 // grams
}

// Validate validates the nutrition facts
func (n NutritionFacts) Validate() error {
	if n.Calories < 0 || n.Proteins < 0 || n.Fats < 0 || n.Carbs < 0 {
		return ErrNegativeNutrition
	}
	return nil
}

// Category represents a recipe category.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryMain      Category = "main"
	CategorySalad     Category = "salad"
	CategorySoup      Category = "soup"
	CategoryDessert   Category = "dessert"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryBreakfast,
		CategoryMain,
		CategorySalad,
		CategorySoup,
		CategoryDessert,
	}
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryBreakfast, CategoryMain, CategorySalad, CategorySoup, CategoryDessert:
		return true
	}
	return false
}
