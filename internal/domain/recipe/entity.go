// Package recipe contains the core domain model for catalog recipes.
// Recipes are immutable reference data: suitability flags and nutrition
// values are asserted when the catalog is loaded and trusted afterwards.
package recipe

// Recipe represents a single dish in the catalog.
type Recipe struct {
	ID          string
	Name        string
	Description string

	Nutrition      NutritionFacts
	GlycemicIndex  int     // 0-100 scale
	PurinesMg      float64 // mg per 100 g
	CookingTimeMin int
	Servings       int

	SuitableForDiabetes bool
	SuitableForGout     bool
	SuitableForCeliac   bool

	Category     Category
	Ingredients  []Ingredient
	Instructions []string
}

// Validate checks the invariants asserted at catalog-load time.
func (r Recipe) Validate() error {
	if r.ID == "" {
		return ErrEmptyID
	}
	if r.Name == "" {
		return ErrEmptyName
	}
	if err := r.Nutrition.Validate(); err != nil {
		return err
	}
	if r.GlycemicIndex < 0 || r.GlycemicIndex > 100 {
		return ErrInvalidGlycemicIndex
	}
	if r.PurinesMg < 0 {
		return ErrNegativePurines
	}
	if r.Servings <= 0 {
		return ErrInvalidServings
	}
	if !r.Category.Valid() {
		return ErrUnknownCategory
	}
	if len(r.Ingredients) == 0 {
		return ErrNoIngredients
	}
	for _, ing := range r.Ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}
	if len(r.Instructions) == 0 {
		return ErrNoInstructions
	}
	return nil
}

// MatchesCategory reports whether the recipe belongs to the given category.
func (r Recipe) MatchesCategory(c Category) bool {
	return r.Category == c
}
