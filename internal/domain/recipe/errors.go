package recipe

import "errors"

// Domain errors raised when validating catalog recipes at load time.

var (
	ErrEmptyID                  = errors.New("recipe id is required")
	ErrEmptyName                = errors.New("recipe name is required")
	ErrInvalidGlycemicIndex     = errors.New("glycemic index must be between 0 and 100")
	ErrNegativePurines          = errors.New("purine content cannot be negative")
	ErrNegativeNutrition        = errors.New("nutrition values cannot be negative")
	ErrInvalidServings          = errors.New("servings must be greater than 0")
	ErrUnknownCategory          = errors.New("unknown recipe category")
	ErrNoIngredients            = errors.New("recipe must have at least one ingredient")
	ErrNoInstructions           = errors.New("recipe must have at least one instruction")
	ErrEmptyIngredientName      = errors.New("ingredient name is required")
	ErrNegativeIngredientAmount = errors.New("ingredient amount cannot be negative")
)
