// Package inbound defines the interfaces for inbound ports (primary/driving
// adapters). The Telegram transport talks to the application exclusively
// through these interfaces using plain values: query strings, diagnosis
// flags, limits and coordinates.
package inbound

import (
	"context"

	"github.com/medmarket/bot/internal/domain/recipe"
	"github.com/medmarket/bot/internal/domain/user"
)

// RecipeSearch defines the recipe search use cases.
//
// "No result" is a normal outcome everywhere: lookups return a nil recipe or
// an empty slice, never an error. Errors are reserved for invalid input.
type RecipeSearch interface {
	// Search matches recipes by substring in the name or in any ingredient
	// name, filters by diagnoses, and returns at most limit results in
	// catalog order. Blank queries and non-positive limits are rejected.
	Search(ctx context.Context, query string, flags user.DiagnosisFlags, limit int) ([]recipe.Recipe, error)

	// ByCategory returns diagnosis-filtered recipes of one category, in
	// catalog order, without a limit.
	ByCategory(ctx context.Context, category recipe.Category, flags user.DiagnosisFlags) ([]recipe.Recipe, error)

	// Random picks a uniformly random recipe from the diagnosis-filtered
	// catalog. Returns nil when no recipe qualifies.
	Random(ctx context.Context, flags user.DiagnosisFlags) (*recipe.Recipe, error)

	// ByID returns the recipe with the exact id, or nil when absent.
	ByID(ctx context.Context, id string) (*recipe.Recipe, error)
}
