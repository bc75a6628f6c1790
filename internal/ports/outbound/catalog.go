// Package outbound defines the interfaces for outbound ports (secondary/driven
// adapters). These are the interfaces the application uses to reach the
// catalog, persistence and external services.
package outbound

import (
	"github.com/medmarket/bot/internal/domain/recipe"
	"github.com/medmarket/bot/internal/domain/shop"
)

// Catalog exposes read-only access to the recipe list, shop list and price
// tables. The backing data is an immutable snapshot loaded at startup, so
// every method is safe for concurrent use without locking.
type Catalog interface {
	// RecipeByID returns the recipe with the exact id, if present.
	RecipeByID(id string) (recipe.Recipe, bool)

	// Recipes returns recipes in catalog insertion order, optionally
	// restricted to a category.
	Recipes(category *recipe.Category) []recipe.Recipe

	// Shops returns every shop in catalog insertion order.
	Shops() []shop.Shop

	// PriceFor resolves a product price in one shop using the price-match
	// policy: case-insensitive exact match first, then case-insensitive
	// substring match in either direction, first entry in table order wins.
	PriceFor(shopID, productName string) (float64, bool)
}
