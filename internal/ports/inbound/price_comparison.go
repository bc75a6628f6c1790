package inbound

import (
	"context"

	"github.com/medmarket/bot/internal/domain/shop"
)

// ShopDistance pairs a shop with its distance from the query point.
type ShopDistance struct {
	Shop       shop.Shop
	DistanceKm float64
}

// ShopPrice pairs a shop with the resolved price of one product.
type ShopPrice struct {
	Shop  shop.Shop
	Price float64
}

// ItemPrice is one priced line of a shopping list quote.
type ItemPrice struct {
	Name  string
	Price float64
}

// ShoppingListQuote is the per-shop aggregation over a shopping list.
// Missing items are skipped, not zero-priced; FoundItems/TotalItems let
// callers flag incomplete comparisons.
type ShoppingListQuote struct {
	Shop       shop.Shop
	TotalPrice float64
	FoundItems int
	TotalItems int
	Items      []ItemPrice
}

// PriceComparison defines the shop and price comparison use cases.
type PriceComparison interface {
	// NearbyShops returns shops within radiusKm of the point, sorted
	// ascending by distance (ties keep catalog order), truncated to limit.
	NearbyShops(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]ShopDistance, error)

	// ComparePrices returns the product price in every shop that stocks it,
	// sorted ascending by price. Shops without a match are excluded.
	ComparePrices(ctx context.Context, productName string) ([]ShopPrice, error)

	// CheapestShopForProduct returns the cheapest offer, or nil when no shop
	// stocks the product.
	CheapestShopForProduct(ctx context.Context, productName string) (*ShopPrice, error)

	// PricesForShoppingList aggregates prices for the whole list per shop,
	// keyed by shop id.
	PricesForShoppingList(ctx context.Context, items []string) (map[string]ShoppingListQuote, error)

	// CheapestShopForShoppingList returns the shop with the lowest total
	// among shops that matched at least one item (total > 0), or nil when
	// none matched anything.
	CheapestShopForShoppingList(ctx context.Context, items []string) (*ShoppingListQuote, error)
}
