// Package pricing implements the shop and price comparison use cases:
// nearby-shop lookup, per-product price comparison and shopping list
// aggregation over the catalog price tables.
package pricing

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/medmarket/bot/internal/ports/inbound"
	"github.com/medmarket/bot/internal/ports/outbound"
	"github.com/medmarket/bot/pkg/errors"
	"github.com/medmarket/bot/pkg/geo"
)

// Engine implements the price comparison use cases over the catalog.
type Engine struct {
	catalog outbound.Catalog
	logger  *zap.Logger
}

// NewEngine creates a price comparison engine.
func NewEngine(catalog outbound.Catalog, logger *zap.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		logger:  logger.Named("pricing"),
	}
}

// NearbyShops returns shops within radiusKm of the point, sorted ascending
// by distance, truncated to limit. Equal distances keep catalog order.
func (e *Engine) NearbyShops(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]inbound.ShopDistance, error) {
	if err := geo.ValidateCoordinates(lat, lon); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		return nil, errors.NewInvalidArgumentError("radius must be positive")
	}
	if limit <= 0 {
		return nil, errors.NewInvalidArgumentError("limit must be positive")
	}

	shops := e.catalog.Shops()
	out := make([]inbound.ShopDistance, 0, len(shops))
	for _, sh := range shops {
		d, err := geo.DistanceKm(lat, lon, sh.Latitude, sh.Longitude)
		if err != nil {
			// Shop coordinates are validated at catalog load; failing
			// here means the snapshot invariant is broken.
			return nil, errors.Wrap(err, "shop "+sh.ID)
		}
		if d > radiusKm {
			continue
		}
		out = append(out, inbound.ShopDistance{Shop: sh, DistanceKm: d})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	if len(out) > limit {
		out = out[:limit]
	}

	e.logger.Debug("nearby shops",
		zap.Float64("radius_km", radiusKm),
		zap.Int("results", len(out)),
	)
	return out, nil
}

// ComparePrices returns the product price in every shop that stocks it,
// sorted ascending by price. Equal prices keep catalog shop order.
func (e *Engine) ComparePrices(ctx context.Context, productName string) ([]inbound.ShopPrice, error) {
	name := strings.TrimSpace(productName)
	if name == "" {
		return nil, errors.NewInvalidArgumentError("product name must not be blank")
	}

	shops := e.catalog.Shops()
	out := make([]inbound.ShopPrice, 0, len(shops))
	for _, sh := range shops {
		price, ok := e.catalog.PriceFor(sh.ID, name)
		if !ok {
			continue
		}
		out = append(out, inbound.ShopPrice{Shop: sh, Price: price})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Price < out[j].Price
	})
	return out, nil
}

// CheapestShopForProduct returns the cheapest offer, or nil when no shop
// stocks the product.
func (e *Engine) CheapestShopForProduct(ctx context.Context, productName string) (*inbound.ShopPrice, error) {
	offers, err := e.ComparePrices(ctx, productName)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, nil
	}
	return &offers[0], nil
}

// PricesForShoppingList aggregates prices for the whole list in every shop,
// keyed by shop id. Unmatched items are skipped, not zero-priced.
func (e *Engine) PricesForShoppingList(ctx context.Context, items []string) (map[string]inbound.ShoppingListQuote, error) {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if name := strings.TrimSpace(item); name != "" {
			cleaned = append(cleaned, name)
		}
	}
	if len(cleaned) == 0 {
		return nil, errors.NewInvalidArgumentError("shopping list must not be empty")
	}

	quotes := make(map[string]inbound.ShoppingListQuote)
	for _, sh := range e.catalog.Shops() {
		quote := inbound.ShoppingListQuote{
			Shop:       sh,
			TotalItems: len(cleaned),
		}
		for _, name := range cleaned {
			price, ok := e.catalog.PriceFor(sh.ID, name)
			if !ok {
				continue
			}
			quote.Items = append(quote.Items, inbound.ItemPrice{Name: name, Price: price})
			quote.TotalPrice += price
			quote.FoundItems++
		}
		quotes[sh.ID] = quote
	}
	return quotes, nil
}

// CheapestShopForShoppingList returns the shop with the lowest total among
// shops that matched at least one item. A shop that matched nothing has
// total 0 and must never win, so zero totals are excluded outright.
func (e *Engine) CheapestShopForShoppingList(ctx context.Context, items []string) (*inbound.ShoppingListQuote, error) {
	quotes, err := e.PricesForShoppingList(ctx, items)
	if err != nil {
		return nil, err
	}

	var best *inbound.ShoppingListQuote
	for _, sh := range e.catalog.Shops() {
		quote := quotes[sh.ID]
		if quote.TotalPrice <= 0 {
			continue
		}
		if best == nil || quote.TotalPrice < best.TotalPrice {
			q := quote
			best = &q
		}
	}
	return best, nil
}
