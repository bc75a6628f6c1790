// Package catalog provides the in-memory catalog store: recipes, shops and
// per-shop price tables loaded once at startup. The store holds an immutable
// snapshot behind an atomic pointer, so reads never lock and a reload swaps
// the whole snapshot at once.
package catalog

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/medmarket/bot/internal/domain/recipe"
	"github.com/medmarket/bot/internal/domain/shop"
	"github.com/medmarket/bot/pkg/errors"
)

// Snapshot is one immutable generation of catalog data.
type Snapshot struct {
	Recipes []recipe.Recipe
	Shops   []shop.Shop
	// Prices keeps one ordered price table per shop id. Order matters: the
	// substring fallback of the match policy picks the first entry in table
	// order.
	Prices map[string][]shop.PriceEntry
}

// Validate checks every recipe, shop and price entry against the domain
// invariants. Called once per snapshot before it becomes visible.
func (s *Snapshot) Validate() error {
	seen := make(map[string]struct{}, len(s.Recipes))
	for _, r := range s.Recipes {
		if err := r.Validate(); err != nil {
			return errors.NewConfigurationError("recipe " + r.ID + ": " + err.Error())
		}
		if _, dup := seen[r.ID]; dup {
			return errors.NewConfigurationError("duplicate recipe id " + r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	shopIDs := make(map[string]struct{}, len(s.Shops))
	for _, sh := range s.Shops {
		if err := sh.Validate(); err != nil {
			return errors.NewConfigurationError("shop " + sh.ID + ": " + err.Error())
		}
		if _, dup := shopIDs[sh.ID]; dup {
			return errors.NewConfigurationError("duplicate shop id " + sh.ID)
		}
		shopIDs[sh.ID] = struct{}{}
	}
	for shopID, table := range s.Prices {
		if _, ok := shopIDs[shopID]; !ok {
			return errors.NewConfigurationError("price table for unknown shop " + shopID)
		}
		for _, entry := range table {
			if err := entry.Validate(); err != nil {
				return errors.NewConfigurationError("price entry in " + shopID + ": " + err.Error())
			}
		}
	}
	return nil
}

// Store exposes read-only catalog access over the current snapshot.
type Store struct {
	current atomic.Pointer[indexedSnapshot]
	logger  *zap.Logger
}

// indexedSnapshot augments a snapshot with lookup indexes built once at
// load time.
type indexedSnapshot struct {
	snap       Snapshot
	recipeByID map[string]int
}

// NewStore builds a store from the given snapshot. The snapshot is validated
// before it becomes visible to readers.
func NewStore(snap Snapshot, logger *zap.Logger) (*Store, error) {
	s := &Store{logger: logger.Named("catalog")}
	if err := s.Swap(snap); err != nil {
		return nil, err
	}
	return s, nil
}

// NewEmbeddedStore builds a store from the embedded dataset.
func NewEmbeddedStore(logger *zap.Logger) (*Store, error) {
	return NewStore(EmbeddedSnapshot(), logger)
}

// Swap validates the snapshot, builds indexes and atomically replaces the
// current generation. Readers in flight keep the generation they started
// with.
func (s *Store) Swap(snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	idx := &indexedSnapshot{
		snap:       snap,
		recipeByID: make(map[string]int, len(snap.Recipes)),
	}
	for i, r := range snap.Recipes {
		idx.recipeByID[r.ID] = i
	}

	s.current.Store(idx)
	s.logger.Info("catalog snapshot loaded",
		zap.Int("recipes", len(snap.Recipes)),
		zap.Int("shops", len(snap.Shops)),
	)
	return nil
}

// RecipeByID returns the recipe with the exact id, if present.
func (s *Store) RecipeByID(id string) (recipe.Recipe, bool) {
	idx := s.current.Load()
	i, ok := idx.recipeByID[id]
	if !ok {
		return recipe.Recipe{}, false
	}
	return idx.snap.Recipes[i], true
}

// Recipes returns recipes in catalog insertion order, optionally restricted
// to a category. The returned slice is a copy; callers may not reach the
// snapshot through it.
func (s *Store) Recipes(category *recipe.Category) []recipe.Recipe {
	snap := &s.current.Load().snap

	out := make([]recipe.Recipe, 0, len(snap.Recipes))
	for _, r := range snap.Recipes {
		if category != nil && !r.MatchesCategory(*category) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Shops returns every shop in catalog insertion order.
func (s *Store) Shops() []shop.Shop {
	snap := &s.current.Load().snap
	out := make([]shop.Shop, len(snap.Shops))
	copy(out, snap.Shops)
	return out
}

// PriceFor resolves a product price in one shop.
//
// Match policy, in order:
//  1. case-insensitive exact match against each table entry;
//  2. case-insensitive substring match in either direction (query contains
//     entry, or entry contains query); the first entry in table order wins.
//
// No match yields (0, false), never an error: an unstocked product is a
// normal outcome.
func (s *Store) PriceFor(shopID, productName string) (float64, bool) {
	snap := &s.current.Load().snap
	table, ok := snap.Prices[shopID]
	if !ok {
		return 0, false
	}

	query := strings.ToLower(strings.TrimSpace(productName))
	if query == "" {
		return 0, false
	}

	for _, entry := range table {
		if strings.ToLower(entry.Product) == query {
			return entry.Price, true
		}
	}
	for _, entry := range table {
		name := strings.ToLower(entry.Product)
		if strings.Contains(name, query) || strings.Contains(query, name) {
			return entry.Price, true
		}
	}
	return 0, false
}
