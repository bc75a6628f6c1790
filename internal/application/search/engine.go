package search

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/medmarket/bot/internal/domain/recipe"
	"github.com/medmarket/bot/internal/domain/user"
	"github.com/medmarket/bot/internal/ports/outbound"
	"github.com/medmarket/bot/pkg/errors"
)

// Engine implements the recipe search use cases over the catalog.
type Engine struct {
	catalog outbound.Catalog
	filter  *DiagnosisFilter
	logger  *zap.Logger

	randMu sync.Mutex
	rand   *rand.Rand
}

// NewEngine creates a search engine. rng drives Random; inject a seeded
// source in tests for reproducible picks.
func NewEngine(catalog outbound.Catalog, filter *DiagnosisFilter, rng *rand.Rand, logger *zap.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		filter:  filter,
		rand:    rng,
		logger:  logger.Named("search"),
	}
}

// Search matches recipes by case-insensitive substring in the name or in any
// ingredient name, filters by diagnoses, and returns at most limit results
// in catalog order.
func (e *Engine) Search(ctx context.Context, query string, flags user.DiagnosisFlags, limit int) ([]recipe.Recipe, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, errors.NewInvalidArgumentError("query must not be blank")
	}
	if limit <= 0 {
		return nil, errors.NewInvalidArgumentError("limit must be positive")
	}

	out := make([]recipe.Recipe, 0, limit)
	for _, r := range e.catalog.Recipes(nil) {
		if !matches(r, q) || !e.filter.Admits(r, flags) {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}

	e.logger.Debug("recipe search",
		zap.String("query", q),
		zap.Int("results", len(out)),
	)
	return out, nil
}

// ByCategory returns diagnosis-filtered recipes of one category in catalog
// order.
func (e *Engine) ByCategory(ctx context.Context, category recipe.Category, flags user.DiagnosisFlags) ([]recipe.Recipe, error) {
	if !category.Valid() {
		return nil, errors.NewInvalidArgumentError("unknown category " + string(category))
	}
	return e.filter.Filter(e.catalog.Recipes(&category), flags), nil
}

// Random picks a uniformly random recipe from the diagnosis-filtered catalog.
// Returns nil when nothing qualifies.
func (e *Engine) Random(ctx context.Context, flags user.DiagnosisFlags) (*recipe.Recipe, error) {
	candidates := e.filter.Filter(e.catalog.Recipes(nil), flags)
	if len(candidates) == 0 {
		return nil, nil
	}

	e.randMu.Lock()
	i := e.rand.Intn(len(candidates))
	e.randMu.Unlock()

	return &candidates[i], nil
}

// ByID returns the recipe with the exact id, or nil when absent.
func (e *Engine) ByID(ctx context.Context, id string) (*recipe.Recipe, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewInvalidArgumentError("recipe id must not be blank")
	}
	r, ok := e.catalog.RecipeByID(id)
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// matches reports whether the lowercased query occurs in the recipe name or
// in any ingredient name.
func matches(r recipe.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), query) {
			return true
		}
	}
	return false
}
