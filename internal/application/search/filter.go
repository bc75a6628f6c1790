// Package search implements the recipe search use cases: substring search,
// category listing, random pick and id lookup, all behind the diagnosis
// filter.
package search

import (
	"github.com/medmarket/bot/internal/domain/recipe"
	"github.com/medmarket/bot/internal/domain/user"
)

// GoutPurineLimit is the per-100g purine ceiling (mg) applied to recipes
// for users with gout. Medical guidance for a strict low-purine diet; not
// user-configurable.
const GoutPurineLimit = 100.0

// DiagnosisFilter decides recipe admissibility for a set of diagnoses.
// Constraints compose with AND: a recipe must satisfy every active
// diagnosis. No active diagnosis admits everything.
type DiagnosisFilter struct {
	maxGlycemicIndex int
}

// NewDiagnosisFilter creates a filter with the given glycemic index ceiling
// for diabetic users.
func NewDiagnosisFilter(maxGlycemicIndex int) *DiagnosisFilter {
	return &DiagnosisFilter{maxGlycemicIndex: maxGlycemicIndex}
}

// Admits reports whether the recipe is admissible for every active diagnosis.
// Diabetes and gout are purely numeric constraints; only celiac relies on the
// recipe's suitability flag.
func (f *DiagnosisFilter) Admits(r recipe.Recipe, flags user.DiagnosisFlags) bool {
	if flags.Diabetes && r.GlycemicIndex > f.maxGlycemicIndex {
		return false
	}
	if flags.Gout && r.PurinesMg > GoutPurineLimit {
		return false
	}
	if flags.Celiac && !r.SuitableForCeliac {
		return false
	}
	return true
}

// Filter returns the admissible recipes in input order.
func (f *DiagnosisFilter) Filter(recipes []recipe.Recipe, flags user.DiagnosisFlags) []recipe.Recipe {
	out := make([]recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if f.Admits(r, flags) {
			out = append(out, r)
		}
	}
	return out
}
