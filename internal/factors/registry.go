package factors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Resolver provides emission-factor lookups.
type Resolver interface {
	// Resolve returns the best factor for (category, subcategory, scope, region).
	//
	// Resolution order: exact region match, then RegionGlobal, then any
	// available region (reported as MatchAnyRegion). Returns
	// ErrUnknownEmissionSource if the registry has no factor for the
	// (category, subcategory, scope) key at all.
	Resolve(category Category, subcategory string, scope Scope, region string) (EmissionFactor, MatchQuality, error)
}

// Registry is an immutable, in-memory emission-factor store.
//
// A Registry never changes after construction: refreshing factor data means
// building a new Registry and swapping the handle, so calculations in flight
// always see a consistent snapshot.
type Registry struct {
	factors []EmissionFactor
	index   map[string][]EmissionFactor
	logger  zerolog.Logger
}

// NewRegistry builds a Registry from the given factor rows. The input slice is
// copied; later mutation of the caller's slice does not affect the registry.
func NewRegistry(rows []EmissionFactor, logger zerolog.Logger) *Registry {
	r := &Registry{
		factors: make([]EmissionFactor, len(rows)),
		index:   make(map[string][]EmissionFactor),
		logger:  logger,
	}
	copy(r.factors, rows)

	for _, f := range r.factors {
		key := indexKey(f.Category, f.Subcategory, f.Scope)
		r.index[key] = append(r.index[key], f)
	}

	logger.Debug().
		Int("rows", len(r.factors)).
		Int("keys", len(r.index)).
		Msg("emission factor registry built")

	return r
}

// indexKey builds the lookup key for a (category, subcategory, scope) tuple.
// Subcategories are matched case-insensitively.
func indexKey(category Category, subcategory string, scope Scope) string {
	return fmt.Sprintf("%s/%s/%d", category, strings.ToLower(strings.TrimSpace(subcategory)), scope)
}

// Resolve implements Resolver.
func (r *Registry) Resolve(category Category, subcategory string, scope Scope, region string) (EmissionFactor, MatchQuality, error) {
	rows, ok := r.index[indexKey(category, subcategory, scope)]
	if !ok || len(rows) == 0 {
		return EmissionFactor{}, MatchAnyRegion, fmt.Errorf(
			"no factor for %s/%s in %s: %w", category, subcategory, scope, ErrUnknownEmissionSource)
	}

	want := strings.ToUpper(strings.TrimSpace(region))

	for _, f := range rows {
		if strings.ToUpper(f.Region) == want {
			return f, MatchExactRegion, nil
		}
	}

	for _, f := range rows {
		if strings.ToUpper(f.Region) == RegionGlobal {
			r.logger.Debug().
				Str("category", string(category)).
				Str("subcategory", subcategory).
				Str("requested_region", region).
				Msg("no regional factor, using global fallback")
			return f, MatchGlobalFallback, nil
		}
	}

	// Degraded match: a known source with neither the requested region nor a
	// global row. The caller lowers confidence accordingly.
	r.logger.Warn().
		Str("category", string(category)).
		Str("subcategory", subcategory).
		Str("requested_region", region).
		Str("used_region", rows[0].Region).
		Msg("no regional or global factor, using first available region")
	return rows[0], MatchAnyRegion, nil
}

// Len returns the number of factor rows in the registry.
func (r *Registry) Len() int {
	return len(r.factors)
}

// ListByScope groups all factors as scope -> category -> subcategory for
// client enumeration. The returned structure is freshly built on each call;
// mutating it does not affect the registry.
func (r *Registry) ListByScope() map[Scope]map[Category]map[string][]EmissionFactor {
	grouped := make(map[Scope]map[Category]map[string][]EmissionFactor)
	for _, f := range r.factors {
		byCategory, ok := grouped[f.Scope]
		if !ok {
			byCategory = make(map[Category]map[string][]EmissionFactor)
			grouped[f.Scope] = byCategory
		}
		bySub, ok := byCategory[f.Category]
		if !ok {
			bySub = make(map[string][]EmissionFactor)
			byCategory[f.Category] = bySub
		}
		sub := strings.ToLower(f.Subcategory)
		bySub[sub] = append(bySub[sub], f)
	}
	return grouped
}

// Subcategories returns the sorted subcategory keys available for a
// (category, scope) pair. Useful for input validation hints and enumeration.
func (r *Registry) Subcategories(category Category, scope Scope) []string {
	seen := make(map[string]struct{})
	for _, f := range r.factors {
		if f.Category == category && f.Scope == scope {
			seen[strings.ToLower(f.Subcategory)] = struct{}{}
		}
	}
	subs := make([]string, 0, len(seen))
	for s := range seen {
		subs = append(subs, s)
	}
	sort.Strings(subs)
	return subs
}
