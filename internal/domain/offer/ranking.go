package offer

import (
	"math"
	"sort"
	"strings"
)

// Locatable is what the ranker needs from a listing row. Both the domain
// entity and the read-side list item satisfy it.
type Locatable interface {
	Location() *Coordinate
	PickupWindow() string
	CategoryTags() []string
}

// Filters are AND-combined. Nil means the filter is inactive; malformed
// client input must be mapped to nil by the caller, never to an error.
type Filters struct {
	MaxDistanceKm *float64
	// PickupAfter compares lexicographically against the free-text pickup
	// window. Raw text ordering, not a parsed time comparison.
	PickupAfter *string
	// Category matches case-insensitively as a substring of any tag.
	Category *string
}

func (f Filters) active() bool {
	return f.MaxDistanceKm != nil || f.PickupAfter != nil || f.Category != nil
}

type Ranked[T Locatable] struct {
	Item T
	// DistanceKm is nil when either the origin or the item's coordinate is
	// unknown. Unrounded.
	DistanceKm *float64
}

// Rank orders items by ascending haversine distance from origin and applies
// the filters. Items without a resolvable distance sort after all items with
// one, keeping their input order; an active distance filter excludes them
// outright since they cannot be shown to satisfy it.
func Rank[T Locatable](items []T, origin *Coordinate, f Filters) []Ranked[T] {
	ranked := make([]Ranked[T], 0, len(items))
	for _, it := range items {
		ranked = append(ranked, Ranked[T]{Item: it, DistanceKm: distanceFrom(origin, it)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return sortKey(ranked[i].DistanceKm) < sortKey(ranked[j].DistanceKm)
	})

	if !f.active() {
		return ranked
	}

	out := ranked[:0]
	for _, r := range ranked {
		if matchesFilters(f, r.Item, r.DistanceKm) {
			out = append(out, r)
		}
	}
	return out
}

func matchesFilters(f Filters, item Locatable, distanceKm *float64) bool {
	if f.MaxDistanceKm != nil {
		if distanceKm == nil || *distanceKm > *f.MaxDistanceKm {
			return false
		}
	}
	if f.PickupAfter != nil && item.PickupWindow() < *f.PickupAfter {
		return false
	}
	if f.Category != nil && !matchesCategory(item.CategoryTags(), *f.Category) {
		return false
	}
	return true
}

func matchesCategory(tags []string, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func distanceFrom[T Locatable](origin *Coordinate, item T) *float64 {
	coord := item.Location()
	if origin == nil || coord == nil {
		return nil
	}
	d := origin.DistanceKm(*coord)
	return &d
}

func sortKey(d *float64) float64 {
	if d == nil {
		return math.Inf(1)
	}
	return *d
}
