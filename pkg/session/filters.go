package session

import (
	"slices"

	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// Filters maps facet identifiers to selected values. The reserved category
// facet is single-select; every other facet is multi-select. A facet whose
// selection becomes empty is removed from the map entirely rather than kept
// as an empty set.
type Filters map[string][]string

// Toggle flips value within the facetID selection and reports whether the
// value is selected afterwards.
func (f Filters) Toggle(facetID, value string) bool {
	if facetID == domain.CategoryFacetID {
		return f.toggleSingle(facetID, value)
	}
	return f.toggleMulti(facetID, value)
}

// toggleSingle replaces the selection with the toggled value, or clears it
// when the value was already selected. The resulting set size is always <=1.
func (f Filters) toggleSingle(facetID, value string) bool {
	current := f[facetID]
	if len(current) == 1 && current[0] == value {
		delete(f, facetID)
		return false
	}
	f[facetID] = []string{value}
	return true
}

func (f Filters) toggleMulti(facetID, value string) bool {
	current := f[facetID]

	if idx := slices.Index(current, value); idx >= 0 {
		current = slices.Delete(current, idx, idx+1)
		if len(current) == 0 {
			delete(f, facetID)
		} else {
			f[facetID] = current
		}
		return false
	}

	f[facetID] = append(current, value)
	return true
}

// Clone returns a deep copy safe to hand to a fetch while the original keeps
// mutating.
func (f Filters) Clone() Filters {
	if f == nil {
		return nil
	}
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = slices.Clone(v)
	}
	return out
}

// Equal reports whether two filter selections select the same values in the
// same order.
func (f Filters) Equal(other Filters) bool {
	if len(f) != len(other) {
		return false
	}
	for k, v := range f {
		if !slices.Equal(v, other[k]) {
			return false
		}
	}
	return true
}
