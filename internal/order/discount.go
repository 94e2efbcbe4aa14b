package order

import (
	"context"
	"strings"
	"sync"
)

// DiscountSet validates discount codes against a configured set.
// Matching is case-insensitive. An empty set accepts nothing, so callers
// should pass a nil *DiscountSet to disable validation entirely.
type DiscountSet struct {
	mu    sync.RWMutex
	codes map[string]struct{}
}

// NewDiscountSet builds a DiscountSet from configured codes. Returns nil
// when no codes are configured, which disables validation.
func NewDiscountSet(codes []string) *DiscountSet {
	if len(codes) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			set[c] = struct{}{}
		}
	}

	return &DiscountSet{codes: set}
}

// IsValid reports whether code is an accepted discount code.
func (d *DiscountSet) IsValid(_ context.Context, code string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.codes[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Replace swaps the accepted code set. Used when config is reloaded.
func (d *DiscountSet) Replace(codes []string) {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			set[c] = struct{}{}
		}
	}

	d.mu.Lock()
	d.codes = set
	d.mu.Unlock()
}
