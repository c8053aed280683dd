package pricing

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// ErrNotListed is returned when a creator id has no entry in the book.
var ErrNotListed = errors.New("price not listed")

// Side is the direction of an order.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Book holds the live token price per creator. Prices are seeded once and
// then moved only by ApplyImpact.
type Book struct {
	mu     sync.RWMutex
	k      float64 // price impact per unit traded
	floor  float64 // lowest price a token can reach
	prices map[string]float64
}

// NewBook seeds a price book. k is the per-unit impact factor and floor the
// minimum price a token may reach; both must be positive.
func NewBook(seed map[string]float64, k, floor float64) *Book {
	prices := make(map[string]float64, len(seed))
	for id, p := range seed {
		prices[id] = round2(p)
	}
	return &Book{k: k, floor: floor, prices: prices}
}

// Get returns the live price for a creator.
func (b *Book) Get(id string) (float64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.prices[id]
	if !ok {
		return 0, fmt.Errorf("creator %q: %w", id, ErrNotListed)
	}
	return p, nil
}

// Snapshot returns a copy of the whole price table.
func (b *Book) Snapshot() map[string]float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]float64, len(b.prices))
	for id, p := range b.prices {
		out[id] = p
	}
	return out
}

// ApplyImpact moves the price after a filled order: up by (1 + k*qty) for a
// buy, down by (1 - k*qty) for a sell. The impact is linear in quantity, not
// compounded per unit. The result is rounded to cents and clamped to the
// floor so a price can never reach zero. Returns the new price.
func (b *Book) ApplyImpact(id string, qty int64, side Side) (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.prices[id]
	if !ok {
		return 0, fmt.Errorf("creator %q: %w", id, ErrNotListed)
	}

	factor := 1 + b.k*float64(qty)
	if side == Sell {
		factor = 1 - b.k*float64(qty)
	}

	next := round2(p * factor)
	if next < b.floor {
		next = b.floor
	}
	b.prices[id] = next
	return next, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
