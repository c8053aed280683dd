package exchange

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/RayyanDarugar/Pulse/catalog"
	"github.com/RayyanDarugar/Pulse/journal"
	"github.com/RayyanDarugar/Pulse/pkg/id"
	"github.com/RayyanDarugar/Pulse/pricing"
)

// Engine is the trade executor. It owns the account and the price book and
// serializes every order with a single mutex, so two concurrent orders can
// never both spend the same balance or read a stale quote mid-trade.
//
// Catalog reads and history generation are read-only and take no part in the
// order path.
type Engine struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	book    *pricing.Book
	acct    Account
	policy  Policy
	journal journal.Journal
}

// NewEngine seeds the price book from the catalog's initial token prices and
// adopts the given account. Every holding in the account's portfolio must
// name a cataloged creator and be positive. The policy is used exactly as
// passed; it only has to survive validation (see Policy).
func NewEngine(cat *catalog.Catalog, acct Account, j journal.Journal, pol Policy) (*Engine, error) {
	if cat == nil {
		return nil, errors.New("engine: catalog is required")
	}
	if err := pol.validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if acct.Balance < 0 {
		return nil, fmt.Errorf("engine: negative starting balance %.2f", acct.Balance)
	}
	if j == nil {
		j = journal.Noop{}
	}

	seed := make(map[string]float64, cat.Len())
	for _, cr := range cat.List() {
		seed[cr.ID] = cr.InitialTokenPrice
	}

	portfolio := make(map[string]int64, len(acct.Portfolio))
	for cid, qty := range acct.Portfolio {
		if _, err := cat.Get(cid); err != nil {
			return nil, fmt.Errorf("engine: portfolio references %w", err)
		}
		if qty <= 0 {
			return nil, fmt.Errorf("engine: portfolio holding %q must be positive, got %d", cid, qty)
		}
		portfolio[cid] = qty
	}
	acct.Portfolio = portfolio

	return &Engine{
		catalog: cat,
		book:    pricing.NewBook(seed, pol.ImpactPerUnit, pol.MinPrice),
		acct:    acct,
		policy:  pol,
		journal: j,
	}, nil
}

// Creators lists the full catalog.
func (e *Engine) Creators() []catalog.Creator { return e.catalog.List() }

// Creator looks up one catalog entry.
func (e *Engine) Creator(cid string) (catalog.Creator, error) { return e.catalog.Get(cid) }

// Quote returns the live price for a creator's token. Unknown ids fail with
// ErrUnknownToken; there is no silent zero.
func (e *Engine) Quote(cid string) (float64, error) {
	p, err := e.book.Get(cid)
	if err != nil {
		return 0, fmt.Errorf("quote %q: %w", cid, ErrUnknownToken)
	}
	return p, nil
}

// History returns a synthetic price series for charting, ending exactly at
// the live quote. Display only.
func (e *Engine) History(cid string) ([]pricing.PricePoint, error) {
	p, err := e.book.Get(cid)
	if err != nil {
		return nil, fmt.Errorf("history %q: %w", cid, ErrUnknownToken)
	}
	return pricing.History(p, pricing.DefaultHistoryPoints, pricing.DefaultHistoryStep, time.Now()), nil
}

// Account returns a snapshot of the demo account.
func (e *Engine) Account() Account {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.acct.Snapshot()
}

// Buy fills a market buy of qty tokens at the live quote plus the platform
// fee. Validation happens before any mutation; a rejected buy changes
// nothing.
func (e *Engine) Buy(cid string, qty int64) (Fill, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	price, err := e.book.Get(cid)
	if err != nil {
		return Fill{}, fmt.Errorf("buy %q: %w", cid, ErrUnknownToken)
	}
	if qty <= 0 {
		return Fill{}, fmt.Errorf("buy %q: %w", cid, ErrInvalidQuantity)
	}

	subtotal := price * float64(qty)
	fee := subtotal * e.policy.FeeRate
	total := subtotal + fee

	if e.acct.Balance < total {
		return Fill{}, fmt.Errorf("buy %q: need %.2f, have %.2f: %w",
			cid, total, e.acct.Balance, ErrInsufficientFunds)
	}

	e.acct.Balance -= total
	e.acct.Portfolio[cid] += qty

	next, err := e.book.ApplyImpact(cid, qty, pricing.Buy)
	if err != nil {
		// The entry existed a moment ago and nothing else mutates the book.
		return Fill{}, fmt.Errorf("buy %q: %w", cid, err)
	}

	fill := Fill{
		ID:        id.New(),
		CreatorID: cid,
		Side:      pricing.Buy,
		Quantity:  qty,
		UnitPrice: price,
		Fee:       fee,
		Total:     total,
		Price:     next,
		Balance:   e.acct.Balance,
		Portfolio: copyPortfolio(e.acct.Portfolio),
		Time:      time.Now(),
	}
	return fill, e.recordLocked(fill)
}

// Sell fills a market sell of qty tokens at the live quote minus the
// platform fee. Absent holdings count as zero; partial fills do not exist.
func (e *Engine) Sell(cid string, qty int64) (Fill, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if qty <= 0 {
		return Fill{}, fmt.Errorf("sell %q: %w", cid, ErrInvalidQuantity)
	}
	if held := e.acct.Portfolio[cid]; held < qty {
		return Fill{}, fmt.Errorf("sell %q: have %d, want %d: %w",
			cid, held, qty, ErrInsufficientHoldings)
	}

	price, err := e.book.Get(cid)
	if err != nil {
		// Holdings are validated against the catalog at construction, so a
		// held token always has a quote.
		return Fill{}, fmt.Errorf("sell %q: %w", cid, ErrUnknownToken)
	}

	subtotal := price * float64(qty)
	fee := subtotal * e.policy.FeeRate
	proceeds := subtotal - fee

	e.acct.Balance += proceeds
	e.acct.Portfolio[cid] -= qty
	if e.acct.Portfolio[cid] <= 0 {
		delete(e.acct.Portfolio, cid)
	}

	next, err := e.book.ApplyImpact(cid, qty, pricing.Sell)
	if err != nil {
		return Fill{}, fmt.Errorf("sell %q: %w", cid, err)
	}

	fill := Fill{
		ID:        id.New(),
		CreatorID: cid,
		Side:      pricing.Sell,
		Quantity:  qty,
		UnitPrice: price,
		Fee:       fee,
		Total:     proceeds,
		Price:     next,
		Balance:   e.acct.Balance,
		Portfolio: copyPortfolio(e.acct.Portfolio),
		Time:      time.Now(),
	}
	return fill, e.recordLocked(fill)
}

// recordLocked journals the fill and a balance snapshot. State is already
// applied; a journal failure surfaces to the caller but does not unwind the
// trade.
func (e *Engine) recordLocked(f Fill) error {
	if err := e.journal.RecordFill(f.record()); err != nil {
		return fmt.Errorf("journal fill: %w", err)
	}

	var value float64
	for cid, qty := range e.acct.Portfolio {
		p, err := e.book.Get(cid)
		if err != nil {
			return fmt.Errorf("journal balance: %w", err)
		}
		value += p * float64(qty)
	}

	err := e.journal.RecordBalance(journal.BalanceSnapshot{
		Time:           f.Time,
		Balance:        e.acct.Balance,
		PortfolioValue: value,
		Positions:      len(e.acct.Portfolio),
	})
	if err != nil {
		return fmt.Errorf("journal balance: %w", err)
	}
	return nil
}
