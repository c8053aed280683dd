package exchange

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/RayyanDarugar/Pulse/catalog"
	"github.com/RayyanDarugar/Pulse/journal"
)

type testJournal struct {
	fills    []journal.FillRecord
	balances []journal.BalanceSnapshot
	closed   bool
}

func (j *testJournal) RecordFill(rec journal.FillRecord) error {
	j.fills = append(j.fills, rec)
	return nil
}

func (j *testJournal) RecordBalance(rec journal.BalanceSnapshot) error {
	j.balances = append(j.balances, rec)
	return nil
}

func (j *testJournal) Close() error {
	j.closed = true
	return nil
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Creator{
		{ID: "c1", Name: "Maya Lin", Handle: "@mayamakes", InitialTokenPrice: 10.00, TokenSupply: 100_000},
		{ID: "c2", Name: "Jonas Park", Handle: "@jonaseats", InitialTokenPrice: 4.50, TokenSupply: 250_000},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

func newTestEngine(t *testing.T, balance float64, holdings map[string]int64) (*Engine, *testJournal) {
	t.Helper()
	j := &testJournal{}
	e, err := NewEngine(testCatalog(t), Account{
		ID:        "DEMO-001",
		Balance:   balance,
		Portfolio: holdings,
	}, j, DefaultPolicy())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e, j
}

func buy(t *testing.T, e *Engine, cid string, qty int64) Fill {
	t.Helper()
	fill, err := e.Buy(cid, qty)
	if err != nil {
		t.Fatalf("buy %s x%d: %v", cid, qty, err)
	}
	return fill
}

func sell(t *testing.T, e *Engine, cid string, qty int64) Fill {
	t.Helper()
	fill, err := e.Sell(cid, qty)
	if err != nil {
		t.Fatalf("sell %s x%d: %v", cid, qty, err)
	}
	return fill
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestBuyAppliesCostFeeAndImpact(t *testing.T) {
	e, _ := newTestEngine(t, 1000, nil)

	fill := buy(t, e, "c1", 10)

	// 10 tokens at $10.00 plus 1% fee
	if !approxEqual(fill.Total, 101.00, 1e-9) {
		t.Fatalf("total mismatch: got %.6f want 101.00", fill.Total)
	}
	if !approxEqual(fill.Balance, 899.00, 1e-9) {
		t.Fatalf("balance mismatch: got %.6f want 899.00", fill.Balance)
	}
	if fill.Portfolio["c1"] != 10 {
		t.Fatalf("portfolio mismatch: got %d want 10", fill.Portfolio["c1"])
	}
	// impact: 10.00 * (1 + 0.0001*10) = 10.01
	if !approxEqual(fill.Price, 10.01, 1e-9) {
		t.Fatalf("price after buy: got %.6f want 10.01", fill.Price)
	}

	quote, err := e.Quote("c1")
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if !approxEqual(quote, 10.01, 1e-9) {
		t.Fatalf("stored quote: got %.6f want 10.01", quote)
	}
}

func TestSellCreditsProceedsAndDecreasesPrice(t *testing.T) {
	e, _ := newTestEngine(t, 1000, nil)

	buy(t, e, "c1", 10)
	fill := sell(t, e, "c1", 5)

	// proceeds = 5 * 10.01 * 0.99
	wantProceeds := 5 * 10.01 * 0.99
	if !approxEqual(fill.Total, wantProceeds, 1e-9) {
		t.Fatalf("proceeds mismatch: got %.6f want %.6f", fill.Total, wantProceeds)
	}
	if !approxEqual(fill.Balance, 899.00+wantProceeds, 1e-9) {
		t.Fatalf("balance mismatch: got %.6f", fill.Balance)
	}
	if fill.Portfolio["c1"] != 5 {
		t.Fatalf("portfolio mismatch: got %d want 5", fill.Portfolio["c1"])
	}
	// impact: 10.01 * (1 - 0.0001*5) = 10.004995, rounded to 10.00
	if !approxEqual(fill.Price, 10.00, 1e-9) {
		t.Fatalf("price after sell: got %.6f want 10.00", fill.Price)
	}
}

func TestSellingOutDeletesPortfolioEntry(t *testing.T) {
	e, _ := newTestEngine(t, 1000, nil)

	buy(t, e, "c1", 10)
	sell(t, e, "c1", 10)

	acct := e.Account()
	if _, held := acct.Portfolio["c1"]; held {
		t.Fatalf("zero-quantity entry should be deleted, got %v", acct.Portfolio)
	}
}

func TestBuyUnknownTokenRejected(t *testing.T) {
	e, j := newTestEngine(t, 1000, nil)

	_, err := e.Buy("nope", 1)
	if !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("want ErrUnknownToken, got %v", err)
	}

	acct := e.Account()
	if !approxEqual(acct.Balance, 1000, 1e-9) || len(acct.Portfolio) != 0 {
		t.Fatalf("rejected buy mutated state: %+v", acct)
	}
	if len(j.fills) != 0 {
		t.Fatalf("rejected buy was journaled")
	}
}

func TestBuyInvalidQuantityRejected(t *testing.T) {
	e, _ := newTestEngine(t, 1000, nil)

	for _, qty := range []int64{0, -3} {
		if _, err := e.Buy("c1", qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("qty %d: want ErrInvalidQuantity, got %v", qty, err)
		}
	}
}

func TestBuyInsufficientFundsRejected(t *testing.T) {
	e, _ := newTestEngine(t, 5, nil)

	_, err := e.Buy("c1", 100)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}

	acct := e.Account()
	if !approxEqual(acct.Balance, 5, 1e-9) {
		t.Fatalf("balance changed on rejection: %.6f", acct.Balance)
	}
	quote, _ := e.Quote("c1")
	if !approxEqual(quote, 10.00, 1e-9) {
		t.Fatalf("price changed on rejection: %.6f", quote)
	}
}

func TestSellInsufficientHoldingsRejected(t *testing.T) {
	e, _ := newTestEngine(t, 1000, nil)

	_, err := e.Sell("c1", 1)
	if !errors.Is(err, ErrInsufficientHoldings) {
		t.Fatalf("want ErrInsufficientHoldings, got %v", err)
	}

	// Oversell with an existing, smaller position.
	buy(t, e, "c1", 3)
	before := e.Account()
	quoteBefore, _ := e.Quote("c1")

	_, err = e.Sell("c1", 4)
	if !errors.Is(err, ErrInsufficientHoldings) {
		t.Fatalf("want ErrInsufficientHoldings, got %v", err)
	}

	after := e.Account()
	quoteAfter, _ := e.Quote("c1")
	if !approxEqual(before.Balance, after.Balance, 1e-9) ||
		before.Portfolio["c1"] != after.Portfolio["c1"] ||
		!approxEqual(quoteBefore, quoteAfter, 1e-9) {
		t.Fatalf("rejected sell mutated state: before %+v after %+v", before, after)
	}
}

func TestSellInvalidQuantityRejected(t *testing.T) {
	e, _ := newTestEngine(t, 1000, map[string]int64{"c1": 10})

	if _, err := e.Sell("c1", 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("want ErrInvalidQuantity, got %v", err)
	}
}

func TestRoundTripLosesTheFee(t *testing.T) {
	e, _ := newTestEngine(t, 1000, nil)

	buy(t, e, "c1", 10)
	fill := sell(t, e, "c1", 10)

	// The fee is charged both ways and never refunded.
	if fill.Balance >= 1000 {
		t.Fatalf("round trip should cost money: balance %.6f", fill.Balance)
	}
}

func TestBalanceNeverGoesNegative(t *testing.T) {
	e, _ := newTestEngine(t, 200, nil)

	// Alternate buys and sells until a buy no longer fits.
	for i := 0; i < 50; i++ {
		if _, err := e.Buy("c1", 2); err != nil && !errors.Is(err, ErrInsufficientFunds) {
			t.Fatalf("buy: %v", err)
		}
		if i%3 == 0 {
			if _, err := e.Sell("c1", 1); err != nil && !errors.Is(err, ErrInsufficientHoldings) {
				t.Fatalf("sell: %v", err)
			}
		}

		acct := e.Account()
		if acct.Balance < 0 {
			t.Fatalf("balance went negative: %.6f", acct.Balance)
		}
		for cid, qty := range acct.Portfolio {
			if qty <= 0 {
				t.Fatalf("non-positive holding observable: %s=%d", cid, qty)
			}
		}
	}
}

func TestPriceStaysPositiveUnderHeavySelling(t *testing.T) {
	e, _ := newTestEngine(t, 1_000_000, map[string]int64{"c2": 200_000})

	for i := 0; i < 60; i++ {
		if _, err := e.Sell("c2", 3000); err != nil {
			break
		}
		quote, err := e.Quote("c2")
		if err != nil {
			t.Fatalf("quote: %v", err)
		}
		if quote <= 0 {
			t.Fatalf("price dropped to %.6f after %d sells", quote, i+1)
		}
	}
}

func TestHistoryEndsAtLiveQuote(t *testing.T) {
	e, _ := newTestEngine(t, 1000, nil)
	buy(t, e, "c1", 10)

	points, err := e.History("c1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(points) != 169 {
		t.Fatalf("want 169 points, got %d", len(points))
	}

	quote, _ := e.Quote("c1")
	last := points[len(points)-1]
	if !approxEqual(last.Price, quote, 1e-9) {
		t.Fatalf("last point %.6f != live quote %.6f", last.Price, quote)
	}
	for i, p := range points {
		if p.Price <= 0 {
			t.Fatalf("point %d not positive: %.6f", i, p.Price)
		}
		if i > 0 && !p.Time.After(points[i-1].Time) {
			t.Fatalf("timestamps not increasing at %d", i)
		}
	}

	if _, err := e.History("nope"); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("want ErrUnknownToken, got %v", err)
	}
}

func TestFillsAndBalancesAreJournaled(t *testing.T) {
	e, j := newTestEngine(t, 1000, nil)

	fill := buy(t, e, "c1", 10)
	sell(t, e, "c1", 5)

	if len(j.fills) != 2 || len(j.balances) != 2 {
		t.Fatalf("want 2 fills + 2 balances, got %d/%d", len(j.fills), len(j.balances))
	}
	if j.fills[0].FillID != fill.ID || j.fills[0].Side != "buy" || j.fills[0].Quantity != 10 {
		t.Fatalf("fill record mismatch: %+v", j.fills[0])
	}
	// After the sell: 5 tokens at the post-sell quote of $10.00.
	if !approxEqual(j.balances[1].PortfolioValue, 50.00, 1e-9) {
		t.Fatalf("portfolio value mismatch: %.6f", j.balances[1].PortfolioValue)
	}
	if j.balances[1].Positions != 1 {
		t.Fatalf("positions mismatch: %d", j.balances[1].Positions)
	}
}

func TestAccountSnapshotIsDetached(t *testing.T) {
	e, _ := newTestEngine(t, 1000, nil)
	buy(t, e, "c1", 10)

	snap := e.Account()
	snap.Portfolio["c1"] = 999_999

	if e.Account().Portfolio["c1"] != 10 {
		t.Fatalf("snapshot mutation leaked into engine state")
	}
}

func TestConcurrentBuysCannotBothSpendTheBalance(t *testing.T) {
	// Balance covers exactly one 10-token buy ($101.00) with change to
	// spare, but never two.
	e, _ := newTestEngine(t, 150, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.Buy("c1", 10)
		}(i)
	}
	wg.Wait()

	var ok, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrInsufficientFunds):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || rejected != 1 {
		t.Fatalf("want exactly one fill and one rejection, got %d/%d", ok, rejected)
	}

	acct := e.Account()
	if acct.Balance < 0 {
		t.Fatalf("balance went negative: %.6f", acct.Balance)
	}
	if acct.Portfolio["c1"] != 10 {
		t.Fatalf("portfolio mismatch: %d", acct.Portfolio["c1"])
	}
}

func TestNewEngineRejectsBadPortfolio(t *testing.T) {
	cat := testCatalog(t)

	_, err := NewEngine(cat, Account{ID: "A", Balance: 100, Portfolio: map[string]int64{"ghost": 5}}, nil, DefaultPolicy())
	if err == nil {
		t.Fatal("want error for uncataloged holding")
	}

	_, err = NewEngine(cat, Account{ID: "A", Balance: 100, Portfolio: map[string]int64{"c1": 0}}, nil, DefaultPolicy())
	if err == nil {
		t.Fatal("want error for zero holding")
	}
}

func TestNewEngineRejectsBadPolicy(t *testing.T) {
	cat := testCatalog(t)

	bad := []Policy{
		{FeeRate: -0.01, ImpactPerUnit: 0.0001, MinPrice: 0.01},
		{FeeRate: 1, ImpactPerUnit: 0.0001, MinPrice: 0.01},
		{FeeRate: 0.01, ImpactPerUnit: -0.0001, MinPrice: 0.01},
		{FeeRate: 0.01, ImpactPerUnit: 0.0001, MinPrice: 0},
	}
	for i, pol := range bad {
		if _, err := NewEngine(cat, Account{ID: "A", Balance: 100}, nil, pol); err == nil {
			t.Fatalf("policy %d: want validation error, got nil", i)
		}
	}
}

func TestZeroFeeAndZeroImpactStick(t *testing.T) {
	// A free, impact-less market is a legal policy; zero must not fall
	// back to the defaults.
	e, err := NewEngine(testCatalog(t), Account{ID: "DEMO-001", Balance: 1000},
		nil, Policy{FeeRate: 0, ImpactPerUnit: 0, MinPrice: 0.01})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	fill := buy(t, e, "c1", 10)
	if fill.Fee != 0 {
		t.Fatalf("zero-fee buy charged a fee: %.6f", fill.Fee)
	}
	if !approxEqual(fill.Total, 100.00, 1e-9) {
		t.Fatalf("total mismatch: got %.6f want 100.00", fill.Total)
	}
	if !approxEqual(fill.Balance, 900.00, 1e-9) {
		t.Fatalf("balance mismatch: got %.6f want 900.00", fill.Balance)
	}
	if !approxEqual(fill.Price, 10.00, 1e-9) {
		t.Fatalf("zero-impact buy moved the quote: %.6f", fill.Price)
	}

	fill = sell(t, e, "c1", 10)
	if fill.Fee != 0 {
		t.Fatalf("zero-fee sell charged a fee: %.6f", fill.Fee)
	}
	if !approxEqual(fill.Balance, 1000.00, 1e-9) {
		t.Fatalf("fee-free round trip should conserve cash: %.6f", fill.Balance)
	}
}
