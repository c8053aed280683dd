package journal

import "time"

// FillRecord is one executed order.
type FillRecord struct {
	FillID     string
	CreatorID  string
	Side       string // "buy" or "sell"
	Quantity   int64
	UnitPrice  float64
	Fee        float64
	Total      float64 // cash debited (buy) or credited (sell), fee included
	PriceAfter float64 // quote after price impact
	Time       time.Time
}

// BalanceSnapshot captures the account after each fill.
type BalanceSnapshot struct {
	Time           time.Time
	Balance        float64
	PortfolioValue float64 // holdings marked at live prices
	Positions      int     // distinct creators held
}

type Journal interface {
	RecordFill(FillRecord) error
	RecordBalance(BalanceSnapshot) error
	Close() error
}
