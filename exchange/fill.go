package exchange

import (
	"time"

	"github.com/RayyanDarugar/Pulse/journal"
	"github.com/RayyanDarugar/Pulse/pricing"
)

// Fill is the result of an accepted order.
type Fill struct {
	ID        string
	CreatorID string
	Side      pricing.Side
	Quantity  int64
	UnitPrice float64 // quote the order filled at, before impact
	Fee       float64
	Total     float64 // cash debited (buy) or credited (sell), fee included
	Price     float64 // quote after impact

	// Account state after the fill.
	Balance   float64
	Portfolio map[string]int64
	Time      time.Time
}

func (f Fill) record() journal.FillRecord {
	return journal.FillRecord{
		FillID:     f.ID,
		CreatorID:  f.CreatorID,
		Side:       string(f.Side),
		Quantity:   f.Quantity,
		UnitPrice:  f.UnitPrice,
		Fee:        f.Fee,
		Total:      f.Total,
		PriceAfter: f.Price,
		Time:       f.Time,
	}
}
