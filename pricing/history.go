package pricing

import (
	"math/rand"
	"time"
)

// Default shape of a history series: hourly points over a trailing week,
// endpoints inclusive.
const (
	DefaultHistoryPoints = 169
	DefaultHistoryStep   = time.Hour
)

// PricePoint is one sample in a synthetic price series.
type PricePoint struct {
	Time  time.Time `json:"timestamp" yaml:"timestamp"`
	Price float64   `json:"price" yaml:"price"`
}

// History fabricates a price series for charting: n points ending at now,
// one step apart, each jittered within ±10% of current, with the final point
// forced to exactly current so the chart ends on the live quote.
//
// The series is display-only. It is regenerated on every call and must never
// feed back into pricing or trading.
func History(current float64, n int, step time.Duration, now time.Time) []PricePoint {
	if n <= 0 {
		return nil
	}

	points := make([]PricePoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		price := round2(current * (1 + (rand.Float64()*0.2 - 0.1)))
		if price < 0.01 {
			price = 0.01
		}
		points = append(points, PricePoint{
			Time:  now.Add(-time.Duration(i) * step),
			Price: price,
		})
	}

	points[len(points)-1].Price = current
	return points
}
