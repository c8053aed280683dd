package exchange

import "fmt"

// Policy holds the tunable numbers of the exchange. Values are taken as
// given — a zero fee or zero impact is a legal market — so callers that want
// the reference numbers start from DefaultPolicy.
type Policy struct {
	// FeeRate is the platform fee charged on both sides of a trade, as a
	// fraction of notional. Must be in [0, 1).
	FeeRate float64

	// ImpactPerUnit is the linear price impact per token traded: a filled
	// order moves the quote by (1 ± ImpactPerUnit*quantity). Zero disables
	// impact.
	ImpactPerUnit float64

	// MinPrice is the floor a quote is clamped to after a sell. Must be
	// positive; it is what keeps every price above zero.
	MinPrice float64
}

func DefaultPolicy() Policy {
	return Policy{
		FeeRate:       0.01,   // 1% each way
		ImpactPerUnit: 0.0001, // 0.01% per unit
		MinPrice:      0.01,
	}
}

func (p Policy) validate() error {
	if p.FeeRate < 0 || p.FeeRate >= 1 {
		return fmt.Errorf("policy: FeeRate must be in [0, 1), got %v", p.FeeRate)
	}
	if p.ImpactPerUnit < 0 {
		return fmt.Errorf("policy: ImpactPerUnit must not be negative, got %v", p.ImpactPerUnit)
	}
	if p.MinPrice <= 0 {
		return fmt.Errorf("policy: MinPrice must be positive, got %v", p.MinPrice)
	}
	return nil
}
