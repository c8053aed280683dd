package exchange

// Account is the single demo user's cash balance and holdings. Portfolio
// maps creator id to quantity held; entries are removed when they reach
// zero, never stored at zero or below.
type Account struct {
	ID        string
	Balance   float64
	Portfolio map[string]int64
}

// Snapshot deep-copies the account so callers cannot mutate engine state
// behind the executor's back.
func (a Account) Snapshot() Account {
	return Account{
		ID:        a.ID,
		Balance:   a.Balance,
		Portfolio: copyPortfolio(a.Portfolio),
	}
}

func copyPortfolio(p map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(p))
	for id, qty := range p {
		out[id] = qty
	}
	return out
}
