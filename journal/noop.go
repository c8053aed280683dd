package journal

// Noop discards every record. Useful for callers that only want the engine.
type Noop struct{}

func (Noop) RecordFill(FillRecord) error         { return nil }
func (Noop) RecordBalance(BalanceSnapshot) error { return nil }
func (Noop) Close() error                        { return nil }
