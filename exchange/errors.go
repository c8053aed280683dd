package exchange

import "errors"

// Every rejection an order can receive. All are final, caller-facing
// outcomes; a rejected order leaves the account and the price book untouched.
var (
	ErrUnknownToken         = errors.New("token not found")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientHoldings = errors.New("insufficient holdings")
)
