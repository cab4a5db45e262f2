package oracleclient

import "context"

// PriceDecimals is the fixed-point scale of the oracle quote: the price of
// one whole reserve token in payment currency, times 10^8.
const PriceDecimals = 8

type OracleInterface interface {
	// CurrentPrice returns the current commodity price. A zero value or an
	// error must abort any operation depending on it; quotes go stale and
	// execution-time re-validation is the caller's job.
	CurrentPrice(ctx context.Context) (uint64, error)
}
