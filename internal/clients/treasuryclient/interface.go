package treasuryclient

import "context"

type TreasuryInterface interface {
	// RouteFunds asks the router to split amount across its three fixed
	// destinations. The router consumes the amount from the caller's
	// payment balance through a pull transfer the caller pre-authorized.
	RouteFunds(ctx context.Context, amount uint64) error
}
