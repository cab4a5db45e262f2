package tokenclient

import "context"

// TokenInterface is the capability set of one external token ledger. The
// minter is registered as the sole authorized issuer of the reserve token;
// the funding ledger is the sole authorized issuer of the claim and equity
// tokens. Transfers out of a third-party account rely on a pull
// authorization the account holder granted on the ledger side.
type TokenInterface interface {
	BalanceOf(ctx context.Context, account string) (uint64, error)
	Transfer(ctx context.Context, from, to string, amount uint64) error
	Issue(ctx context.Context, to string, amount uint64) error
	Destroy(ctx context.Context, from string, amount uint64) error
}
