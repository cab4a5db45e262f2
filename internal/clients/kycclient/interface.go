package kycclient

import "context"

type KycInterface interface {
	// IsVerified reports whether the account passed verification. Set by a
	// designated verifier role on the registry side; consulted only at
	// conversion time.
	IsVerified(ctx context.Context, account string) (bool, error)
}
