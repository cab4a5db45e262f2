package tokenclient

import (
	"context"
	"time"

	"github.com/terracore-io/reserve-ledger/internal/observability/metrics"
)

type tokenClientWithMetrics struct {
	token TokenInterface
	name  string
}

func NewTokenClientWithMetrics(token *Client) TokenInterface {
	return &tokenClientWithMetrics{token: token, name: token.Name()}
}

func (t *tokenClientWithMetrics) BalanceOf(ctx context.Context, account string) (uint64, error) {
	return runTokenClientMethodWithMetrics(t.name, "BalanceOf", func() (uint64, error) {
		return t.token.BalanceOf(ctx, account)
	})
}

func (t *tokenClientWithMetrics) Transfer(ctx context.Context, from, to string, amount uint64) error {
	return runTokenClientMethodErrWithMetrics(t.name, "Transfer", func() error {
		return t.token.Transfer(ctx, from, to, amount)
	})
}

func (t *tokenClientWithMetrics) Issue(ctx context.Context, to string, amount uint64) error {
	return runTokenClientMethodErrWithMetrics(t.name, "Issue", func() error {
		return t.token.Issue(ctx, to, amount)
	})
}

func (t *tokenClientWithMetrics) Destroy(ctx context.Context, from string, amount uint64) error {
	return runTokenClientMethodErrWithMetrics(t.name, "Destroy", func() error {
		return t.token.Destroy(ctx, from, amount)
	})
}

func runTokenClientMethodWithMetrics[T any](token, method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	metrics.RecordTokenClientLatency(time.Since(startTime), token, method, err != nil)
	return v, err
}

func runTokenClientMethodErrWithMetrics(token, method string, f func() error) error {
	// auxiliary wrapper for methods that only return an error
	type zero struct{}
	_, err := runTokenClientMethodWithMetrics[zero](token, method, func() (zero, error) {
		return zero{}, f()
	})
	return err
}
