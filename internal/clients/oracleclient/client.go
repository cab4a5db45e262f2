package oracleclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/terracore-io/reserve-ledger/internal/clients/client"
	"github.com/terracore-io/reserve-ledger/internal/config"
	"github.com/terracore-io/reserve-ledger/internal/observability/metrics"
)

const priceEndpoint = "/v1/price"

type Client struct {
	httpClient *http.Client
	cfg        *config.OracleConfig
}

func NewClient(cfg *config.OracleConfig) *Client {
	if cfg == nil {
		return nil
	}

	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetBaseURL() string {
	return c.cfg.URL
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *Client) CurrentPrice(ctx context.Context) (uint64, error) {
	type empty struct{}
	type priceResponse struct {
		Price     uint64 `json:"price"`
		QuotedAt  int64  `json:"quoted_at"`
		Commodity string `json:"commodity"`
	}

	callForPrice := func() (uint64, error) {
		opts := &client.HttpClientOptions{
			Path:         priceEndpoint,
			TemplatePath: priceEndpoint,
		}

		startTime := time.Now()
		resp, err := client.SendRequest[empty, priceResponse](ctx, c, http.MethodGet, opts, nil)
		metrics.RecordOracleClientLatency(time.Since(startTime), "CurrentPrice", err != nil)
		if err != nil {
			return 0, err
		}

		return resp.Price, nil
	}

	price, err := clientCallWithRetry(ctx, callForPrice, c.cfg)
	if err != nil {
		return 0, fmt.Errorf("failed to get current price: %w", err)
	}
	if price == 0 {
		return 0, fmt.Errorf("oracle returned a non-positive price")
	}

	return price, nil
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.OracleConfig,
) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("oracle call failed, retrying with exponential backoff")
		}),
		retry.RetryIf(func(err error) bool {
			// quotes are read-only, safe to retry on transient failures
			return err != nil && !strings.Contains(err.Error(), "unexpected status 4")
		}))
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
