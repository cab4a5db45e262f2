package treasuryclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/terracore-io/reserve-ledger/internal/clients/client"
	"github.com/terracore-io/reserve-ledger/internal/config"
	"github.com/terracore-io/reserve-ledger/internal/observability/metrics"
)

const routeEndpoint = "/v1/route"

type Client struct {
	httpClient *http.Client
	cfg        *config.TreasuryConfig
}

func NewClient(cfg *config.TreasuryConfig) *Client {
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

// RouteFunds is a mutation and is not retried; see tokenclient.Transfer.
func (c *Client) RouteFunds(ctx context.Context, amount uint64) error {
	type routeRequest struct {
		Amount uint64 `json:"amount"`
	}
	type routeResponse struct {
		TxID string `json:"tx_id"`
	}

	opts := &client.HttpClientOptions{
		Path:         routeEndpoint,
		TemplatePath: routeEndpoint,
	}

	startTime := time.Now()
	_, err := client.SendRequest[routeRequest, routeResponse](ctx, c, http.MethodPost, opts, &routeRequest{Amount: amount})
	metrics.RecordTreasuryClientLatency(time.Since(startTime), "RouteFunds", err != nil)
	if err != nil {
		return fmt.Errorf("failed to route %d to treasury: %w", amount, err)
	}

	return nil
}
