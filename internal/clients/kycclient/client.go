package kycclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/terracore-io/reserve-ledger/internal/clients/client"
	"github.com/terracore-io/reserve-ledger/internal/config"
	"github.com/terracore-io/reserve-ledger/internal/observability/metrics"
)

const verifiedEndpoint = "/v1/accounts/{account}/verified"

type Client struct {
	httpClient *http.Client
	cfg        *config.KycConfig
}

func NewClient(cfg *config.KycConfig) *Client {
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

func (c *Client) IsVerified(ctx context.Context, account string) (bool, error) {
	type empty struct{}
	type verifiedResponse struct {
		Account  string `json:"account"`
		Verified bool   `json:"verified"`
	}

	opts := &client.HttpClientOptions{
		Path:         fmt.Sprintf("/v1/accounts/%s/verified", url.PathEscape(account)),
		TemplatePath: verifiedEndpoint,
	}

	startTime := time.Now()
	resp, err := client.SendRequest[empty, verifiedResponse](ctx, c, http.MethodGet, opts, nil)
	metrics.RecordKycClientLatency(time.Since(startTime), "IsVerified", err != nil)
	if err != nil {
		return false, fmt.Errorf("failed to check verification of %q: %w", account, err)
	}

	return resp.Verified, nil
}
