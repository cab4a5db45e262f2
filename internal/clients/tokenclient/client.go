package tokenclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/terracore-io/reserve-ledger/internal/clients/client"
)

const (
	balanceEndpoint  = "/v1/accounts/{account}/balance"
	transferEndpoint = "/v1/transfers"
	issueEndpoint    = "/v1/issue"
	destroyEndpoint  = "/v1/destroy"
)

type Client struct {
	httpClient *http.Client
	name       string
	baseURL    string
	timeout    time.Duration
}

// NewClient builds a client for one token ledger; name labels its metrics
// ("payment", "reserve", "claim", "equity").
func NewClient(name, baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{},
		name:       name,
		baseURL:    baseURL,
		timeout:    timeout,
	}
}

func (c *Client) GetBaseURL() string {
	return c.baseURL
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) BalanceOf(ctx context.Context, account string) (uint64, error) {
	type empty struct{}
	type balanceResponse struct {
		Account string `json:"account"`
		Balance uint64 `json:"balance"`
	}

	opts := &client.HttpClientOptions{
		Path:         fmt.Sprintf("/v1/accounts/%s/balance", url.PathEscape(account)),
		TemplatePath: balanceEndpoint,
	}

	resp, err := client.SendRequest[empty, balanceResponse](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s token balance of %q: %w", c.name, account, err)
	}

	return resp.Balance, nil
}

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

type issueRequest struct {
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

type destroyRequest struct {
	From   string `json:"from"`
	Amount uint64 `json:"amount"`
}

type ack struct {
	TxID string `json:"tx_id"`
}

// Transfer moves tokens between accounts. Mutations are deliberately not
// retried: a timed-out transfer may have landed, and replaying it would
// double-spend. The caller treats any error as a whole-operation abort.
func (c *Client) Transfer(ctx context.Context, from, to string, amount uint64) error {
	opts := &client.HttpClientOptions{
		Path:         transferEndpoint,
		TemplatePath: transferEndpoint,
	}

	req := &transferRequest{From: from, To: to, Amount: amount}
	if _, err := client.SendRequest[transferRequest, ack](ctx, c, http.MethodPost, opts, req); err != nil {
		return fmt.Errorf("failed to transfer %d %s tokens from %q to %q: %w", amount, c.name, from, to, err)
	}

	return nil
}

func (c *Client) Issue(ctx context.Context, to string, amount uint64) error {
	opts := &client.HttpClientOptions{
		Path:         issueEndpoint,
		TemplatePath: issueEndpoint,
	}

	req := &issueRequest{To: to, Amount: amount}
	if _, err := client.SendRequest[issueRequest, ack](ctx, c, http.MethodPost, opts, req); err != nil {
		return fmt.Errorf("failed to issue %d %s tokens to %q: %w", amount, c.name, to, err)
	}

	return nil
}

func (c *Client) Destroy(ctx context.Context, from string, amount uint64) error {
	opts := &client.HttpClientOptions{
		Path:         destroyEndpoint,
		TemplatePath: destroyEndpoint,
	}

	req := &destroyRequest{From: from, Amount: amount}
	if _, err := client.SendRequest[destroyRequest, ack](ctx, c, http.MethodPost, opts, req); err != nil {
		return fmt.Errorf("failed to destroy %d %s tokens of %q: %w", amount, c.name, from, err)
	}

	return nil
}
