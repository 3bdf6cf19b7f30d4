package chainapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"digiplay-sdk/config"
	"digiplay-sdk/internal/core/domain"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the chain node's REST API. It implements
// ports.BroadcastTransport, ports.EventSource and ports.HealthChecker.
// Event fetches and pings are bounded by the configured request timeout;
// broadcast deadlines are the broadcaster's concern (it applies the request
// timeout per attempt via context).
type Client struct {
	baseURL    string
	network    string
	timeout    time.Duration
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a chain API client. httpClient may be nil, in which case
// a default net/http client is used.
func NewClient(cfg config.APIConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		network:    cfg.Network,
		timeout:    cfg.RequestTimeout,
		httpClient: httpClient,
		log:        log,
	}
}

// withTimeout bounds ctx with the configured request timeout, if any.
func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return ctx, func() {}
}

// Submit POSTs the signed record to {base}/broadcast and parses the JSON
// acknowledgment. Network errors, non-2xx responses and malformed bodies
// are all returned as errors; each call is one independent attempt.
func (c *Client) Submit(ctx context.Context, record domain.TransactionRecord) (*domain.RemoteResult, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding transaction: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/broadcast", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building broadcast request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Network", c.network)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submitting transaction: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading broadcast response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("broadcast endpoint returned HTTP %d: %s", resp.StatusCode, truncate(raw, 256))
	}

	var result domain.RemoteResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("parsing broadcast response: %w", err)
	}
	result.Raw = raw

	c.log.Debug().Str("txid", result.TxID).Str("status", result.Status).Msg("broadcast accepted by node")
	return &result, nil
}

// eventsResponse is the wire shape of GET {base}/events.
type eventsResponse struct {
	Events     []domain.BlockchainEvent `json:"events"`
	NextCursor string                   `json:"next_cursor"`
}

// FetchEvents GETs the next batch of events after cursor. The returned
// cursor equals the input when the node produced no new events. Each fetch
// is bounded by the request timeout so a hung node cannot stall the caller's
// poll loop past its stop signal.
func (c *Client) FetchEvents(ctx context.Context, cursor string) ([]domain.BlockchainEvent, string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	endpoint := c.baseURL + "/events"
	if cursor != "" {
		endpoint += "?cursor=" + url.QueryEscape(cursor)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, cursor, fmt.Errorf("building events request: %w", err)
	}
	req.Header.Set("X-Network", c.network)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, cursor, fmt.Errorf("fetching events: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cursor, fmt.Errorf("reading events response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, cursor, fmt.Errorf("events endpoint returned HTTP %d: %s", resp.StatusCode, truncate(raw, 256))
	}

	var parsed eventsResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, cursor, fmt.Errorf("parsing events response: %w", err)
	}

	next := parsed.NextCursor
	if next == "" {
		next = cursor
	}
	return parsed.Events, next, nil
}

// Ping checks node connectivity via GET {base}/health, bounded by the
// request timeout.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("chain API health returned HTTP %d", resp.StatusCode)
	}
	return nil
}

// Name returns the dependency name.
func (c *Client) Name() string {
	return "chain-api"
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
