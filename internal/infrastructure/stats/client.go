package stats

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"talent-pool/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const maxResponseBytes = 4 << 20

// Fetcher looks up provider statistics for a batch of slugs.
type Fetcher interface {
	FetchStats(ctx context.Context, slugs []string) map[string]Stat
}

type Client struct {
	baseURL string
	client  *resty.Client
	logger  *zap.Logger

	calls    atomic.Int64
	degraded atomic.Int64
}

type statsResponse struct {
	Data []Stat `json:"data"`
}

func NewClient(cfg config.StatsConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	logger = logger.Named("stats")
	return &Client{
		baseURL: strings.TrimSpace(cfg.BaseURL),
		client: resty.New().
			SetLogger(logger.Sugar()).
			SetTimeout(timeout).
			SetRetryCount(0).
			SetHeader("Accept", "application/json"),
		logger: logger,
	}
}

// FetchStats performs at most one GET for the whole batch and returns the
// results keyed by lower-cased slug. Every failure degrades to an empty map;
// the reason is logged and counted, never returned.
func (c *Client) FetchStats(ctx context.Context, slugs []string) map[string]Stat {
	param := joinSlugs(slugs)
	if param == "" {
		return map[string]Stat{}
	}
	if c == nil || c.client == nil || c.baseURL == "" {
		return map[string]Stat{}
	}

	endpoint := buildURL(c.baseURL, param)
	c.calls.Add(1)

	// Detached from the caller's cancellation; the client timeout bounds it.
	resp, err := c.client.R().
		SetContext(context.WithoutCancel(ctx)).
		SetDoNotParseResponse(true).
		Get(endpoint)
	if err != nil {
		return c.degrade("transport", endpoint, err)
	}
	raw := resp.RawBody()
	defer raw.Close()

	if resp.StatusCode() != http.StatusOK {
		return c.degrade("status", endpoint, nil, zap.Int("status", resp.StatusCode()))
	}

	var body statsResponse
	if err := json.NewDecoder(io.LimitReader(raw, maxResponseBytes)).Decode(&body); err != nil {
		return c.degrade("decode", endpoint, err)
	}
	if body.Data == nil {
		return c.degrade("decode", endpoint, nil, zap.String("detail", "missing data array"))
	}

	out := make(map[string]Stat, len(body.Data))
	for _, st := range body.Data {
		key := normalizeSlug(st.Slug)
		if key == "" {
			continue
		}
		out[key] = st
	}

	c.logger.Debug("stats fetched",
		zap.Int("requested", strings.Count(param, ",")+1),
		zap.Int("returned", len(out)),
		zap.Duration("latency", resp.Time()),
	)
	return out
}

// Calls is the number of outbound requests issued.
func (c *Client) Calls() int64 {
	if c == nil {
		return 0
	}
	return c.calls.Load()
}

// Degraded is the number of requests that fell back to an empty result.
func (c *Client) Degraded() int64 {
	if c == nil {
		return 0
	}
	return c.degraded.Load()
}

func (c *Client) degrade(reason, endpoint string, err error, fields ...zap.Field) map[string]Stat {
	c.degraded.Add(1)
	fs := append([]zap.Field{zap.String("reason", reason), zap.String("endpoint", endpoint)}, fields...)
	if err != nil {
		fs = append(fs, zap.Error(err))
	}
	c.logger.Warn("stats fetch degraded", fs...)
	return map[string]Stat{}
}

func joinSlugs(slugs []string) string {
	seen := make(map[string]struct{}, len(slugs))
	parts := make([]string, 0, len(slugs))
	for _, s := range slugs {
		s = normalizeSlug(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		parts = append(parts, url.QueryEscape(s))
	}
	return strings.Join(parts, ",")
}

func buildURL(base, param string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "slugs=" + param
}

func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var _ Fetcher = (*Client)(nil)
