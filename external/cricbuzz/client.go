package cricbuzz

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/debashish967/cricbuzz-dashboard/internal/domain/livefeed"
	"github.com/debashish967/cricbuzz-dashboard/internal/platform/logging"
	"github.com/debashish967/cricbuzz-dashboard/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "https://cricbuzz-cricket.p.rapidapi.com"
	DefaultHost    = "cricbuzz-cricket.p.rapidapi.com"
	DefaultTimeout = 20 * time.Second

	liveMatchesPath   = "/matches/v1/live"
	maxResponseBytes  = 8 << 20
	rejectedBodyBytes = 4 << 10

	headerHost = "x-rapidapi-host"
	headerKey  = "x-rapidapi-key"
)

// Strings are copied out of the input because the body buffer is pooled.
var feedDecoder = sonic.Config{UseNumber: true, CopyString: true}.Froze()

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Host       string
	APIKey     string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client calls the RapidAPI Cricbuzz live matches endpoint. It makes exactly
// one attempt per call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		// the caller may share its client; set the timeout on a copy
		withTimeout := *httpClient
		withTimeout.Timeout = timeout
		httpClient = &withTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = DefaultHost
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		host:       host,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		logger:     logger,
	}
}

// FetchLiveMatches returns the current live-matches document. Errors wrap
// usecase.ErrDependencyUnavailable (network or timeout),
// usecase.ErrUpstreamRejected (non-2xx) or usecase.ErrUpstreamMalformed.
func (c *Client) FetchLiveMatches(ctx context.Context) (livefeed.Document, error) {
	if c.apiKey == "" {
		return livefeed.Document{}, crerr.WithHint(
			crerr.Wrap(usecase.ErrNotConfigured, "cricbuzz api key is missing"),
			"set RAPIDAPI_KEY or add it to the secrets file",
		)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := c.get(ctx, liveMatchesPath, buf); err != nil {
		c.logger.WarnContext(ctx, "cricbuzz request failed", "path", liveMatchesPath, "error", err)
		return livefeed.Document{}, err
	}

	var root map[string]any
	if err := feedDecoder.Unmarshal(buf.B, &root); err != nil {
		return livefeed.Document{}, crerr.Wrapf(usecase.ErrUpstreamMalformed, "decode live matches payload: %s", c.sanitize(err.Error()))
	}
	if root == nil {
		return livefeed.Document{}, crerr.Wrap(usecase.ErrUpstreamMalformed, "live matches payload is empty")
	}

	return livefeed.NewDocument(root), nil
}

func (c *Client) get(ctx context.Context, path string, dst *bytebufferpool.ByteBuffer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set(headerHost, c.host)
	req.Header.Set(headerKey, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return crerr.Wrapf(usecase.ErrDependencyUnavailable, "request timed out after %s", c.httpClient.Timeout)
		}
		return crerr.Wrapf(usecase.ErrDependencyUnavailable, "send request: %s", c.sanitize(err.Error()))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// body is only an excerpt for the error detail; a failed read leaves it partial
		_, _ = dst.ReadFrom(io.LimitReader(resp.Body, rejectedBodyBytes))
		rejected := crerr.WithDetailf(
			crerr.Wrapf(usecase.ErrUpstreamRejected, "provider status=%d", resp.StatusCode),
			"body=%s", c.sanitize(abbreviateBody(dst.B)),
		)
		if hint := statusHint(resp.StatusCode); hint != "" {
			rejected = crerr.WithHint(rejected, hint)
		}
		return rejected
	}

	n, err := dst.ReadFrom(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return crerr.Wrapf(usecase.ErrDependencyUnavailable, "read response body: %s", c.sanitize(err.Error()))
	}
	if n > maxResponseBytes {
		return crerr.Wrapf(usecase.ErrUpstreamMalformed, "payload exceeds %d bytes", maxResponseBytes)
	}

	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func statusHint(status int) string {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "check that RAPIDAPI_KEY is valid and subscribed to the Cricbuzz API"
	case http.StatusTooManyRequests:
		return "the RapidAPI quota is exhausted; try again later"
	default:
		return ""
	}
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return value
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
