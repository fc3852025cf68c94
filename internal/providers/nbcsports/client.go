package nbcsports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/CobSammich/nba-scores-cli/internal/dates"
)

const (
	BaseURL          = "https://scores.nbcsports.com"
	DefaultUserAgent = "Mozilla/5.0 (compatible; nba-scores/1.0)"
	DefaultTimeout   = 15 * time.Second

	// Scoreboard pages are well under this; anything larger is not the page
	DefaultMaxPageBytes = 8 << 20
)

// ErrPageTooLarge is returned when a page exceeds the configured size limit
var ErrPageTooLarge = errors.New("scoreboard page too large")

// Client fetches scoreboard pages
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxBytes   int64
}

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	MaxPageBytes int64
}

// New creates a new scoreboard page client
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = BaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxPageBytes <= 0 {
		opts.MaxPageBytes = DefaultMaxPageBytes
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		userAgent: opts.UserAgent,
		maxBytes:  opts.MaxPageBytes,
	}
}

// ScoreboardURL returns the page URL for a league path and day
func (c *Client) ScoreboardURL(path string, day time.Time) string {
	q := url.Values{}
	q.Set("day", dates.PageDay(day))
	return fmt.Sprintf("%s/%s?%s", c.baseURL, strings.TrimLeft(path, "/"), q.Encode())
}

// FetchScoreboard fetches the raw scoreboard page for a day
func (c *Client) FetchScoreboard(ctx context.Context, path string, day time.Time) ([]byte, error) {
	return c.fetch(ctx, c.ScoreboardURL(path, day))
}

// fetch makes an HTTP GET request and returns the body
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("scoreboard page error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	// One byte past the limit tells a full page from a truncated one
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("%w: over %d bytes", ErrPageTooLarge, c.maxBytes)
	}

	return body, nil
}
