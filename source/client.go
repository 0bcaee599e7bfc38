// Package source downloads published spreadsheet exports.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxBytes caps a single export download.
	DefaultMaxBytes = 8 << 20
	DefaultTimeout  = 30 * time.Second

	maxParallelFetches = 4
	errorBodyLimit     = 4096
)

// ErrTooLarge is returned when an export exceeds the configured size cap.
var ErrTooLarge = errors.New("response exceeds size limit")

// Fetcher retrieves the text of one published export.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientConfig struct {
	UserAgent  string
	Timeout    time.Duration
	MaxBytes   int64
	HTTPClient httpDoer
}

type HTTPClient struct {
	userAgent  string
	maxBytes   int64
	httpClient httpDoer
}

func NewClient(cfg ClientConfig) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: timeout}
	}

	return &HTTPClient{
		userAgent:  strings.TrimSpace(cfg.UserAgent),
		maxBytes:   maxBytes,
		httpClient: doer,
	}
}

// Fetch downloads rawURL and returns the body as text. Any non-2xx status is
// an error carrying the status and the start of the body.
func (c *HTTPClient) Fetch(ctx context.Context, rawURL string) (string, error) {
	target, err := parseURL(rawURL)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("create request GET %s: %w", target, err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request GET %s failed: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return "", fmt.Errorf(
			"request GET %s failed with status %d: %s",
			target,
			resp.StatusCode,
			strings.TrimSpace(string(responseBody)),
		)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read response GET %s: %w", target, err)
	}
	if int64(len(body)) > c.maxBytes {
		return "", fmt.Errorf("read response GET %s: %w (%d bytes)", target, ErrTooLarge, c.maxBytes)
	}
	return string(body), nil
}

func parseURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", errors.New("source URL is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("invalid source URL %q", rawURL)
	}
	return parsed.String(), nil
}

// Result is the outcome of fetching one URL.
type Result struct {
	URL  string
	Body string
	Err  error
}

// FetchAll downloads every URL concurrently. Results keep the order of urls;
// a failing URL records its error without cancelling the others.
func FetchAll(ctx context.Context, fetcher Fetcher, urls []string) []Result {
	results := make([]Result, len(urls))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallelFetches)
	for i, rawURL := range urls {
		group.Go(func() error {
			body, err := fetcher.Fetch(groupCtx, rawURL)
			results[i] = Result{URL: rawURL, Body: body, Err: err}
			return nil
		})
	}
	_ = group.Wait()

	return results
}

// Failed counts results carrying an error.
func Failed(results []Result) int {
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	return failed
}
