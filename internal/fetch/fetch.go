package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// FetchError reports a network failure or a non-2xx response.
type FetchError struct {
	URL        string
	StatusCode int // Zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Response is a fetched body with the metadata needed to decode it.
type Response struct {
	URL         string // Final URL after redirects
	ContentType string
	Body        []byte
}

// Client issues single GET requests. It never retries; callers that need
// resilience wrap it.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
	// MaxRedirects caps redirect following. Zero means default (5).
	MaxRedirects int
	// MaxBytes caps the body size. Zero means unlimited.
	MaxBytes int64
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone to attach our redirect policy without mutating caller's client.
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirect
		return &base
	}
	return &http.Client{Timeout: c.Timeout, CheckRedirect: c.checkRedirect}
}

// Get retrieves rawURL. Any transport error, non-2xx status, or oversized
// body is returned as a *FetchError.
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	fail := func(status int, err error) (*Response, error) {
		return nil, &FetchError{URL: rawURL, StatusCode: status, Err: err}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fail(0, fmt.Errorf("parse url: %w", err))
	}
	if !isHTTPScheme(u) {
		return fail(0, fmt.Errorf("unsupported URL scheme: %q", u.Scheme))
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fail(0, fmt.Errorf("new request: %w", err))
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, errors.New(http.StatusText(resp.StatusCode)))
	}

	var body io.Reader = resp.Body
	if c.MaxBytes > 0 {
		body = io.LimitReader(resp.Body, c.MaxBytes+1)
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return fail(resp.StatusCode, fmt.Errorf("read body: %w", err))
	}
	if c.MaxBytes > 0 && int64(len(b)) > c.MaxBytes {
		return fail(resp.StatusCode, fmt.Errorf("body exceeds %d bytes", c.MaxBytes))
	}

	return &Response{
		URL:         resp.Request.URL.String(),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        b,
	}, nil
}

func (c *Client) checkRedirect(req *http.Request, via []*http.Request) error {
	max := c.MaxRedirects
	if max <= 0 {
		max = 5
	}
	if len(via) >= max {
		return errors.New("too many redirects")
	}
	if !isHTTPScheme(req.URL) {
		return errors.New("redirect to unsupported scheme")
	}
	return nil
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
