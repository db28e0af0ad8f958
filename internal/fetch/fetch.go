// Package fetch retrieves single web pages for the web_fetch operation.
//
// There is no retry, no backoff and no cache: every call is an independent
// fetch whose outcome depends only on the live state of the remote page.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
)

// Document is the transient outcome of one page fetch. It lives for a
// single call and is never cached or persisted.
type Document struct {
	ContentType string
	Body        string
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Code)
}

// TimeoutError reports a fetch that exceeded its deadline. It is distinct
// from StatusError and from other network failures so callers can surface
// a categorized message.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Timeout: no response within %d seconds", int(e.Timeout.Seconds()))
}

// DefaultTimeout bounds a page fetch when the caller does not set one.
const DefaultTimeout = 10 * time.Second

// Client issues single-shot GET requests with a rotated User-Agent and a
// bounded deadline. The UA pool and picker are explicit configuration so
// tests can pin the fingerprint instead of patching process state.
type Client struct {
	HTTPClient *http.Client
	UserAgents []string
	// PickUA selects an index into UserAgents; nil uses math/rand.
	PickUA func(n int) int
	// Timeout bounds the whole fetch including body read. Zero means
	// DefaultTimeout.
	Timeout time.Duration
	// RedirectMaxHops caps redirect following to avoid loops. Zero means
	// default (5).
	RedirectMaxHops int
}

// Get fetches rawURL and returns its decoded body. Errors are categorized:
// *StatusError for non-2xx responses, *TimeoutError for deadline expiry,
// anything else is a network or protocol failure.
func (c *Client) Get(ctx context.Context, rawURL string) (*Document, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if !isHTTPScheme(u) {
		return nil, fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent())
	req.Header.Set("Accept", "*/*")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{Timeout: timeout}
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{Timeout: timeout}
		}
		return nil, fmt.Errorf("read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	return &Document{ContentType: contentType, Body: decodeBody(raw, contentType)}, nil
}

// decodeBody converts the body to UTF-8 based on the declared or sniffed
// charset. Pages with unknown encodings pass through as-is rather than
// failing the fetch.
func decodeBody(raw []byte, contentType string) string {
	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return string(raw)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// IsHTML reports whether a Content-Type header denotes an HTML document.
func IsHTML(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	return strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml+xml")
}

func (c *Client) userAgent() string {
	if len(c.UserAgents) == 0 {
		return ""
	}
	pick := c.PickUA
	if pick == nil {
		pick = rand.Intn
	}
	i := pick(len(c.UserAgents))
	if i < 0 || i >= len(c.UserAgents) {
		i = 0
	}
	return c.UserAgents[i]
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone to attach the redirect policy without mutating the
		// caller's client.
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirectFunc()
		return &base
	}
	return &http.Client{CheckRedirect: c.checkRedirectFunc()}
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return errors.New("too many redirects")
		}
		if req.URL == nil || !isHTTPScheme(req.URL) {
			return errors.New("redirect to unsupported scheme")
		}
		return nil
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
