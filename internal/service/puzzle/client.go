package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/oshokin/aoc-admin/internal/domain/aoc"
	"github.com/oshokin/aoc-admin/internal/logger"
	"github.com/oshokin/aoc-admin/internal/version"
)

var (
	// ErrValidationFailed wraps a spec validation error; no request was sent.
	ErrValidationFailed = errors.New("puzzle spec validation failed")
	// ErrNetwork wraps transport failures and unexpected HTTP statuses.
	ErrNetwork = errors.New("puzzle input request failed")
	// errBadHTTPStatus is returned for any status other than 200.
	errBadHTTPStatus = errors.New("unexpected http status")
)

// Client fetches puzzle input from the puzzle service.
type Client struct {
	// httpClient sends the requests.
	httpClient *http.Client
	// baseURL is the service address without a trailing slash.
	baseURL string
	// userAgent identifies the tool to the service.
	userAgent string
}

// Option configures Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets the service address.
func WithBaseURL(baseURL string) Option {
	return func(client *Client) {
		if baseURL != "" {
			client.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(client *Client) {
		if userAgent != "" {
			client.userAgent = userAgent
		}
	}
}

// NewClient returns a client for the public puzzle service.
func NewClient(opts ...Option) *Client {
	client := &Client{
		httpClient: http.DefaultClient,
		baseURL:    aoc.DefaultBaseURL,
		userAgent:  version.UserAgent(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// URL returns the input address of spec on this client's service.
func (c *Client) URL(spec aoc.Spec) string {
	return c.baseURL + spec.RequestPath()
}

// FetchInput validates spec and downloads its input. The body is returned verbatim.
func (c *Client) FetchInput(ctx context.Context, spec aoc.Spec) ([]byte, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	target := c.URL(spec)
	if _, err := url.ParseRequestURI(target); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	req.Header.Set("Cookie", "session="+spec.Token)
	req.Header.Set("User-Agent", c.userAgent)

	logger.DebugKV(ctx, "Requesting puzzle input", "url", target)

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s, %s: %w", ErrNetwork, target, response.Status, errBadHTTPStatus)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrNetwork, err)
	}

	logger.DebugKV(ctx, "Puzzle input received", "bytes", len(data))

	return data, nil
}
