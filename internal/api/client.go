// Package api is a typed client for the SolarEdge monitoring REST API.
//
// Every endpoint is a GET against a fixed base host with the parameters
// serialized into the query string. The vendor wraps each JSON payload
// under a single top-level key; the client methods unwrap that envelope
// and return the inner value.
package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/solarwatch/solaredge-cli/internal/debug"
)

const (
	// DefaultBaseURL is the production monitoring API host.
	DefaultBaseURL = "https://monitoringapi.solaredge.com"

	DefaultTimeout = 30 * time.Second
)

// Doer executes a single HTTP request. It is the injected transport
// capability; *http.Client satisfies it, and tests substitute fakes.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// KeyPlacement selects how the API key travels with each request.
type KeyPlacement int

const (
	// KeyInQuery appends the key as the api_key query parameter.
	KeyInQuery KeyPlacement = iota
	// KeyInHeader sends the key in the X-API-Key request header.
	KeyInHeader
)

// Client is the SolarEdge monitoring API client.
//
// All fields are fixed at construction; a Client is safe for use by
// concurrent goroutines. The client issues exactly one request per call:
// no retries, no caching, no rate limiting.
type Client struct {
	BaseURL      string
	APIKey       string
	KeyPlacement KeyPlacement
	HTTP         Doer
	UserAgent    string
}

// New creates a client for the production API using a default HTTP client.
func New(apiKey string) *Client {
	return NewWithDoer(&http.Client{Timeout: DefaultTimeout}, apiKey)
}

// NewWithDoer creates a client with an injected transport.
func NewWithDoer(doer Doer, apiKey string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		APIKey:  apiKey,
		HTTP:    doer,
	}
}

// urlValuer is implemented by request parameter structs. Absent fields
// must be omitted from the returned values entirely.
type urlValuer interface {
	values() (url.Values, error)
}

// buildURL joins the base URL, the relative path (path segments already
// substituted and escaped by the caller) and the encoded query string.
func (c *Client) buildURL(path string, params urlValuer) (string, error) {
	query := url.Values{}
	if params != nil {
		q, err := params.values()
		if err != nil {
			return "", err
		}
		query = q
	}
	if c.KeyPlacement == KeyInQuery && c.APIKey != "" {
		query.Set("api_key", c.APIKey)
	}
	u := strings.TrimSuffix(c.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u, nil
}

// getRaw performs a GET and returns the raw response body. Any 4xx/5xx
// status becomes an *APIError carrying the status and body, without
// attempting to interpret the payload.
func (c *Client) getRaw(ctx context.Context, path string, params urlValuer) ([]byte, error) {
	reqURL, err := c.buildURL(path, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &QueryError{Reason: err.Error()}
	}
	if c.KeyPlacement == KeyInHeader && c.APIKey != "" {
		req.Header.Set("X-API-Key", c.APIKey)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		if debug.IsEnabled(ctx) {
			slog.Debug("request failed", "url", reqURL, "error", err)
		}
		return nil, &TransportError{Err: err}
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if debug.IsEnabled(ctx) {
		slog.Debug("request complete", "url", reqURL, "status", resp.StatusCode, "duration", time.Since(start))
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}

// get performs a GET and decodes the JSON body into result.
func (c *Client) get(ctx context.Context, path string, params urlValuer, result any) error {
	body, err := c.getRaw(ctx, path, params)
	if err != nil {
		return err
	}
	return decodeJSON(body, result)
}

// sitesPathSegment joins site IDs for the bulk endpoints, which take a
// comma-separated list in the path.
func sitesPathSegment(siteIDs []int64) (string, error) {
	if len(siteIDs) == 0 {
		return "", &QueryError{Reason: "at least one site ID is required"}
	}
	parts := make([]string, len(siteIDs))
	for i, id := range siteIDs {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ","), nil
}

const upperhex = "0123456789ABCDEF"

// encodePathSegment percent-encodes everything except ASCII alphanumerics.
// Equipment serial numbers are caller-supplied and may contain characters
// such as '/', '+' or spaces that must not break the path.
func encodePathSegment(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}
