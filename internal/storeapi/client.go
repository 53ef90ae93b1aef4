// Package storeapi is a typed client for the storefront REST API.
package storeapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrUnexpectedStatus is returned when the transport status is not 200.
// Business failures still arrive with HTTP 200.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// API paths
const (
	PathProductsList      = "/api/productsList"
	PathBrandsList        = "/api/brandsList"
	PathSearchProduct     = "/api/searchProduct"
	PathVerifyLogin       = "/api/verifyLogin"
	PathCreateAccount     = "/api/createAccount"
	PathDeleteAccount     = "/api/deleteAccount"
	PathUpdateAccount     = "/api/updateAccount"
	PathUserDetailByEmail = "/api/getUserDetailByEmail"
)

// Client is the storefront API surface used by the probe runner
type Client interface {
	Do(ctx context.Context, method, path string, form map[string]string) (*Response, error)
	ProductsList(ctx context.Context) (*Response, error)
	BrandsList(ctx context.Context) (*Response, error)
	SearchProduct(ctx context.Context, term string) (*Response, error)
	VerifyLogin(ctx context.Context, email, password string) (*Response, error)
	CreateAccount(ctx context.Context, form map[string]string) (*Response, error)
	DeleteAccount(ctx context.Context, email, password string) (*Response, error)
	UpdateAccount(ctx context.Context, form map[string]string) (*Response, error)
	UserDetailByEmail(ctx context.Context, email string) (*Response, error)
}

// Response is a fully read API response
type Response struct {
	status  int
	headers map[string]string
	body    []byte
}

// NewResponse builds a Response from its parts
func NewResponse(status int, headers map[string]string, body []byte) *Response {
	return &Response{status: status, headers: headers, body: body}
}

// Status returns the HTTP status code
func (r *Response) Status() int { return r.status }

// Headers returns the response headers with lower-cased names
func (r *Response) Headers() map[string]string { return r.headers }

// Body returns the raw body
func (r *Response) Body() ([]byte, error) { return r.body, nil }

// Envelope decodes the body, failing when the transport status is not 200
func (r *Response) Envelope() (*Envelope, error) {
	if r.status != http.StatusOK {
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, r.status, string(r.body))
	}
	return DecodeEnvelope(r.body)
}

// HTTPClient implements Client over net/http
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("storeapi"),
	}
}

// Do sends form as a url-encoded body (or query string for GET) to path
func (c *HTTPClient) Do(ctx context.Context, method, path string, form map[string]string) (*Response, error) {
	values := url.Values{}
	for k, v := range form {
		values.Set(k, v)
	}

	target := c.baseURL + path
	var body io.Reader
	if method == http.MethodGet {
		if len(values) > 0 {
			target += "?" + values.Encode()
		}
	} else if len(values) > 0 {
		body = strings.NewReader(values.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	headers := make(map[string]string, len(resp.Header))
	for name := range resp.Header {
		headers[strings.ToLower(name)] = resp.Header.Get(name)
	}

	c.logger.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(raw)),
	)

	return NewResponse(resp.StatusCode, headers, raw), nil
}

// ProductsList calls GET /api/productsList
func (c *HTTPClient) ProductsList(ctx context.Context) (*Response, error) {
	return c.Do(ctx, http.MethodGet, PathProductsList, nil)
}

// BrandsList calls GET /api/brandsList
func (c *HTTPClient) BrandsList(ctx context.Context) (*Response, error) {
	return c.Do(ctx, http.MethodGet, PathBrandsList, nil)
}

// SearchProduct calls POST /api/searchProduct. An empty term omits the parameter.
func (c *HTTPClient) SearchProduct(ctx context.Context, term string) (*Response, error) {
	var form map[string]string
	if term != "" {
		form = map[string]string{"search_product": term}
	}
	return c.Do(ctx, http.MethodPost, PathSearchProduct, form)
}

// VerifyLogin calls POST /api/verifyLogin
func (c *HTTPClient) VerifyLogin(ctx context.Context, email, password string) (*Response, error) {
	return c.Do(ctx, http.MethodPost, PathVerifyLogin, map[string]string{
		"email":    email,
		"password": password,
	})
}

// CreateAccount calls POST /api/createAccount
func (c *HTTPClient) CreateAccount(ctx context.Context, form map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodPost, PathCreateAccount, form)
}

// DeleteAccount calls DELETE /api/deleteAccount
func (c *HTTPClient) DeleteAccount(ctx context.Context, email, password string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, PathDeleteAccount, map[string]string{
		"email":    email,
		"password": password,
	})
}

// UpdateAccount calls PUT /api/updateAccount
func (c *HTTPClient) UpdateAccount(ctx context.Context, form map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodPut, PathUpdateAccount, form)
}

// UserDetailByEmail calls GET /api/getUserDetailByEmail
func (c *HTTPClient) UserDetailByEmail(ctx context.Context, email string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, PathUserDetailByEmail, map[string]string{"email": email})
}
