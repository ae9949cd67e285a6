// Package http executes requests against the Astria API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/astria-api/astria-go/internal/constants"
	"github.com/astria-api/astria-go/pkg/astria"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedBody = errors.New("body must be []byte, string or io.Reader for non-JSON content types")
)

// Client executes requests relative to a base URL.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	logger     astria.Logger
	debug      bool

	username    string
	password    string
	accessToken string
	userAgent   string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger astria.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the custom prefix of the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithBasicAuth sends HTTP Basic credentials. It wins over WithAccessToken.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithAccessToken sends a Bearer token when no password is configured.
func WithAccessToken(token string) Option {
	return func(c *Client) {
		c.accessToken = token
	}
}

// WithTimeout sets the overall per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithProxy routes requests through the given proxy URL.
func WithProxy(proxyURL *url.URL) Option {
	return func(c *Client) {
		transport, ok := c.httpClient.HTTPClient.Transport.(*http.Transport)
		if !ok {
			return
		}

		transport.Proxy = http.ProxyURL(proxyURL)
	}
}

// WithHTTPClient replaces the underlying *http.Client (useful for testing).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates a new HTTP client. baseURL must not end with a slash.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{
		Timeout:   constants.DefaultHTTPTimeout,
		Transport: cleanhttp.DefaultPooledTransport(),
	}
	// Errors reach the caller on the first attempt.
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	client := &Client{
		baseURL:    baseURL,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.debug && client.logger != nil {
		retryClient.RequestLogHook = client.logRequest
		retryClient.ResponseLogHook = client.logResponse
	}

	return client
}

func neverRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	return false, nil
}

// Request sends a request and returns the response without looking at its status.
//
// Only transport failures are returned as errors, as *astria.TransportError.
// Caller options override the default Accept header; the User-Agent header
// cannot be overridden.
func (c *Client) Request(ctx context.Context, method, path string, body interface{}, opts *astria.RequestOptions) (*astria.RawResponse, error) {
	options := astria.MergeOptions(baseOptions(), opts)

	header := make(http.Header, len(options.Headers)+1)
	for key, value := range options.Headers {
		header.Set(key, value)
	}

	header.Set(constants.HeaderUserAgent, astria.FormatUserAgent(c.userAgent))

	var payload interface{}

	if !isEmptyBody(body) {
		contentType := header.Get(constants.HeaderContentType)
		if contentType == "" {
			contentType = constants.MediaTypeJSON
			header.Set(constants.HeaderContentType, contentType)
		}

		encoded, err := encodeBody(contentType, body)
		if err != nil {
			return nil, err
		}

		payload = encoded
	}

	fullURL := c.baseURL + path
	if query := options.Values(); len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, payload)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header = header
	c.addAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &astria.TransportError{Method: method, URL: fullURL, Err: err}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &astria.TransportError{Method: method, URL: fullURL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	return &astria.RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// Execute sends a request and classifies the response by status code.
//
// 2xx responses are returned unchanged. Other statuses return the response
// together with *astria.AuthenticationFailedError (401),
// *astria.NotFoundError (404) or *astria.RequestError.
func (c *Client) Execute(ctx context.Context, method, path string, body interface{}, opts *astria.RequestOptions) (*astria.RawResponse, error) {
	resp, err := c.Request(ctx, method, path, body, opts)
	if err != nil {
		return nil, err
	}

	err = astria.CheckResponse(resp)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("API Response Error", map[string]interface{}{
				"method":      method,
				"path":        path,
				"status_code": resp.StatusCode,
			})
		}

		return resp, err
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, opts *astria.RequestOptions) (*astria.RawResponse, error) {
	return c.Execute(ctx, http.MethodGet, path, nil, opts)
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}, opts *astria.RequestOptions) (*astria.RawResponse, error) {
	return c.Execute(ctx, http.MethodPost, path, body, opts)
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}, opts *astria.RequestOptions) (*astria.RawResponse, error) {
	return c.Execute(ctx, http.MethodPut, path, body, opts)
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}, opts *astria.RequestOptions) (*astria.RawResponse, error) {
	return c.Execute(ctx, http.MethodPatch, path, body, opts)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts *astria.RequestOptions) (*astria.RawResponse, error) {
	return c.Execute(ctx, http.MethodDelete, path, nil, opts)
}

func baseOptions() *astria.RequestOptions {
	return &astria.RequestOptions{
		Headers: map[string]string{
			constants.HeaderAccept: constants.MediaTypeJSON,
		},
	}
}

func (c *Client) addAuth(req *retryablehttp.Request) {
	switch {
	case c.password != "":
		req.SetBasicAuth(c.username, c.password)
	case c.accessToken != "":
		req.Header.Set(constants.HeaderAuthorization, "Bearer "+c.accessToken)
	}
}

func isEmptyBody(body interface{}) bool {
	switch value := body.(type) {
	case nil:
		return true
	case []byte:
		return len(value) == 0
	case string:
		return value == ""
	default:
		return false
	}
}

// encodeBody marshals body when contentType is JSON. Readers are always sent
// as-is, so callers can stream an already encoded payload.
func encodeBody(contentType string, body interface{}) (interface{}, error) {
	if reader, ok := body.(io.Reader); ok {
		return reader, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil && mediaType == constants.MediaTypeJSON {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		return data, nil
	}

	switch value := body.(type) {
	case []byte:
		return value, nil
	case string:
		return []byte(value), nil
	default:
		return nil, fmt.Errorf("%w: got %T for %q", ErrUnsupportedBody, body, contentType)
	}
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, attempt int) {
	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.Redacted(),
		"attempt": attempt,
	})
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method":      resp.Request.Method,
		"url":         resp.Request.URL.Redacted(),
		"status_code": resp.StatusCode,
	})
}
