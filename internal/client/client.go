package client

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/astria-api/astria-go/internal/constants"
	"github.com/astria-api/astria-go/internal/http"
	"github.com/astria-api/astria-go/pkg/astria"
)

// Client implements the astria.Client interface.
type Client struct {
	httpClient *http.Client
	config     astria.Config

	// Resource clients
	tunes    astria.TunesClient
	prompts  astria.PromptsClient
	accounts astria.AccountsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *astria.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Password != "" {
		httpOpts = append(httpOpts, http.WithBasicAuth(config.Username, config.Password))
	}

	if config.AccessToken != "" {
		httpOpts = append(httpOpts, http.WithAccessToken(config.AccessToken))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Proxy != "" {
		proxyURL, err := http.ProxyURL(config.Proxy)
		if err != nil {
			return nil, err
		}

		httpOpts = append(httpOpts, http.WithProxy(proxyURL))
	}

	return httpOpts, nil
}

// New creates a new Astria API client from an already resolved config.
func New(config *astria.Config) (*Client, error) {
	if config == nil {
		return nil, astria.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, astria.ErrBaseURLRequired
	}

	baseURL, err := normalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	resolved := *config
	resolved.BaseURL = baseURL

	client := &Client{
		httpClient: http.NewClient(baseURL, httpOpts...),
		config:     resolved,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

// NewWithHTTPClient wraps an existing HTTP client. Used by tests.
func NewWithHTTPClient(httpClient *http.Client, config astria.Config) *Client {
	client := &Client{
		httpClient: httpClient,
		config:     config,
	}

	client.initializeResourceClients()

	return client
}

// normalizeBaseURL strips any trailing slash and requires an absolute http(s) URL without a query.
func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", astria.ErrInvalidBaseURL, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" || parsed.RawQuery != "" {
		return "", fmt.Errorf("%w: %q", astria.ErrInvalidBaseURL, raw)
	}

	return trimmed, nil
}

func (c *Client) initializeResourceClients() {
	c.tunes = NewTunesClient(c.httpClient)
	c.prompts = NewPromptsClient(c.httpClient)
	c.accounts = NewAccountsClient(c.httpClient)
}

// Tunes implements astria.Client.Tunes.
func (c *Client) Tunes() astria.TunesClient {
	return c.tunes
}

// Prompts implements astria.Client.Prompts.
func (c *Client) Prompts() astria.PromptsClient {
	return c.prompts
}

// Accounts implements astria.Client.Accounts.
func (c *Client) Accounts() astria.AccountsClient {
	return c.accounts
}

// Config implements astria.Client.Config.
func (c *Client) Config() astria.Config {
	return c.config
}

// versioned prefixes a resource path with the API version.
func versioned(path string) string {
	return "/" + constants.APIVersion + path
}
