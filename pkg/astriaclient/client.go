// Package astriaclient provides the main entry point for creating Astria API clients.
package astriaclient

import (
	"fmt"
	"strings"

	"github.com/astria-api/astria-go/internal/client"
	"github.com/astria-api/astria-go/pkg/astria"
)

// New creates a new Astria API client. Empty fields of config are filled from
// astria.DefaultProvider; config itself is not modified and may be nil.
func New(config *astria.Config) (astria.Client, error) {
	return NewWithProvider(config, astria.DefaultProvider())
}

// NewWithProvider creates a new client whose empty config fields are filled from provider.
func NewWithProvider(config *astria.Config, provider astria.ConfigProvider) (astria.Client, error) {
	resolved := astria.Resolve(config, provider)

	if resolved.BaseURL == "" {
		return nil, astria.ErrBaseURLRequired
	}

	resolved.BaseURL = normalizeBaseURL(resolved.BaseURL)

	c, err := client.New(&resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// normalizeBaseURL trims trailing slashes and defaults the scheme to https.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewWithToken creates a new client with a base URL and access token.
func NewWithToken(baseURL, token string) (astria.Client, error) {
	return New(&astria.Config{
		BaseURL:     baseURL,
		AccessToken: token,
	})
}

// NewWithPassword creates a new client using HTTP Basic authentication.
func NewWithPassword(baseURL, username, password string) (astria.Client, error) {
	return New(&astria.Config{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
	})
}
