package astria

import (
	"errors"
	"time"

	"github.com/astria-api/astria-go/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrInvalidProxy    = errors.New("proxy must be of the form host:port")
	ErrInvalidBaseURL  = errors.New("base URL must be an absolute http(s) URL")
)

// DefaultBaseURL is used when neither the caller nor the provider supplies a base URL.
const DefaultBaseURL = constants.DefaultBaseURL

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an astria.Client.
//
// # Authentication precedence
//
// When Password is set, requests carry HTTP Basic credentials built from
// Username and Password. Otherwise, when AccessToken is set, requests carry
// "Authorization: Bearer <AccessToken>". The two are never sent together.
//
// # Resolution
//
// BaseURL, Username, Password, AccessToken, DomainAPIToken, UserAgent and
// Proxy are resolved once when the client is built: an empty field takes the
// value of the ConfigProvider in use (see Resolve). The remaining fields are
// taken from the caller as-is.
type Config struct {
	// BaseURL: API root without a path, e.g. "https://api.astria.com".
	BaseURL string
	// Username: account username for HTTP Basic authentication.
	Username string
	// Password: account password for HTTP Basic authentication. Takes
	// precedence over AccessToken.
	Password string
	// AccessToken: sent as a Bearer token when no Password is configured.
	AccessToken string
	// DomainAPIToken: carried through configuration for callers that need it.
	// Requests do not send it.
	DomainAPIToken string
	// UserAgent: prepended to the default User-Agent, separated by a space.
	UserAgent string
	// Proxy: optional "host:port" of an HTTP proxy.
	Proxy string

	// HTTPTimeout: overall timeout per request. Zero uses the default of 30s.
	HTTPTimeout time.Duration
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
}

// ConfigProvider supplies default values for the resolvable Config fields.
type ConfigProvider interface {
	Defaults() Config
}

// ConfigProviderFunc adapts a function to ConfigProvider.
type ConfigProviderFunc func() Config

// Defaults implements ConfigProvider.
func (f ConfigProviderFunc) Defaults() Config {
	return f()
}

// StaticProvider returns a fixed set of defaults. An empty BaseURL falls back to DefaultBaseURL.
type StaticProvider struct {
	Config Config
}

// Defaults implements ConfigProvider.
func (p StaticProvider) Defaults() Config {
	defaults := p.Config
	if defaults.BaseURL == "" {
		defaults.BaseURL = DefaultBaseURL
	}

	return defaults
}

// DefaultProvider returns the provider used when none is given: production base URL, no credentials.
func DefaultProvider() ConfigProvider {
	return StaticProvider{}
}

// Resolve fills every empty resolvable field of explicit from provider.
//
// The result is a new value; explicit is not modified. A nil explicit config
// resolves to the provider defaults and a nil provider means DefaultProvider.
func Resolve(explicit *Config, provider ConfigProvider) Config {
	if provider == nil {
		provider = DefaultProvider()
	}

	defaults := provider.Defaults()

	var resolved Config
	if explicit != nil {
		resolved = *explicit
	}

	resolved.BaseURL = firstNonEmpty(resolved.BaseURL, defaults.BaseURL)
	resolved.Username = firstNonEmpty(resolved.Username, defaults.Username)
	resolved.Password = firstNonEmpty(resolved.Password, defaults.Password)
	resolved.AccessToken = firstNonEmpty(resolved.AccessToken, defaults.AccessToken)
	resolved.DomainAPIToken = firstNonEmpty(resolved.DomainAPIToken, defaults.DomainAPIToken)
	resolved.UserAgent = firstNonEmpty(resolved.UserAgent, defaults.UserAgent)
	resolved.Proxy = firstNonEmpty(resolved.Proxy, defaults.Proxy)

	return resolved
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
