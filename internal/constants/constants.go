package constants

import "time"

// File permissions.
const (
	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// API layout.
const (
	// APIVersion is the path prefix every endpoint lives under.
	APIVersion = "v2"

	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.astria.com"

	// UserAgentPrefix is the product token of the default User-Agent.
	UserAgentPrefix = "astria-go"
)

// HTTP header names and media types.
const (
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"

	// Pagination headers consulted when the body carries no pagination object.
	HeaderTotalPages   = "X-Total-Pages"
	HeaderCurrentPage  = "X-Page"
	HeaderPerPage      = "X-Per-Page"
	HeaderTotalEntries = "X-Total"

	MediaTypeJSON = "application/json"
)

// Pagination.
const (
	// PaginationPerPage is the page size used when fetching every page of a collection.
	PaginationPerPage = 100

	// DefaultPageSize is the page size the CLI asks for on single page listings.
	DefaultPageSize = 20
)

// Environment and configuration keys.
const (
	// EnvPrefix prefixes every environment variable read by the configuration provider.
	EnvPrefix = "ASTRIA"

	ConfigKeyBaseURL        = "base_url"
	ConfigKeyUsername       = "username"
	ConfigKeyPassword       = "password"
	ConfigKeyAccessToken    = "access_token"
	ConfigKeyAPIKey         = "api_key"
	ConfigKeyDomainAPIToken = "domain_api_token"
	ConfigKeyUserAgent      = "user_agent"
	ConfigKeyProxy          = "proxy"
	ConfigKeyOutput         = "output"
	ConfigKeyVerbose        = "verbose"
	ConfigKeyConfig         = "config"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output.
	FormatTable = "table"

	// JSONIndentSize is the indentation used for JSON and YAML output.
	JSONIndentSize = 2

	// DateTimeFormat is how timestamps are rendered in tables.
	DateTimeFormat = "2006-01-02 15:04:05"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"
)
