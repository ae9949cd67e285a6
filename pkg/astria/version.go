package astria

import "github.com/astria-api/astria-go/internal/constants"

// Version is the library version.
const Version = "0.1.0"

// DefaultUserAgent is sent on every request, prefixed by Config.UserAgent when one is set.
const DefaultUserAgent = constants.UserAgentPrefix + "/" + Version

// FormatUserAgent builds the User-Agent header value for a custom agent string.
func FormatUserAgent(custom string) string {
	if custom == "" {
		return DefaultUserAgent
	}

	return custom + " " + DefaultUserAgent
}
