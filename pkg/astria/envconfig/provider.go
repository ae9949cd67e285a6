// Package envconfig supplies astria.Config defaults from ASTRIA_* environment
// variables and an optional configuration file.
//
// Recognised keys, as environment variables or config file keys:
//
//	ASTRIA_BASE_URL          base_url          (default https://api.astria.com)
//	ASTRIA_USERNAME          username
//	ASTRIA_PASSWORD          password
//	ASTRIA_ACCESS_TOKEN      access_token
//	ASTRIA_API_KEY           api_key           (used when access_token is unset)
//	ASTRIA_DOMAIN_API_TOKEN  domain_api_token
//	ASTRIA_USER_AGENT        user_agent
//	ASTRIA_PROXY             proxy
//
// Environment variables win over the config file.
package envconfig

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/astria-api/astria-go/internal/constants"
	"github.com/astria-api/astria-go/pkg/astria"
)

// Provider implements astria.ConfigProvider on top of a viper instance.
type Provider struct {
	v *viper.Viper
}

// New creates a provider reading the environment and, when configFile is not
// empty, that file. A missing or unreadable file is an error.
func New(configFile string) (*Provider, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)

		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	return FromViper(v), nil
}

// FromViper wraps an existing viper instance. The ASTRIA environment prefix
// and the default base URL are applied to v.
func FromViper(v *viper.Viper) *Provider {
	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault(constants.ConfigKeyBaseURL, astria.DefaultBaseURL)

	return &Provider{v: v}
}

// Defaults implements astria.ConfigProvider.
func (p *Provider) Defaults() astria.Config {
	accessToken := p.v.GetString(constants.ConfigKeyAccessToken)
	if accessToken == "" {
		accessToken = p.v.GetString(constants.ConfigKeyAPIKey)
	}

	return astria.Config{
		BaseURL:        p.v.GetString(constants.ConfigKeyBaseURL),
		Username:       p.v.GetString(constants.ConfigKeyUsername),
		Password:       p.v.GetString(constants.ConfigKeyPassword),
		AccessToken:    accessToken,
		DomainAPIToken: p.v.GetString(constants.ConfigKeyDomainAPIToken),
		UserAgent:      p.v.GetString(constants.ConfigKeyUserAgent),
		Proxy:          p.v.GetString(constants.ConfigKeyProxy),
	}
}
