package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/astria-api/astria-go/internal/constants"
)

// NewRootCommand creates the astria command tree. Each call gets its own
// viper instance, so flags, environment and config file never leak between trees.
func NewRootCommand(commit, date string) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "astria",
		Short: "Astria API CLI",
		Long: `A command-line interface for the Astria API.

Manage tunes, their prompts and the authenticated account. Credentials are read
from flags, ASTRIA_* environment variables or $HOME/.astria/config.yml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.astria/config.yml)")
	flags.String("base-url", "", "API base URL (default "+constants.DefaultBaseURL+")")
	flags.StringP("token", "t", "", "API access token")
	flags.StringP("username", "u", "", "username for basic authentication")
	flags.StringP("password", "p", "", "password for basic authentication")
	flags.String("user-agent", "", "custom User-Agent prefix")
	flags.String("proxy", "", "HTTP proxy as host:port")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "log HTTP requests and responses to stderr")

	// Bind flags to viper
	bindings := map[string]string{
		constants.ConfigKeyConfig:      "config",
		constants.ConfigKeyBaseURL:     "base-url",
		constants.ConfigKeyAccessToken: "token",
		constants.ConfigKeyUsername:    "username",
		constants.ConfigKeyPassword:    "password",
		constants.ConfigKeyUserAgent:   "user-agent",
		constants.ConfigKeyProxy:       "proxy",
		constants.ConfigKeyOutput:      "output",
		constants.ConfigKeyVerbose:     "verbose",
	}
	for key, flag := range bindings {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	// Add commands
	rootCmd.AddCommand(NewVersionCommand(v, commit, date))
	rootCmd.AddCommand(NewAccountsCommand(v))
	rootCmd.AddCommand(NewTunesCommand(v))
	rootCmd.AddCommand(NewPromptsCommand(v))

	return rootCmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	// Read in environment variables that match
	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	cfgFile := v.GetString(constants.ConfigKeyConfig)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		// Search config in ~/.astria/config.yml
		v.AddConfigPath(filepath.Join(home, ".astria"))
		v.SetConfigType("yml")
		v.SetConfigName("config")

		var notFound viper.ConfigFileNotFoundError

		err = v.ReadInConfig()
		if err != nil && !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	if v.GetBool(constants.ConfigKeyVerbose) && v.ConfigFileUsed() != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	}

	return nil
}
