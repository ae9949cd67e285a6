package commands

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/astria-api/astria-go/pkg/astria"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(v *viper.Viper, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display the library version and the User-Agent sent with every request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version   string `json:"version"    yaml:"version"`
				UserAgent string `json:"user_agent" yaml:"user_agent"`
				Commit    string `json:"commit"     yaml:"commit"`
				Built     string `json:"built"      yaml:"built"`
			}

			versionInfo := VersionInfo{
				Version:   astria.Version,
				UserAgent: astria.DefaultUserAgent,
				Commit:    commit,
				Built:     date,
			}

			return renderOutput(cmd.OutOrStdout(), v, versionInfo, func(w io.Writer) error {
				return renderProperties(w, [][]string{
					{"Version", versionInfo.Version},
					{"User-Agent", versionInfo.UserAgent},
					{"Commit", versionInfo.Commit},
					{"Built", versionInfo.Built},
				})
			})
		},
	}
}
