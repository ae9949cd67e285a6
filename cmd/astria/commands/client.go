package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/astria-api/astria-go/internal/constants"
	"github.com/astria-api/astria-go/internal/logging"
	"github.com/astria-api/astria-go/pkg/astria"
	"github.com/astria-api/astria-go/pkg/astria/envconfig"
	"github.com/astria-api/astria-go/pkg/astriaclient"
)

// CreateClient builds an API client from flags, environment and config file.
func CreateClient(cmd *cobra.Command, v *viper.Viper) (astria.Client, error) {
	provider := envconfig.FromViper(v)
	defaults := provider.Defaults()

	config := &astria.Config{}

	if defaults.Password == "" && defaults.AccessToken == "" {
		if defaults.Username == "" {
			return nil, constants.ErrNoCredentials
		}

		password, err := readPassword(cmd)
		if err != nil {
			return nil, err
		}

		config.Password = password
	}

	if v.GetBool(constants.ConfigKeyVerbose) {
		config.Debug = true
		config.Logger = logging.NewConsole(cmd.ErrOrStderr(), true)
	}

	client, err := astriaclient.NewWithProvider(config, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// readPassword prompts for a password when the command reads from a terminal.
func readPassword(cmd *cobra.Command) (string, error) {
	stdin, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(stdin.Fd())) { //nolint:gosec // file descriptors fit in an int
		return "", constants.ErrPasswordPrompt
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")

	bytePassword, err := term.ReadPassword(int(stdin.Fd())) //nolint:gosec // file descriptors fit in an int
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	return string(bytePassword), nil
}

func parseTuneID(arg string) (int64, error) {
	return parseID(arg, constants.ErrInvalidTuneID)
}

func parsePromptID(arg string) (int64, error) {
	return parseID(arg, constants.ErrInvalidPromptID)
}

func parseID(arg string, sentinel error) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", sentinel, arg)
	}

	return id, nil
}
