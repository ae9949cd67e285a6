package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/astria-api/astria-go/pkg/astria"
)

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Inspect accounts",
		Long:    "Show the accounts the configured credentials belong to",
	}

	cmd.AddCommand(newAccountsListCommand(v))

	return cmd
}

func newAccountsListCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd, v)
			if err != nil {
				return err
			}

			accounts, err := client.Accounts().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), v, accounts.Data, func(w io.Writer) error {
				return renderTable(w, []string{"ID", "Email", "Plan"}, accountRows(accounts.Data), "No accounts found")
			})
		},
	}
}

func accountRows(accounts []astria.Account) [][]string {
	rows := make([][]string, 0, len(accounts))
	for _, account := range accounts {
		rows = append(rows, []string{
			strconv.FormatInt(account.ID, 10),
			account.Email,
			formatOptional(account.PlanIdentifier),
		})
	}

	return rows
}
