package cli

import (
	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Create an auth account for every seeded user document",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := connect(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		_, err = a.accounts.Sync(ctx)
		return err
	},
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}
