package cli

import (
	"github.com/spf13/cobra"

	"marketseed/pkg/logger"
)

var clearAuth bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all seeded documents, optionally with their auth accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := connect(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		deleted, err := a.reset.ResetAll(ctx)
		if err != nil {
			return err
		}
		logger.Info("Deleted %d documents in total", deleted)

		if clearAuth {
			if _, err := a.accounts.Purge(ctx); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearAuth, "auth", false, "also delete all auth accounts")
	rootCmd.AddCommand(clearCmd)
}
