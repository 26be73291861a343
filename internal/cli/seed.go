package cli

import (
	"github.com/spf13/cobra"

	"marketseed/internal/seeder"
	"marketseed/pkg/logger"
)

var seedCfg = seeder.DefaultConfig()

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Wipe all collections and repopulate with a fresh dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := connect(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		// Flag wins over the SEED env var; zero means a random run.
		if seedCfg.Seed == 0 {
			seedCfg.Seed = a.cfg.Seed
		}

		if _, err := a.seed.Run(ctx, seedCfg); err != nil {
			return err
		}

		logger.Info("Seeding complete. Run 'marketseed accounts' to create auth accounts.")
		return nil
	},
}

func init() {
	seedCmd.Flags().Int64Var(&seedCfg.Seed, "seed", 0, "RNG seed for a reproducible dataset (0 = random)")
	seedCmd.Flags().IntVar(&seedCfg.Users, "users", seedCfg.Users, "number of users to generate")
	seedCmd.Flags().IntVar(&seedCfg.Orders, "orders", seedCfg.Orders, "number of orders to generate")
	seedCmd.Flags().IntVar(&seedCfg.Reviews, "reviews", seedCfg.Reviews, "number of reviews to generate")
	seedCmd.Flags().IntVar(&seedCfg.Chats, "chats", seedCfg.Chats, "number of chats to generate")
	seedCmd.Flags().IntVar(&seedCfg.MessagesPerChat, "messages-per-chat", seedCfg.MessagesPerChat, "maximum messages per chat")
	seedCmd.Flags().IntVar(&seedCfg.ExtraTransactions, "extra-transactions", seedCfg.ExtraTransactions, "number of standalone wallet transactions")
	seedCmd.Flags().IntVar(&seedCfg.Reports, "reports", seedCfg.Reports, "number of product reports to generate")
	rootCmd.AddCommand(seedCmd)
}
