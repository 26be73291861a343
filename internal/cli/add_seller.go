package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"marketseed/internal/usecase"
	"marketseed/pkg/logger"
)

var addSellerCmd = &cobra.Command{
	Use:   "add-seller",
	Short: "Interactively create a single seller account and profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		reader := bufio.NewReader(os.Stdin)

		in := usecase.SellerInput{
			Email:    prompt(reader, "Email: "),
			Username: prompt(reader, "Username: "),
			Address:  prompt(reader, "Address: "),
		}

		raw := prompt(reader, "Initial wallet balance (default 0): ")
		if raw != "" {
			balance, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("invalid balance %q: %w", raw, err)
			}
			in.WalletBalance = balance
		}

		a, err := connect(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		user, err := a.sellers.CreateSeller(ctx, in)
		if err != nil {
			return err
		}
		logger.Info("Seller ready: sign in as %s", user.Email)
		return nil
	},
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	rootCmd.AddCommand(addSellerCmd)
}
