package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"marketseed/internal/adapter/repository"
	"marketseed/internal/infrastructure/firebase"
	"marketseed/internal/usecase"
	"marketseed/pkg/config"
	"marketseed/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "marketseed",
	Short: "Synthetic data seeder for the marketplace Firestore backend",
	Long: `marketseed wipes and repopulates a Firestore project with a coherent
synthetic marketplace dataset: users, products, orders, reviews, chats,
wallet transactions and reports, all cross-referenced and causally
ordered. Point it at an emulator or staging project, never production.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles the wired dependencies every command needs. connect builds
// it against a live Firebase project; commands must call close when done.
type app struct {
	cfg      *config.Config
	client   *firebase.Client
	seed     *usecase.SeedUseCase
	reset    *usecase.ResetController
	accounts *usecase.AccountUseCase
	sellers  *usecase.SellerUseCase
}

func connect(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client := firebase.NewClient(cfg)
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}

	store := repository.NewFirestoreDocumentStore(client.Firestore())
	users := repository.NewFirestoreUserRepository(client.Firestore())
	auth := firebase.NewFirebaseAuthClient(client.Auth())

	reset := usecase.NewResetController(store)
	populator := usecase.NewPopulator(store)

	return &app{
		cfg:      cfg,
		client:   client,
		seed:     usecase.NewSeedUseCase(reset, populator),
		reset:    reset,
		accounts: usecase.NewAccountUseCase(users, auth),
		sellers:  usecase.NewSellerUseCase(store, auth),
	}, nil
}

func (a *app) close() {
	if err := a.client.Disconnect(); err != nil {
		logger.Error("Failed to close Firestore client: %v", err)
	}
}
