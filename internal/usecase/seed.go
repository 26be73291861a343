package usecase

import (
	"context"

	"marketseed/internal/seeder"
	"marketseed/pkg/logger"
)

// SeedUseCase runs a full reset-then-populate cycle against the store.
type SeedUseCase struct {
	reset     *ResetController
	populator *Populator
}

func NewSeedUseCase(reset *ResetController, populator *Populator) *SeedUseCase {
	return &SeedUseCase{
		reset:     reset,
		populator: populator,
	}
}

func (uc *SeedUseCase) Run(ctx context.Context, cfg seeder.Config) (*Summary, error) {
	logger.Info("Clearing existing data")
	deleted, err := uc.reset.ResetAll(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("Cleared %d existing documents", deleted)

	if cfg.Seed != 0 {
		logger.Info("Generating dataset with seed %d", cfg.Seed)
	} else {
		logger.Info("Generating dataset with random seed")
	}
	ds, err := seeder.Assemble(cfg)
	if err != nil {
		return nil, err
	}

	summary := uc.populator.Populate(ctx, ds)

	logger.Info("Created %d users", summary.Users)
	logger.Info("Created %d products", summary.Products)
	logger.Info("Created %d orders", summary.Orders)
	logger.Info("Created %d reviews", summary.Reviews)
	logger.Info("Created %d chats with %d messages", summary.Chats, summary.Messages)
	logger.Info("Created %d wallet transactions", summary.WalletTransactions)
	logger.Info("Created %d reports", summary.Reports)
	if summary.Failed > 0 {
		logger.Warn("%d writes failed and were skipped", summary.Failed)
	}

	return summary, nil
}
