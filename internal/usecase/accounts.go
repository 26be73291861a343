package usecase

import (
	"context"

	"marketseed/internal/domain/repository"
	"marketseed/pkg/logger"
)

// seededPassword is the shared credential for all generated accounts.
// These accounts only ever exist against emulator or staging projects.
const seededPassword = "password"

// AuthProvider is the slice of the identity backend the account flows
// need. Firebase Auth satisfies it in production wiring.
type AuthProvider interface {
	CreateAccount(ctx context.Context, uid, email, password, displayName string) (string, error)
	AccountExists(ctx context.Context, uid string) (bool, error)
	DeleteAccount(ctx context.Context, uid string) error
	ListAccounts(ctx context.Context) ([]string, error)
}

type AccountSummary struct {
	Created int
	Skipped int
	Errors  int
}

// AccountUseCase mirrors seeded user documents into the auth backend and
// tears the accounts down again on clear.
type AccountUseCase struct {
	users repository.UserRepository
	auth  AuthProvider
}

func NewAccountUseCase(users repository.UserRepository, auth AuthProvider) *AccountUseCase {
	return &AccountUseCase{
		users: users,
		auth:  auth,
	}
}

// Sync creates one auth account per seeded user document, keyed by the
// document ID so sign-in tokens resolve straight back to the profile.
// Users without an email and users that already have an account are
// skipped.
func (uc *AccountUseCase) Sync(ctx context.Context) (*AccountSummary, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &AccountSummary{}
	for _, u := range users {
		if u.Email == "" {
			logger.Warn("Skipping user %s: no email", u.UID)
			summary.Skipped++
			continue
		}

		exists, err := uc.auth.AccountExists(ctx, u.UID)
		if err != nil {
			logger.Error("Failed to check account %s: %v", u.UID, err)
			summary.Errors++
			continue
		}
		if exists {
			summary.Skipped++
			continue
		}

		if _, err := uc.auth.CreateAccount(ctx, u.UID, u.Email, seededPassword, u.Username); err != nil {
			logger.Error("Failed to create account for %s: %v", u.UID, err)
			summary.Errors++
			continue
		}
		logger.Info("Created auth account for %s (%s)", u.UID, u.Email)
		summary.Created++
	}

	logger.Info("Account sync: %d created, %d skipped, %d errors",
		summary.Created, summary.Skipped, summary.Errors)
	return summary, nil
}

// Purge deletes every account in the auth backend and returns how many
// were removed.
func (uc *AccountUseCase) Purge(ctx context.Context) (int, error) {
	uids, err := uc.auth.ListAccounts(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, uid := range uids {
		if err := uc.auth.DeleteAccount(ctx, uid); err != nil {
			logger.Error("Failed to delete account %s: %v", uid, err)
			continue
		}
		deleted++
	}
	logger.Info("Deleted %d auth accounts", deleted)
	return deleted, nil
}
