package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketseed/internal/domain/entity"
)

type fakeUserRepository struct {
	users []*entity.User
}

func (r *fakeUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	return r.users, nil
}

func TestSyncCreatesAccountsPerUserDocument(t *testing.T) {
	ctx := context.Background()
	auth := newFakeAuthProvider()
	users := &fakeUserRepository{users: []*entity.User{
		{UID: "buyer_1", Email: "alice@example.com", Username: "alice"},
		{UID: "seller_1", Email: "bob@example.com", Username: "bob"},
	}}

	summary, err := NewAccountUseCase(users, auth).Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Errors)
	assert.Equal(t, "alice@example.com", auth.accounts["buyer_1"])
	assert.Equal(t, "bob@example.com", auth.accounts["seller_1"])
}

func TestSyncSkipsExistingAndEmailless(t *testing.T) {
	ctx := context.Background()
	auth := newFakeAuthProvider()
	auth.accounts["buyer_1"] = "alice@example.com"
	users := &fakeUserRepository{users: []*entity.User{
		{UID: "buyer_1", Email: "alice@example.com", Username: "alice"},
		{UID: "buyer_2", Email: "", Username: "ghost"},
		{UID: "seller_1", Email: "bob@example.com", Username: "bob"},
	}}

	summary, err := NewAccountUseCase(users, auth).Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, 0, summary.Errors)
}

func TestSyncCountsFailedCreations(t *testing.T) {
	ctx := context.Background()
	auth := newFakeAuthProvider()
	auth.failUIDs["buyer_1"] = true
	users := &fakeUserRepository{users: []*entity.User{
		{UID: "buyer_1", Email: "alice@example.com", Username: "alice"},
		{UID: "seller_1", Email: "bob@example.com", Username: "bob"},
	}}

	summary, err := NewAccountUseCase(users, auth).Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Errors)
}

func TestPurgeDeletesAllAccounts(t *testing.T) {
	ctx := context.Background()
	auth := newFakeAuthProvider()
	auth.accounts["buyer_1"] = "alice@example.com"
	auth.accounts["seller_1"] = "bob@example.com"

	deleted, err := NewAccountUseCase(&fakeUserRepository{}, auth).Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Empty(t, auth.accounts)
}
