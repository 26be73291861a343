package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketseed/internal/domain/entity"
	"marketseed/pkg/errors"
)

func TestCreateSellerWritesAccountAndProfile(t *testing.T) {
	ctx := context.Background()
	store := newFakeDocumentStore()
	auth := newFakeAuthProvider()
	uc := NewSellerUseCase(store, auth)

	user, err := uc.CreateSeller(ctx, SellerInput{
		Email:         "new.seller@example.com",
		Username:      "new_seller",
		Address:       "Kuala Lumpur",
		WalletBalance: 250,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleSeller, user.Role)
	assert.Equal(t, 250.0, user.WalletBalance)
	assert.NotEmpty(t, user.UID)
	assert.Equal(t, "new.seller@example.com", auth.accounts[user.UID])

	assert.Equal(t, 1, store.count("users"))
	stored, ok := store.collections["users"][user.UID]
	require.True(t, ok)
	assert.Equal(t, user, stored)
}

func TestCreateSellerRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	uc := NewSellerUseCase(newFakeDocumentStore(), newFakeAuthProvider())

	cases := []struct {
		name string
		in   SellerInput
	}{
		{"invalid email", SellerInput{Email: "not-an-email", Username: "x"}},
		{"missing email", SellerInput{Username: "x"}},
		{"missing username", SellerInput{Email: "a@b.com"}},
		{"negative balance", SellerInput{Email: "a@b.com", Username: "x", WalletBalance: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateSeller(ctx, tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, "BAD_REQUEST"))

			var fieldErrs validator.ValidationErrors
			assert.True(t, stderrors.As(err, &fieldErrs))
		})
	}
}
