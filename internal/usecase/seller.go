package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"marketseed/internal/domain/entity"
	"marketseed/internal/domain/repository"
	"marketseed/pkg/errors"
	"marketseed/pkg/logger"
)

const sellerPassword = "sellerpassword"

const sellerAvatarURL = "https://placehold.co/100x100/E0E0E0/B0B0B0?text=User"

var validate = validator.New()

// SellerInput carries the operator-supplied fields for a one-off seller
// account created outside a full seeding run.
type SellerInput struct {
	Email         string  `validate:"required,email"`
	Username      string  `validate:"required"`
	Address       string  `validate:"-"`
	WalletBalance float64 `validate:"gte=0"`
}

type SellerUseCase struct {
	store repository.DocumentStore
	auth  AuthProvider
}

func NewSellerUseCase(store repository.DocumentStore, auth AuthProvider) *SellerUseCase {
	return &SellerUseCase{
		store: store,
		auth:  auth,
	}
}

// CreateSeller registers an auth account with a provider-assigned UID and
// writes the matching seller profile document under that UID.
func (uc *SellerUseCase) CreateSeller(ctx context.Context, in SellerInput) (*entity.User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, errors.BadRequest(validationMessage(err), err)
	}

	uid, err := uc.auth.CreateAccount(ctx, "", in.Email, sellerPassword, in.Username)
	if err != nil {
		return nil, errors.Internal("failed to create seller auth account", err)
	}

	user := &entity.User{
		UID:             uid,
		Username:        in.Username,
		Email:           in.Email,
		ProfileImageURL: sellerAvatarURL,
		Address:         in.Address,
		Role:            entity.RoleSeller,
		Rating:          0,
		WalletBalance:   in.WalletBalance,
		JoinDate:        time.Now(),
	}
	if err := uc.store.Upsert(ctx, "users", uid, user); err != nil {
		return nil, err
	}

	logger.Info("Created seller %s with UID %s", in.Username, uid)
	return user, nil
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Sprintf("invalid %s: fails %q", strings.ToLower(fe.Field()), fe.Tag())
	}
	return "invalid seller input"
}
