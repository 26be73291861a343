package repository

import (
	"context"

	"marketseed/internal/domain/entity"
)

type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
}
