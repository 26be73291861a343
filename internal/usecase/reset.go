package usecase

import (
	"context"
	"fmt"

	"marketseed/internal/domain/repository"
	"marketseed/pkg/errors"
	"marketseed/pkg/logger"
)

// topLevelCollections lists every collection the seeder owns, in deletion
// order. Chats also carry a messages sub-collection which must be cleared
// before its parent document goes away.
var topLevelCollections = []string{
	"users",
	"products",
	"orders",
	"reviews",
	"chats",
	"walletTransactions",
	"reports",
}

const deleteBatchSize = 500

// ResetController wipes all seeded collections, children before parents.
type ResetController struct {
	store repository.DocumentStore
}

func NewResetController(store repository.DocumentStore) *ResetController {
	return &ResetController{
		store: store,
	}
}

// ResetAll deletes every document in every seeded collection and returns
// the total number of documents removed.
func (r *ResetController) ResetAll(ctx context.Context) (int, error) {
	total := 0
	for _, collection := range topLevelCollections {
		deleted, err := r.clearCollection(ctx, collection)
		if err != nil {
			return total, err
		}
		total += deleted
		logger.Info("Deleted %d documents from %s collection", deleted, collection)
	}
	return total, nil
}

func (r *ResetController) clearCollection(ctx context.Context, collection string) (int, error) {
	total := 0
	for {
		ids, err := r.store.ListIDs(ctx, collection, deleteBatchSize)
		if err != nil {
			return total, err
		}
		if len(ids) == 0 {
			return total, nil
		}

		deleted := 0
		for _, id := range ids {
			if collection == "chats" {
				sub, err := r.clearCollection(ctx, fmt.Sprintf("chats/%s/messages", id))
				if err != nil {
					return total, err
				}
				total += sub
			}
			if err := r.store.Delete(ctx, collection, id); err != nil {
				logger.Error("Failed to delete %s/%s: %v", collection, id, err)
				continue
			}
			deleted++
		}
		total += deleted

		if deleted == 0 {
			return total, errors.WriteFailure(
				fmt.Sprintf("no documents could be deleted from %s, aborting", collection), nil)
		}
	}
}
