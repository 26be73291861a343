package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"marketseed/internal/domain/repository"
	"marketseed/pkg/errors"
)

type firestoreDocumentStore struct {
	client *firestore.Client
}

func NewFirestoreDocumentStore(client *firestore.Client) repository.DocumentStore {
	return &firestoreDocumentStore{
		client: client,
	}
}

func (s *firestoreDocumentStore) Upsert(ctx context.Context, collectionPath, docID string, record interface{}) error {
	_, err := s.client.Collection(collectionPath).Doc(docID).Set(ctx, record)
	if err != nil {
		return errors.WriteFailure(fmt.Sprintf("failed to write %s/%s", collectionPath, docID), err)
	}
	return nil
}

func (s *firestoreDocumentStore) Delete(ctx context.Context, collectionPath, docID string) error {
	_, err := s.client.Collection(collectionPath).Doc(docID).Delete(ctx)
	if err != nil {
		// Deleting an already gone document is not a failure.
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return errors.WriteFailure(fmt.Sprintf("failed to delete %s/%s", collectionPath, docID), err)
	}
	return nil
}

func (s *firestoreDocumentStore) ListIDs(ctx context.Context, collectionPath string, limit int) ([]string, error) {
	query := s.client.Collection(collectionPath).Query
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var ids []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal(fmt.Sprintf("failed to list documents in %s", collectionPath), err)
		}
		ids = append(ids, doc.Ref.ID)
	}
	return ids, nil
}
