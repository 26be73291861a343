package repository

import "context"

// DocumentStore is the narrow persistence surface the seeder consumes: a
// key-value document store addressed by collection path and document id.
// A collection path may carry one level of nesting, e.g.
// "chats/{chatId}/messages".
type DocumentStore interface {
	Upsert(ctx context.Context, collectionPath, docID string, record interface{}) error
	Delete(ctx context.Context, collectionPath, docID string) error
	ListIDs(ctx context.Context, collectionPath string, limit int) ([]string, error)
}
