package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// fakeDocumentStore keeps documents in a map keyed by collection path,
// standing in for Firestore in the controller tests.
type fakeDocumentStore struct {
	mu          sync.Mutex
	collections map[string]map[string]interface{}
	failWrites  bool
	deleteLog   []string
}

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{collections: map[string]map[string]interface{}{}}
}

func (s *fakeDocumentStore) Upsert(ctx context.Context, collectionPath, docID string, record interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return fmt.Errorf("write refused")
	}
	if s.collections[collectionPath] == nil {
		s.collections[collectionPath] = map[string]interface{}{}
	}
	s.collections[collectionPath][docID] = record
	return nil
}

func (s *fakeDocumentStore) Delete(ctx context.Context, collectionPath, docID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections[collectionPath], docID)
	s.deleteLog = append(s.deleteLog, collectionPath+"/"+docID)
	return nil
}

func (s *fakeDocumentStore) ListIDs(ctx context.Context, collectionPath string, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id := range s.collections[collectionPath] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (s *fakeDocumentStore) count(collectionPath string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collectionPath])
}

type fakeAuthProvider struct {
	accounts map[string]string
	nextUID  int
	failUIDs map[string]bool
}

func newFakeAuthProvider() *fakeAuthProvider {
	return &fakeAuthProvider{accounts: map[string]string{}, failUIDs: map[string]bool{}}
}

func (f *fakeAuthProvider) CreateAccount(ctx context.Context, uid, email, password, displayName string) (string, error) {
	if f.failUIDs[uid] {
		return "", fmt.Errorf("account creation refused")
	}
	if uid == "" {
		f.nextUID++
		uid = fmt.Sprintf("generated_%d", f.nextUID)
	}
	f.accounts[uid] = email
	return uid, nil
}

func (f *fakeAuthProvider) AccountExists(ctx context.Context, uid string) (bool, error) {
	_, ok := f.accounts[uid]
	return ok, nil
}

func (f *fakeAuthProvider) DeleteAccount(ctx context.Context, uid string) error {
	delete(f.accounts, uid)
	return nil
}

func (f *fakeAuthProvider) ListAccounts(ctx context.Context) ([]string, error) {
	var uids []string
	for uid := range f.accounts {
		uids = append(uids, uid)
	}
	sort.Strings(uids)
	return uids, nil
}
