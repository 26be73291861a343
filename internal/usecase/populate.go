package usecase

import (
	"context"
	"fmt"

	"marketseed/internal/domain/repository"
	"marketseed/internal/seeder"
	"marketseed/pkg/logger"
)

// Summary counts what actually landed in the store, per collection.
// Failed writes are logged and excluded, so these may run below the
// generated counts.
type Summary struct {
	Users              int
	Products           int
	Orders             int
	Reviews            int
	Chats              int
	Messages           int
	WalletTransactions int
	Reports            int
	Failed             int
}

// Populator writes an assembled dataset into the document store. Writes
// are best effort: a failed record is logged and skipped, the run
// continues.
type Populator struct {
	store repository.DocumentStore
}

func NewPopulator(store repository.DocumentStore) *Populator {
	return &Populator{
		store: store,
	}
}

func (p *Populator) Populate(ctx context.Context, ds *seeder.Dataset) *Summary {
	s := &Summary{}

	for _, u := range ds.Users {
		if p.upsert(ctx, s, "users", u.UID, u) {
			s.Users++
			logger.Info("Added user with ID: %s", u.UID)
		}
	}
	for _, pr := range ds.Products {
		if p.upsert(ctx, s, "products", pr.ID, pr) {
			s.Products++
			logger.Info("Added product with ID: %s", pr.ID)
		}
	}
	for _, o := range ds.Orders {
		if p.upsert(ctx, s, "orders", o.ID, o) {
			s.Orders++
			logger.Info("Added order with ID: %s", o.ID)
		}
	}
	for _, r := range ds.Reviews {
		if p.upsert(ctx, s, "reviews", r.ID, r) {
			s.Reviews++
			logger.Info("Added review with ID: %s", r.ID)
		}
	}
	for _, c := range ds.Chats {
		if !p.upsert(ctx, s, "chats", c.ID, c) {
			continue
		}
		s.Chats++
		logger.Info("Added chat with ID: %s", c.ID)
		for _, m := range ds.MessagesByChat[c.ID] {
			if p.upsert(ctx, s, fmt.Sprintf("chats/%s/messages", c.ID), m.ID, m) {
				s.Messages++
			}
		}
	}
	for _, t := range ds.WalletTransactions {
		if p.upsert(ctx, s, "walletTransactions", t.ID, t) {
			s.WalletTransactions++
		}
	}
	for _, r := range ds.Reports {
		if p.upsert(ctx, s, "reports", r.ID, r) {
			s.Reports++
			logger.Info("Added report with ID: %s", r.ID)
		}
	}

	return s
}

func (p *Populator) upsert(ctx context.Context, s *Summary, collection, id string, record interface{}) bool {
	if err := p.store.Upsert(ctx, collection, id, record); err != nil {
		logger.Error("Failed to write %s/%s: %v", collection, id, err)
		s.Failed++
		return false
	}
	return true
}
