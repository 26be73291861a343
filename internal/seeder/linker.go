package seeder

import (
	"fmt"

	"marketseed/internal/domain/entity"
	"marketseed/pkg/errors"
)

// PickBuyer returns a uniformly random user id excluding the seller, so a
// generated order, chat or report never pairs a user with themselves. It
// fails only when the pool has no other member.
func PickBuyer(rng *Rand, sellerID string, userIDs []string) (string, error) {
	candidates := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		if id != sellerID {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return "", errors.InvariantViolation(fmt.Sprintf("no buyer candidate for seller %s", sellerID))
	}
	return rng.Pick(candidates), nil
}

// PromoteReviewable returns the orders eligible for reviews, i.e. those
// with status Received. When fewer than target exist it promotes the first
// non-terminal orders (not yet Received, not Cancelled) until the target
// is met or the input runs out.
//
// This is the only mutation of an already generated collection. It runs
// between order and review generation; the order slice is frozen once it
// returns.
func PromoteReviewable(orders []*entity.Order, target int) []*entity.Order {
	received := make([]*entity.Order, 0, target)
	for _, o := range orders {
		if o.Status == entity.OrderReceived {
			received = append(received, o)
		}
	}
	for _, o := range orders {
		if len(received) >= target {
			break
		}
		if o.Status == entity.OrderReceived || o.Status == entity.OrderCancelled {
			continue
		}
		o.Status = entity.OrderReceived
		received = append(received, o)
	}
	return received
}
