package seeder

import (
	"marketseed/internal/domain/entity"
)

// Config enumerates the requested counts per entity type. The product
// count is fixed by the seed catalog and not configurable. Orders,
// reviews, chats and reports cap silently at their parent pool sizes.
type Config struct {
	Users             int
	Orders            int
	Reviews           int
	Chats             int
	MessagesPerChat   int
	ExtraTransactions int
	Reports           int
	Seed              int64
}

func DefaultConfig() Config {
	return Config{
		Users:             20,
		Orders:            40,
		Reviews:           30,
		Chats:             25,
		MessagesPerChat:   10,
		ExtraTransactions: 30,
		Reports:           15,
	}
}

// Dataset is the fully linked in-memory result of one generation run:
// every foreign reference resolves within it, every derived status is
// consistent with its dependencies, and every timestamp respects causal
// order. Nothing here is mutated after Assemble returns.
type Dataset struct {
	Users              []*entity.User
	Products           []*entity.Product
	Orders             []*entity.Order
	Reviews            []*entity.Review
	Chats              []*entity.Chat
	Messages           []*entity.Message
	MessagesByChat     map[string][]*entity.Message
	WalletTransactions []*entity.WalletTransaction
	Reports            []*entity.Report
}

// Assemble runs the generators in strict dependency order: users,
// products, orders, reviews, chats, messages, wallet transactions,
// reports. Each stage reads only collections generated before it.
func Assemble(cfg Config) (*Dataset, error) {
	rng := NewRand(cfg.Seed)
	f := NewFactory(rng)

	users := f.Users(cfg.Users)
	userIDs := make([]string, len(users))
	for i, u := range users {
		userIDs[i] = u.UID
	}

	products := f.Products(userIDs)

	orders, err := f.Orders(products, userIDs, cfg.Orders)
	if err != nil {
		return nil, err
	}

	// Two-phase status promotion: ensure enough Received orders exist,
	// freeze the order slice, then let the review generator read it.
	received := PromoteReviewable(orders, cfg.Reviews)
	reviews := f.Reviews(received, cfg.Reviews)

	chats, err := f.Chats(products, userIDs, cfg.Chats)
	if err != nil {
		return nil, err
	}

	messages := f.Messages(chats, cfg.MessagesPerChat)
	byChat := make(map[string][]*entity.Message, len(chats))
	for _, m := range messages {
		byChat[m.ChatID] = append(byChat[m.ChatID], m)
	}

	transactions := f.WalletTransactions(users, orders, cfg.ExtraTransactions)

	reports, err := f.Reports(products, userIDs, cfg.Reports)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Users:              users,
		Products:           products,
		Orders:             orders,
		Reviews:            reviews,
		Chats:              chats,
		Messages:           messages,
		MessagesByChat:     byChat,
		WalletTransactions: transactions,
		Reports:            reports,
	}, nil
}
