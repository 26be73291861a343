package seeder

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"marketseed/internal/domain/entity"
)

// Chats samples up to n products and opens one conversation per product
// between its seller and a random other user. The last-message fields are
// generated here; Messages later reconstructs the history behind them.
func (f *Factory) Chats(products []*entity.Product, userIDs []string, n int) ([]*entity.Chat, error) {
	selected := sample(f.rng, products, n)
	chats := make([]*entity.Chat, 0, len(selected))
	for _, p := range selected {
		buyerID, err := PickBuyer(f.rng, p.SellerID, userIDs)
		if err != nil {
			return nil, err
		}
		participants := []string{buyerID, p.SellerID}
		senderID := participants[f.rng.Intn(2)]

		unread := make(map[string]int, 2)
		for _, participant := range participants {
			if participant == senderID {
				unread[participant] = 0
			} else {
				unread[participant] = f.rng.Between(0, 5)
			}
		}

		chats = append(chats, &entity.Chat{
			ID:                   shortID("chat"),
			Participants:         participants,
			ProductID:            p.ID,
			LastMessage:          f.rng.Pick(openingMessages),
			LastMessageTimestamp: f.seq.WithinPastDays(30),
			LastMessageSenderID:  senderID,
			UnreadCount:          unread,
		})
	}
	return chats, nil
}

// Messages builds each chat's history of 3 to maxPerChat messages by
// walking backward from the chat's last message in 5-60 minute steps, then
// reverses into chronological order. The newest message always equals the
// chat's lastMessage/lastMessageSenderId/lastMessageTimestamp.
func (f *Factory) Messages(chats []*entity.Chat, maxPerChat int) []*entity.Message {
	var all []*entity.Message
	for _, chat := range chats {
		count := f.rng.Between(3, maxPerChat)
		messages := make([]*entity.Message, 0, count)
		for i := 0; i < count; i++ {
			var msg *entity.Message
			if i == 0 {
				msg = &entity.Message{
					ID:        shortID("message"),
					ChatID:    chat.ID,
					SenderID:  chat.LastMessageSenderID,
					Text:      chat.LastMessage,
					Timestamp: chat.LastMessageTimestamp,
				}
			} else {
				msg = &entity.Message{
					ID:        shortID("message"),
					ChatID:    chat.ID,
					SenderID:  chat.Participants[i%2],
					Text:      f.fillPlaceholders(f.rng.Pick(messageTemplates)),
					Timestamp: f.seq.Before(messages[i-1].Timestamp, 5, 60, time.Minute),
				}
			}
			if f.rng.Chance(0.1) {
				msg.ImageURL = fmt.Sprintf("https://images.unsplash.com/photo-%d-%s?w=300",
					f.rng.Between(1500000000, 1600000000), uuid.NewString()[:8])
			}
			msg.IsRead = true
			if i == 0 {
				other := chat.Participants[0]
				if other == msg.SenderID {
					other = chat.Participants[1]
				}
				if chat.UnreadCount[other] > 0 {
					msg.IsRead = false
				}
			}
			messages = append(messages, msg)
		}
		for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
			messages[i], messages[j] = messages[j], messages[i]
		}
		all = append(all, messages...)
	}
	return all
}

func (f *Factory) fillPlaceholders(text string) string {
	if strings.Contains(text, "$PRICE") {
		text = strings.ReplaceAll(text, "$PRICE", fmt.Sprintf("$%d", f.rng.Between(50, 500)))
	}
	if strings.Contains(text, "CITY") {
		text = strings.ReplaceAll(text, "CITY", f.rng.Pick(cities))
	}
	return text
}
