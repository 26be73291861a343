package entity

import "time"

type Chat struct {
	ID                   string         `json:"id" firestore:"id"`
	Participants         []string       `json:"participants" firestore:"participants"`
	ProductID            string         `json:"product_id" firestore:"productId"`
	LastMessage          string         `json:"last_message" firestore:"lastMessage"`
	LastMessageTimestamp time.Time      `json:"last_message_timestamp" firestore:"lastMessageTimestamp"`
	LastMessageSenderID  string         `json:"last_message_sender_id" firestore:"lastMessageSenderId"`
	UnreadCount          map[string]int `json:"unread_count" firestore:"unreadCount"`
}
