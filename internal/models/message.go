package models

import (
	"time"
)

type Message struct {
	ID         int       `json:"message_id"`
	SenderID   int       `json:"sender_id"`
	ReceiverID int       `json:"receiver_id"`
	AdID       int       `json:"ad_id"`
	Message    string    `json:"message"`
	SentAt     time.Time `json:"sent_at"`
}

type MessageUpdate struct {
	Message *string `json:"message"`
}
