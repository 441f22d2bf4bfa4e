// Package domain contains core concepts of the chat system.
// This file defines direct messages exchanged between two users.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a persisted direct message.
// Delivered travels on the wire but is never mutated server side.
type Message struct {
	ID         uuid.UUID `json:"_id"`
	SenderID   UserID    `json:"senderId"`
	ReceiverID UserID    `json:"receiverId"`
	Text       string    `json:"text,omitempty"`
	Image      string    `json:"image,omitempty"`
	Lang       string    `json:"lang,omitempty"`
	Read       bool      `json:"read"`
	Delivered  bool      `json:"delivered"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ConversationKey identifies the conversation between two users, whatever the direction.
func ConversationKey(a, b UserID) string {
	if a > b {
		a, b = b, a
	}
	return string(a) + "|" + string(b)
}
