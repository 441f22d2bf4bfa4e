// Package event defines the signaling protocol spoken over a live connection.
// Inbound events come from clients, outbound events are pushed by the server.
package event

import (
	"chat-live/domain"
	"encoding/json"
)

// Inbound names an event a client may emit.
type Inbound string

const (
	StartTyping       Inbound = "start-typing"
	StopTyping        Inbound = "stop-typing"
	MessageDelivered  Inbound = "message-delivered"
	MarkMessageAsRead Inbound = "mark-message-as-read"
)

// Outbound names an event the server pushes to a connection.
type Outbound string

const (
	OnlineUsers   Outbound = "getOnlineUsers"
	Typing        Outbound = "typing"
	TypingStopped Outbound = "stop-typing"
	Delivered     Outbound = "message-delivered"
	MessageRead   Outbound = "message-read"
	NewMessage    Outbound = "newMessage"
)

const ReadStatusSeen = "seen"

// Frame is the JSON object exchanged on the socket in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Envelope is an outbound event waiting to be written to a connection.
type Envelope struct {
	Name    Outbound
	Payload any
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(e.Payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Frame{Event: string(e.Name), Data: data})
}

// TypingSignal is the payload of start-typing and stop-typing.
// UserID falls back to the connection owner when omitted.
type TypingSignal struct {
	UserID      domain.UserID `json:"userId"`
	RecipientID domain.UserID `json:"recipientId" validate:"required"`
}

// DeliveredSignal is the payload of message-delivered.
type DeliveredSignal struct {
	MessageID  string        `json:"messageId" validate:"required"`
	SenderID   domain.UserID `json:"senderId"`
	ReceiverID domain.UserID `json:"receiverId" validate:"required"`
}

// ReadSignal is the payload of mark-message-as-read.
// ReceiverID falls back to the connection owner when omitted.
type ReadSignal struct {
	MessageID  string        `json:"messageId" validate:"required"`
	SenderID   domain.UserID `json:"senderId" validate:"required"`
	ReceiverID domain.UserID `json:"receiverId"`
}

type TypingNotice struct {
	UserID domain.UserID `json:"userId"`
}

type DeliveredNotice struct {
	MessageID string        `json:"messageId"`
	SenderID  domain.UserID `json:"senderId"`
}

type ReadNotice struct {
	MessageID  string        `json:"messageId"`
	ReceiverID domain.UserID `json:"receiverId"`
	ReadStatus string        `json:"readStatus"`
}
