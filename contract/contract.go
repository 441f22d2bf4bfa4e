//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-live/domain"
	"chat-live/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Conn is one live bidirectional channel to a client.
// Send must never block: it queues the envelope or fails.
// Once closed, every Send fails with errors.ErrConnectionClosed.
type Conn interface {
	ID() string
	Send(e event.Envelope) error
	Close()
}

// Ticket is the generation token handed out for each registration.
type Ticket string

// Session is one physical connection bound to a user.
type Session struct {
	UserID domain.UserID
	Ticket Ticket
	Conn   Conn
}

type IRegistry interface {
	Register(userID domain.UserID, conn Conn) Ticket
	Unregister(userID domain.UserID)
	UnregisterTicket(userID domain.UserID, ticket Ticket) bool
	Lookup(userID domain.UserID) (Conn, bool)
	AllOnline() []domain.UserID
	Handles() []Conn
}

type ITypingTracker interface {
	SetTyping(recipientID, userID domain.UserID)
	ClearTyping(recipientID, userID domain.UserID)
	ClearAllForUser(userID domain.UserID) []domain.UserID
	TypingTo(recipientID domain.UserID) []domain.UserID
}

type IRouter interface {
	Route(target domain.UserID, name event.Outbound, payload any) bool
	Broadcast(name event.Outbound, payload any) int
}

type ISessionManager interface {
	Connect(userID domain.UserID, conn Conn) *Session
	Handle(ctx context.Context, session *Session, frame event.Frame)
	Disconnect(session *Session)
}
