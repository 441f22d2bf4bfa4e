package runtime

import (
	"chat-live/contract"
	"chat-live/domain"
	"slices"
	"sync"

	"github.com/google/uuid"
)

type registration struct {
	conn   contract.Conn
	ticket contract.Ticket
}

// Registry is the single source of truth for "is this user online".
// It maps a user to its one active connection.
// The lock only covers map reads and writes, never a Send.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.UserID]registration
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[domain.UserID]registration)}
}

// Register stores the connection of a user, replacing any previous one.
// The replaced connection is not closed nor notified.
// The returned ticket identifies this registration for UnregisterTicket.
func (r *Registry) Register(userID domain.UserID, conn contract.Conn) contract.Ticket {
	ticket := contract.Ticket(uuid.NewString())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[userID] = registration{conn: conn, ticket: ticket}
	return ticket
}

// Unregister removes the user whatever registration is current.
func (r *Registry) Unregister(userID domain.UserID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}

// UnregisterTicket removes the user only if ticket is still the current registration.
// A connection replaced by a newer one cannot evict its successor.
func (r *Registry) UnregisterTicket(userID domain.UserID, ticket contract.Ticket) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.sessions[userID]
	if !ok || current.ticket != ticket {
		return false
	}
	delete(r.sessions, userID)
	return true
}

func (r *Registry) Lookup(userID domain.UserID) (contract.Conn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	current, ok := r.sessions[userID]
	if !ok {
		return nil, false
	}
	return current.conn, true
}

// AllOnline returns a sorted snapshot of the connected users.
func (r *Registry) AllOnline() []domain.UserID {
	r.mu.RLock()
	online := make([]domain.UserID, 0, len(r.sessions))
	for userID := range r.sessions {
		online = append(online, userID)
	}
	r.mu.RUnlock()

	slices.Sort(online)
	return online
}

// Handles returns a snapshot of every active connection.
func (r *Registry) Handles() []contract.Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handles := make([]contract.Conn, 0, len(r.sessions))
	for _, current := range r.sessions {
		handles = append(handles, current.conn)
	}
	return handles
}
