package runtime

import (
	"chat-live/domain"
	"slices"
	"sync"
)

type Set map[domain.UserID]struct{}

// TypingTracker remembers who is typing to whom.
// Entries have no TTL: they live until a stop-typing or a disconnect.
type TypingTracker struct {
	mu     sync.Mutex
	typing map[domain.UserID]Set // map recipient -> typers
}

func NewTypingTracker() *TypingTracker {
	return &TypingTracker{typing: make(map[domain.UserID]Set)}
}

func (t *TypingTracker) SetTyping(recipientID, userID domain.UserID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.typing[recipientID]; !ok {
		t.typing[recipientID] = make(Set)
	}
	t.typing[recipientID][userID] = struct{}{}
}

func (t *TypingTracker) ClearTyping(recipientID, userID domain.UserID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clear(recipientID, userID)
}

// ClearAllForUser removes userID from every recipient it was typing to.
// It returns those recipients, sorted.
func (t *TypingTracker) ClearAllForUser(userID domain.UserID) []domain.UserID {
	t.mu.Lock()
	defer t.mu.Unlock()

	var affected []domain.UserID
	for recipientID, typers := range t.typing {
		if _, ok := typers[userID]; ok {
			affected = append(affected, recipientID)
			t.clear(recipientID, userID)
		}
	}
	slices.Sort(affected)
	return affected
}

// TypingTo returns the users currently typing to recipientID, sorted.
func (t *TypingTracker) TypingTo(recipientID domain.UserID) []domain.UserID {
	t.mu.Lock()
	defer t.mu.Unlock()

	typers := t.typing[recipientID]
	if len(typers) == 0 {
		return nil
	}
	out := make([]domain.UserID, 0, len(typers))
	for userID := range typers {
		out = append(out, userID)
	}
	slices.Sort(out)
	return out
}

// clear must be called with the lock held.
// An empty set is dropped so that entries only exist while someone types.
func (t *TypingTracker) clear(recipientID, userID domain.UserID) {
	typers, ok := t.typing[recipientID]
	if !ok {
		return
	}
	delete(typers, userID)
	if len(typers) == 0 {
		delete(t.typing, recipientID)
	}
}
