package repositories

import (
	"chat-live/domain"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func Test_Conversation_History_Performance(t *testing.T) {
	if testing.Short() {
		t.Skip("seeds a large history")
	}
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	defer db.Close()

	limit := 50
	repo := NewMessageRepository(db, slog.Default(), &limit)
	totalMessages := 200_000
	start := time.Now().UTC()

	// --- Phase 1: SEEDING, spread over 100 conversations ---
	startSeed := time.Now()
	wb := db.NewWriteBatch()
	for i := 0; i < totalMessages; i++ {
		m := domain.Message{
			ID:         uuid.New(),
			SenderID:   domain.UserID(fmt.Sprintf("user_%d", i%100)),
			ReceiverID: "target",
			Text:       "Hello world, this is a performance test for the history!",
			CreatedAt:  start.Add(time.Duration(i) * time.Microsecond),
		}
		req.NoError(wb.Set([]byte(messageKey(m)), encodeMessage(m)))
		req.NoError(wb.Set(messageIDKey(m.ID), []byte(messageKey(m))))
	}
	req.NoError(wb.Flush())
	t.Logf("Seeded %d messages in %v", totalMessages, time.Since(startSeed))

	// --- Phase 2: LATEST PAGE OF ONE CONVERSATION ---
	startGet := time.Now()
	messages, cursor, err := repo.GetConversation("target", "user_42", nil)
	req.NoError(err)
	t.Logf("Retrieved %d messages in %v", len(messages), time.Since(startGet))

	req.Len(messages, limit)
	req.NotNil(cursor)
	req.True(lo.EveryBy(messages, func(m domain.Message) bool { return m.SenderID == "user_42" }))
}

func TestMessageRepository_ConcurrentStores(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openDB(t), slog.Default(), nil)

	// Given: Configuration for concurrent writes
	const (
		numGoroutines    = 10
		writesPerRoutine = 50
		totalWrites      = numGoroutines * writesPerRoutine
	)

	var wg sync.WaitGroup
	var errorCount atomic.Int32
	storedIDs := make([]uuid.UUID, totalWrites)
	at := time.Now().UTC()

	// When: Multiple goroutines write to the same conversation
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(routineID int) {
			defer wg.Done()
			for j := 0; j < writesPerRoutine; j++ {
				idx := routineID*writesPerRoutine + j
				m := newMessage("alice", "bob", fmt.Sprintf("message %d-%d", routineID, j),
					at.Add(time.Duration(idx)*time.Millisecond))
				storedIDs[idx] = m.ID
				if err := repo.StoreMessage(m); err != nil {
					errorCount.Add(1)
				}
			}
		}(i)
	}
	wg.Wait()

	// Then: All writes succeed and every message is readable by id
	req.Zero(errorCount.Load())
	for _, id := range storedIDs {
		_, err := repo.GetMessage(id)
		req.NoError(err)
	}

	// And: The history is complete and ordered
	history, cursor, err := repo.GetConversation("bob", "alice", nil)
	req.NoError(err)
	req.Nil(cursor)
	req.Len(history, totalWrites)
	req.True(lo.IsSortedByKey(history, func(m domain.Message) int64 { return m.CreatedAt.UnixNano() }))
}
