package repositories

import (
	"chat-live/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	req := require.New(t)
	db := openDB(t)
	messages := NewMessageRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug), nil)
	users := NewUserRepository(db)

	// Given one user and one message stored
	user, err := users.CreateUser(domain.User{FullName: "Alice", Email: "alice@example.com", PasswordHash: "h"})
	req.NoError(err)
	msg := domain.Message{
		ID:         uuid.New(),
		SenderID:   user.ID,
		ReceiverID: "u2",
		Text:       "hello",
		CreatedAt:  time.Date(2025, 1, 2, 10, 30, 0, 0, time.UTC),
	}
	req.NoError(messages.StoreMessage(msg))

	// When the message records are inspected
	rows, err := Inspect(db, "msg:", 0)
	req.NoError(err)

	// Then they are decoded
	req.Len(rows, 1)
	req.Equal("MESSAGE", rows[0].Type)
	req.Equal("10:30:00", rows[0].Timestamp)
	req.Equal(msg.ID.String()[:8], rows[0].EntityID)
	req.Equal(domain.ConversationKey(user.ID, "u2"), rows[0].Namespace)
	req.Contains(rows[0].Detail, "hello")

	rows, err = Inspect(db, "user:", 0)
	req.NoError(err)
	req.Len(rows, 1)
	req.Equal("USER", rows[0].Type)
	req.Equal("Alice <alice@example.com>", rows[0].Detail)

	// Every record, capped
	rows, err = Inspect(db, "", 2)
	req.NoError(err)
	req.Len(rows, 2)
}

func TestMapRecord_Raw(t *testing.T) {
	row := MapRecord("something:else", []byte("abc"))

	require.Equal(t, "RAW", row.Type)
	require.Equal(t, "Size: 3 bytes", row.Detail)
}
