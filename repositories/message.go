//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chat-live/domain"
	"chat-live/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	GetConversation(a, b domain.UserID, cursor *string) ([]domain.Message, *string, error)
	GetMessage(id uuid.UUID) (domain.Message, error)
	MarkAsRead(id uuid.UUID) (domain.Message, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) *MessageRepository {
	return &MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

func messageKey(m domain.Message) string {
	return fmt.Sprintf("msg:%s:%019d:%s",
		domain.ConversationKey(m.SenderID, m.ReceiverID),
		m.CreatedAt.UnixNano(),
		m.ID,
	)
}

func messageIDKey(id uuid.UUID) []byte {
	return []byte("msgid:" + id.String())
}

// StoreMessage persists a message in BadgerDB.
// The key is formatted as "msg:{conversation}:{timestamp_padded}:{uuid}" so that a
// prefix scan returns a conversation in chronological order, both directions mixed.
// A second key "msgid:{uuid}" points to it for lookups by id.
func (r *MessageRepository) StoreMessage(message domain.Message) error {
	key := []byte(messageKey(message))
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, encodeMessage(message)); err != nil {
			return err
		}
		return txn.Set(messageIDKey(message.ID), key)
	})
}

// GetConversation returns the latest messages exchanged between a and b, oldest first.
// The returned cursor points before the oldest message of the page; passing it back
// returns the previous page. It is nil once there is nothing older.
func (r *MessageRepository) GetConversation(a, b domain.UserID, cursor *string) ([]domain.Message, *string, error) {
	var messages []domain.Message
	var lastKey string
	more := false
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msg:%s:", domain.ConversationKey(a, b))
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()[prefixLen:]) == *cursor {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitMessages != nil && len(messages) == *r.limitMessages {
				r.log.Debug(fmt.Sprintf("Maximum of %d message reached", *r.limitMessages))
				more = true
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[prefixLen:])
			err := item.Value(func(value []byte) error {
				message, err := decodeMessage(value)
				if err != nil {
					return err
				}
				messages = append(messages, message)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if !more {
		return lo.Reverse(messages), nil, nil
	}
	return lo.Reverse(messages), &lastKey, nil
}

func (r *MessageRepository) GetMessage(id uuid.UUID) (domain.Message, error) {
	var message domain.Message
	err := r.db.View(func(txn *badger.Txn) error {
		_, m, err := r.find(txn, id)
		message = m
		return err
	})
	return message, err
}

// MarkAsRead flags the message as read and returns its new state.
// Marking an already read message again is harmless.
func (r *MessageRepository) MarkAsRead(id uuid.UUID) (domain.Message, error) {
	var message domain.Message
	err := r.db.Update(func(txn *badger.Txn) error {
		key, m, err := r.find(txn, id)
		if err != nil {
			return err
		}
		m.Read = true
		m.UpdatedAt = time.Now().UTC()
		message = m
		return txn.Set(key, encodeMessage(m))
	})
	return message, err
}

func (r *MessageRepository) find(txn *badger.Txn, id uuid.UUID) ([]byte, domain.Message, error) {
	item, err := txn.Get(messageIDKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, domain.Message{}, errors.ErrMessageNotFound
	}
	if err != nil {
		return nil, domain.Message{}, err
	}
	key, err := item.ValueCopy(nil)
	if err != nil {
		return nil, domain.Message{}, err
	}

	item, err = txn.Get(key)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, domain.Message{}, errors.ErrMessageNotFound
	}
	if err != nil {
		return nil, domain.Message{}, err
	}
	var message domain.Message
	err = item.Value(func(value []byte) error {
		message, err = decodeMessage(value)
		return err
	})
	return key, message, err
}
