//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_search_index.go -package=mocks
package repositories

import (
	"chat-live/domain"
	"context"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

type IMessageIndex interface {
	Index(message domain.Message) error
	Search(ctx context.Context, a, b domain.UserID, text string, limit int) ([]uuid.UUID, error)
}

const (
	fieldConversation = "conversation"
	fieldText         = "text"
	fieldSender       = "sender"
)

// MessageIndex is the full text index of message texts, scoped by conversation.
// Badger stays the source of truth: the index only returns message IDs.
type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger) *MessageIndex {
	return &MessageIndex{writer: writer, log: log}
}

// Index adds or replaces the document of a message. Messages without text are skipped.
func (i *MessageIndex) Index(message domain.Message) error {
	if message.Text == "" {
		return nil
	}
	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewKeywordField(fieldConversation, domain.ConversationKey(message.SenderID, message.ReceiverID))).
		AddField(bluge.NewKeywordField(fieldSender, message.SenderID.String()).StoreValue()).
		AddField(bluge.NewTextField(fieldText, message.Text))

	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("index message %s: %w", message.ID, err)
	}
	return nil
}

// Search returns the IDs of the best matching messages between a and b, best first.
func (i *MessageIndex) Search(ctx context.Context, a, b domain.UserID, text string, limit int) ([]uuid.UUID, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Failed to close index reader", "error", err)
		}
	}()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(domain.ConversationKey(a, b)).SetField(fieldConversation)).
		AddMust(bluge.NewMatchQuery(text).SetField(fieldText))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("search messages: %w", err)
	}

	var ids []uuid.UUID
	match, err := iterator.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field != "_id" {
				return true
			}
			id, parseErr := uuid.Parse(string(value))
			if parseErr != nil {
				i.log.Debug("Skipping unparsable document id", "id", string(value))
				return false
			}
			ids = append(ids, id)
			return false
		})
		if visitErr != nil {
			return nil, visitErr
		}
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}
