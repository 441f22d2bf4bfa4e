//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"chat-live/contract"
	"chat-live/domain"
	"chat-live/domain/event"
	"chat-live/errors"
	"chat-live/infrastructure/storage"
	"chat-live/moderation"
	"chat-live/repositories"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IChatService interface {
	UsersForSidebar(caller domain.UserID) ([]domain.User, error)
	GetMessages(caller, other domain.UserID, cursor *string) ([]domain.Message, *string, error)
	SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error)
	MarkAsRead(ctx context.Context, cmd domain.MarkReadCommand) (domain.Message, error)
	Search(ctx context.Context, caller, other domain.UserID, query string) ([]domain.Message, error)
}

// ChatService persists direct messages and pushes the matching real-time
// events through the router. Delivery stays best effort: an offline
// receiver finds the message in its history later.
type ChatService struct {
	log         *slog.Logger
	messages    repositories.IMessageRepository
	users       repositories.IUserRepository
	index       repositories.IMessageIndex
	indexQueue  chan<- domain.Message
	moderator   *moderation.Moderator
	media       storage.IMediaStore
	router      contract.IRouter
	searchLimit int
}

func NewChatService(log *slog.Logger,
	messages repositories.IMessageRepository, users repositories.IUserRepository,
	index repositories.IMessageIndex, indexQueue chan<- domain.Message,
	moderator *moderation.Moderator, media storage.IMediaStore,
	router contract.IRouter, searchLimit int) *ChatService {
	return &ChatService{
		log:         log,
		messages:    messages,
		users:       users,
		index:       index,
		indexQueue:  indexQueue,
		moderator:   moderator,
		media:       media,
		router:      router,
		searchLimit: searchLimit,
	}
}

func (s *ChatService) UsersForSidebar(caller domain.UserID) ([]domain.User, error) {
	users, err := s.users.ListUsers(caller)
	if err != nil {
		return nil, err
	}
	return lo.Ternary(users == nil, []domain.User{}, users), nil
}

func (s *ChatService) GetMessages(caller, other domain.UserID, cursor *string) ([]domain.Message, *string, error) {
	messages, next, err := s.messages.GetConversation(caller, other, cursor)
	if err != nil {
		return nil, nil, err
	}
	return lo.Ternary(messages == nil, []domain.Message{}, messages), next, nil
}

// SendMessage moderates, persists and pushes a new message to its receiver.
func (s *ChatService) SendMessage(_ context.Context, cmd domain.SendMessageCommand) (domain.Message, error) {
	text := strings.TrimSpace(cmd.Text)
	if text == "" && cmd.Image == "" {
		return domain.Message{}, errors.ErrEmptyMessage
	}
	if _, err := s.users.GetUserByID(cmd.ReceiverID); err != nil {
		return domain.Message{}, err
	}

	verdict := s.moderator.Review(text)
	if len(verdict.CensoredWords) > 0 {
		s.log.Info("Message censored", "sender_id", cmd.SenderID, "words", len(verdict.CensoredWords))
	}

	var imageURL string
	if cmd.Image != "" {
		url, err := s.media.Save(cmd.Image)
		if err != nil {
			return domain.Message{}, err
		}
		imageURL = url
	}

	now := time.Now().UTC()
	message := domain.Message{
		ID:         uuid.New(),
		SenderID:   cmd.SenderID,
		ReceiverID: cmd.ReceiverID,
		Text:       verdict.Content,
		Image:      imageURL,
		Lang:       verdict.Lang,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.messages.StoreMessage(message); err != nil {
		return domain.Message{}, fmt.Errorf("store message: %w", err)
	}

	s.enqueueIndex(message)
	s.router.Route(message.ReceiverID, event.NewMessage, message)
	return message, nil
}

// MarkAsRead flags a message as read on behalf of its receiver and tells the sender.
func (s *ChatService) MarkAsRead(_ context.Context, cmd domain.MarkReadCommand) (domain.Message, error) {
	id, err := uuid.Parse(cmd.MessageID)
	if err != nil {
		return domain.Message{}, errors.ErrMessageNotFound
	}
	message, err := s.messages.GetMessage(id)
	if err != nil {
		return domain.Message{}, err
	}
	if message.ReceiverID != cmd.CallerID {
		return domain.Message{}, errors.ErrNotReceiver
	}

	updated, err := s.messages.MarkAsRead(id)
	if err != nil {
		return domain.Message{}, err
	}

	s.router.Route(updated.SenderID, event.MessageRead, event.ReadNotice{
		MessageID:  updated.ID.String(),
		ReceiverID: cmd.CallerID,
		ReadStatus: event.ReadStatusSeen,
	})
	return updated, nil
}

// Search returns the messages of the conversation matching query, best match first.
func (s *ChatService) Search(ctx context.Context, caller, other domain.UserID, query string) ([]domain.Message, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", errors.ErrInvalidPayload)
	}
	ids, err := s.index.Search(ctx, caller, other, query, s.searchLimit)
	if err != nil {
		return nil, err
	}

	found := make([]domain.Message, 0, len(ids))
	for _, id := range ids {
		message, err := s.messages.GetMessage(id)
		if stderrors.Is(err, errors.ErrMessageNotFound) {
			s.log.Debug("Indexed message missing from storage", "message_id", id)
			continue
		}
		if err != nil {
			return nil, err
		}
		found = append(found, message)
	}
	return found, nil
}

func (s *ChatService) enqueueIndex(message domain.Message) {
	if message.Text == "" {
		return
	}
	select {
	case s.indexQueue <- message:
	default:
		s.log.Warn("Index queue full, message not indexed", "message_id", message.ID)
	}
}
