package workers

import (
	"chat-live/domain"
	"chat-live/repositories"
	"context"
	"log/slog"
)

// IndexWorker feeds the full text index from the queue filled by the chat service.
// A failed indexing is logged and skipped: the message itself is already stored.
type IndexWorker struct {
	log   *slog.Logger
	index repositories.IMessageIndex
	queue <-chan domain.Message
}

func NewIndexWorker(log *slog.Logger, index repositories.IMessageIndex, queue <-chan domain.Message) *IndexWorker {
	return &IndexWorker{log: log, index: index, queue: queue}
}

func (w *IndexWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping index worker")
			return ctx.Err()
		case message, ok := <-w.queue:
			if !ok {
				w.log.Debug("Index queue closed")
				return nil
			}
			if err := w.index.Index(message); err != nil {
				w.log.Warn("Failed to index message", "message_id", message.ID, "error", err)
			}
		}
	}
}
