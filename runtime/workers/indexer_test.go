package workers

import (
	"chat-live/domain"
	"chat-live/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIndexWorker_Drains_Queue(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	index := mocks.NewMockIMessageIndex(ctrl)
	queue := make(chan domain.Message, 3)

	first := domain.Message{ID: uuid.New(), Text: "first"}
	second := domain.Message{ID: uuid.New(), Text: "second"}
	gomock.InOrder(
		index.EXPECT().Index(first).Return(fmt.Errorf("disk full")),
		index.EXPECT().Index(second).Return(nil),
	)
	queue <- first
	queue <- second
	close(queue)

	worker := NewIndexWorker(logs.GetLoggerFromLevel(slog.LevelDebug), index, queue)

	// A closed queue ends the worker, a failed indexing does not
	req.NoError(worker.Run(context.Background()))
}

func TestIndexWorker_Stops_On_Cancel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	index := mocks.NewMockIMessageIndex(ctrl)
	worker := NewIndexWorker(logs.GetLoggerFromLevel(slog.LevelDebug), index, make(chan domain.Message))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req.ErrorIs(worker.Run(ctx), context.DeadlineExceeded)
}
