package runtime_test

import (
	"chat-live/contract"
	"chat-live/domain"
	"chat-live/domain/event"
	"chat-live/observability"
	"chat-live/runtime"
	"chat-live/runtime/workers"
	"chat-live/sink"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOrchestrator_LoadTest(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := slog.New(slog.DiscardHandler)
	o := runtime.NewOrchestrator(log, workers.NewSupervisor(log), observability.NewMonitor(), 0)

	numClients := 100
	signalsPerClient := 200

	// 1. Every client connects, then the presence snapshots are drained
	sinks := make([]*sink.SocketSink, numClients)
	sessions := make([]*contract.Session, numClients)
	for i := 0; i < numClients; i++ {
		sinks[i] = sink.NewSocketSink(numClients + signalsPerClient)
		sessions[i] = o.Sessions().Connect(domain.UserID(fmt.Sprintf("user-%03d", i)), sinks[i])
	}
	for _, s := range sinks {
		drain(s)
	}
	before := o.Stats()

	// 2. Each client types to its neighbour in a ring
	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < numClients; i++ {
		wg.Add(1)
		go func(clientID int) {
			defer wg.Done()
			peer := fmt.Sprintf("user-%03d", (clientID+1)%numClients)
			data, _ := json.Marshal(map[string]string{"recipientId": peer})
			for j := 0; j < signalsPerClient; j++ {
				name := event.StartTyping
				if j%2 == 1 {
					name = event.StopTyping
				}
				o.Sessions().Handle(ctx, sessions[clientID], event.Frame{Event: string(name), Data: data})
			}
		}(i)
	}
	wg.Wait()
	duration := time.Since(start)

	// 3. Results
	after := o.Stats()
	total := uint64(numClients * signalsPerClient)
	received := 0
	for _, s := range sinks {
		received += drain(s)
	}

	t.Logf("Duration: %v, routed: %d, dropped: %d, throughput: %.0f signals/sec",
		duration, after.Routed-before.Routed, after.Dropped-before.Dropped, float64(total)/duration.Seconds())

	req.Equal(total, after.Routed-before.Routed)
	req.Equal(before.Dropped, after.Dropped)
	req.Equal(int(total), received)
	for i := 0; i < numClients; i++ {
		// an even number of signals always ends with stop-typing
		req.Empty(o.Typing().TypingTo(domain.UserID(fmt.Sprintf("user-%03d", i))))
	}
}

func drain(s *sink.SocketSink) int {
	n := 0
	for {
		select {
		case <-s.Outgoing:
			n++
		default:
			return n
		}
	}
}
