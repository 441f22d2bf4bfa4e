package sink

import (
	"chat-live/domain/event"
	"chat-live/errors"
	"sync"

	"github.com/google/uuid"
)

// SocketSink is the connection handle owned by the registry.
// Send queues envelopes for the goroutine writing to the socket,
// which drains Outgoing in order until Done is closed.
type SocketSink struct {
	id        string
	Outgoing  chan event.Envelope
	done      chan struct{}
	closeOnce sync.Once
}

func NewSocketSink(bufferSize int) *SocketSink {
	return &SocketSink{
		id:       uuid.NewString(),
		Outgoing: make(chan event.Envelope, bufferSize),
		done:     make(chan struct{}),
	}
}

func (s *SocketSink) ID() string { return s.id }

// Send never blocks. A closed sink or a full buffer rejects the envelope.
func (s *SocketSink) Send(e event.Envelope) error {
	select {
	case <-s.done:
		return errors.ErrConnectionClosed
	default:
	}

	select {
	case s.Outgoing <- e:
		return nil
	default:
		return errors.ErrBackpressure
	}
}

// Close is idempotent.
func (s *SocketSink) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *SocketSink) Done() <-chan struct{} { return s.done }
