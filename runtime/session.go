package runtime

import (
	"chat-live/contract"
	"chat-live/domain"
	"chat-live/domain/event"
	"chat-live/errors"
	"chat-live/observability"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
)

type signalHandler func(ctx context.Context, session *contract.Session, data json.RawMessage) error

// SessionManager drives the lifecycle of every physical connection:
// connect, inbound signals, disconnect.
type SessionManager struct {
	log      *slog.Logger
	registry contract.IRegistry
	typing   contract.ITypingTracker
	router   contract.IRouter
	monitor  *observability.Monitor
	validate *validator.Validate
	handlers map[event.Inbound]signalHandler

	// presenceMu orders presence broadcasts so that every connection
	// receives snapshots in the order they were taken.
	presenceMu sync.Mutex

	// live holds every connected session, replaced ones included,
	// until its disconnect.
	liveMu sync.Mutex
	live   map[*contract.Session]struct{}
}

func NewSessionManager(log *slog.Logger, registry contract.IRegistry, typing contract.ITypingTracker,
	router contract.IRouter, monitor *observability.Monitor) *SessionManager {
	m := &SessionManager{
		log:      log,
		registry: registry,
		typing:   typing,
		router:   router,
		monitor:  monitor,
		validate: validator.New(),
		live:     make(map[*contract.Session]struct{}),
	}
	m.handlers = map[event.Inbound]signalHandler{
		event.StartTyping:       m.startTyping,
		event.StopTyping:        m.stopTyping,
		event.MessageDelivered:  m.messageDelivered,
		event.MarkMessageAsRead: m.markMessageAsRead,
	}
	return m
}

// Connect registers the connection and resends the full online list to everyone.
func (m *SessionManager) Connect(userID domain.UserID, conn contract.Conn) *contract.Session {
	ticket := m.registry.Register(userID, conn)
	session := &contract.Session{UserID: userID, Ticket: ticket, Conn: conn}
	m.liveMu.Lock()
	m.live[session] = struct{}{}
	m.liveMu.Unlock()

	m.monitor.Connected()
	m.log.Info("User connected", "user_id", userID, "conn_id", conn.ID())

	m.broadcastPresence()
	return session
}

// Disconnect releases the session.
// A session already replaced by a newer connection of the same user leaves
// the registry untouched. Its typing state is only cleared once the user
// has no current connection left.
func (m *SessionManager) Disconnect(session *contract.Session) {
	m.liveMu.Lock()
	delete(m.live, session)
	m.liveMu.Unlock()

	m.monitor.Disconnected()
	if !m.registry.UnregisterTicket(session.UserID, session.Ticket) {
		if _, online := m.registry.Lookup(session.UserID); !online {
			cleared := m.typing.ClearAllForUser(session.UserID)
			m.log.Info("Stale connection closed, user already offline", "user_id", session.UserID,
				"conn_id", session.Conn.ID(), "typing_cleared", len(cleared))
			return
		}
		m.log.Info("Stale connection closed", "user_id", session.UserID, "conn_id", session.Conn.ID())
		return
	}

	cleared := m.typing.ClearAllForUser(session.UserID)
	m.log.Info("User disconnected", "user_id", session.UserID,
		"conn_id", session.Conn.ID(), "typing_cleared", len(cleared))

	m.broadcastPresence()
}

// Handle dispatches one inbound frame.
// Unknown events and malformed payloads are ignored, the sender is never told.
func (m *SessionManager) Handle(ctx context.Context, session *contract.Session, frame event.Frame) {
	handler, ok := m.handlers[event.Inbound(frame.Event)]
	if !ok {
		m.log.Debug(errors.ErrUnknownEvent.Error(), "user_id", session.UserID, "event", frame.Event)
		return
	}
	if err := handler(ctx, session, frame.Data); err != nil {
		m.log.Debug("Inbound event ignored", "user_id", session.UserID, "event", frame.Event, "error", err)
	}
}

// CloseAll closes the handle of every live session and returns how many were closed.
// Each transport then runs the normal disconnect path.
func (m *SessionManager) CloseAll() int {
	m.liveMu.Lock()
	conns := make([]contract.Conn, 0, len(m.live))
	for session := range m.live {
		conns = append(conns, session.Conn)
	}
	m.liveMu.Unlock()

	for _, conn := range conns {
		conn.Close()
	}
	return len(conns)
}

func (m *SessionManager) broadcastPresence() {
	m.presenceMu.Lock()
	defer m.presenceMu.Unlock()

	online := m.registry.AllOnline()
	delivered := m.router.Broadcast(event.OnlineUsers, online)
	m.log.Debug("Presence broadcast", "online", len(online), "delivered", delivered)
}

func (m *SessionManager) startTyping(_ context.Context, session *contract.Session, data json.RawMessage) error {
	signal, err := decode[event.TypingSignal](m.validate, data)
	if err != nil {
		return err
	}
	typer := orDefault(signal.UserID, session.UserID)
	m.typing.SetTyping(signal.RecipientID, typer)
	m.routeToPeer(session, signal.RecipientID, event.Typing, event.TypingNotice{UserID: typer})
	return nil
}

func (m *SessionManager) stopTyping(_ context.Context, session *contract.Session, data json.RawMessage) error {
	signal, err := decode[event.TypingSignal](m.validate, data)
	if err != nil {
		return err
	}
	typer := orDefault(signal.UserID, session.UserID)
	m.typing.ClearTyping(signal.RecipientID, typer)
	m.routeToPeer(session, signal.RecipientID, event.TypingStopped, event.TypingNotice{UserID: typer})
	return nil
}

// messageDelivered notifies the receiver, not the sender, as the protocol has always done.
func (m *SessionManager) messageDelivered(_ context.Context, session *contract.Session, data json.RawMessage) error {
	signal, err := decode[event.DeliveredSignal](m.validate, data)
	if err != nil {
		return err
	}
	m.routeToPeer(session, signal.ReceiverID, event.Delivered, event.DeliveredNotice{
		MessageID: signal.MessageID,
		SenderID:  signal.SenderID,
	})
	return nil
}

func (m *SessionManager) markMessageAsRead(_ context.Context, session *contract.Session, data json.RawMessage) error {
	signal, err := decode[event.ReadSignal](m.validate, data)
	if err != nil {
		return err
	}
	m.routeToPeer(session, signal.SenderID, event.MessageRead, event.ReadNotice{
		MessageID:  signal.MessageID,
		ReceiverID: orDefault(signal.ReceiverID, session.UserID),
		ReadStatus: event.ReadStatusSeen,
	})
	return nil
}

// routeToPeer routes a signal unless target resolves to the emitting connection.
// Signals are never echoed back to the socket they came from.
func (m *SessionManager) routeToPeer(session *contract.Session, target domain.UserID, name event.Outbound, payload any) {
	if conn, ok := m.registry.Lookup(target); ok && conn == session.Conn {
		m.log.Debug("Signal not echoed to its emitter", "user_id", session.UserID, "event", name)
		return
	}
	m.router.Route(target, name, payload)
}

func decode[T any](validate *validator.Validate, data json.RawMessage) (T, error) {
	var payload T
	if len(data) == 0 {
		return payload, fmt.Errorf("%w: empty", errors.ErrInvalidPayload)
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	if err := validate.Struct(payload); err != nil {
		return payload, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return payload, nil
}

func orDefault(userID, fallback domain.UserID) domain.UserID {
	if userID == "" {
		return fallback
	}
	return userID
}
