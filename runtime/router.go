package runtime

import (
	"chat-live/contract"
	"chat-live/domain"
	"chat-live/domain/event"
	"chat-live/observability"
	"log/slog"
)

// Router pushes outbound events to the connection of a user.
//
// Delivery is fire-and-forget: an offline user, a closed connection or a
// full buffer silently drops the event. Nothing is queued for later and
// nothing is retried. Events routed to the same connection keep their order.
type Router struct {
	log      *slog.Logger
	registry contract.IRegistry
	monitor  *observability.Monitor
}

func NewRouter(log *slog.Logger, registry contract.IRegistry, monitor *observability.Monitor) *Router {
	return &Router{log: log, registry: registry, monitor: monitor}
}

// Route delivers the event to target if it is online.
// It reports whether the event was handed to a connection.
func (r *Router) Route(target domain.UserID, name event.Outbound, payload any) bool {
	conn, ok := r.registry.Lookup(target)
	if !ok {
		r.monitor.Dropped()
		r.log.Debug("Target offline, event dropped", "user_id", target, "event", name)
		return false
	}
	return r.deliver(conn, event.Envelope{Name: name, Payload: payload})
}

// Broadcast delivers the event to every connected user and returns how many accepted it.
func (r *Router) Broadcast(name event.Outbound, payload any) int {
	envelope := event.Envelope{Name: name, Payload: payload}
	delivered := 0
	for _, conn := range r.registry.Handles() {
		if r.deliver(conn, envelope) {
			delivered++
		}
	}
	return delivered
}

func (r *Router) deliver(conn contract.Conn, envelope event.Envelope) bool {
	if err := conn.Send(envelope); err != nil {
		r.monitor.Dropped()
		r.log.Debug("Event not delivered", "conn_id", conn.ID(), "event", envelope.Name, "error", err)
		return false
	}
	r.monitor.Routed()
	return true
}
