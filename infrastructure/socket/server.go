package socket

import (
	"chat-live/auth"
	"chat-live/contract"
	"chat-live/domain"
	"chat-live/domain/event"
	"chat-live/sink"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	defaultBufferSize   = 64
	defaultWriteTimeout = 10 * time.Second
	defaultPongTimeout  = 60 * time.Second
)

type Options struct {
	BufferSize      int
	RequireAuth     bool
	AllowedOrigins  []string
	WriteTimeout    time.Duration
	PongTimeout     time.Duration
	MaxMessageBytes int64
}

// Server upgrades GET /ws?userId=<id> requests and binds every socket to a session.
// One goroutine reads frames, another one drains the connection buffer.
type Server struct {
	log      *slog.Logger
	sessions contract.ISessionManager
	issuer   *auth.Issuer
	opts     Options
	upgrader websocket.Upgrader
}

func NewServer(log *slog.Logger, sessions contract.ISessionManager, issuer *auth.Issuer, opts Options) *Server {
	if opts.BufferSize <= 0 {
		opts.BufferSize = defaultBufferSize
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}
	if opts.PongTimeout <= 0 {
		opts.PongTimeout = defaultPongTimeout
	}
	s := &Server{log: log, sessions: sessions, issuer: issuer, opts: opts}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := domain.UserID(r.URL.Query().Get("userId"))
	if userID == "" {
		http.Error(w, `{"message":"userId is required"}`, http.StatusBadRequest)
		return
	}
	if status, ok := s.authorize(r, userID); !ok {
		http.Error(w, `{"message":"`+http.StatusText(status)+`"}`, status)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader already answered the client
		s.log.Debug("Websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	handle := sink.NewSocketSink(s.opts.BufferSize)
	session := s.sessions.Connect(userID, handle)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.writePump(conn, handle)
	}()

	s.readPump(r.Context(), conn, session)

	s.sessions.Disconnect(session)
	handle.Close()
	<-done
}

// authorize checks the session cookie when there is one.
// A cookie for another user is always refused.
func (s *Server) authorize(r *http.Request, userID domain.UserID) (int, bool) {
	if s.issuer == nil {
		return http.StatusOK, true
	}
	authenticated, err := s.issuer.Authenticate(r)
	switch {
	case err != nil && s.opts.RequireAuth:
		return http.StatusUnauthorized, false
	case err != nil:
		return http.StatusOK, true
	case authenticated != userID:
		return http.StatusForbidden, false
	default:
		return http.StatusOK, true
	}
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if len(s.opts.AllowedOrigins) == 0 {
		return sameHost(r, origin)
	}
	return slices.Contains(s.opts.AllowedOrigins, "*") || slices.Contains(s.opts.AllowedOrigins, origin)
}

func (s *Server) readPump(ctx context.Context, conn *websocket.Conn, session *contract.Session) {
	if s.opts.MaxMessageBytes > 0 {
		conn.SetReadLimit(s.opts.MaxMessageBytes)
	}
	_ = conn.SetReadDeadline(time.Now().Add(s.opts.PongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(s.opts.PongTimeout))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Debug("Websocket closed unexpectedly", "user_id", session.UserID, "error", err)
			}
			return
		}
		var frame event.Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			s.log.Debug("Malformed frame ignored", "user_id", session.UserID, "error", err)
			continue
		}
		s.handle(ctx, session, frame)
	}
}

// handle keeps the connection alive when a handler panics.
func (s *Server) handle(ctx context.Context, session *contract.Session, frame event.Frame) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Frame handler panicked", "user_id", session.UserID, "event", frame.Event, "panic", r)
		}
	}()
	s.sessions.Handle(ctx, session, frame)
}

// writePump is the only writer of conn. Closing conn on exit unblocks the reader.
func (s *Server) writePump(conn *websocket.Conn, handle *sink.SocketSink) {
	ticker := time.NewTicker(pingPeriod(s.opts.PongTimeout))
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case envelope := <-handle.Outgoing:
			if err := s.write(conn, envelope); err != nil {
				s.log.Debug("Websocket write failed", "conn_id", handle.ID(), "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(s.opts.WriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-handle.Done():
			s.flush(conn, handle)
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(s.opts.WriteTimeout))
			return
		}
	}
}

// flush writes what was queued before the handle closed.
func (s *Server) flush(conn *websocket.Conn, handle *sink.SocketSink) {
	for {
		select {
		case envelope := <-handle.Outgoing:
			if err := s.write(conn, envelope); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (s *Server) write(conn *websocket.Conn, envelope event.Envelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(s.opts.WriteTimeout))
	return conn.WriteJSON(envelope)
}

func pingPeriod(pongTimeout time.Duration) time.Duration {
	return pongTimeout * 9 / 10
}

func sameHost(r *http.Request, origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}
