package rest

import (
	"chat-live/auth"
	"chat-live/services"
	"io/fs"
	"log/slog"
	"net/http"
)

type Options struct {
	MediaDir      string
	MediaPrefix   string
	SecureCookie  bool
	MaxBodyBytes  int64
	SocketHandler http.Handler
}

// Handler serves the REST API, the uploaded media and the websocket endpoint.
type Handler struct {
	log    *slog.Logger
	auth   services.IAuthService
	chat   services.IChatService
	issuer *auth.Issuer
	opts   Options
}

func NewHandler(log *slog.Logger, authService services.IAuthService, chatService services.IChatService,
	issuer *auth.Issuer, opts Options) *Handler {
	return &Handler{log: log, auth: authService, chat: chatService, issuer: issuer, opts: opts}
}

// Routes builds the mux. Every route under /api/messages and the
// private auth routes need a valid session cookie.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	private := func(f http.HandlerFunc) http.Handler {
		return h.issuer.RequireUser(h.limitBody(f))
	}

	mux.Handle("POST /api/auth/signup", h.limitBody(h.signup))
	mux.Handle("POST /api/auth/login", h.limitBody(h.login))
	mux.HandleFunc("POST /api/auth/logout", h.logout)
	mux.Handle("GET /api/auth/check", private(h.check))
	mux.Handle("PUT /api/auth/update-profile", private(h.updateProfile))

	mux.Handle("GET /api/messages/users", private(h.usersForSidebar))
	mux.Handle("GET /api/messages/{id}", private(h.getMessages))
	mux.Handle("POST /api/messages/send/{id}", private(h.sendMessage))
	mux.Handle("PUT /api/messages/read/{messageId}", private(h.markAsRead))
	mux.Handle("GET /api/messages/search/{id}", private(h.search))

	if h.opts.MediaDir != "" {
		prefix := h.opts.MediaPrefix + "/"
		mux.Handle("GET "+prefix, http.StripPrefix(prefix, http.FileServer(filesOnly{http.Dir(h.opts.MediaDir)})))
	}
	if h.opts.SocketHandler != nil {
		mux.Handle("GET /ws", h.opts.SocketHandler)
	}
	mux.HandleFunc("GET /up", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return recovering(h.log, logging(h.log, mux))
}

func (h *Handler) limitBody(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.opts.MaxBodyBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
		}
		next(w, r)
	})
}

// filesOnly hides directories so that uploaded media cannot be listed.
type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
