package rest

import (
	"chat-live/auth"
	"chat-live/domain"
	"chat-live/errors"
	"net/http"
)

// NextCursorHeader carries the cursor of the previous page of a conversation, if any.
const NextCursorHeader = "X-Next-Cursor"

type sendMessageRequest struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

func (h *Handler) usersForSidebar(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(h.log, w, r, errors.ErrUnauthenticated)
		return
	}
	users, err := h.chat.UsersForSidebar(caller)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) getMessages(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(h.log, w, r, errors.ErrUnauthenticated)
		return
	}
	var cursor *string
	if before := r.URL.Query().Get("before"); before != "" {
		cursor = &before
	}
	messages, next, err := h.chat.GetMessages(caller, domain.UserID(r.PathValue("id")), cursor)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}
	if next != nil {
		w.Header().Set(NextCursorHeader, *next)
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(h.log, w, r, errors.ErrUnauthenticated)
		return
	}
	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.log, w, r, err)
		return
	}
	message, err := h.chat.SendMessage(r.Context(), domain.SendMessageCommand{
		SenderID:   caller,
		ReceiverID: domain.UserID(r.PathValue("id")),
		Text:       req.Text,
		Image:      req.Image,
	})
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

func (h *Handler) markAsRead(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(h.log, w, r, errors.ErrUnauthenticated)
		return
	}
	message, err := h.chat.MarkAsRead(r.Context(), domain.MarkReadCommand{
		MessageID: r.PathValue("messageId"),
		CallerID:  caller,
	})
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, message)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(h.log, w, r, errors.ErrUnauthenticated)
		return
	}
	messages, err := h.chat.Search(r.Context(), caller, domain.UserID(r.PathValue("id")), r.URL.Query().Get("q"))
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
