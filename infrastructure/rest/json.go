package rest

import (
	"chat-live/errors"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError hides internal errors behind a generic message, the others are shown as is.
func writeError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status := errors.MapToHTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Message: message})
}

func decodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return nil
}
