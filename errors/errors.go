package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")

	// Connection handles
	ErrConnectionClosed = fmt.Errorf("connection closed")
	ErrBackpressure     = fmt.Errorf("connection buffer full")

	// Inbound signals
	ErrUnknownEvent   = fmt.Errorf("unknown event")
	ErrInvalidPayload = fmt.Errorf("invalid payload")

	// Accounts
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet the requirements")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrUnauthenticated    = fmt.Errorf("authentication required")

	// Messages
	ErrMessageNotFound  = fmt.Errorf("message not found")
	ErrNotReceiver      = fmt.Errorf("only the receiver can mark this message as read")
	ErrEmptyMessage     = fmt.Errorf("message needs a text or an image")
	ErrUnsupportedMedia = fmt.Errorf("unsupported media type")
	ErrMediaTooLarge    = fmt.Errorf("media exceeds the maximum size")
)

// MapToHTTPStatus converts a service error into the status code returned by the REST API.
func MapToHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.Is(err, ErrUserNotFound), stderrors.Is(err, ErrMessageNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, ErrUserAlreadyExists):
		return http.StatusConflict
	case stderrors.Is(err, ErrInvalidCredentials),
		stderrors.Is(err, ErrInvalidPassword),
		stderrors.Is(err, ErrInvalidPayload),
		stderrors.Is(err, ErrEmptyMessage):
		return http.StatusBadRequest
	case stderrors.Is(err, ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	case stderrors.Is(err, ErrMediaTooLarge):
		return http.StatusRequestEntityTooLarge
	case stderrors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case stderrors.Is(err, ErrNotReceiver):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
