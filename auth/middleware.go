package auth

import (
	"chat-live/domain"
	"context"
	"net/http"
	"time"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// CookieName holds the session token, http only.
const CookieName = "jwt"

// UserFromContext returns the user authenticated by RequireUser.
func UserFromContext(ctx context.Context) (domain.UserID, bool) {
	userID, ok := ctx.Value(UserIDKey).(domain.UserID)
	return userID, ok && userID != ""
}

// Authenticate reads the session cookie of the request.
func (i *Issuer) Authenticate(r *http.Request) (domain.UserID, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", err
	}
	claims, err := i.ValidateToken(cookie.Value)
	if err != nil {
		return "", err
	}
	return domain.UserID(claims.UserID), nil
}

// RequireUser rejects requests without a valid session cookie
// and injects the user identity into the context for the handlers.
func (i *Issuer) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := i.Authenticate(r)
		if err != nil {
			http.Error(w, `{"message":"Unauthorized - No Token Provided"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserIDKey, userID)))
	})
}

// SetSessionCookie stores a freshly signed token for the user.
func (i *Issuer) SetSessionCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(i.duration / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
