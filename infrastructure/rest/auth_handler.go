package rest

import (
	"chat-live/auth"
	"chat-live/domain"
	"chat-live/errors"
	"net/http"
)

type signupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	ProfilePic string `json:"profilePic"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.log, w, r, err)
		return
	}
	user, token, err := h.auth.Signup(domain.SignupCommand{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}
	h.issuer.SetSessionCookie(w, token.String(), h.opts.SecureCookie)
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.log, w, r, err)
		return
	}
	user, token, err := h.auth.Login(domain.LoginCommand{Email: req.Email, Password: req.Password})
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}
	h.issuer.SetSessionCookie(w, token.String(), h.opts.SecureCookie)
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) logout(w http.ResponseWriter, _ *http.Request) {
	auth.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, errorResponse{Message: "Logged out successfully"})
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(h.log, w, r, errors.ErrUnauthenticated)
		return
	}
	user, err := h.auth.Check(userID)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(h.log, w, r, errors.ErrUnauthenticated)
		return
	}
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.log, w, r, err)
		return
	}
	user, err := h.auth.UpdateProfilePic(userID, req.ProfilePic)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
