package rest

import (
	"chat-live/auth"
	"chat-live/domain"
	"chat-live/errors"
	"chat-live/mocks"
	"chat-live/services"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	auth    *mocks.MockIAuthService
	chat    *mocks.MockIChatService
	issuer  *auth.Issuer
	handler http.Handler
}

func newFixture(t *testing.T, opts Options) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		auth:   mocks.NewMockIAuthService(ctrl),
		chat:   mocks.NewMockIChatService(ctrl),
		issuer: auth.NewIssuer("a-very-long-test-secret", time.Hour),
	}
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f.handler = NewHandler(log, f.auth, f.chat, f.issuer, opts).Routes()
	return f
}

func (f *fixture) do(t *testing.T, method, target, body string, userID domain.UserID) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if userID != "" {
		token, err := f.issuer.GenerateToken(userID)
		require.NoError(t, err)
		r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, r)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func TestSignup_Sets_Cookie(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{})

	// Given a signup accepted by the service
	user := domain.User{ID: "u1", FullName: "Alice", Email: "alice@example.com"}
	f.auth.EXPECT().
		Signup(domain.SignupCommand{FullName: "Alice", Email: "alice@example.com", Password: "secret"}).
		Return(user, services.Token("signed-token"), nil)

	// When the client signs up
	w := f.do(t, http.MethodPost, "/api/auth/signup",
		`{"fullName":"Alice","email":"alice@example.com","password":"secret"}`, "")

	// Then the user is created and the session cookie is set
	req.Equal(http.StatusCreated, w.Code)
	var got domain.User
	req.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	req.Equal(user.ID, got.ID)
	req.NotContains(w.Body.String(), "password")

	cookies := w.Result().Cookies()
	req.Len(cookies, 1)
	req.Equal(auth.CookieName, cookies[0].Name)
	req.Equal("signed-token", cookies[0].Value)
	req.True(cookies[0].HttpOnly)
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Duplicate email", errors.ErrUserAlreadyExists, http.StatusConflict},
		{"Weak password", errors.ErrInvalidPassword, http.StatusBadRequest},
		{"Storage failure", fmt.Errorf("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			f := newFixture(t, Options{})
			f.auth.EXPECT().Signup(gomock.Any()).Return(domain.User{}, services.Token(""), tt.err)

			w := f.do(t, http.MethodPost, "/api/auth/signup", `{"fullName":"A","email":"a@b.c","password":"x"}`, "")

			req.Equal(tt.status, w.Code)
			req.Empty(w.Result().Cookies())
			if tt.status == http.StatusInternalServerError {
				req.Equal(http.StatusText(http.StatusInternalServerError), message(t, w))
			} else {
				req.Equal(tt.err.Error(), message(t, w))
			}
		})
	}
}

func TestSignup_Malformed_Body(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{})

	w := f.do(t, http.MethodPost, "/api/auth/signup", `{"fullName":`, "")

	req.Equal(http.StatusBadRequest, w.Code)
}

func TestLogin_Invalid_Credentials(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{})
	f.auth.EXPECT().
		Login(domain.LoginCommand{Email: "a@b.c", Password: "wrong"}).
		Return(domain.User{}, services.Token(""), errors.ErrInvalidCredentials)

	w := f.do(t, http.MethodPost, "/api/auth/login", `{"email":"a@b.c","password":"wrong"}`, "")

	req.Equal(http.StatusBadRequest, w.Code)
	req.Equal(errors.ErrInvalidCredentials.Error(), message(t, w))
}

func TestLogout_Clears_Cookie(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{})

	w := f.do(t, http.MethodPost, "/api/auth/logout", "", "")

	req.Equal(http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	req.Len(cookies, 1)
	req.Equal("", cookies[0].Value)
	req.Negative(cookies[0].MaxAge)
}

func TestCheck(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{})
	f.auth.EXPECT().Check(domain.UserID("u1")).Return(domain.User{ID: "u1"}, nil)

	// Without a cookie the service is never called
	w := f.do(t, http.MethodGet, "/api/auth/check", "", "")
	req.Equal(http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodGet, "/api/auth/check", "", "u1")
	req.Equal(http.StatusOK, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{})
	f.auth.EXPECT().
		UpdateProfilePic(domain.UserID("u1"), "data:image/png;base64,AAAA").
		Return(domain.User{}, errors.ErrUnsupportedMedia)

	w := f.do(t, http.MethodPut, "/api/auth/update-profile", `{"profilePic":"data:image/png;base64,AAAA"}`, "u1")

	req.Equal(http.StatusUnsupportedMediaType, w.Code)
}

func TestUsersForSidebar_Empty_List(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{})
	f.chat.EXPECT().UsersForSidebar(domain.UserID("u1")).Return([]domain.User{}, nil)

	w := f.do(t, http.MethodGet, "/api/messages/users", "", "u1")

	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`[]`, w.Body.String())
}

func TestGetMessages_Pagination(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{})

	// Given a second page with an older page behind it
	before := "cursor-1"
	next := "cursor-2"
	page := []domain.Message{{ID: uuid.New(), SenderID: "u2", ReceiverID: "u1", Text: "hi"}}
	f.chat.EXPECT().GetMessages(domain.UserID("u1"), domain.UserID("u2"), &before).Return(page, &next, nil)

	// When the client asks for the page before the cursor
	w := f.do(t, http.MethodGet, "/api/messages/u2?before=cursor-1", "", "u1")

	// Then the next cursor travels in the header
	req.Equal(http.StatusOK, w.Code)
	req.Equal(next, w.Header().Get(NextCursorHeader))
	var got []domain.Message
	req.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	req.Len(got, 1)
	req.Equal(page[0].ID, got[0].ID)
}

func TestGetMessages_First_Page(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{})
	f.chat.EXPECT().GetMessages(domain.UserID("u1"), domain.UserID("u2"), nil).Return([]domain.Message{}, nil, nil)

	w := f.do(t, http.MethodGet, "/api/messages/u2", "", "u1")

	req.Equal(http.StatusOK, w.Code)
	req.Empty(w.Header().Get(NextCursorHeader))
}

func TestSendMessage(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{})
	sent := domain.Message{ID: uuid.New(), SenderID: "u1", ReceiverID: "u2", Text: "hello"}
	f.chat.EXPECT().
		SendMessage(gomock.Any(), domain.SendMessageCommand{SenderID: "u1", ReceiverID: "u2", Text: "hello"}).
		Return(sent, nil)

	w := f.do(t, http.MethodPost, "/api/messages/send/u2", `{"text":"hello"}`, "u1")

	req.Equal(http.StatusCreated, w.Code)
	req.Contains(w.Body.String(), sent.ID.String())
}

func TestSendMessage_Unknown_Receiver(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{})
	f.chat.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(domain.Message{}, errors.ErrUserNotFound)

	w := f.do(t, http.MethodPost, "/api/messages/send/ghost", `{"text":"hello"}`, "u1")

	req.Equal(http.StatusNotFound, w.Code)
}

func TestSendMessage_Body_Too_Large(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{MaxBodyBytes: 16})

	w := f.do(t, http.MethodPost, "/api/messages/send/u2", `{"text":"`+strings.Repeat("a", 64)+`"}`, "u1")

	req.Equal(http.StatusBadRequest, w.Code)
}

func TestMarkAsRead_Not_Receiver(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{})
	id := uuid.NewString()
	f.chat.EXPECT().
		MarkAsRead(gomock.Any(), domain.MarkReadCommand{MessageID: id, CallerID: "u1"}).
		Return(domain.Message{}, errors.ErrNotReceiver)

	w := f.do(t, http.MethodPut, "/api/messages/read/"+id, "", "u1")

	req.Equal(http.StatusForbidden, w.Code)
}

func TestSearch(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{})
	f.chat.EXPECT().
		Search(gomock.Any(), domain.UserID("u1"), domain.UserID("u2"), "pizza tonight").
		Return([]domain.Message{{ID: uuid.New(), Text: "pizza tonight?"}}, nil)

	w := f.do(t, http.MethodGet, "/api/messages/search/u2?q=pizza+tonight", "", "u1")

	req.Equal(http.StatusOK, w.Code)
	req.Contains(w.Body.String(), "pizza tonight?")
}

func TestMedia_And_Health(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	req.NoError(os.WriteFile(filepath.Join(dir, "pic.png"), []byte("png"), 0o644))
	f := newFixture(t, Options{MediaDir: dir, MediaPrefix: "/media"})

	w := f.do(t, http.MethodGet, "/media/pic.png", "", "")
	req.Equal(http.StatusOK, w.Code)
	req.Equal("png", w.Body.String())

	w = f.do(t, http.MethodGet, "/up", "", "")
	req.Equal(http.StatusOK, w.Code)
}

func TestMedia_Directory_Not_Listed(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	req.NoError(os.WriteFile(filepath.Join(dir, "3f1c9a2e.png"), []byte("png"), 0o644))
	req.NoError(os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	f := newFixture(t, Options{MediaDir: dir, MediaPrefix: "/media"})

	for _, target := range []string{"/media/", "/media/nested/", "/media/nested"} {
		w := f.do(t, http.MethodGet, target, "", "")
		req.Equal(http.StatusNotFound, w.Code, "target=%s", target)
		req.NotContains(w.Body.String(), "3f1c9a2e.png")
	}
}

func TestRecovering(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, Options{})
	f.chat.EXPECT().UsersForSidebar(gomock.Any()).DoAndReturn(func(domain.UserID) ([]domain.User, error) {
		panic("boom")
	})

	w := f.do(t, http.MethodGet, "/api/messages/users", "", "u1")

	req.Equal(http.StatusInternalServerError, w.Code)
}
