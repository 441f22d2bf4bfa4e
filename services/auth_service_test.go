package services_test

import (
	"chat-live/auth"
	"chat-live/domain"
	"chat-live/errors"
	"chat-live/mocks"
	"chat-live/services"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthService(ctrl *gomock.Controller) (*services.AuthService, *mocks.MockIUserRepository, *mocks.MockIMediaStore, *auth.Issuer) {
	repo := mocks.NewMockIUserRepository(ctrl)
	media := mocks.NewMockIMediaStore(ctrl)
	issuer := auth.NewIssuer("a_long_enough_test_secret", time.Hour)
	return services.NewAuthService(logs.GetLoggerFromLevel(slog.LevelDebug), repo, issuer, media), repo, media, issuer
}

func TestAuthService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo, _, issuer := newAuthService(ctrl)

	t.Run("should sign up when input is valid", func(t *testing.T) {
		req := require.New(t)

		// Expect CreateUser with a hashed password, never the plain one
		repo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(u domain.User) (domain.User, error) {
				req.Equal("alice@example.com", u.Email)
				req.Equal("Alice", u.FullName)
				match, err := auth.ComparePassword("secret", u.PasswordHash)
				req.NoError(err)
				req.True(match)
				u.ID = "u1"
				return u, nil
			})

		user, token, err := svc.Signup(domain.SignupCommand{FullName: " Alice ", Email: "Alice@Example.com", Password: "secret"})

		req.NoError(err)
		req.Equal(domain.UserID("u1"), user.ID)
		claims, err := issuer.ValidateToken(token.String())
		req.NoError(err)
		req.Equal("u1", claims.UserID)
	})

	t.Run("should fail when password is too short", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().CreateUser(gomock.Any()).Times(0)

		_, token, err := svc.Signup(domain.SignupCommand{FullName: "Alice", Email: "alice@example.com", Password: "123"})

		req.ErrorIs(err, errors.ErrInvalidPassword)
		req.Empty(token)
	})

	t.Run("should fail when user already exists", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().CreateUser(gomock.Any()).Return(domain.User{}, errors.ErrUserAlreadyExists)

		_, _, err := svc.Signup(domain.SignupCommand{FullName: "Alice", Email: "alice@example.com", Password: "secret"})

		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo, _, _ := newAuthService(ctrl)
	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)
	stored := domain.User{ID: "u1", Email: "alice@example.com", PasswordHash: hash}

	t.Run("should log in with the right password", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().GetUserByEmail("alice@example.com").Return(stored, nil)

		user, token, err := svc.Login(domain.LoginCommand{Email: "ALICE@example.com", Password: "secret"})

		req.NoError(err)
		req.Equal(stored.ID, user.ID)
		req.NotEmpty(token)
	})

	t.Run("should hide whether the email exists", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().GetUserByEmail("bob@example.com").Return(domain.User{}, errors.ErrUserNotFound)
		repo.EXPECT().GetUserByEmail("alice@example.com").Return(stored, nil)

		_, _, unknownErr := svc.Login(domain.LoginCommand{Email: "bob@example.com", Password: "secret"})
		_, _, wrongErr := svc.Login(domain.LoginCommand{Email: "alice@example.com", Password: "wrong"})

		req.ErrorIs(unknownErr, errors.ErrInvalidCredentials)
		req.ErrorIs(wrongErr, errors.ErrInvalidCredentials)
	})
}

func TestAuthService_UpdateProfilePic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo, media, _ := newAuthService(ctrl)

	t.Run("should store the image and update the user", func(t *testing.T) {
		req := require.New(t)
		media.EXPECT().Save("data:image/png;base64,AAAA").Return("/media/pic.png", nil)
		repo.EXPECT().UpdateProfilePic(domain.UserID("u1"), "/media/pic.png").
			Return(domain.User{ID: "u1", ProfilePic: "/media/pic.png"}, nil)

		user, err := svc.UpdateProfilePic("u1", "data:image/png;base64,AAAA")

		req.NoError(err)
		req.Equal("/media/pic.png", user.ProfilePic)
	})

	t.Run("should require an image", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.UpdateProfilePic("u1", "")

		req.ErrorIs(err, errors.ErrInvalidPayload)
	})

	t.Run("should propagate media errors", func(t *testing.T) {
		req := require.New(t)
		media.EXPECT().Save(gomock.Any()).Return("", errors.ErrUnsupportedMedia)

		_, err := svc.UpdateProfilePic("u1", "data:text/plain;base64,AAAA")

		req.ErrorIs(err, errors.ErrUnsupportedMedia)
	})
}
