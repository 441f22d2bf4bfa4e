//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"chat-live/auth"
	"chat-live/domain"
	"chat-live/errors"
	"chat-live/infrastructure/storage"
	"chat-live/repositories"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
)

type IAuthService interface {
	Signup(cmd domain.SignupCommand) (domain.User, Token, error)
	Login(cmd domain.LoginCommand) (domain.User, Token, error)
	Check(userID domain.UserID) (domain.User, error)
	UpdateProfilePic(userID domain.UserID, image string) (domain.User, error)
}

type AuthService struct {
	log            *slog.Logger
	userRepository repositories.IUserRepository
	issuer         *auth.Issuer
	media          storage.IMediaStore
}

type Token string

func (t Token) String() string {
	return string(t)
}

func NewAuthService(log *slog.Logger, repo repositories.IUserRepository,
	issuer *auth.Issuer, media storage.IMediaStore) *AuthService {
	return &AuthService{log: log, userRepository: repo, issuer: issuer, media: media}
}

func (s *AuthService) Signup(cmd domain.SignupCommand) (domain.User, Token, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	// Validation comes before any expensive cryptographic operation
	if err := auth.ValidateSignup(auth.SignupRequest{
		FullName: strings.TrimSpace(cmd.FullName),
		Email:    email,
		Password: cmd.Password,
	}); err != nil {
		return domain.User{}, "", err
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hashing failed: %w", err)
	}

	user, err := s.userRepository.CreateUser(domain.User{
		FullName:     strings.TrimSpace(cmd.FullName),
		Email:        email,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.issuer.GenerateToken(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	s.log.Info("User signed up", "user_id", user.ID)
	return user, Token(token), nil
}

func (s *AuthService) Login(cmd domain.LoginCommand) (domain.User, Token, error) {
	user, err := s.userRepository.GetUserByEmail(strings.ToLower(strings.TrimSpace(cmd.Email)))
	if err != nil {
		if !stderrors.Is(err, errors.ErrUserNotFound) {
			s.log.Error("Failed to load user", "error", err)
		}
		// Same answer for unknown email and wrong password
		return domain.User{}, "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(cmd.Password, user.PasswordHash)
	if err != nil || !match {
		return domain.User{}, "", errors.ErrInvalidCredentials
	}

	token, err := s.issuer.GenerateToken(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, Token(token), nil
}

func (s *AuthService) Check(userID domain.UserID) (domain.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *AuthService) UpdateProfilePic(userID domain.UserID, image string) (domain.User, error) {
	if image == "" {
		return domain.User{}, fmt.Errorf("%w: profile pic is required", errors.ErrInvalidPayload)
	}
	url, err := s.media.Save(image)
	if err != nil {
		return domain.User{}, err
	}
	return s.userRepository.UpdateProfilePic(userID, url)
}
