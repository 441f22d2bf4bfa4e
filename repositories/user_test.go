package repositories

import (
	"chat-live/domain"
	"chat-live/errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create_And_Get(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openDB(t))

	created, err := repository.CreateUser(domain.User{FullName: "Alice", Email: "alice@example.com", PasswordHash: "hash"})
	req.NoError(err)
	req.NotEmpty(created.ID)
	req.False(created.CreatedAt.IsZero())

	byEmail, err := repository.GetUserByEmail("Alice@Example.com")
	req.NoError(err)
	req.Equal(created, byEmail)

	byID, err := repository.GetUserByID(created.ID)
	req.NoError(err)
	req.Equal(created, byID)
}

func TestUserRepository_Duplicate_Email(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openDB(t))

	_, err := repository.CreateUser(domain.User{FullName: "Alice", Email: "alice@example.com"})
	req.NoError(err)

	_, err = repository.CreateUser(domain.User{FullName: "Other", Email: "ALICE@example.com"})
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func TestUserRepository_Unknown_User(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openDB(t))

	_, err := repository.GetUserByEmail("nobody@example.com")
	req.ErrorIs(err, errors.ErrUserNotFound)

	_, err = repository.GetUserByID("nobody")
	req.ErrorIs(err, errors.ErrUserNotFound)

	_, err = repository.UpdateProfilePic("nobody", "/media/x.png")
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func TestUserRepository_List_Excludes_Caller(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openDB(t))

	var ids []domain.UserID
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		u, err := repository.CreateUser(domain.User{FullName: email, Email: email})
		req.NoError(err)
		ids = append(ids, u.ID)
	}

	users, err := repository.ListUsers(ids[0])

	req.NoError(err)
	req.Len(users, 2)
	listed := lo.Map(users, func(u domain.User, _ int) domain.UserID { return u.ID })
	req.ElementsMatch(ids[1:], listed)
}

func TestUserRepository_Update_Profile_Pic(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openDB(t))
	created, err := repository.CreateUser(domain.User{FullName: "Alice", Email: "alice@example.com"})
	req.NoError(err)

	updated, err := repository.UpdateProfilePic(created.ID, "/media/alice.png")
	req.NoError(err)
	req.Equal("/media/alice.png", updated.ProfilePic)

	fetched, err := repository.GetUserByID(created.ID)
	req.NoError(err)
	req.Equal("/media/alice.png", fetched.ProfilePic)
}
