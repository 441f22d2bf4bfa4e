//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"chat-live/domain"
	"chat-live/errors"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IUserRepository interface {
	CreateUser(user domain.User) (domain.User, error)
	GetUserByEmail(email string) (domain.User, error)
	GetUserByID(id domain.UserID) (domain.User, error)
	ListUsers(except domain.UserID) ([]domain.User, error)
	UpdateProfilePic(id domain.UserID, url string) (domain.User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userPrefix = "user:"

func userKey(id domain.UserID) []byte { return []byte(userPrefix + id.String()) }

func emailKey(email string) []byte { return []byte("user-email:" + strings.ToLower(email)) }

// CreateUser persists a new user and returns it with its generated ID.
// The email is unique, case-insensitively.
func (u *UserRepository) CreateUser(user domain.User) (domain.User, error) {
	now := time.Now().UTC()
	user.ID = domain.UserID(uuid.NewString())
	user.CreatedAt = now
	user.UpdatedAt = now

	err := u.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(emailKey(user.Email)); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if err := txn.Set(userKey(user.ID), encodeUser(user)); err != nil {
			return fmt.Errorf("store user: %w", err)
		}
		return txn.Set(emailKey(user.Email), []byte(user.ID))
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (u *UserRepository) GetUserByEmail(email string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(email))
		if err != nil {
			return notFound(err)
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		user, err = u.get(txn, domain.UserID(id))
		return err
	})
	return user, err
}

func (u *UserRepository) GetUserByID(id domain.UserID) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) (err error) {
		user, err = u.get(txn, id)
		return err
	})
	return user, err
}

// ListUsers returns every user but except, the way a sidebar shows them.
func (u *UserRepository) ListUsers(except domain.UserID) ([]domain.User, error) {
	var users []domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte(userPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				user, err := decodeUser(value)
				if err != nil {
					return err
				}
				if user.ID != except {
					users = append(users, user)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return users, err
}

func (u *UserRepository) UpdateProfilePic(id domain.UserID, url string) (domain.User, error) {
	var user domain.User
	err := u.db.Update(func(txn *badger.Txn) error {
		current, err := u.get(txn, id)
		if err != nil {
			return err
		}
		current.ProfilePic = url
		current.UpdatedAt = time.Now().UTC()
		user = current
		return txn.Set(userKey(id), encodeUser(current))
	})
	return user, err
}

func (u *UserRepository) get(txn *badger.Txn, id domain.UserID) (domain.User, error) {
	item, err := txn.Get(userKey(id))
	if err != nil {
		return domain.User{}, notFound(err)
	}
	var user domain.User
	err = item.Value(func(value []byte) error {
		user, err = decodeUser(value)
		return err
	})
	return user, err
}

func notFound(err error) error {
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrUserNotFound
	}
	return err
}
