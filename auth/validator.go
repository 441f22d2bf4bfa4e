package auth

import (
	"chat-live/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type SignupRequest struct {
	FullName string `validate:"required,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,max=72"`
}

// MinPasswordLength is checked apart so that the error tells what is wrong.
const MinPasswordLength = 6

func ValidateSignup(req SignupRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	if len([]rune(req.Password)) < MinPasswordLength {
		return errors.ErrInvalidPassword
	}
	return nil
}
