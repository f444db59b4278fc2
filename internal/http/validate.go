package http

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// validateCreateUser checks required fields and email format on the decoded
// payload. Missing fields and a malformed address are both payload errors.
func validateCreateUser(req createUserRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("validate create user request: %w", err)
	}
	return nil
}
