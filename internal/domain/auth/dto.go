package auth

import (
	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/validator"
)

// LoginRequest accepts either a username or an email in the username field.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegisterRequest struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) && validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username or email is required"})
	}
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh"`
}

type TokenResponse struct {
	AccessToken           string            `json:"access"`
	RefreshToken          string            `json:"refresh"`
	AccessTokenExpiresAt  int64             `json:"access_expires_at"`
	RefreshTokenExpiresAt int64             `json:"refresh_expires_at"`
	User                  user.UserResponse `json:"user"`
}
