package user

import (
	"context"
)

// UserService defines business logic for user account operations.
type UserService interface {
	// GetUser retrieves a single user by ID (admin only)
	GetUser(ctx context.Context, id string) (UserResponse, error)

	// GetProfile retrieves the calling user's own account
	GetProfile(ctx context.Context) (UserResponse, error)

	// ListUsers lists accounts scoped by the caller's role: admins see
	// everyone, managers see their reports
	ListUsers(ctx context.Context) ([]UserResponse, error)

	// GetTeamGrouping buckets users under their manager (admin only)
	GetTeamGrouping(ctx context.Context) (TeamGroupingResponse, error)

	// CreateUser creates a new account (admin only)
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// UpdateUser updates an existing account (admin only)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// ResetPassword sets a new password on any account (admin only)
	ResetPassword(ctx context.Context, id string, req ResetPasswordRequest) error

	// DeleteUser removes an account (admin only)
	DeleteUser(ctx context.Context, id string) error
}
