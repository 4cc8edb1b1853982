package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already taken")
	ErrEmailExists            = errors.New("email already registered")
	ErrManagerNotFound        = errors.New("manager not found")
	ErrManagerRoleRequired    = errors.New("manager id must refer to a user with manager role")
	ErrLastActiveAdmin        = errors.New("cannot remove the last active admin")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrManagerAccessRequired  = errors.New("manager access required")
	ErrSelfRegistrationOff    = errors.New("self registration is disabled")
)
