package user

import (
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/validator"
)

type UserResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	ManagerID   *string `json:"manager_id,omitempty"`
	ManagerName *string `json:"manager_name,omitempty"`
	IsActive    bool    `json:"is_active"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Name:        u.DisplayName(),
		Role:        string(u.Role),
		ManagerID:   u.ManagerID,
		ManagerName: u.ManagerName,
		IsActive:    u.IsActive,
	}
}

func ToResponses(users []User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, ToResponse(u))
	}
	return result
}

// ManagerGroupResponse mirrors the admin team view: one manager plus members.
type ManagerGroupResponse struct {
	Manager UserResponse   `json:"manager"`
	Members []UserResponse `json:"members"`
}

type TeamGroupingResponse struct {
	Managers   map[string]ManagerGroupResponse `json:"managers"`
	Unassigned []UserResponse                  `json:"unassigned"`
}

func ToGroupingResponse(g TeamGrouping) TeamGroupingResponse {
	resp := TeamGroupingResponse{
		Managers:   make(map[string]ManagerGroupResponse, len(g.Managers)),
		Unassigned: ToResponses(g.Unassigned),
	}
	for id, group := range g.Managers {
		resp.Managers[id] = ManagerGroupResponse{
			Manager: ToResponse(group.Manager),
			Members: ToResponses(group.Members),
		}
	}
	return resp
}

type CreateUserRequest struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Role      string  `json:"role"`
	ManagerID *string `json:"manager_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "is required"})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must be 3-50 characters (letters, digits, '.', '_', '-')"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}
	if r.Role == "" {
		r.Role = string(RoleUser)
	} else if !IsValidRole(Role(r.Role)) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be 'admin', 'manager' or 'user'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID        string
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Role      *string `json:"role,omitempty"`
	ManagerID *string `json:"manager_id,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`

	// ClearManager removes the manager assignment when true.
	ClearManager bool `json:"clear_manager,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must be 3-50 characters (letters, digits, '.', '_', '-')"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}
	if r.Role != nil && !IsValidRole(Role(*r.Role)) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be 'admin', 'manager' or 'user'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "must be at least 6 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
