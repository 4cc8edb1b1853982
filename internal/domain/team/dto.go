package team

import (
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/validator"
)

type TeamResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
	ManagerName *string `json:"manager_name,omitempty"`
	MemberCount int     `json:"member_count"`
}

func ToResponse(t Team) TeamResponse {
	return TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		ManagerID:   t.ManagerID,
		ManagerName: t.ManagerName,
		MemberCount: t.MemberCount,
	}
}

func ToResponses(teams []Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		result = append(result, ToResponse(t))
	}
	return result
}

type CreateTeamRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
}

func (r *CreateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTeamRequest struct {
	ID          string
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`

	// ClearManager removes the manager assignment when true.
	ClearManager bool `json:"clear_manager,omitempty"`
}

func (r *UpdateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
