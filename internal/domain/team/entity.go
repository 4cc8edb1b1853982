package team

import "time"

// Team represents an organizational team or department.
type Team struct {
	ID          string
	Name        string
	Description *string
	ManagerID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	ManagerName *string
	MemberCount int
}
