package dashboard

import (
	"github.com/workforge-hr/workforge-backend-go/internal/domain/employee"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/task"
)

// StatsResponse is the role-scoped dashboard payload.
type StatsResponse struct {
	TotalEmployees  int                         `json:"total_employees"`
	PresentToday    int                         `json:"present_today"`
	OnLeave         int                         `json:"on_leave"`
	PendingTasks    int                         `json:"pending_tasks"`
	RecentEmployees []employee.EmployeeResponse `json:"recent_employees"`
	RecentTasks     []task.TaskResponse         `json:"recent_tasks"`
}
