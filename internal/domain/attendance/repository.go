package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	GetByID(ctx context.Context, id string) (Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
	ListForPeriod(ctx context.Context, month, year int) ([]Attendance, error)
	Create(ctx context.Context, record Attendance) (Attendance, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) error
	Delete(ctx context.Context, id string) error
	CountByStatusOnDate(ctx context.Context, date time.Time, status Status, managerID *string) (int, error)
}
