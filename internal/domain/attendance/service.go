package attendance

import (
	"context"
)

type AttendanceService interface {
	GetRecord(ctx context.Context, id string) (AttendanceResponse, error)
	ListRecords(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	UpdateRecord(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	DeleteRecord(ctx context.Context, id string) error
}
