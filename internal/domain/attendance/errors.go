package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateDate      = errors.New("attendance already marked for this employee and date")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrRecordAccessDenied = errors.New("attendance record access denied")
)
