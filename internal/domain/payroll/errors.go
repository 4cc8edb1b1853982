package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrInvalidPeriod              = errors.New("invalid payroll period")
	ErrInvalidStatus              = errors.New("invalid payroll status")
	ErrEmployeeNotFound           = errors.New("employee not found")
	ErrBulkPartialFailure         = errors.New("some payroll writes failed")
	ErrRecordAccessDenied         = errors.New("payroll record access denied")
)
