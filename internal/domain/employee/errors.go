package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrUserAlreadyLinked  = errors.New("user already has an employee profile")
	ErrNegativeBaseSalary = errors.New("base salary must be non-negative")
	ErrAccessDenied       = errors.New("employee profile access denied")
)
