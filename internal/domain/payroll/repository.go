package payroll

import "context"

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (PayrollRecord, error)
	ListByPeriod(ctx context.Context, month, year int) ([]PayrollRecord, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, int64, error)
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	UpdateFromPlan(ctx context.Context, record PayrollRecord) error
	Delete(ctx context.Context, id string) error
}
