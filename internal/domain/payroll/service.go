package payroll

import (
	"context"
)

// PayrollService defines business logic for payroll operations.
type PayrollService interface {
	// GetRecord retrieves a single payroll record by ID
	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)

	// ListRecords lists payroll records with filters, scoped by the caller's role
	ListRecords(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)

	// CreateRecord inserts one payroll record for an employee and period
	CreateRecord(ctx context.Context, req CreatePayrollRequest) (PayrollRecordResponse, error)

	// UpdateRecord applies a partial update and recomputes final pay
	UpdateRecord(ctx context.Context, req UpdatePayrollRequest) (PayrollRecordResponse, error)

	// BulkReconcile derives payroll for a whole period from attendance,
	// applying operator overrides, creating missing records and updating
	// existing ones
	BulkReconcile(ctx context.Context, req BulkReconcileRequest) (BulkReconcileResponse, error)

	// DeleteRecord removes a payroll record
	DeleteRecord(ctx context.Context, id string) error
}
