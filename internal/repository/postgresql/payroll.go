package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/payroll"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.month, p.year, p.base_salary, p.days_worked,
	p.days_present, p.days_absent, p.days_on_leave, p.deductions, p.bonuses,
	p.final_pay, p.status, p.created_at, p.updated_at,
	COALESCE(NULLIF(TRIM(CONCAT(u.first_name, ' ', u.last_name)), ''), u.username),
	e.employee_code
`

const payrollJoins = `
	LEFT JOIN employees e ON e.id = p.employee_id
	LEFT JOIN users u ON u.id = e.user_id
`

func scanPayroll(row pgx.Row) (payroll.PayrollRecord, error) {
	var p payroll.PayrollRecord
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.BaseSalary, &p.DaysWorked,
		&p.DaysPresent, &p.DaysAbsent, &p.DaysOnLeave, &p.Deductions, &p.Bonuses,
		&p.FinalPay, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeCode,
	)
	return p, err
}

func collectPayrolls(rows pgx.Rows) ([]payroll.PayrollRecord, error) {
	var records []payroll.PayrollRecord
	for rows.Next() {
		var p payroll.PayrollRecord
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.BaseSalary, &p.DaysWorked,
			&p.DaysPresent, &p.DaysAbsent, &p.DaysOnLeave, &p.Deductions, &p.Bonuses,
			&p.FinalPay, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeName, &p.EmployeeCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}
	return records, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll p
		%s
		WHERE p.id = $1
	`, payrollColumns, payrollJoins)

	p, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll p
		%s
		WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3
	`, payrollColumns, payrollJoins)

	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record for period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, month, year int) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll p
		%s
		WHERE p.month = $1 AND p.year = $2
		ORDER BY e.employee_code
	`, payrollColumns, payrollJoins)

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records for period: %w", err)
	}
	defer rows.Close()

	return collectPayrolls(rows)
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereParts := []string{"1=1"}
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereParts = append(whereParts, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil {
		whereParts = append(whereParts, fmt.Sprintf("p.month = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		whereParts = append(whereParts, fmt.Sprintf("p.year = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereParts = append(whereParts, fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.ManagerID != nil && *filter.ManagerID != "" {
		whereParts = append(whereParts, fmt.Sprintf("u.manager_id = $%d", argIdx))
		args = append(args, *filter.ManagerID)
		argIdx++
	}

	whereClause := strings.Join(whereParts, " AND ")

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM payroll p
		%s
		WHERE %s
	`, payrollJoins, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll p
		%s
		WHERE %s
		ORDER BY p.year DESC, p.month DESC, e.employee_code
		LIMIT $%d OFFSET $%d
	`, payrollColumns, payrollJoins, whereClause, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	records, err := collectPayrolls(rows)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll (employee_id, month, year, base_salary, days_worked, days_present, days_absent, days_on_leave, deductions, bonuses, final_pay, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, employee_id, month, year, base_salary, days_worked, days_present, days_absent, days_on_leave, deductions, bonuses, final_pay, status, created_at, updated_at
	`

	var p payroll.PayrollRecord
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Month, record.Year, record.BaseSalary, record.DaysWorked,
		record.DaysPresent, record.DaysAbsent, record.DaysOnLeave, record.Deductions,
		record.Bonuses, record.FinalPay, record.Status,
	).Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.BaseSalary, &p.DaysWorked,
		&p.DaysPresent, &p.DaysAbsent, &p.DaysOnLeave, &p.Deductions, &p.Bonuses,
		&p.FinalPay, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		if strings.Contains(err.Error(), "fk_payroll_employee") {
			return payroll.PayrollRecord{}, payroll.ErrEmployeeNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return p, nil
}

// UpdateFromPlan overwrites the derived and override fields of an existing
// record in one statement. Used by bulk reconciliation, where the record
// content was already resolved in memory.
func (r *payrollRepository) UpdateFromPlan(ctx context.Context, record payroll.PayrollRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll
		SET base_salary = $2, days_worked = $3, days_present = $4, days_absent = $5,
			days_on_leave = $6, deductions = $7, bonuses = $8, final_pay = $9,
			status = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		record.ID, record.BaseSalary, record.DaysWorked, record.DaysPresent,
		record.DaysAbsent, record.DaysOnLeave, record.Deductions, record.Bonuses,
		record.FinalPay, record.Status,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollRecordNotFound
		}
		return fmt.Errorf("failed to update payroll record from plan: %w", err)
	}

	return nil
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollRecordNotFound
		}
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}

	return nil
}
