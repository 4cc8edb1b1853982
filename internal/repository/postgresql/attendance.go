package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/attendance"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.status, a.check_in, a.check_out, a.notes,
	a.marked_by, a.created_at, a.updated_at,
	COALESCE(NULLIF(TRIM(CONCAT(u.first_name, ' ', u.last_name)), ''), u.username),
	e.employee_code
`

const attendanceJoins = `
	LEFT JOIN employees e ON e.id = a.employee_id
	LEFT JOIN users u ON u.id = e.user_id
`

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CheckIn, &a.CheckOut, &a.Notes,
			&a.MarkedBy, &a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeName, &a.EmployeeCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}
	return records, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance a
		%s
		WHERE a.id = $1
	`, attendanceColumns, attendanceJoins)

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CheckIn, &a.CheckOut, &a.Notes,
		&a.MarkedBy, &a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName, &a.EmployeeCode,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	whereParts := []string{"1=1"}
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereParts = append(whereParts, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		whereParts = append(whereParts, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		whereParts = append(whereParts, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Month != nil {
		whereParts = append(whereParts, fmt.Sprintf("EXTRACT(MONTH FROM a.date) = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		whereParts = append(whereParts, fmt.Sprintf("EXTRACT(YEAR FROM a.date) = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.ManagerID != nil && *filter.ManagerID != "" {
		whereParts = append(whereParts, fmt.Sprintf("u.manager_id = $%d", argIdx))
		args = append(args, *filter.ManagerID)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance a
		%s
		WHERE %s
		ORDER BY a.date DESC, e.employee_code
	`, attendanceColumns, attendanceJoins, strings.Join(whereParts, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func (r *attendanceRepository) ListForPeriod(ctx context.Context, month, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance a
		%s
		WHERE EXTRACT(MONTH FROM a.date) = $1 AND EXTRACT(YEAR FROM a.date) = $2
		ORDER BY a.employee_id, a.date
	`, attendanceColumns, attendanceJoins)

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for period: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, date, status, check_in, check_out, notes, marked_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, date, status, check_in, check_out, notes, marked_by, created_at, updated_at
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Date, record.Status, record.CheckIn, record.CheckOut,
		record.Notes, record.MarkedBy,
	).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CheckIn, &a.CheckOut, &a.Notes,
		&a.MarkedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendance_employee_date") {
			return attendance.Attendance{}, attendance.ErrDuplicateDate
		}
		if strings.Contains(err.Error(), "fk_attendance_employee") {
			return attendance.Attendance{}, attendance.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if req.CheckIn != nil {
		setParts = append(setParts, fmt.Sprintf("check_in = $%d", argIdx))
		args = append(args, *req.CheckIn)
		argIdx++
	}
	if req.CheckOut != nil {
		setParts = append(setParts, fmt.Sprintf("check_out = $%d", argIdx))
		args = append(args, *req.CheckOut)
		argIdx++
	}
	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", argIdx))
		args = append(args, *req.Notes)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE attendance
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM attendance WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	return nil
}

func (r *attendanceRepository) CountByStatusOnDate(ctx context.Context, date time.Time, status attendance.Status, managerID *string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendance a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN users u ON u.id = e.user_id
		WHERE a.date = $1 AND a.status = $2
	`
	args := []interface{}{date, status}
	if managerID != nil {
		query += " AND u.manager_id = $3"
		args = append(args, *managerID)
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendance by status: %w", err)
	}

	return count, nil
}
