package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/employee"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.employee_code, e.phone, e.address, e.date_of_joining,
	e.status, e.team_id, e.position, e.base_salary, e.created_at, e.updated_at,
	COALESCE(NULLIF(TRIM(CONCAT(u.first_name, ' ', u.last_name)), ''), u.username),
	u.email, t.name, u.manager_id
`

const employeeJoins = `
	LEFT JOIN users u ON u.id = e.user_id
	LEFT JOIN teams t ON t.id = e.team_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.EmployeeCode, &e.Phone, &e.Address, &e.DateOfJoining,
		&e.Status, &e.TeamID, &e.Position, &e.BaseSalary, &e.CreatedAt, &e.UpdatedAt,
		&e.FullName, &e.Email, &e.TeamName, &e.ManagerID,
	)
	return e, err
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.EmployeeCode, &e.Phone, &e.Address, &e.DateOfJoining,
			&e.Status, &e.TeamID, &e.Position, &e.BaseSalary, &e.CreatedAt, &e.UpdatedAt,
			&e.FullName, &e.Email, &e.TeamName, &e.ManagerID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		%s
		WHERE e.id = $1
	`, employeeColumns, employeeJoins)

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		%s
		WHERE e.user_id = $1
	`, employeeColumns, employeeJoins)

	e, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereParts := []string{"1=1"}
	var args []interface{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		whereParts = append(whereParts, fmt.Sprintf(
			"(e.employee_code ILIKE $%d OR u.username ILIKE $%d OR u.first_name ILIKE $%d OR u.last_name ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereParts = append(whereParts, fmt.Sprintf("e.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.TeamID != nil && *filter.TeamID != "" {
		whereParts = append(whereParts, fmt.Sprintf("e.team_id = $%d", argIdx))
		args = append(args, *filter.TeamID)
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
		FROM employees e
		%s
		WHERE %s
	`, employeeJoins, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
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
		FROM employees e
		%s
		WHERE %s
		ORDER BY e.employee_code
		LIMIT $%d OFFSET $%d
	`, employeeColumns, employeeJoins, whereClause, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepository) ListActive(ctx context.Context, managerID *string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "e.status = 'active'"
	var args []interface{}
	if managerID != nil {
		whereClause += " AND u.manager_id = $1"
		args = append(args, *managerID)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		%s
		WHERE %s
		ORDER BY e.employee_code
	`, employeeColumns, employeeJoins, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (user_id, employee_code, phone, address, date_of_joining, status, team_id, position, base_salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, user_id, employee_code, phone, address, date_of_joining, status, team_id, position, base_salary, created_at, updated_at
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.UserID, newEmployee.EmployeeCode, newEmployee.Phone, newEmployee.Address,
		newEmployee.DateOfJoining, newEmployee.Status, newEmployee.TeamID, newEmployee.Position,
		newEmployee.BaseSalary,
	).Scan(
		&e.ID, &e.UserID, &e.EmployeeCode, &e.Phone, &e.Address, &e.DateOfJoining,
		&e.Status, &e.TeamID, &e.Position, &e.BaseSalary, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		if strings.Contains(err.Error(), "uk_employees_user") {
			return employee.Employee{}, employee.ErrUserAlreadyLinked
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Phone != nil {
		setParts = append(setParts, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, *req.Phone)
		argIdx++
	}
	if req.Address != nil {
		setParts = append(setParts, fmt.Sprintf("address = $%d", argIdx))
		args = append(args, *req.Address)
		argIdx++
	}
	if req.DateOfJoining != nil {
		setParts = append(setParts, fmt.Sprintf("date_of_joining = $%d", argIdx))
		args = append(args, *req.DateOfJoining)
		argIdx++
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if req.ClearTeam {
		setParts = append(setParts, "team_id = NULL")
	} else if req.TeamID != nil {
		setParts = append(setParts, fmt.Sprintf("team_id = $%d", argIdx))
		args = append(args, *req.TeamID)
		argIdx++
	}
	if req.Position != nil {
		setParts = append(setParts, fmt.Sprintf("position = $%d", argIdx))
		args = append(args, *req.Position)
		argIdx++
	}
	if req.BaseSalary != nil {
		setParts = append(setParts, fmt.Sprintf("base_salary = $%d", argIdx))
		args = append(args, *req.BaseSalary)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) CountActive(ctx context.Context, managerID *string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM employees e
		LEFT JOIN users u ON u.id = e.user_id
		WHERE e.status = 'active'
	`
	var args []interface{}
	if managerID != nil {
		query += " AND u.manager_id = $1"
		args = append(args, *managerID)
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}

	return count, nil
}

func (r *employeeRepository) ListRecent(ctx context.Context, managerID *string, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "1=1"
	var args []interface{}
	argIdx := 1
	if managerID != nil {
		whereClause = fmt.Sprintf("u.manager_id = $%d", argIdx)
		args = append(args, *managerID)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		%s
		WHERE %s
		ORDER BY e.created_at DESC
		LIMIT $%d
	`, employeeColumns, employeeJoins, whereClause, argIdx)
	args = append(args, limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}
