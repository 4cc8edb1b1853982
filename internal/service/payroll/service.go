package payroll

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/attendance"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/employee"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/payroll"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
)

// bulkWriteConcurrency caps parallel record writes during reconciliation.
const bulkWriteConcurrency = 8

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

func getClaimsFromContext(ctx context.Context) (userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, _ := claims["role"].(string)

	return userID, user.Role(roleStr), nil
}

// GetRecord scopes detail reads the same way the listing is scoped:
// admins read any record, managers only records of their reports, and a
// regular user only their own.
func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if err := s.authorizeRecordAccess(ctx, p.EmployeeID); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return payroll.ToResponse(p), nil
}

func (s *PayrollServiceImpl) authorizeRecordAccess(ctx context.Context, employeeID string) error {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	switch role {
	case user.RoleAdmin:
		return nil
	case user.RoleManager:
		e, err := s.employeeRepo.GetByID(ctx, employeeID)
		if err != nil {
			return err
		}
		if e.ManagerID == nil || *e.ManagerID != userID {
			return payroll.ErrRecordAccessDenied
		}
		return nil
	default:
		own, err := s.employeeRepo.GetByUserID(ctx, userID)
		if err != nil || own.ID != employeeID {
			return payroll.ErrRecordAccessDenied
		}
		return nil
	}
}

// ListRecords narrows manager queries to their reports before hitting the
// repository.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	switch role {
	case user.RoleManager:
		filter.ManagerID = &userID
	case user.RoleUser:
		own, err := s.employeeRepo.GetByUserID(ctx, userID)
		if err != nil {
			return payroll.ListPayrollResponse{Results: []payroll.PayrollRecordResponse{}}, nil
		}
		filter.EmployeeID = &own.ID
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	return payroll.ListPayrollResponse{
		Results:    payroll.ToResponses(records),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) CreateRecord(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.PayrollRecordResponse{}, payroll.ErrEmployeeNotFound
	}

	deductions := decimal.Zero
	if req.Deductions != nil {
		deductions = *req.Deductions
	}
	bonuses := decimal.Zero
	if req.Bonuses != nil {
		bonuses = *req.Bonuses
	}
	status := payroll.StatusDraft
	if req.Status != nil {
		status = payroll.Status(*req.Status)
	}

	record := payroll.PayrollRecord{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Year:        req.Year,
		BaseSalary:  req.BaseSalary,
		DaysWorked:  req.DaysWorked,
		DaysPresent: req.DaysPresent,
		DaysAbsent:  req.DaysAbsent,
		DaysOnLeave: req.DaysOnLeave,
		Deductions:  deductions,
		Bonuses:     bonuses,
		Status:      status,
	}
	record.FinalPay = payroll.CalculateFinalPay(record.BaseSalary, record.DaysWorked, record.Deductions, record.Bonuses)

	created, err := s.payrollRepo.Create(ctx, record)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return s.GetRecord(ctx, created.ID)
}

// UpdateRecord applies a partial update and recomputes final pay from the
// resulting field values, so a deduction edit is always reflected in the
// stored total.
func (s *PayrollServiceImpl) UpdateRecord(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	existing, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	merged := existing
	if req.BaseSalary != nil {
		merged.BaseSalary = *req.BaseSalary
	}
	if req.DaysWorked != nil {
		merged.DaysWorked = *req.DaysWorked
	}
	if req.DaysPresent != nil {
		merged.DaysPresent = *req.DaysPresent
	}
	if req.DaysAbsent != nil {
		merged.DaysAbsent = *req.DaysAbsent
	}
	if req.DaysOnLeave != nil {
		merged.DaysOnLeave = *req.DaysOnLeave
	}
	if req.Deductions != nil {
		merged.Deductions = *req.Deductions
	}
	if req.Bonuses != nil {
		merged.Bonuses = *req.Bonuses
	}
	if req.Status != nil {
		merged.Status = payroll.Status(*req.Status)
	}
	merged.FinalPay = payroll.CalculateFinalPay(merged.BaseSalary, merged.DaysWorked, merged.Deductions, merged.Bonuses)

	if err := s.payrollRepo.UpdateFromPlan(ctx, merged); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return s.GetRecord(ctx, req.ID)
}

// BulkReconcile derives a full period's payroll from attendance in four
// steps: load the employee roster, fold the period's attendance into
// per-employee counters, build a pure write-plan against the existing
// records, then execute the plan. One employee's failure never aborts the
// rest of the run; failures come back in the per-employee results.
func (s *PayrollServiceImpl) BulkReconcile(ctx context.Context, req payroll.BulkReconcileRequest) (payroll.BulkReconcileResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BulkReconcileResponse{}, err
	}

	_, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.BulkReconcileResponse{}, err
	}
	if role != user.RoleAdmin {
		return payroll.BulkReconcileResponse{}, user.ErrAdminPrivilegeRequired
	}

	employees, err := s.employeeRepo.ListActive(ctx, nil)
	if err != nil {
		return payroll.BulkReconcileResponse{}, err
	}
	if len(req.EmployeeIDs) > 0 {
		wanted := make(map[string]bool, len(req.EmployeeIDs))
		for _, id := range req.EmployeeIDs {
			wanted[id] = true
		}
		filtered := employees[:0]
		for _, e := range employees {
			if wanted[e.ID] {
				filtered = append(filtered, e)
			}
		}
		employees = filtered
	}

	records, err := s.attendanceRepo.ListForPeriod(ctx, req.Month, req.Year)
	if err != nil {
		return payroll.BulkReconcileResponse{}, err
	}
	agg := attendance.Summarize(records)

	existing, err := s.payrollRepo.ListByPeriod(ctx, req.Month, req.Year)
	if err != nil {
		return payroll.BulkReconcileResponse{}, err
	}

	overrides := make(map[string]payroll.FieldOverrides, len(req.Entries))
	for _, entry := range req.Entries {
		ov := payroll.FieldOverrides{
			BaseSalary:  entry.BaseSalary,
			DaysWorked:  entry.DaysWorked,
			DaysPresent: entry.DaysPresent,
			DaysAbsent:  entry.DaysAbsent,
			DaysOnLeave: entry.DaysOnLeave,
			Deductions:  entry.Deductions,
			Bonuses:     entry.Bonuses,
		}
		if entry.Status != nil {
			status := payroll.Status(*entry.Status)
			ov.Status = &status
		}
		overrides[entry.EmployeeID] = ov
	}

	plan := payroll.BuildPlan(req.Month, req.Year, employees, agg, existing, overrides)

	resp := payroll.BulkReconcileResponse{
		Month:          req.Month,
		Year:           req.Year,
		SkippedRecords: agg.Skipped,
		Results:        make([]payroll.BulkWriteResult, len(plan)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkWriteConcurrency)

	for i, write := range plan {
		i, write := i, write
		g.Go(func() error {
			result := payroll.BulkWriteResult{
				EmployeeID: write.Record.EmployeeID,
				Action:     string(write.Action),
			}

			switch write.Action {
			case payroll.ActionCreate:
				created, err := s.payrollRepo.Create(gctx, write.Record)
				if err != nil {
					msg := err.Error()
					result.Error = &msg
				} else {
					result.RecordID = created.ID
				}
			case payroll.ActionUpdate:
				if err := s.payrollRepo.UpdateFromPlan(gctx, write.Record); err != nil {
					msg := err.Error()
					result.Error = &msg
				} else {
					result.RecordID = write.ExistingID
				}
			}

			mu.Lock()
			resp.Results[i] = result
			switch {
			case result.Error != nil:
				resp.Failed++
			case write.Action == payroll.ActionCreate:
				resp.Created++
			default:
				resp.Updated++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return payroll.BulkReconcileResponse{}, err
	}

	return resp, nil
}

func (s *PayrollServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if _, err := s.payrollRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.payrollRepo.Delete(ctx, id)
}
