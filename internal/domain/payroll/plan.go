package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/attendance"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/employee"
)

// WriteAction classifies one planned payroll write.
type WriteAction string

const (
	ActionCreate WriteAction = "create"
	ActionUpdate WriteAction = "update"
)

// PlannedWrite is one employee's entry in a bulk reconciliation plan.
type PlannedWrite struct {
	Action     WriteAction
	ExistingID string // set when Action == ActionUpdate
	Record     PayrollRecord
}

// FieldOverrides carries the operator-entered values for one employee in a
// bulk run. Nil means "not overridden"; resolution falls through to the
// attendance-derived value, then the stored employee value, then zero.
type FieldOverrides struct {
	BaseSalary  *decimal.Decimal
	DaysWorked  *decimal.Decimal
	DaysPresent *int
	DaysAbsent  *int
	DaysOnLeave *int
	Deductions  *decimal.Decimal
	Bonuses     *decimal.Decimal
	Status      *Status
}

// ResolveAmount applies the per-field precedence chain for currency values:
// operator override, then derived value, then the stored fallback. The
// stored fallback is itself optional; absent everything the result is zero.
func ResolveAmount(override *decimal.Decimal, derived *decimal.Decimal, stored *decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	if derived != nil {
		return *derived
	}
	if stored != nil {
		return *stored
	}
	return decimal.Zero
}

// ResolveCount is ResolveAmount for integer day counters.
func ResolveCount(override *int, derived int) int {
	if override != nil {
		return *override
	}
	return derived
}

// BuildPlan produces the write-plan for one bulk reconciliation run. For
// each employee it resolves every field through the precedence chain,
// computes finalPay, and classifies the write as create (no record for the
// employee+period yet) or update (existing record id carried over).
//
// The function is pure: the same inputs always produce the same plan, so
// re-planning without an intervening mutation yields identical
// create/update classification.
func BuildPlan(
	month, year int,
	employees []employee.Employee,
	agg attendance.Aggregate,
	existing []PayrollRecord,
	overrides map[string]FieldOverrides,
) []PlannedWrite {
	existingByEmployee := make(map[string]PayrollRecord, len(existing))
	for _, rec := range existing {
		existingByEmployee[rec.EmployeeID] = rec
	}

	plan := make([]PlannedWrite, 0, len(employees))
	for _, emp := range employees {
		summary := agg.SummaryFor(emp.ID)
		ov := overrides[emp.ID]

		base := emp.BaseSalary
		record := PayrollRecord{
			EmployeeID:  emp.ID,
			Month:       month,
			Year:        year,
			BaseSalary:  ResolveAmount(ov.BaseSalary, nil, &base),
			DaysWorked:  ResolveAmount(ov.DaysWorked, &summary.DaysWorked, nil),
			DaysPresent: ResolveCount(ov.DaysPresent, summary.DaysPresent),
			DaysAbsent:  ResolveCount(ov.DaysAbsent, summary.DaysAbsent),
			DaysOnLeave: ResolveCount(ov.DaysOnLeave, summary.DaysOnLeave),
			Deductions:  ResolveAmount(ov.Deductions, nil, nil),
			Bonuses:     ResolveAmount(ov.Bonuses, nil, nil),
			Status:      StatusDraft,
		}
		if ov.Status != nil {
			record.Status = *ov.Status
		}
		record.FinalPay = CalculateFinalPay(record.BaseSalary, record.DaysWorked, record.Deductions, record.Bonuses)

		write := PlannedWrite{Action: ActionCreate, Record: record}
		if prev, ok := existingByEmployee[emp.ID]; ok {
			write.Action = ActionUpdate
			write.ExistingID = prev.ID
			write.Record.ID = prev.ID
		}
		plan = append(plan, write)
	}

	return plan
}
