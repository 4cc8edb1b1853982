package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/attendance"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/employee"
)

func emp(id, salary string) employee.Employee {
	return employee.Employee{ID: id, BaseSalary: d(salary)}
}

func TestBuildPlanCreatesAndUpdates(t *testing.T) {
	employees := []employee.Employee{emp("emp-1", "30000"), emp("emp-2", "15000")}
	agg := attendance.Summarize([]attendance.Attendance{
		{EmployeeID: "emp-1", Status: attendance.StatusPresent},
		{EmployeeID: "emp-1", Status: attendance.StatusHalfDay},
	})
	existing := []PayrollRecord{{ID: "rec-2", EmployeeID: "emp-2", Month: 3, Year: 2025}}

	plan := BuildPlan(3, 2025, employees, agg, existing, nil)
	require.Len(t, plan, 2)

	first := plan[0]
	assert.Equal(t, ActionCreate, first.Action)
	assert.Equal(t, "emp-1", first.Record.EmployeeID)
	assert.Equal(t, 1, first.Record.DaysPresent)
	assert.True(t, first.Record.DaysWorked.Equal(d("1.5")))
	assert.True(t, first.Record.FinalPay.Equal(d("1500")))
	assert.Equal(t, StatusDraft, first.Record.Status)

	second := plan[1]
	assert.Equal(t, ActionUpdate, second.Action)
	assert.Equal(t, "rec-2", second.ExistingID)
	assert.Equal(t, "rec-2", second.Record.ID)
	assert.True(t, second.Record.DaysWorked.IsZero())
	assert.True(t, second.Record.FinalPay.IsZero())
}

func TestBuildPlanAppliesOverrides(t *testing.T) {
	employees := []employee.Employee{emp("emp-1", "30000")}
	agg := attendance.Summarize([]attendance.Attendance{
		{EmployeeID: "emp-1", Status: attendance.StatusPresent},
	})

	daysWorked := d("26")
	deductions := d("500")
	bonuses := d("1000")
	status := StatusProcessed
	overrides := map[string]FieldOverrides{
		"emp-1": {
			DaysWorked: &daysWorked,
			Deductions: &deductions,
			Bonuses:    &bonuses,
			Status:     &status,
		},
	}

	plan := BuildPlan(3, 2025, employees, agg, nil, overrides)
	require.Len(t, plan, 1)

	record := plan[0].Record
	assert.True(t, record.DaysWorked.Equal(d("26")), "override beats derived value")
	assert.Equal(t, 1, record.DaysPresent, "non-overridden counter keeps derived value")
	assert.True(t, record.FinalPay.Equal(d("26500")))
	assert.Equal(t, StatusProcessed, record.Status)
}

func TestBuildPlanIsIdempotent(t *testing.T) {
	employees := []employee.Employee{emp("emp-1", "30000"), emp("emp-2", "15000")}
	agg := attendance.Summarize([]attendance.Attendance{
		{EmployeeID: "emp-1", Status: attendance.StatusPresent},
	})
	existing := []PayrollRecord{{ID: "rec-1", EmployeeID: "emp-1", Month: 3, Year: 2025}}

	plan1 := BuildPlan(3, 2025, employees, agg, existing, nil)
	plan2 := BuildPlan(3, 2025, employees, agg, existing, nil)

	require.Equal(t, len(plan1), len(plan2))
	for i := range plan1 {
		assert.Equal(t, plan1[i].Action, plan2[i].Action)
		assert.Equal(t, plan1[i].ExistingID, plan2[i].ExistingID)
		assert.True(t, plan1[i].Record.FinalPay.Equal(plan2[i].Record.FinalPay))
	}
}

func TestResolveAmountPrecedence(t *testing.T) {
	override := d("10")
	derived := d("20")
	stored := d("30")

	assert.True(t, ResolveAmount(&override, &derived, &stored).Equal(d("10")))
	assert.True(t, ResolveAmount(nil, &derived, &stored).Equal(d("20")))
	assert.True(t, ResolveAmount(nil, nil, &stored).Equal(d("30")))
	assert.True(t, ResolveAmount(nil, nil, nil).IsZero())
}

func TestResolveCountPrecedence(t *testing.T) {
	override := 7
	assert.Equal(t, 7, ResolveCount(&override, 3))
	assert.Equal(t, 3, ResolveCount(nil, 3))
}
