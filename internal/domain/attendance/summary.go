package attendance

import "github.com/shopspring/decimal"

var halfDay = decimal.NewFromFloat(0.5)

// PeriodSummary holds the per-employee counters for one payroll period.
// DaysWorked is decimal because half days contribute 0.5.
type PeriodSummary struct {
	DaysPresent int
	DaysAbsent  int
	DaysOnLeave int
	DaysWorked  decimal.Decimal
}

// Aggregate is the result of folding a period's attendance records.
type Aggregate struct {
	Summaries map[string]PeriodSummary
	// Skipped counts records that contributed nothing, either an unknown
	// status or a missing employee reference.
	Skipped int
}

// Summarize folds a list of attendance records for a fixed period into
// per-employee counters. Employees with no records simply do not appear;
// callers default missing keys to zero. Duplicate records for the same day
// are not deduplicated here; the database uniqueness constraint guards
// against double counting.
func Summarize(records []Attendance) Aggregate {
	agg := Aggregate{Summaries: make(map[string]PeriodSummary)}

	for _, rec := range records {
		if rec.EmployeeID == "" {
			agg.Skipped++
			continue
		}

		s, ok := agg.Summaries[rec.EmployeeID]
		if !ok {
			s = PeriodSummary{DaysWorked: decimal.Zero}
		}

		switch rec.Status {
		case StatusPresent:
			s.DaysPresent++
			s.DaysWorked = s.DaysWorked.Add(decimal.NewFromInt(1))
		case StatusAbsent:
			s.DaysAbsent++
		case StatusLeave:
			s.DaysOnLeave++
		case StatusHalfDay:
			s.DaysWorked = s.DaysWorked.Add(halfDay)
		default:
			agg.Skipped++
			continue
		}

		agg.Summaries[rec.EmployeeID] = s
	}

	return agg
}

// SummaryFor returns the summary for an employee, zero-valued when the
// employee had no records in the period.
func (a Aggregate) SummaryFor(employeeID string) PeriodSummary {
	if s, ok := a.Summaries[employeeID]; ok {
		return s
	}
	return PeriodSummary{DaysWorked: decimal.Zero}
}
