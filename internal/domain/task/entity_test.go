package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestIsOverdue(t *testing.T) {
	today := day("2025-03-15")

	cases := []struct {
		name string
		task Task
		want bool
	}{
		{
			"no due date",
			Task{Status: StatusTodo},
			false,
		},
		{
			"open task past due",
			Task{Status: StatusTodo, DueDate: ptr(day("2025-03-10"))},
			true,
		},
		{
			"open task due today",
			Task{Status: StatusInProgress, DueDate: ptr(day("2025-03-15"))},
			false,
		},
		{
			"open task due tomorrow",
			Task{Status: StatusTodo, DueDate: ptr(day("2025-03-16"))},
			false,
		},
		{
			"completed on time",
			Task{Status: StatusCompleted, DueDate: ptr(day("2025-03-10")), UpdatedAt: day("2025-03-09")},
			false,
		},
		{
			"completed late",
			Task{Status: StatusCompleted, DueDate: ptr(day("2025-03-10")), UpdatedAt: day("2025-03-12")},
			true,
		},
		{
			"completed on the due date itself",
			Task{Status: StatusCompleted, DueDate: ptr(day("2025-03-10")), UpdatedAt: day("2025-03-10")},
			false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.task.IsOverdue(today))
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }
