package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrAssigneeNotFound = errors.New("assignee not found")
	ErrTaskAccessDenied = errors.New("task access denied")
	ErrStatusOnlyUpdate = errors.New("only the task status can be changed")
)
