package team

import "errors"

var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamNameExists    = errors.New("team name already exists")
	ErrManagerRequired   = errors.New("manager id must refer to a user with manager role")
	ErrTeamHasEmployees  = errors.New("team still has employees assigned")
)
