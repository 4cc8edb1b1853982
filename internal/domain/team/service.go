package team

import (
	"context"
)

type TeamService interface {
	GetTeam(ctx context.Context, id string) (TeamResponse, error)
	ListTeams(ctx context.Context) ([]TeamResponse, error)
	CreateTeam(ctx context.Context, req CreateTeamRequest) (TeamResponse, error)
	UpdateTeam(ctx context.Context, req UpdateTeamRequest) (TeamResponse, error)
	DeleteTeam(ctx context.Context, id string) error
}
