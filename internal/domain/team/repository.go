package team

import "context"

type TeamRepository interface {
	GetByID(ctx context.Context, id string) (Team, error)
	List(ctx context.Context) ([]Team, error)
	ListByManagerID(ctx context.Context, managerID string) ([]Team, error)
	Create(ctx context.Context, newTeam Team) (Team, error)
	Update(ctx context.Context, req UpdateTeamRequest) error
	Delete(ctx context.Context, id string) error
}
