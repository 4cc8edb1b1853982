package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/team"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
)

type TeamServiceImpl struct {
	teamRepo team.TeamRepository
	userRepo user.UserRepository
}

func NewTeamService(teamRepo team.TeamRepository, userRepo user.UserRepository) team.TeamService {
	return &TeamServiceImpl{teamRepo: teamRepo, userRepo: userRepo}
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

func (s *TeamServiceImpl) GetTeam(ctx context.Context, id string) (team.TeamResponse, error) {
	t, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return team.TeamResponse{}, err
	}
	return team.ToResponse(t), nil
}

// ListTeams returns every team for admins and only managed teams for
// managers.
func (s *TeamServiceImpl) ListTeams(ctx context.Context) ([]team.TeamResponse, error) {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var teams []team.Team
	if role == user.RoleManager {
		teams, err = s.teamRepo.ListByManagerID(ctx, userID)
	} else {
		teams, err = s.teamRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	return team.ToResponses(teams), nil
}

func (s *TeamServiceImpl) CreateTeam(ctx context.Context, req team.CreateTeamRequest) (team.TeamResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	if req.ManagerID != nil {
		if err := s.validateManager(ctx, *req.ManagerID); err != nil {
			return team.TeamResponse{}, err
		}
	}

	t, err := s.teamRepo.Create(ctx, team.Team{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		return team.TeamResponse{}, err
	}

	return s.GetTeam(ctx, t.ID)
}

func (s *TeamServiceImpl) UpdateTeam(ctx context.Context, req team.UpdateTeamRequest) (team.TeamResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	if req.ManagerID != nil && !req.ClearManager {
		if err := s.validateManager(ctx, *req.ManagerID); err != nil {
			return team.TeamResponse{}, err
		}
	}

	if err := s.teamRepo.Update(ctx, req); err != nil {
		return team.TeamResponse{}, err
	}

	return s.GetTeam(ctx, req.ID)
}

func (s *TeamServiceImpl) DeleteTeam(ctx context.Context, id string) error {
	if _, err := s.teamRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.teamRepo.Delete(ctx, id)
}

func (s *TeamServiceImpl) validateManager(ctx context.Context, managerID string) error {
	manager, err := s.userRepo.GetByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ErrManagerNotFound
		}
		return err
	}
	if !manager.IsManager() {
		return user.ErrManagerRoleRequired
	}
	return nil
}
