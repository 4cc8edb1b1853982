package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/database"
	"github.com/workforge-hr/workforge-backend-go/internal/repository/postgresql"
)

type UserServiceImpl struct {
	db       *database.DB
	userRepo user.UserRepository
}

func NewUserService(db *database.DB, userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{db: db, userRepo: userRepo}
}

// Helper to get user_id and role from JWT context
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

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context) (user.UserResponse, error) {
	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// ListUsers scopes the listing by role: admins see every account, managers
// see only their reports. The scoping happens here rather than in the
// handler so no route wiring mistake can widen a manager's view.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var users []user.User
	switch role {
	case user.RoleAdmin:
		users, err = s.userRepo.List(ctx)
	case user.RoleManager:
		users, err = s.userRepo.ListByManagerID(ctx, userID)
	default:
		return nil, user.ErrManagerAccessRequired
	}
	if err != nil {
		return nil, err
	}

	return user.ToResponses(users), nil
}

func (s *UserServiceImpl) GetTeamGrouping(ctx context.Context) (user.TeamGroupingResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return user.TeamGroupingResponse{}, err
	}

	return user.ToGroupingResponse(user.GroupByManager(users)), nil
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if req.ManagerID != nil {
		if err := s.validateManager(ctx, *req.ManagerID); err != nil {
			return user.UserResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         user.Role(req.Role),
		ManagerID:    req.ManagerID,
		IsActive:     true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(u), nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.ManagerID != nil && !req.ClearManager {
		if err := s.validateManager(ctx, *req.ManagerID); err != nil {
			return user.UserResponse{}, err
		}
	}

	// Demoting or deactivating the last active admin would lock everyone
	// out of administration.
	demotes := req.Role != nil && user.Role(*req.Role) != user.RoleAdmin
	deactivates := req.IsActive != nil && !*req.IsActive
	if existing.IsAdmin() && existing.IsActive && (demotes || deactivates) {
		count, err := s.userRepo.CountActiveAdmins(ctx)
		if err != nil {
			return user.UserResponse{}, err
		}
		if count <= 1 {
			return user.UserResponse{}, user.ErrLastActiveAdmin
		}
	}

	// Field update and password change land together or not at all.
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.userRepo.Update(txCtx, req); err != nil {
			return err
		}

		if req.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			if err := s.userRepo.UpdatePasswordHash(txCtx, req.ID, string(hash)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(u), nil
}

func (s *UserServiceImpl) ResetPassword(ctx context.Context, id string, req user.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePasswordHash(ctx, id, string(hash))
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.IsAdmin() && existing.IsActive {
		count, err := s.userRepo.CountActiveAdmins(ctx)
		if err != nil {
			return err
		}
		if count <= 1 {
			return user.ErrLastActiveAdmin
		}
	}

	return s.userRepo.Delete(ctx, id)
}

func (s *UserServiceImpl) validateManager(ctx context.Context, managerID string) error {
	manager, err := s.userRepo.GetByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ErrManagerNotFound
		}
		return err
	}
	if manager.Role != user.RoleManager {
		return user.ErrManagerRoleRequired
	}
	return nil
}
