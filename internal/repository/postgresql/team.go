package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/team"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/database"
)

type teamRepository struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepository{db: db}
}

const teamColumns = `
	t.id, t.name, t.description, t.manager_id, t.created_at, t.updated_at,
	COALESCE(NULLIF(TRIM(CONCAT(m.first_name, ' ', m.last_name)), ''), m.username),
	COUNT(e.id)
`

const teamJoins = `
	LEFT JOIN users m ON m.id = t.manager_id
	LEFT JOIN employees e ON e.team_id = t.id
`

const teamGroupBy = `
	GROUP BY t.id, t.name, t.description, t.manager_id, t.created_at, t.updated_at,
		m.first_name, m.last_name, m.username
`

func scanTeam(row pgx.Row) (team.Team, error) {
	var t team.Team
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.ManagerID, &t.CreatedAt, &t.UpdatedAt,
		&t.ManagerName, &t.MemberCount,
	)
	return t, err
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM teams t
		%s
		WHERE t.id = $1
		%s
	`, teamColumns, teamJoins, teamGroupBy)

	t, err := scanTeam(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return team.Team{}, team.ErrTeamNotFound
		}
		return team.Team{}, fmt.Errorf("failed to get team: %w", err)
	}

	return t, nil
}

func (r *teamRepository) List(ctx context.Context) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM teams t
		%s
		%s
		ORDER BY t.name
	`, teamColumns, teamJoins, teamGroupBy)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	return collectTeams(rows)
}

func (r *teamRepository) ListByManagerID(ctx context.Context, managerID string) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM teams t
		%s
		WHERE t.manager_id = $1
		%s
		ORDER BY t.name
	`, teamColumns, teamJoins, teamGroupBy)

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by manager: %w", err)
	}
	defer rows.Close()

	return collectTeams(rows)
}

func collectTeams(rows pgx.Rows) ([]team.Team, error) {
	var teams []team.Team
	for rows.Next() {
		var t team.Team
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Description, &t.ManagerID, &t.CreatedAt, &t.UpdatedAt,
			&t.ManagerName, &t.MemberCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, nil
}

func (r *teamRepository) Create(ctx context.Context, newTeam team.Team) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teams (name, description, manager_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, manager_id, created_at, updated_at
	`

	var t team.Team
	err := q.QueryRow(ctx, query, newTeam.Name, newTeam.Description, newTeam.ManagerID).Scan(
		&t.ID, &t.Name, &t.Description, &t.ManagerID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_teams_name") {
			return team.Team{}, team.ErrTeamNameExists
		}
		return team.Team{}, fmt.Errorf("failed to create team: %w", err)
	}

	return t, nil
}

func (r *teamRepository) Update(ctx context.Context, req team.UpdateTeamRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}
	if req.ClearManager {
		setParts = append(setParts, "manager_id = NULL")
	} else if req.ManagerID != nil {
		setParts = append(setParts, fmt.Sprintf("manager_id = $%d", argIdx))
		args = append(args, *req.ManagerID)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE teams
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return team.ErrTeamNotFound
		}
		if strings.Contains(err.Error(), "uk_teams_name") {
			return team.ErrTeamNameExists
		}
		return fmt.Errorf("failed to update team: %w", err)
	}

	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM teams WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return team.ErrTeamNotFound
		}
		if strings.Contains(err.Error(), "fk_employees_team") {
			return team.ErrTeamHasEmployees
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}
