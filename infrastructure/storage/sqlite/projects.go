package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"web2one-api/core/domain"
	"web2one-api/core/errors"
)

const projectColumns = "id, user_id, name, source_url, status, output_html, rebrand_info, created_at, completed_at"

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// CreateProject inserts a new project
func (s *Store) CreateProject(ctx context.Context, project *domain.Project) error {
	rebrand, err := encodeRebrand(project.Rebrand)
	if err != nil {
		return err
	}

	var completedAt sql.NullInt64
	if project.CompletedAt != nil {
		completedAt = sql.NullInt64{Int64: toMillis(*project.CompletedAt), Valid: true}
	}

	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		project.ID, project.UserID, project.Name, project.SourceURL, string(project.Status),
		nullString(project.OutputHTML), rebrand, toMillis(project.CreatedAt), completedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// UpdateProject applies a partial update; nil fields and an empty status are left unchanged
func (s *Store) UpdateProject(ctx context.Context, id string, update domain.ProjectUpdate) error {
	var (
		sets []string
		args []interface{}
	)
	if update.Status != "" {
		sets = append(sets, "status = ?")
		args = append(args, string(update.Status))
	}
	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.OutputHTML != nil {
		sets = append(sets, "output_html = ?")
		args = append(args, *update.OutputHTML)
	}
	if update.CompletedAt != nil {
		sets = append(sets, "completed_at = ?")
		args = append(args, toMillis(*update.CompletedAt))
	}
	if len(sets) == 0 {
		return &errors.ValidationError{Field: "update", Message: "nothing to update"}
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx, "UPDATE projects SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &errors.NotFoundError{Resource: "project", ID: id}
	}
	return nil
}

// GetProject returns the project with id
func (s *Store) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+projectColumns+" FROM projects WHERE id = ?", id)
	project, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, &errors.NotFoundError{Resource: "project", ID: id}
	}
	return project, err
}

// ListProjectsByUser returns a user's projects, newest first
func (s *Store) ListProjectsByUser(ctx context.Context, userID string) ([]*domain.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE user_id = ? ORDER BY created_at DESC, id", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// DeleteProject removes the project with id
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &errors.NotFoundError{Resource: "project", ID: id}
	}
	return nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		project     domain.Project
		status      string
		outputHTML  sql.NullString
		rebrand     sql.NullString
		createdAt   int64
		completedAt sql.NullInt64
	)
	err := row.Scan(&project.ID, &project.UserID, &project.Name, &project.SourceURL, &status,
		&outputHTML, &rebrand, &createdAt, &completedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}

	project.Status = domain.ProjectStatus(status)
	project.OutputHTML = outputHTML.String
	project.CreatedAt = fromMillis(createdAt)
	if completedAt.Valid {
		t := fromMillis(completedAt.Int64)
		project.CompletedAt = &t
	}
	if rebrand.Valid && rebrand.String != "" {
		var info domain.RebrandInfo
		if err := json.Unmarshal([]byte(rebrand.String), &info); err != nil {
			return nil, fmt.Errorf("failed to decode rebrand info: %w", err)
		}
		project.Rebrand = &info
	}
	return &project, nil
}

func encodeRebrand(info *domain.RebrandInfo) (sql.NullString, error) {
	if info.IsEmpty() {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(info)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode rebrand info: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
