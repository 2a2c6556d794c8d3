package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"web2one-api/core/domain"
	"web2one-api/core/errors"
)

const userColumns = "id, email, name, picture, plan, credits, created_at, last_login_at"

// CreateUser inserts a new user
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Name, user.Picture, string(user.Plan), user.Credits,
		toMillis(user.CreatedAt), toMillis(user.LastLoginAt))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return &errors.ValidationError{Field: "email", Message: "already registered"}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUser returns the user with id
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return scanUser(row, id)
}

// GetUserByEmail returns the user registered with email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	return scanUser(row, email)
}

func scanUser(row *sql.Row, lookup string) (*domain.User, error) {
	var (
		user               domain.User
		plan               string
		createdAt, lastLog int64
	)
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Picture, &plan, &user.Credits, &createdAt, &lastLog)
	if err == sql.ErrNoRows {
		return nil, &errors.NotFoundError{Resource: "user", ID: lookup}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user.Plan = domain.PlanType(plan)
	user.CreatedAt = fromMillis(createdAt)
	user.LastLoginAt = fromMillis(lastLog)
	return &user, nil
}

// TouchLogin records a login now
func (s *Store) TouchLogin(ctx context.Context, id string) error {
	return s.updateUser(ctx, id, "UPDATE users SET last_login_at = ? WHERE id = ?", toMillis(time.Now()), id)
}

// SetPlan moves a user to plan with the given balance
func (s *Store) SetPlan(ctx context.Context, id string, plan domain.PlanType, credits int) error {
	return s.updateUser(ctx, id, "UPDATE users SET plan = ?, credits = ? WHERE id = ?", string(plan), credits, id)
}

// DecrementCredits takes one credit when the balance is positive
func (s *Store) DecrementCredits(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "UPDATE users SET credits = credits - 1 WHERE id = ? AND credits > 0", id)
	if err != nil {
		return false, fmt.Errorf("failed to decrement credits: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 1 {
		return true, nil
	}

	found, err := s.exists(ctx, "users", id)
	if err != nil {
		return false, err
	}
	if !found {
		return false, &errors.NotFoundError{Resource: "user", ID: id}
	}
	return false, nil
}

// AddCredits raises a limited balance; unlimited balances stay unlimited
func (s *Store) AddCredits(ctx context.Context, id string, amount int) error {
	res, err := s.db.ExecContext(ctx, "UPDATE users SET credits = credits + ? WHERE id = ? AND credits != ?",
		amount, id, domain.UnlimitedCredits)
	if err != nil {
		return fmt.Errorf("failed to add credits: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return nil
	}

	found, err := s.exists(ctx, "users", id)
	if err != nil {
		return err
	}
	if !found {
		return &errors.NotFoundError{Resource: "user", ID: id}
	}
	return nil
}

func (s *Store) updateUser(ctx context.Context, id, query string, args ...interface{}) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &errors.NotFoundError{Resource: "user", ID: id}
	}
	return nil
}
