package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"web2one-api/core/domain"
	"web2one-api/core/errors"
)

const apiKeyColumns = "id, key, user_id, name, revoked, created_at"

// CreateAPIKey inserts a new key
func (s *Store) CreateAPIKey(ctx context.Context, key *domain.APIKey) error {
	query := `INSERT INTO api_keys (` + apiKeyColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		key.ID, key.Key, key.UserID, key.Name, key.Revoked, toMillis(key.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create api key: %w", err)
	}
	return nil
}

// GetAPIKey returns the key with id
func (s *Store) GetAPIKey(ctx context.Context, id string) (*domain.APIKey, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+apiKeyColumns+" FROM api_keys WHERE id = ?", id)
	key, err := scanAPIKey(row)
	if err == sql.ErrNoRows {
		return nil, &errors.NotFoundError{Resource: "api key", ID: id}
	}
	return key, err
}

// GetAPIKeyByKey returns the key with the given secret value
func (s *Store) GetAPIKeyByKey(ctx context.Context, key string) (*domain.APIKey, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+apiKeyColumns+" FROM api_keys WHERE key = ?", key)
	found, err := scanAPIKey(row)
	if err == sql.ErrNoRows {
		return nil, &errors.NotFoundError{Resource: "api key", ID: "<redacted>"}
	}
	return found, err
}

// ListAPIKeysByUser returns every key of userID, newest first
func (s *Store) ListAPIKeysByUser(ctx context.Context, userID string) ([]*domain.APIKey, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+apiKeyColumns+" FROM api_keys WHERE user_id = ? ORDER BY created_at DESC, id", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	defer rows.Close()

	keys := []*domain.APIKey{}
	for rows.Next() {
		key, err := scanAPIKey(rows)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// RevokeAPIKey marks the key with id revoked
func (s *Store) RevokeAPIKey(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE api_keys SET revoked = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to revoke api key: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &errors.NotFoundError{Resource: "api key", ID: id}
	}
	return nil
}

func scanAPIKey(row rowScanner) (*domain.APIKey, error) {
	var (
		key       domain.APIKey
		createdAt int64
	)
	err := row.Scan(&key.ID, &key.Key, &key.UserID, &key.Name, &key.Revoked, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan api key: %w", err)
	}
	key.CreatedAt = fromMillis(createdAt)
	return &key, nil
}
