// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"web2one-api/core/domain"
)

// ProjectStorage persists conversion projects
type ProjectStorage interface {
	CreateProject(ctx context.Context, project *domain.Project) error
	UpdateProject(ctx context.Context, id string, update domain.ProjectUpdate) error
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjectsByUser(ctx context.Context, userID string) ([]*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// UserStorage persists users and their credit balances
type UserStorage interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	TouchLogin(ctx context.Context, id string) error
	SetPlan(ctx context.Context, id string, plan domain.PlanType, credits int) error

	// DecrementCredits takes one credit when the balance is positive.
	// Returns false when nothing was taken (exhausted or unlimited).
	DecrementCredits(ctx context.Context, id string) (bool, error)

	// AddCredits raises a limited balance by amount; unlimited balances are left untouched
	AddCredits(ctx context.Context, id string, amount int) error
}

// APIKeyStorage persists API keys
type APIKeyStorage interface {
	CreateAPIKey(ctx context.Context, key *domain.APIKey) error
	GetAPIKey(ctx context.Context, id string) (*domain.APIKey, error)
	GetAPIKeyByKey(ctx context.Context, key string) (*domain.APIKey, error)
	ListAPIKeysByUser(ctx context.Context, userID string) ([]*domain.APIKey, error)
	RevokeAPIKey(ctx context.Context, id string) error
}
