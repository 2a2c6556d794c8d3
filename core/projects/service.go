// ABOUTME: Project service exposes a user's conversion history
// ABOUTME: Also serves as the orchestrator's project store

package projects

import (
	"context"

	"web2one-api/core/domain"
	"web2one-api/core/interfaces"
)

// Service wraps project storage
type Service struct {
	storage interfaces.ProjectStorage
}

// NewService creates a project service
func NewService(storage interfaces.ProjectStorage) *Service {
	return &Service{storage: storage}
}

// Create stores a new project
func (s *Service) Create(ctx context.Context, project *domain.Project) error {
	return s.storage.CreateProject(ctx, project)
}

// Update applies a partial update
func (s *Service) Update(ctx context.Context, id string, update domain.ProjectUpdate) error {
	return s.storage.UpdateProject(ctx, id, update)
}

// ListByUser returns a user's projects, newest first
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.storage.ListProjectsByUser(ctx, userID)
}

// Get returns a single project
func (s *Service) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.storage.GetProject(ctx, id)
}

// Delete removes a project
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.storage.DeleteProject(ctx, id)
}
