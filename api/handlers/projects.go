package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"web2one-api/api/dto/mappers"
	"web2one-api/api/dto/responses"
	"web2one-api/core/domain"
)

// ProjectService reads and deletes stored projects
type ProjectService interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// ProjectHandler handles project requests
type ProjectHandler struct {
	projects ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// RegisterRoutes registers all project routes
func (h *ProjectHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listProjects",
		Method:      http.MethodGet,
		Path:        "/api/projects/user/{userId}",
		Summary:     "List a user's projects",
		Description: "Newest first; output HTML is omitted",
		Tags:        []string{"Projects"},
	}, h.ListProjects)

	huma.Register(api, huma.Operation{
		OperationID: "getProject",
		Method:      http.MethodGet,
		Path:        "/api/projects/{id}",
		Summary:     "Get a project with its output",
		Tags:        []string{"Projects"},
	}, h.GetProject)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteProject",
		Method:        http.MethodDelete,
		Path:          "/api/projects/{id}",
		Summary:       "Delete a project",
		Tags:          []string{"Projects"},
		DefaultStatus: http.StatusNoContent,
	}, h.DeleteProject)
}

// ListProjectsInput defines the input for the ListProjects operation
type ListProjectsInput struct {
	UserID string `path:"userId" doc:"User ID"`
}

// ListProjectsOutput defines the output for the ListProjects operation
type ListProjectsOutput struct {
	Body responses.ProjectListResponse
}

// ListProjects handles the GET /api/projects/user/{userId} endpoint
func (h *ProjectHandler) ListProjects(ctx context.Context, input *ListProjectsInput) (*ListProjectsOutput, error) {
	projects, err := h.projects.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ListProjectsOutput{Body: *mappers.ToProjectListResponse(projects)}, nil
}

// ProjectIDInput identifies a project by path
type ProjectIDInput struct {
	ID string `path:"id" doc:"Project ID"`
}

// ProjectOutput defines the output for the GetProject operation
type ProjectOutput struct {
	Body responses.ProjectResponse
}

// GetProject handles the GET /api/projects/{id} endpoint
func (h *ProjectHandler) GetProject(ctx context.Context, input *ProjectIDInput) (*ProjectOutput, error) {
	project, err := h.projects.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ProjectOutput{Body: *mappers.ToProjectResponse(project)}, nil
}

// DeleteProject handles the DELETE /api/projects/{id} endpoint
func (h *ProjectHandler) DeleteProject(ctx context.Context, input *ProjectIDInput) (*struct{}, error) {
	if err := h.projects.Delete(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}
