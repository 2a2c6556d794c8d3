package mappers

import (
	"web2one-api/api/dto/responses"
	"web2one-api/core/domain"
)

// ToProjectResponse converts a project including its output
func ToProjectResponse(p *domain.Project) *responses.ProjectResponse {
	if p == nil {
		return nil
	}
	resp := &responses.ProjectResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		SourceURL:   p.SourceURL,
		Status:      string(p.Status),
		OutputHTML:  p.OutputHTML,
		CreatedAt:   p.CreatedAt,
		CompletedAt: p.CompletedAt,
	}
	if !p.Rebrand.IsEmpty() {
		resp.Rebrand = &responses.RebrandResponse{
			LogoURL:     p.Rebrand.LogoURL,
			BrandName:   p.Rebrand.BrandName,
			WebsiteLink: p.Rebrand.WebsiteLink,
		}
	}
	return resp
}

// ToProjectListResponse converts a listing and drops each project's output
func ToProjectListResponse(projects []*domain.Project) *responses.ProjectListResponse {
	out := &responses.ProjectListResponse{Projects: make([]responses.ProjectResponse, 0, len(projects))}
	for _, p := range projects {
		r := ToProjectResponse(p)
		r.OutputHTML = ""
		out.Projects = append(out.Projects, *r)
	}
	return out
}
