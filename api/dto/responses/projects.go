package responses

import "time"

// RebrandResponse echoes the rebranding a project was created with
type RebrandResponse struct {
	LogoURL     string `json:"logoUrl,omitempty"`
	BrandName   string `json:"brandName,omitempty"`
	WebsiteLink string `json:"websiteLink,omitempty"`
}

// ProjectResponse is a project with its output
type ProjectResponse struct {
	ID          string           `json:"id"`
	UserID      string           `json:"userId"`
	Name        string           `json:"name"`
	SourceURL   string           `json:"sourceUrl"`
	Status      string           `json:"status" enum:"pending,processing,completed,failed"`
	OutputHTML  string           `json:"outputHtml,omitempty"`
	Rebrand     *RebrandResponse `json:"rebrandInfo,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
}

// ProjectListResponse lists a user's projects, newest first, without their output
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}
