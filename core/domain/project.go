// ABOUTME: Project domain model records each conversion a user ran and its output
// ABOUTME: Projects move from pending through processing to completed or failed

package domain

import "time"

// ProjectStatus is the persisted status of a conversion project
type ProjectStatus string

const (
	ProjectPending    ProjectStatus = "pending"
	ProjectProcessing ProjectStatus = "processing"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectFailed     ProjectStatus = "failed"
)

// Project is one conversion attempt owned by a user
type Project struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	Name        string        `json:"name"`
	SourceURL   string        `json:"sourceUrl"`
	Status      ProjectStatus `json:"status"`
	OutputHTML  string        `json:"outputHtml,omitempty"`
	Rebrand     *RebrandInfo  `json:"rebrandInfo,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

// ProjectUpdate is a partial update applied to a project.
// Nil fields are left unchanged.
type ProjectUpdate struct {
	Status      ProjectStatus
	Name        *string
	OutputHTML  *string
	CompletedAt *time.Time
}
