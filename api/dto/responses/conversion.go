// ABOUTME: Response DTOs for conversion, generate and health endpoints
// ABOUTME: Mirrors the step progress model returned to API clients

package responses

import "time"

// StepResponse is one entry of the progress indicator
type StepResponse struct {
	ID     string `json:"id" doc:"Step identifier"`
	Label  string `json:"label" doc:"Human readable step label"`
	Status string `json:"status" enum:"pending,loading,completed,error" doc:"Step status"`
}

// StepEventResponse is one recorded step transition
type StepEventResponse struct {
	Step   string    `json:"step"`
	Status string    `json:"status"`
	State  string    `json:"state"`
	At     time.Time `json:"at"`
	Error  string    `json:"error,omitempty"`
}

// ConversionResponse is returned by POST /api/conversions
type ConversionResponse struct {
	ProjectID string              `json:"projectId" doc:"Project that stores the output"`
	HTML      string              `json:"html" doc:"Embeddable HTML wrapped in the clone container"`
	State     string              `json:"state" doc:"Final run state"`
	Steps     []StepResponse      `json:"steps"`
	Events    []StepEventResponse `json:"events"`
}

// GenerateResponse is returned by POST /api/generate
type GenerateResponse struct {
	HTML string `json:"html" doc:"Reconstructed HTML wrapped in the clone container"`
}

// HealthResponse is returned by GET /api/health
type HealthResponse struct {
	Status    string    `json:"status" doc:"ok or degraded"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Storage   string    `json:"storage,omitempty" doc:"Storage check result"`
}
