package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"web2one-api/api/dto/responses"
)

// Pinger checks a backing store
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service liveness
type HealthHandler struct {
	version string
	storage Pinger
	now     func() time.Time
}

// NewHealthHandler creates a health handler; storage may be nil
func NewHealthHandler(version string, storage Pinger) *HealthHandler {
	return &HealthHandler{version: version, storage: storage, now: time.Now}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /api/health endpoint
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	resp := responses.HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC(),
		Version:   h.version,
	}

	if h.storage != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := h.storage.Ping(pingCtx); err != nil {
			resp.Status = "degraded"
			resp.Storage = err.Error()
		} else {
			resp.Storage = "ok"
		}
	}

	return &HealthOutput{Body: resp}, nil
}
