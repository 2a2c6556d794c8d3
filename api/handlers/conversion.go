// ABOUTME: Conversion handlers for the Huma API
// ABOUTME: Runs the clone pipeline for API key holders and exposes the model relay

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"web2one-api/api/dto/mappers"
	"web2one-api/api/dto/requests"
	"web2one-api/api/dto/responses"
	"web2one-api/core/conversion"
	"web2one-api/core/domain"
	"web2one-api/core/interfaces"
)

// eventBuffer holds every transition of a run so the pipeline never waits on the handler
const eventBuffer = 16

// ConversionService admits and runs conversions
type ConversionService interface {
	Convert(ctx context.Context, userID string, req domain.ConversionRequest, events chan<- domain.StepEvent) (*conversion.Outcome, error)
}

// ConversionHandler handles conversion-related HTTP requests
type ConversionHandler struct {
	conversions   ConversionService
	reconstructor interfaces.Reconstructor
	keys          KeyResolver
	logger        interfaces.Logger
}

// NewConversionHandler creates a new conversion handler
func NewConversionHandler(conversions ConversionService, reconstructor interfaces.Reconstructor, keys KeyResolver, logger interfaces.Logger) *ConversionHandler {
	return &ConversionHandler{
		conversions:   conversions,
		reconstructor: reconstructor,
		keys:          keys,
		logger:        logger,
	}
}

// RegisterRoutes registers all conversion-related routes
func (h *ConversionHandler) RegisterRoutes(api huma.API) {
	security := []map[string][]string{{"apiKey": {}}}

	huma.Register(api, huma.Operation{
		OperationID: "createConversion",
		Method:      http.MethodPost,
		Path:        "/api/conversions",
		Summary:     "Convert a website",
		Description: "Fetches a public page, reconstructs it as embeddable static HTML and stores it as a project. Consumes one credit on success.",
		Tags:        []string{"Conversions"},
		Security:    security,
	}, h.CreateConversion)

	huma.Register(api, huma.Operation{
		OperationID: "clone",
		Method:      http.MethodPost,
		Path:        "/api/clone",
		Summary:     "Clone a website as HTML",
		Description: "Runs the same pipeline as createConversion and returns the HTML document directly",
		Tags:        []string{"Conversions"},
		Security:    security,
	}, h.Clone)

	huma.Register(api, huma.Operation{
		OperationID: "generate",
		Method:      http.MethodPost,
		Path:        "/api/generate",
		Summary:     "Reconstruct fetched HTML",
		Description: "Builds the reconstruction prompt for already fetched HTML and returns the cleaned model output. No project is stored and no credit is used.",
		Tags:        []string{"Conversions"},
		Security:    security,
	}, h.Generate)
}

// CreateConversionInput defines the input for the CreateConversion operation
type CreateConversionInput struct {
	Authorization string `header:"Authorization" doc:"Bearer API key"`
	Body          requests.ConversionRequest
}

// CreateConversionOutput defines the output for the CreateConversion operation
type CreateConversionOutput struct {
	Body responses.ConversionResponse
}

// CreateConversion handles the POST /api/conversions endpoint
func (h *ConversionHandler) CreateConversion(ctx context.Context, input *CreateConversionInput) (*CreateConversionOutput, error) {
	outcome, events, err := h.run(ctx, input.Authorization, input.Body)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CreateConversionOutput{
		Body: *mappers.ToConversionResponse(outcome, events),
	}, nil
}

// CloneInput defines the input for the Clone operation
type CloneInput struct {
	Authorization string `header:"Authorization" doc:"Bearer API key"`
	Body          requests.ConversionRequest
}

// CloneOutput is the reconstructed document written as text/html
type CloneOutput struct {
	ContentType string `header:"Content-Type"`
	ProjectID   string `header:"X-Project-ID"`
	Body        []byte
}

// Clone handles the POST /api/clone endpoint
func (h *ConversionHandler) Clone(ctx context.Context, input *CloneInput) (*CloneOutput, error) {
	outcome, _, err := h.run(ctx, input.Authorization, input.Body)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CloneOutput{
		ContentType: "text/html; charset=utf-8",
		ProjectID:   outcome.ProjectID,
		Body:        []byte(outcome.HTML),
	}, nil
}

func (h *ConversionHandler) run(ctx context.Context, authorization string, body requests.ConversionRequest) (*conversion.Outcome, []domain.StepEvent, error) {
	user, err := authenticate(ctx, h.keys, authorization)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan domain.StepEvent, eventBuffer)
	outcome, err := h.conversions.Convert(ctx, user.ID, body.ToDomain(), events)
	close(events)

	collected := make([]domain.StepEvent, 0, eventBuffer)
	for ev := range events {
		collected = append(collected, ev)
	}

	if err != nil {
		h.logger.Warn("Conversion failed", map[string]interface{}{
			"user_id": user.ID,
			"url":     body.URL,
			"error":   err.Error(),
		})
		return nil, collected, err
	}
	return outcome, collected, nil
}

// GenerateInput defines the input for the Generate operation
type GenerateInput struct {
	Authorization string `header:"Authorization" doc:"Bearer API key"`
	Body          requests.GenerateRequest
}

// GenerateOutput defines the output for the Generate operation
type GenerateOutput struct {
	Body responses.GenerateResponse
}

// Generate handles the POST /api/generate endpoint
func (h *ConversionHandler) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if _, err := authenticate(ctx, h.keys, input.Authorization); err != nil {
		return nil, toHumaError(err)
	}

	html, err := h.reconstructor.Reconstruct(ctx, input.Body.RawHTML, input.Body.OriginalURL, input.Body.Rebrand.ToDomain())
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GenerateOutput{
		Body: responses.GenerateResponse{HTML: html},
	}, nil
}
