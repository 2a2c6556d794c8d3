// ABOUTME: Mappers convert domain models to API response DTOs
// ABOUTME: Keeps the wire shape independent from the domain types

package mappers

import (
	"web2one-api/api/dto/responses"
	"web2one-api/core/conversion"
	"web2one-api/core/domain"
)

// ToStepResponses converts the step list
func ToStepResponses(steps []domain.ConversionStep) []responses.StepResponse {
	out := make([]responses.StepResponse, 0, len(steps))
	for _, s := range steps {
		out = append(out, responses.StepResponse{
			ID:     string(s.ID),
			Label:  s.Label,
			Status: string(s.Status),
		})
	}
	return out
}

// ToStepEventResponses converts recorded step transitions
func ToStepEventResponses(events []domain.StepEvent) []responses.StepEventResponse {
	out := make([]responses.StepEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, responses.StepEventResponse{
			Step:   string(e.Step),
			Status: string(e.Status),
			State:  string(e.State),
			At:     e.At,
			Error:  e.Err,
		})
	}
	return out
}

// ToConversionResponse converts a finished conversion
func ToConversionResponse(outcome *conversion.Outcome, events []domain.StepEvent) *responses.ConversionResponse {
	if outcome == nil {
		return nil
	}
	return &responses.ConversionResponse{
		ProjectID: outcome.ProjectID,
		HTML:      outcome.HTML,
		State:     string(outcome.State),
		Steps:     ToStepResponses(outcome.Steps),
		Events:    ToStepEventResponses(events),
	}
}
