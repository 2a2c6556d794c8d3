// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts pipeline and domain errors to problem responses

package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"web2one-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Pipeline stage errors keep their user-facing message as the detail;
// upstream statuses behind them are logged, never returned.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsInvalidURL(err), errors.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	case errors.IsUnauthorized(err):
		return huma.Error401Unauthorized(err.Error())
	case errors.IsInsufficientCredits(err):
		return huma.NewError(http.StatusPaymentRequired, err.Error())
	case errors.IsNotFound(err):
		return huma.Error404NotFound(err.Error())
	case stderrors.Is(err, errors.ErrConversionInProgress):
		return huma.Error409Conflict(err.Error())
	case errors.IsFetch(err), errors.IsGeneration(err):
		return huma.Error502BadGateway(err.Error())
	case errors.IsPersistence(err):
		return huma.Error500InternalServerError(err.Error())
	case stderrors.Is(err, context.DeadlineExceeded):
		return huma.Error504GatewayTimeout("The conversion timed out")
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
