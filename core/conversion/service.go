package conversion

import (
	"context"
	"strings"

	"web2one-api/core/domain"
	"web2one-api/core/errors"
	"web2one-api/core/interfaces"
)

// Outcome is a finished conversion as seen by callers of the Service
type Outcome struct {
	ProjectID string
	HTML      string
	State     domain.State
	Steps     []domain.ConversionStep
}

// Service admits conversion requests and runs each on a fresh orchestrator
type Service struct {
	fetcher       interfaces.Fetcher
	reconstructor interfaces.Reconstructor
	projects      interfaces.ProjectStore
	credits       interfaces.CreditAccount
	cfg           Config
	logger        interfaces.Logger
}

// NewService creates an admission service
func NewService(
	fetcher interfaces.Fetcher,
	reconstructor interfaces.Reconstructor,
	projects interfaces.ProjectStore,
	credits interfaces.CreditAccount,
	cfg Config,
	logger interfaces.Logger,
) *Service {
	return &Service{
		fetcher:       fetcher,
		reconstructor: reconstructor,
		projects:      projects,
		credits:       credits,
		cfg:           cfg,
		logger:        logger,
	}
}

// Convert validates req, checks the user's balance and runs the pipeline
func (s *Service) Convert(ctx context.Context, userID string, req domain.ConversionRequest, events chan<- domain.StepEvent) (*Outcome, error) {
	req.SourceURL = strings.TrimSpace(req.SourceURL)
	if !domain.ValidSourceURL(req.SourceURL) {
		return nil, &errors.InvalidURLError{URL: req.SourceURL}
	}

	balance, err := s.credits.CheckBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance != domain.UnlimitedCredits && balance <= 0 {
		s.logger.Info("Conversion rejected, no credits", map[string]interface{}{
			"user_id": userID,
		})
		return nil, &errors.InsufficientCreditsError{UserID: userID}
	}

	o := NewOrchestrator(s.fetcher, s.reconstructor, s.projects, s.credits, s.cfg, s.logger)
	result, err := o.Run(ctx, userID, req, events)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		ProjectID: o.ProjectID(),
		HTML:      result.HTML,
		State:     o.State(),
		Steps:     o.Steps(),
	}, nil
}
