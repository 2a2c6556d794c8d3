// ABOUTME: Service interfaces for the conversion pipeline
// ABOUTME: Defines contracts between the orchestrator, fetcher, model client and credits layer

package interfaces

import (
	"context"

	"web2one-api/core/domain"
)

// Fetcher retrieves the raw HTML of a public page
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*domain.FetchResult, error)
}

// GenerateRequest is a single call to a generative model
type GenerateRequest struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	ReasoningEffort   string
}

// Generator invokes a generative model, directly or through a backend relay
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Reconstructor turns fetched HTML into embeddable static HTML
type Reconstructor interface {
	Reconstruct(ctx context.Context, rawHTML, sourceURL string, rebrand *domain.RebrandInfo) (string, error)
}

// ProjectStore is the project persistence collaborator used by the orchestrator
type ProjectStore interface {
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, id string, update domain.ProjectUpdate) error
}

// CreditAccount is the credit accounting collaborator
type CreditAccount interface {
	// CheckBalance returns the user's balance; -1 means unlimited
	CheckBalance(ctx context.Context, userID string) (int, error)

	// DecrementOne consumes one credit; unlimited balances are left untouched
	DecrementOne(ctx context.Context, userID string) error

	// Refresh reloads the balance from storage and returns it
	Refresh(ctx context.Context, userID string) (int, error)
}
