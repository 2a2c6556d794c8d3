package handlers

import (
	"context"

	"web2one-api/core/conversion"
	"web2one-api/core/domain"
	"web2one-api/core/errors"
	"web2one-api/core/interfaces"
)

type mockConversionService struct {
	convertFunc func(ctx context.Context, userID string, req domain.ConversionRequest, events chan<- domain.StepEvent) (*conversion.Outcome, error)
	calls       int
}

func (m *mockConversionService) Convert(ctx context.Context, userID string, req domain.ConversionRequest, events chan<- domain.StepEvent) (*conversion.Outcome, error) {
	m.calls++
	if m.convertFunc != nil {
		return m.convertFunc(ctx, userID, req, events)
	}
	return nil, nil
}

type mockReconstructor struct {
	reconstructFunc func(ctx context.Context, rawHTML, sourceURL string, rebrand *domain.RebrandInfo) (string, error)
}

func (m *mockReconstructor) Reconstruct(ctx context.Context, rawHTML, sourceURL string, rebrand *domain.RebrandInfo) (string, error) {
	if m.reconstructFunc != nil {
		return m.reconstructFunc(ctx, rawHTML, sourceURL, rebrand)
	}
	return "", nil
}

// mockKeyResolver accepts a fixed set of keys
type mockKeyResolver struct {
	users map[string]*domain.User
}

func (m *mockKeyResolver) Resolve(ctx context.Context, key string) (*domain.User, error) {
	if key == "" {
		return nil, &errors.UnauthorizedError{Reason: "missing api key"}
	}
	if u, ok := m.users[key]; ok {
		return u, nil
	}
	return nil, &errors.UnauthorizedError{Reason: "invalid api key"}
}

type mockAccountService struct {
	loginFunc func(ctx context.Context, email, name, picture string) (*domain.User, error)
	getFunc   func(ctx context.Context, id string) (*domain.User, error)
}

func (m *mockAccountService) Login(ctx context.Context, email, name, picture string) (*domain.User, error) {
	return m.loginFunc(ctx, email, name, picture)
}

func (m *mockAccountService) Get(ctx context.Context, id string) (*domain.User, error) {
	return m.getFunc(ctx, id)
}

type mockCreditService struct {
	balanceFunc    func(ctx context.Context, userID string) (int, error)
	addCreditsFunc func(ctx context.Context, userID string, amount int) (int, error)
	changePlanFunc func(ctx context.Context, userID string, plan domain.PlanType) (*domain.User, error)
}

func (m *mockCreditService) Balance(ctx context.Context, userID string) (int, error) {
	return m.balanceFunc(ctx, userID)
}

func (m *mockCreditService) AddCredits(ctx context.Context, userID string, amount int) (int, error) {
	return m.addCreditsFunc(ctx, userID, amount)
}

func (m *mockCreditService) ChangePlan(ctx context.Context, userID string, plan domain.PlanType) (*domain.User, error) {
	return m.changePlanFunc(ctx, userID, plan)
}

type mockKeyService struct {
	issueFunc  func(ctx context.Context, userID, name string) (*domain.APIKey, error)
	listFunc   func(ctx context.Context, userID string) ([]*domain.APIKey, error)
	revokeFunc func(ctx context.Context, id string) error
}

func (m *mockKeyService) IssueKey(ctx context.Context, userID, name string) (*domain.APIKey, error) {
	return m.issueFunc(ctx, userID, name)
}

func (m *mockKeyService) ListKeys(ctx context.Context, userID string) ([]*domain.APIKey, error) {
	return m.listFunc(ctx, userID)
}

func (m *mockKeyService) RevokeKey(ctx context.Context, id string) error {
	return m.revokeFunc(ctx, id)
}

type mockProjectService struct {
	listFunc   func(ctx context.Context, userID string) ([]*domain.Project, error)
	getFunc    func(ctx context.Context, id string) (*domain.Project, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockProjectService) ListByUser(ctx context.Context, userID string) ([]*domain.Project, error) {
	return m.listFunc(ctx, userID)
}

func (m *mockProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return m.getFunc(ctx, id)
}

func (m *mockProjectService) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.err
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

func (l nopLogger) With(map[string]interface{}) interfaces.Logger { return l }
