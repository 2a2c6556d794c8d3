package conversion

import (
	"context"
	"sync"

	"web2one-api/core/domain"
	"web2one-api/core/interfaces"
)

// mockFetcher is a mock implementation of the Fetcher interface
type mockFetcher struct {
	mu        sync.Mutex
	calls     int
	fetchFunc func(ctx context.Context, url string) (*domain.FetchResult, error)
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (*domain.FetchResult, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return &domain.FetchResult{URL: url, HTML: "<html></html>"}, nil
}

func (m *mockFetcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockReconstructor is a mock implementation of the Reconstructor interface
type mockReconstructor struct {
	mu              sync.Mutex
	calls           int
	reconstructFunc func(ctx context.Context, rawHTML, sourceURL string, rebrand *domain.RebrandInfo) (string, error)
}

func (m *mockReconstructor) Reconstruct(ctx context.Context, rawHTML, sourceURL string, rebrand *domain.RebrandInfo) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.reconstructFunc != nil {
		return m.reconstructFunc(ctx, rawHTML, sourceURL, rebrand)
	}
	return "<div></div>", nil
}

func (m *mockReconstructor) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockProjectStore records every create and update
type mockProjectStore struct {
	mu         sync.Mutex
	created    []*domain.Project
	updates    []domain.ProjectUpdate
	createFunc func(ctx context.Context, project *domain.Project) error
	updateFunc func(ctx context.Context, id string, update domain.ProjectUpdate) error
}

func (m *mockProjectStore) Create(ctx context.Context, project *domain.Project) error {
	m.mu.Lock()
	m.created = append(m.created, project)
	m.mu.Unlock()
	if m.createFunc != nil {
		return m.createFunc(ctx, project)
	}
	return nil
}

func (m *mockProjectStore) Update(ctx context.Context, id string, update domain.ProjectUpdate) error {
	m.mu.Lock()
	m.updates = append(m.updates, update)
	m.mu.Unlock()
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, update)
	}
	return nil
}

func (m *mockProjectStore) Statuses() []domain.ProjectStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	statuses := make([]domain.ProjectStatus, 0, len(m.updates))
	for _, u := range m.updates {
		statuses = append(statuses, u.Status)
	}
	return statuses
}

func (m *mockProjectStore) LastUpdate() domain.ProjectUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updates[len(m.updates)-1]
}

// mockCreditAccount is a mock implementation of the CreditAccount interface
type mockCreditAccount struct {
	mu           sync.Mutex
	balance      int
	decrements   int
	refreshes    int
	checkErr     error
	decrementErr error
}

func (m *mockCreditAccount) CheckBalance(ctx context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balance, m.checkErr
}

func (m *mockCreditAccount) DecrementOne(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.decrementErr != nil {
		return m.decrementErr
	}
	m.decrements++
	if m.balance > 0 {
		m.balance--
	}
	return nil
}

func (m *mockCreditAccount) Refresh(ctx context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshes++
	return m.balance, nil
}

func (m *mockCreditAccount) Decrements() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decrements
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
func (m *mockLogger) With(fields map[string]interface{}) interfaces.Logger {
	return m
}
