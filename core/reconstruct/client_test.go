package reconstruct

import (
	"context"
	"fmt"
	"testing"
	"time"

	"web2one-api/core/domain"
	"web2one-api/core/errors"
	"web2one-api/core/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockGenerator is a mock implementation of the Generator interface
type mockGenerator struct {
	calls        int
	lastRequest  interfaces.GenerateRequest
	generateFunc func(ctx context.Context, req interfaces.GenerateRequest) (string, error)
}

func (m *mockGenerator) Generate(ctx context.Context, req interfaces.GenerateRequest) (string, error) {
	m.calls++
	m.lastRequest = req
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return "", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
func (m *mockLogger) With(fields map[string]interface{}) interfaces.Logger {
	return m
}

func TestClient_Reconstruct(t *testing.T) {
	gen := &mockGenerator{
		generateFunc: func(ctx context.Context, req interfaces.GenerateRequest) (string, error) {
			return "```html\n<h1>Acme</h1>\n```", nil
		},
	}
	client := NewClient(gen, DefaultClientConfig(), &mockLogger{})

	html, err := client.Reconstruct(context.Background(), Request{SystemInstruction: "sys", Prompt: "prompt"})
	require.NoError(t, err)

	assert.Equal(t, `<div id="ghl-clone-container"><h1>Acme</h1></div>`, html)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "sys", gen.lastRequest.SystemInstruction)
	assert.Equal(t, "prompt", gen.lastRequest.Prompt)
	assert.Equal(t, 0.1, gen.lastRequest.Temperature)
	assert.Equal(t, "low", gen.lastRequest.ReasoningEffort)
}

func TestClient_GenerationFailures(t *testing.T) {
	tests := []struct {
		name string
		fn   func(ctx context.Context, req interfaces.GenerateRequest) (string, error)
	}{
		{
			name: "backend error",
			fn: func(ctx context.Context, req interfaces.GenerateRequest) (string, error) {
				return "", fmt.Errorf("quota exceeded")
			},
		},
		{
			name: "blank response",
			fn: func(ctx context.Context, req interfaces.GenerateRequest) (string, error) {
				return "  \n ", nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{generateFunc: tt.fn}
			client := NewClient(gen, DefaultClientConfig(), &mockLogger{})

			html, err := client.Reconstruct(context.Background(), Request{Prompt: "p"})
			assert.Empty(t, html)
			require.Error(t, err)
			assert.True(t, errors.IsGeneration(err))
			assert.Equal(t, errors.GenerationFailedMessage, err.Error())
			assert.Equal(t, 1, gen.calls, "no automatic retry")
		})
	}
}

// errorRecorder keeps the fields of Error entries
type errorRecorder struct {
	mockLogger
	entries []map[string]interface{}
}

func (l *errorRecorder) Error(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, fields)
}

func TestClient_UpstreamFailureKeepsStatus(t *testing.T) {
	upstream := &errors.ExternalAPIError{API: "generation relay", StatusCode: 503, Message: "overloaded"}
	gen := &mockGenerator{
		generateFunc: func(ctx context.Context, req interfaces.GenerateRequest) (string, error) {
			return "", upstream
		},
	}
	logger := &errorRecorder{}
	client := NewClient(gen, DefaultClientConfig(), logger)

	_, err := client.Reconstruct(context.Background(), Request{Prompt: "p"})

	require.Error(t, err)
	assert.True(t, errors.IsGeneration(err))
	assert.Equal(t, errors.GenerationFailedMessage, err.Error())
	assert.Equal(t, 503, errors.UpstreamStatus(err))

	require.Len(t, logger.entries, 1)
	assert.Equal(t, 503, logger.entries[0]["upstream_status"])
}

func TestClient_Timeout(t *testing.T) {
	gen := &mockGenerator{
		generateFunc: func(ctx context.Context, req interfaces.GenerateRequest) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	cfg := DefaultClientConfig()
	cfg.Timeout = 10 * time.Millisecond
	client := NewClient(gen, cfg, &mockLogger{})

	_, err := client.Reconstruct(context.Background(), Request{Prompt: "p"})
	require.Error(t, err)
	assert.True(t, errors.IsGeneration(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestService_Reconstruct(t *testing.T) {
	gen := &mockGenerator{
		generateFunc: func(ctx context.Context, req interfaces.GenerateRequest) (string, error) {
			return "<h1>Acme</h1>", nil
		},
	}
	svc := NewService(NewBuilder(DefaultMaxSourceChars), NewClient(gen, DefaultClientConfig(), &mockLogger{}))

	html, err := svc.Reconstruct(context.Background(), "<html><title>x</title></html>", "https://example.com",
		&domain.RebrandInfo{BrandName: "Acme"})
	require.NoError(t, err)

	assert.Equal(t, `<div id="ghl-clone-container"><h1>Acme</h1></div>`, html)
	assert.Contains(t, gen.lastRequest.Prompt, `brand name to: "Acme"`)
	assert.Contains(t, gen.lastRequest.Prompt, "<html><title>x</title></html>")
	assert.Equal(t, SystemInstruction, gen.lastRequest.SystemInstruction)
}
