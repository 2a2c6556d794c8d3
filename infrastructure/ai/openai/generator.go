// ABOUTME: Generator backed by an OpenAI-compatible chat completions endpoint
// ABOUTME: The default base URL is Gemini's OpenAI compatibility layer

package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"web2one-api/core/interfaces"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// Config selects the endpoint and model
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Generator implements interfaces.Generator with one chat completion per call
type Generator struct {
	client openai.Client
	model  string
	logger interfaces.Logger
}

// NewGenerator creates a generator. The SDK's automatic retries are disabled;
// a failed reconstruction is reported to the user instead of being repeated.
func NewGenerator(cfg Config, logger interfaces.Logger, extra ...option.RequestOption) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("generation api key cannot be empty")
	}
	if cfg.Model == "" {
		return nil, errors.New("generation model cannot be empty")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	opts = append(opts, option.WithMiddleware(traceMiddleware(logger)))
	opts = append(opts, extra...)

	return &Generator{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// Generate sends the system instruction and prompt and returns the first choice's text
func (g *Generator) Generate(ctx context.Context, req interfaces.GenerateRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemInstruction),
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(req.Temperature),
	}
	if effort := strings.TrimSpace(req.ReasoningEffort); effort != "" {
		params.ReasoningEffort = shared.ReasoningEffort(effort)
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("chat completion failed with status %d: %w", apiErr.StatusCode, err)
		}
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	g.logger.Debug("Chat completion finished", map[string]interface{}{
		"model":             resp.Model,
		"finish_reason":     resp.Choices[0].FinishReason,
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
	})
	return resp.Choices[0].Message.Content, nil
}

func traceMiddleware(logger interfaces.Logger) option.Middleware {
	return func(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
		start := time.Now()
		resp, err := next(req)

		fields := map[string]interface{}{
			"method":   req.Method,
			"path":     req.URL.Path,
			"duration": time.Since(start).String(),
		}
		if err != nil {
			fields["error"] = err.Error()
			logger.Warn("Model request failed", fields)
			return resp, err
		}
		fields["status"] = resp.StatusCode
		logger.Debug("Model request", fields)
		return resp, nil
	}
}
