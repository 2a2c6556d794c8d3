// ABOUTME: Reconstruction client makes the single model call and cleans its output
// ABOUTME: Any backend failure or blank answer becomes a GenerationError; there is no internal retry

package reconstruct

import (
	"context"
	"fmt"
	"strings"
	"time"

	"web2one-api/core/domain"
	"web2one-api/core/errors"
	"web2one-api/core/interfaces"
)

// ClientConfig holds generation parameters
type ClientConfig struct {
	Temperature     float64
	ReasoningEffort string
	Timeout         time.Duration
}

// DefaultClientConfig biases the model toward deterministic output
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Temperature:     0.1,
		ReasoningEffort: "low",
		Timeout:         90 * time.Second,
	}
}

// Client calls a Generator and post-processes the response
type Client struct {
	generator interfaces.Generator
	cfg       ClientConfig
	logger    interfaces.Logger
}

// NewClient creates a reconstruction client
func NewClient(generator interfaces.Generator, cfg ClientConfig, logger interfaces.Logger) *Client {
	return &Client{
		generator: generator,
		cfg:       cfg,
		logger:    logger,
	}
}

// Reconstruct sends req to the generator and returns cleaned HTML
func (c *Client) Reconstruct(ctx context.Context, req Request) (string, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := c.generator.Generate(ctx, interfaces.GenerateRequest{
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.Prompt,
		Temperature:       c.cfg.Temperature,
		ReasoningEffort:   c.cfg.ReasoningEffort,
	})
	if err != nil {
		fields := map[string]interface{}{
			"error":    err.Error(),
			"duration": time.Since(start).String(),
		}
		if errors.IsExternalAPI(err) {
			fields["upstream_status"] = errors.UpstreamStatus(err)
		}
		c.logger.Error("Generation call failed", fields)
		return "", &errors.GenerationError{Cause: err}
	}

	if strings.TrimSpace(text) == "" {
		c.logger.Error("Generation returned an empty response", map[string]interface{}{
			"duration": time.Since(start).String(),
		})
		return "", &errors.GenerationError{Cause: fmt.Errorf("empty response")}
	}

	html := Cleanup(text)
	c.logger.Info("Reconstruction complete", map[string]interface{}{
		"duration":      time.Since(start).String(),
		"response_size": len(text),
		"html_size":     len(html),
	})
	return html, nil
}

// Service combines a Builder and a Client into an interfaces.Reconstructor
type Service struct {
	builder *Builder
	client  *Client
}

// NewService creates a reconstruction service
func NewService(builder *Builder, client *Client) *Service {
	return &Service{builder: builder, client: client}
}

// Reconstruct builds the prompt for rawHTML and runs it through the client
func (s *Service) Reconstruct(ctx context.Context, rawHTML, sourceURL string, rebrand *domain.RebrandInfo) (string, error) {
	return s.client.Reconstruct(ctx, s.builder.Build(rawHTML, sourceURL, rebrand))
}
