// ABOUTME: Generator that forwards model calls to a backend relay over HTTP
// ABOUTME: Keeps provider credentials on the relay host instead of this service

package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	apperrors "web2one-api/core/errors"
	"web2one-api/core/interfaces"
)

// relayAPI names the generation relay in upstream errors
const relayAPI = "generation relay"

// maxResponseBytes caps how much of a relay response is read
const maxResponseBytes = 20 << 20

type generateBody struct {
	SystemInstruction string  `json:"systemInstruction"`
	Prompt            string  `json:"prompt"`
	Temperature       float64 `json:"temperature"`
	ReasoningEffort   string  `json:"reasoningEffort,omitempty"`
}

type generateReply struct {
	Text  string `json:"text"`
	HTML  string `json:"html"`
	Error string `json:"error"`
}

// Generator implements interfaces.Generator by POSTing to a relay endpoint
type Generator struct {
	url    string
	client interfaces.HTTPClient
	logger interfaces.Logger
}

// NewGenerator creates a relay generator. client should not retry POSTs.
func NewGenerator(url string, client interfaces.HTTPClient, logger interfaces.Logger) (*Generator, error) {
	if url == "" {
		return nil, errors.New("relay url cannot be empty")
	}
	return &Generator{url: url, client: client, logger: logger}, nil
}

// Generate sends the request to the relay and returns the text it answers with
func (g *Generator) Generate(ctx context.Context, req interfaces.GenerateRequest) (string, error) {
	payload, err := json.Marshal(generateBody{
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.Prompt,
		Temperature:       req.Temperature,
		ReasoningEffort:   req.ReasoningEffort,
	})
	if err != nil {
		return "", fmt.Errorf("encoding relay request: %w", err)
	}

	resp, err := g.client.Post(ctx, g.url, bytes.NewReader(payload), nil)
	if err != nil {
		return "", fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("reading relay response: %w", err)
	}

	var reply generateReply
	decodeErr := json.Unmarshal(body, &reply)

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		msg := reply.Error
		if decodeErr != nil || msg == "" {
			msg = string(body)
			if len(msg) > 200 {
				msg = msg[:200]
			}
		}
		g.logger.Warn("Generation relay returned an error", map[string]interface{}{
			"status": resp.StatusCode(),
			"error":  msg,
		})
		return "", &apperrors.ExternalAPIError{
			API:        relayAPI,
			StatusCode: resp.StatusCode(),
			Message:    msg,
		}
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decoding relay response: %w", decodeErr)
	}

	if reply.Text != "" {
		return reply.Text, nil
	}
	return reply.HTML, nil
}
