// ABOUTME: Relay endpoints and the strategy interface used by the proxy fetcher
// ABOUTME: Each relay fetches the target server-side and returns it as text or a JSON envelope

package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"web2one-api/core/errors"
	"web2one-api/core/interfaces"
	"web2one-api/pkg/config"
)

// maxBodyBytes caps how much of a relay response is read
const maxBodyBytes = 10 << 20

// Mode is how a relay's response body is decoded
type Mode string

const (
	// ModeText means the body is the page verbatim
	ModeText Mode = "text"

	// ModeJSON means the body is {"contents": "<page>"}
	ModeJSON Mode = "json"
)

// Relay is a third-party endpoint that fetches a URL on our behalf
type Relay struct {
	Name     string
	Template string
	Mode     Mode
}

// URL renders the relay template for target
func (r Relay) URL(target string, now time.Time) string {
	out := strings.ReplaceAll(r.Template, "{url}", url.QueryEscape(target))
	return strings.ReplaceAll(out, "{ts}", strconv.FormatInt(now.UnixMilli(), 10))
}

// RelaysFromConfig converts configured relays into Relay values
func RelaysFromConfig(cfgs []config.RelayConfig) []Relay {
	relays := make([]Relay, 0, len(cfgs))
	for _, c := range cfgs {
		relays = append(relays, Relay{Name: c.Name, Template: c.Template, Mode: Mode(c.Mode)})
	}
	return relays
}

// Strategy is one way of obtaining a page's HTML
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, target string) (string, error)
}

// relayStrategy fetches through a single relay with one GET
type relayStrategy struct {
	relay  Relay
	client interfaces.HTTPClient
	now    func() time.Time
}

// NewRelayStrategy creates a strategy for relay using client.
// client should not retry; every relay is tried once per fetch.
func NewRelayStrategy(relay Relay, client interfaces.HTTPClient) Strategy {
	return &relayStrategy{relay: relay, client: client, now: time.Now}
}

// RelayStrategies builds one strategy per relay, in order
func RelayStrategies(relays []Relay, client interfaces.HTTPClient) []Strategy {
	strategies := make([]Strategy, 0, len(relays))
	for _, r := range relays {
		strategies = append(strategies, NewRelayStrategy(r, client))
	}
	return strategies
}

func (s *relayStrategy) Name() string {
	return s.relay.Name
}

func (s *relayStrategy) Fetch(ctx context.Context, target string) (string, error) {
	resp, err := s.client.Get(ctx, s.relay.URL(target, s.now()))
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", &errors.ExternalAPIError{
			API:        s.relay.Name,
			StatusCode: resp.StatusCode(),
			Message:    "relay refused the request",
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("reading relay body: %w", err)
	}

	return decode(s.relay.Mode, body)
}

func decode(mode Mode, body []byte) (string, error) {
	switch mode {
	case ModeJSON:
		var envelope struct {
			Contents string `json:"contents"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return "", fmt.Errorf("decoding relay envelope: %w", err)
		}
		return envelope.Contents, nil
	case ModeText, "":
		return string(body), nil
	default:
		return "", fmt.Errorf("unknown relay mode %q", mode)
	}
}
