package fetch

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"web2one-api/core/errors"
	"web2one-api/core/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRelays = []Relay{
	{Name: "corsproxy", Template: "https://corsproxy.test/?{url}", Mode: ModeText},
	{Name: "allorigins", Template: "https://allorigins.test/get?url={url}&_ts={ts}", Mode: ModeJSON},
	{Name: "codetabs", Template: "https://codetabs.test/v1/proxy?quest={url}", Mode: ModeText},
}

// pageOfLength returns an HTML document of exactly n bytes
func pageOfLength(n int) string {
	head := "<html><head><title>Acme Home</title></head><body>"
	tail := "</body></html>"
	return head + strings.Repeat("a", n-len(head)-len(tail)) + tail
}

func TestProxyFetcher_FallsThroughToSecondRelay(t *testing.T) {
	page := pageOfLength(350)
	envelope := fmt.Sprintf(`{"contents":%q}`, page)

	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			switch {
			case strings.HasPrefix(url, "https://corsproxy.test"):
				return &mockResponse{statusCode: 500, body: "upstream down"}, nil
			case strings.HasPrefix(url, "https://allorigins.test"):
				return &mockResponse{statusCode: 200, body: envelope}, nil
			}
			return &mockResponse{statusCode: 200, body: page}, nil
		},
	}

	fetcher := NewProxyFetcher(RelayStrategies(testRelays, client), Config{MinLength: 300}, &mockLogger{})
	result, err := fetcher.Fetch(context.Background(), "https://acme.com")
	require.NoError(t, err)

	assert.Equal(t, page, result.HTML)
	assert.Equal(t, "allorigins", result.Relay)
	assert.Equal(t, "Acme Home", result.Title)
	assert.Equal(t, "https://acme.com", result.URL)

	calls := client.Calls()
	require.Len(t, calls, 2, "third relay must not be contacted")
	assert.Contains(t, calls[0], "https://corsproxy.test/?https%3A%2F%2Facme.com")
	assert.Contains(t, calls[1], "url=https%3A%2F%2Facme.com&_ts=")
}

func TestProxyFetcher_LogsUpstreamStatus(t *testing.T) {
	page := pageOfLength(400)
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			switch {
			case strings.HasPrefix(url, "https://corsproxy.test"):
				return &mockResponse{statusCode: 429, body: "slow down"}, nil
			case strings.HasPrefix(url, "https://allorigins.test"):
				return nil, fmt.Errorf("connection refused")
			}
			return &mockResponse{statusCode: 200, body: page}, nil
		},
	}
	logger := &recordingLogger{}

	fetcher := NewProxyFetcher(RelayStrategies(testRelays, client), Config{MinLength: 300}, logger)
	result, err := fetcher.Fetch(context.Background(), "https://acme.com")
	require.NoError(t, err)
	assert.Equal(t, "codetabs", result.Relay)

	warns := logger.Warns()
	require.Len(t, warns, 2)
	assert.Equal(t, "corsproxy", warns[0]["relay"])
	assert.Equal(t, 429, warns[0]["upstream_status"])
	assert.Equal(t, "allorigins", warns[1]["relay"])
	assert.NotContains(t, warns[1], "upstream_status")
}

func TestProxyFetcher_AllRelaysRejected(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			switch {
			case strings.HasPrefix(url, "https://corsproxy.test"):
				return &mockResponse{statusCode: 200, body: "<html><body>blocked</body></html>"}, nil
			case strings.HasPrefix(url, "https://allorigins.test"):
				return &mockResponse{statusCode: 200, body: `{"contents":""}`}, nil
			}
			return nil, fmt.Errorf("connection refused")
		},
	}

	fetcher := NewProxyFetcher(RelayStrategies(testRelays, client), Config{}, &mockLogger{})
	result, err := fetcher.Fetch(context.Background(), "https://acme.com")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsFetch(err))
	assert.Equal(t, errors.FetchFailedMessage, err.Error())
	assert.Len(t, client.Calls(), 3)
}

func TestProxyFetcher_InvalidURLMakesNoCalls(t *testing.T) {
	tests := []string{"", "   ", "acme.com", "ftp://acme.com", "https://", "not a url"}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			client := &mockHTTPClient{}
			fetcher := NewProxyFetcher(RelayStrategies(testRelays, client), Config{}, &mockLogger{})

			_, err := fetcher.Fetch(context.Background(), raw)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidURL(err))
			assert.Empty(t, client.Calls())
		})
	}
}

func TestProxyFetcher_AttemptTimeoutMovesOn(t *testing.T) {
	page := pageOfLength(500)
	strategies := []Strategy{
		&funcStrategy{name: "slow", fn: func(ctx context.Context, target string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}},
		&funcStrategy{name: "fast", fn: func(ctx context.Context, target string) (string, error) {
			return page, nil
		}},
	}

	fetcher := NewProxyFetcher(strategies, Config{AttemptTimeout: 20 * time.Millisecond}, &mockLogger{})
	result, err := fetcher.Fetch(context.Background(), "https://acme.com")
	require.NoError(t, err)
	assert.Equal(t, "fast", result.Relay)
}

func TestProxyFetcher_CancelledContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	called := 0
	strategies := []Strategy{
		&funcStrategy{name: "first", fn: func(ctx context.Context, target string) (string, error) {
			cancel()
			return "", ctx.Err()
		}},
		&funcStrategy{name: "second", fn: func(ctx context.Context, target string) (string, error) {
			called++
			return pageOfLength(400), nil
		}},
	}

	fetcher := NewProxyFetcher(strategies, Config{}, &mockLogger{})
	_, err := fetcher.Fetch(ctx, "https://acme.com")
	assert.True(t, errors.IsFetch(err))
	assert.Zero(t, called)
}

func TestAccept(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{"empty", "", false},
		{"no html tag", strings.Repeat("x", 1000), false},
		{"exactly the floor", pageOfLength(300), false},
		{"one over the floor", pageOfLength(301), true},
		{"large page", pageOfLength(5000), true},
		{"multibyte text counted in characters", pageOfLength(200) + strings.Repeat("é", 100), false},
		{"multibyte text over the floor", pageOfLength(200) + strings.Repeat("é", 101), true},
		{"surrounding whitespace counts", "\n\n" + pageOfLength(299), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Accept(tt.content, 300))
		})
	}
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "Acme Home", pageTitle(pageOfLength(400)))
	assert.Equal(t, "", pageTitle("<html><body>no title</body></html>"))
}
