package standard

import (
	"net/http"
	"time"

	"web2one-api/core/interfaces"
)

// loggingTransport logs outgoing requests through the application logger
type loggingTransport struct {
	next   http.RoundTripper
	logger interfaces.Logger
}

// RoundTrip implements http.RoundTripper
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	t.logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"method": req.Method,
		"host":   req.URL.Host,
		"path":   req.URL.Path,
	})

	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.logger.Warn("Outgoing HTTP request failed", map[string]interface{}{
			"method":      req.Method,
			"host":        req.URL.Host,
			"duration_ms": duration.Milliseconds(),
			"error":       err.Error(),
		})
		return nil, err
	}

	t.logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"method":      req.Method,
		"host":        req.URL.Host,
		"status":      resp.StatusCode,
		"duration_ms": duration.Milliseconds(),
	})

	return resp, nil
}
