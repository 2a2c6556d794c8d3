// ABOUTME: Proxy fetcher retrieves a page's HTML through an ordered chain of relays
// ABOUTME: The first relay whose response passes the acceptance check wins

package fetch

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"web2one-api/core/domain"
	"web2one-api/core/errors"
	"web2one-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
)

// DefaultMinLength is the acceptance floor for fetched HTML
const DefaultMinLength = 300

// Config tunes the proxy fetcher
type Config struct {
	// MinLength is the number of characters a page must exceed to be accepted
	MinLength int

	// AttemptTimeout bounds each strategy attempt; zero means no extra bound
	AttemptTimeout time.Duration
}

// ProxyFetcher implements interfaces.Fetcher over a list of strategies
type ProxyFetcher struct {
	strategies []Strategy
	cfg        Config
	logger     interfaces.Logger
}

// NewProxyFetcher creates a fetcher that tries strategies in order
func NewProxyFetcher(strategies []Strategy, cfg Config, logger interfaces.Logger) *ProxyFetcher {
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultMinLength
	}
	return &ProxyFetcher{
		strategies: strategies,
		cfg:        cfg,
		logger:     logger,
	}
}

// Accept reports whether content looks like a real page rather than an empty shell.
// Length is counted in characters over the untrimmed body.
func Accept(content string, minLength int) bool {
	return content != "" && strings.Contains(content, "<html") && utf8.RuneCountInString(content) > minLength
}

// Fetch returns the HTML of target from the first strategy that yields an acceptable page
func (f *ProxyFetcher) Fetch(ctx context.Context, target string) (*domain.FetchResult, error) {
	target = strings.TrimSpace(target)
	if !domain.ValidSourceURL(target) {
		return nil, &errors.InvalidURLError{URL: target}
	}

	for _, s := range f.strategies {
		content, err := f.attempt(ctx, s, target)
		if err != nil {
			fields := map[string]interface{}{
				"relay": s.Name(),
				"url":   target,
				"error": err.Error(),
			}
			if errors.IsExternalAPI(err) {
				fields["upstream_status"] = errors.UpstreamStatus(err)
			}
			f.logger.Warn("Relay failed, moving to next", fields)
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if !Accept(content, f.cfg.MinLength) {
			f.logger.Debug("Relay response rejected", map[string]interface{}{
				"relay":    s.Name(),
				"url":      target,
				"length":   utf8.RuneCountInString(content),
				"has_html": strings.Contains(content, "<html"),
			})
			continue
		}

		f.logger.Info("Fetched source page", map[string]interface{}{
			"relay":  s.Name(),
			"url":    target,
			"length": len(content),
		})

		return &domain.FetchResult{
			URL:   target,
			HTML:  content,
			Relay: s.Name(),
			Title: pageTitle(content),
		}, nil
	}

	return nil, &errors.FetchError{URL: target, Attempts: len(f.strategies)}
}

func (f *ProxyFetcher) attempt(ctx context.Context, s Strategy, target string) (string, error) {
	if f.cfg.AttemptTimeout <= 0 {
		return s.Fetch(ctx, target)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, f.cfg.AttemptTimeout)
	defer cancel()
	return s.Fetch(attemptCtx, target)
}

// pageTitle extracts the <title> text, or "" if the page has none
func pageTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
