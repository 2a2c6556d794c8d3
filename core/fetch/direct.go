package fetch

import (
	"context"
	"errors"
	"time"

	"github.com/gocolly/colly"
)

const directUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// DirectStrategy fetches the target itself with a colly collector.
// It is the last resort after every relay.
type DirectStrategy struct {
	timeout time.Duration
}

// NewDirectStrategy creates a direct strategy with the given request timeout
func NewDirectStrategy(timeout time.Duration) *DirectStrategy {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &DirectStrategy{timeout: timeout}
}

func (d *DirectStrategy) Name() string {
	return "direct"
}

func (d *DirectStrategy) Fetch(ctx context.Context, target string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c := colly.NewCollector(
		colly.UserAgent(directUserAgent),
		colly.MaxBodySize(maxBodyBytes),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(d.timeout)

	var body string
	var visitErr error

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
		}
	})
	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})
	c.OnError(func(r *colly.Response, err error) {
		visitErr = err
	})

	if err := c.Visit(target); err != nil {
		return "", err
	}
	c.Wait()

	if visitErr != nil {
		return "", visitErr
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if body == "" {
		return "", errors.New("direct fetch returned an empty body")
	}
	return body, nil
}
