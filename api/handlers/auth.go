package handlers

import (
	"context"
	"strings"

	"web2one-api/core/domain"
	"web2one-api/core/errors"
)

// KeyResolver resolves an API key to the user that owns it
type KeyResolver interface {
	Resolve(ctx context.Context, key string) (*domain.User, error)
}

// authenticate resolves a "Bearer <key>" Authorization header
func authenticate(ctx context.Context, keys KeyResolver, header string) (*domain.User, error) {
	token := bearerToken(header)
	if token == "" {
		return nil, &errors.UnauthorizedError{Reason: "missing api key"}
	}
	return keys.Resolve(ctx, token)
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
