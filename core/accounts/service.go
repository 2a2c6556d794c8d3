// ABOUTME: Account service manages users and the API keys they authenticate with
// ABOUTME: Key lookups are cached so every clone request does not hit storage

package accounts

import (
	"context"
	"strings"
	"time"

	"web2one-api/core/domain"
	"web2one-api/core/errors"
	"web2one-api/core/interfaces"

	"github.com/google/uuid"
)

// KeyPrefix starts every issued API key
const KeyPrefix = "w2o_"

// KeyCacheTTL is how long a resolved key stays cached
const KeyCacheTTL = 10 * time.Minute

// KeyCacheKey returns the cache key for an API key lookup
func KeyCacheKey(key string) string {
	return "apikey:" + key
}

// Service manages users and API keys
type Service struct {
	users  interfaces.UserStorage
	keys   interfaces.APIKeyStorage
	cache  interfaces.Cache
	logger interfaces.Logger
	now    func() time.Time
}

// NewService creates an account service
func NewService(users interfaces.UserStorage, keys interfaces.APIKeyStorage, cache interfaces.Cache, logger interfaces.Logger) *Service {
	return &Service{
		users:  users,
		keys:   keys,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Login returns the user with email, creating it on the free plan if needed
func (s *Service) Login(ctx context.Context, email, name, picture string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, &errors.ValidationError{Field: "email", Message: "a valid email is required"}
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		if err := s.users.TouchLogin(ctx, existing.ID); err != nil {
			return nil, err
		}
		return s.users.GetUser(ctx, existing.ID)
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	free, _ := domain.FindPlan(domain.PlanFree)
	now := s.now()
	user := &domain.User{
		ID:          uuid.NewString(),
		Email:       email,
		Name:        strings.TrimSpace(name),
		Picture:     picture,
		Plan:        free.ID,
		Credits:     free.Credits,
		CreatedAt:   now,
		LastLoginAt: now,
	}
	if user.Name == "" {
		user.Name = strings.SplitN(email, "@", 2)[0]
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created", map[string]interface{}{
		"user_id": user.ID,
		"plan":    string(user.Plan),
	})
	return user, nil
}

// Get returns a user by id
func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetUser(ctx, id)
}

// IssueKey creates a new API key for userID
func (s *Service) IssueKey(ctx context.Context, userID, name string) (*domain.APIKey, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = "Default"
	}
	key := &domain.APIKey{
		ID:        uuid.NewString(),
		Key:       NewKey(),
		UserID:    userID,
		Name:      name,
		CreatedAt: s.now(),
	}
	if err := s.keys.CreateAPIKey(ctx, key); err != nil {
		return nil, err
	}

	s.logger.Info("API key issued", map[string]interface{}{
		"user_id": userID,
		"key_id":  key.ID,
	})
	return key, nil
}

// ListKeys returns every key of userID, including revoked ones
func (s *Service) ListKeys(ctx context.Context, userID string) ([]*domain.APIKey, error) {
	return s.keys.ListAPIKeysByUser(ctx, userID)
}

// RevokeKey revokes the key with id and evicts it from the cache
func (s *Service) RevokeKey(ctx context.Context, id string) error {
	key, err := s.keys.GetAPIKey(ctx, id)
	if err != nil {
		return err
	}
	if err := s.keys.RevokeAPIKey(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, KeyCacheKey(key.Key)); err != nil {
			s.logger.Warn("Failed to evict revoked key", map[string]interface{}{
				"key_id": id,
				"error":  err.Error(),
			})
		}
	}
	return nil
}

// Resolve returns the owner of an active API key
func (s *Service) Resolve(ctx context.Context, key string) (*domain.User, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, &errors.UnauthorizedError{Reason: "missing api key"}
	}

	userID := s.cachedOwner(ctx, key)
	if userID == "" {
		stored, err := s.keys.GetAPIKeyByKey(ctx, key)
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, &errors.UnauthorizedError{Reason: "invalid api key"}
			}
			return nil, err
		}
		if stored.Revoked {
			return nil, &errors.UnauthorizedError{Reason: "api key revoked"}
		}
		userID = stored.UserID
		if s.cache != nil {
			_ = s.cache.Set(ctx, KeyCacheKey(key), []byte(userID), KeyCacheTTL)
		}
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, &errors.UnauthorizedError{Reason: "api key owner no longer exists"}
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) cachedOwner(ctx context.Context, key string) string {
	if s.cache == nil {
		return ""
	}
	data, err := s.cache.Get(ctx, KeyCacheKey(key))
	if err != nil {
		return ""
	}
	return string(data)
}

// NewKey generates a key of the form w2o_ followed by 32 hex characters
func NewKey() string {
	return KeyPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
