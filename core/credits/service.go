// ABOUTME: Credit accounting over user storage with a short-lived balance cache
// ABOUTME: Admission reads storage directly; display reads go through the cache

package credits

import (
	"context"
	"strconv"
	"time"

	"web2one-api/core/domain"
	"web2one-api/core/errors"
	"web2one-api/core/interfaces"
)

// BalanceTTL is how long a refreshed balance stays cached
const BalanceTTL = 5 * time.Minute

// CacheKey returns the cache key holding a user's balance
func CacheKey(userID string) string {
	return "credits:" + userID
}

// Service implements interfaces.CreditAccount
type Service struct {
	users  interfaces.UserStorage
	cache  interfaces.Cache
	logger interfaces.Logger
}

// NewService creates a credit service
func NewService(users interfaces.UserStorage, cache interfaces.Cache, logger interfaces.Logger) *Service {
	return &Service{
		users:  users,
		cache:  cache,
		logger: logger,
	}
}

// CheckBalance returns the stored balance; -1 means unlimited
func (s *Service) CheckBalance(ctx context.Context, userID string) (int, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.Credits, nil
}

// DecrementOne takes a single credit; unlimited and exhausted balances are left alone
func (s *Service) DecrementOne(ctx context.Context, userID string) error {
	taken, err := s.users.DecrementCredits(ctx, userID)
	if err != nil {
		return &errors.PersistenceError{Op: "decrement credits", Cause: err}
	}
	if !taken {
		s.logger.Debug("No credit taken", map[string]interface{}{"user_id": userID})
	}
	s.invalidate(ctx, userID)
	return nil
}

// Refresh reloads the balance from storage and caches it
func (s *Service) Refresh(ctx context.Context, userID string) (int, error) {
	balance, err := s.CheckBalance(ctx, userID)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, CacheKey(userID), []byte(strconv.Itoa(balance)), BalanceTTL); err != nil {
			s.logger.Warn("Failed to cache balance", map[string]interface{}{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}
	return balance, nil
}

// Balance returns the cached balance, falling back to Refresh on a miss
func (s *Service) Balance(ctx context.Context, userID string) (int, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, CacheKey(userID)); err == nil {
			if balance, err := strconv.Atoi(string(data)); err == nil {
				return balance, nil
			}
		}
	}
	return s.Refresh(ctx, userID)
}

// AddCredits raises a limited balance by amount and returns the new balance
func (s *Service) AddCredits(ctx context.Context, userID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, &errors.ValidationError{Field: "amount", Message: "must be positive"}
	}
	if err := s.users.AddCredits(ctx, userID, amount); err != nil {
		return 0, err
	}
	s.logger.Info("Credits added", map[string]interface{}{
		"user_id": userID,
		"amount":  amount,
	})
	return s.Refresh(ctx, userID)
}

// ChangePlan moves a user to plan and resets the balance to the plan's allowance
func (s *Service) ChangePlan(ctx context.Context, userID string, plan domain.PlanType) (*domain.User, error) {
	p, ok := domain.FindPlan(plan)
	if !ok {
		return nil, &errors.ValidationError{Field: "plan", Message: "unknown plan " + string(plan)}
	}
	if err := s.users.SetPlan(ctx, userID, p.ID, p.Credits); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)

	s.logger.Info("Plan changed", map[string]interface{}{
		"user_id": userID,
		"plan":    string(p.ID),
	})
	return s.users.GetUser(ctx, userID)
}

func (s *Service) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, CacheKey(userID)); err != nil {
		s.logger.Warn("Failed to invalidate cached balance", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
