package mappers

import (
	"strings"

	"web2one-api/api/dto/responses"
	"web2one-api/core/domain"
)

// ToUserResponse converts a user
func ToUserResponse(user *domain.User) *responses.UserResponse {
	if user == nil {
		return nil
	}
	return &responses.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Picture:     user.Picture,
		Plan:        string(user.Plan),
		Credits:     user.Credits,
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}

// ToCreditsResponse builds a balance response
func ToCreditsResponse(userID string, credits int) *responses.CreditsResponse {
	return &responses.CreditsResponse{
		UserID:    userID,
		Credits:   credits,
		Unlimited: credits == domain.UnlimitedCredits,
	}
}

// ToAPIKeyResponse converts a key; unless reveal is set the secret is masked
func ToAPIKeyResponse(key *domain.APIKey, reveal bool) responses.APIKeyResponse {
	value := key.Key
	if !reveal {
		value = MaskKey(value)
	}
	return responses.APIKeyResponse{
		ID:        key.ID,
		Key:       value,
		UserID:    key.UserID,
		Name:      key.Name,
		Revoked:   key.Revoked,
		CreatedAt: key.CreatedAt,
	}
}

// ToAPIKeyListResponse converts a key listing with masked secrets
func ToAPIKeyListResponse(keys []*domain.APIKey) *responses.APIKeyListResponse {
	out := &responses.APIKeyListResponse{Keys: make([]responses.APIKeyResponse, 0, len(keys))}
	for _, k := range keys {
		out.Keys = append(out.Keys, ToAPIKeyResponse(k, false))
	}
	return out
}

// MaskKey keeps the prefix and the last four characters
func MaskKey(key string) string {
	const visible = 4
	idx := strings.Index(key, "_")
	if idx < 0 || len(key)-idx-1 <= visible {
		return strings.Repeat("*", len(key))
	}
	return key[:idx+1] + strings.Repeat("*", len(key)-idx-1-visible) + key[len(key)-visible:]
}
