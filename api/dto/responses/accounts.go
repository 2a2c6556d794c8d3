package responses

import "time"

// UserResponse is a user account
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Picture     string    `json:"picture,omitempty"`
	Plan        string    `json:"plan"`
	Credits     int       `json:"credits" doc:"Remaining credits, -1 when unlimited"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

// CreditsResponse is a user's balance
type CreditsResponse struct {
	UserID    string `json:"userId"`
	Credits   int    `json:"credits" doc:"Remaining credits, -1 when unlimited"`
	Unlimited bool   `json:"unlimited"`
}

// APIKeyResponse is an API key. Key is only shown in full when it is created.
type APIKeyResponse struct {
	ID        string    `json:"id"`
	Key       string    `json:"apiKey"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"createdAt"`
}

// APIKeyListResponse lists a user's keys
type APIKeyListResponse struct {
	Keys []APIKeyResponse `json:"keys"`
}
