package domain

import "time"

// APIKey authenticates programmatic clone requests on behalf of a user
type APIKey struct {
	ID        string    `json:"id"`
	Key       string    `json:"apiKey"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"createdAt"`
}
