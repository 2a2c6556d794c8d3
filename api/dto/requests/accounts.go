package requests

// CreateUserRequest is the body of POST /api/users
type CreateUserRequest struct {
	Email   string `json:"email" minLength:"3" maxLength:"320" doc:"Account email; existing accounts are returned as-is"`
	Name    string `json:"name,omitempty" maxLength:"200" doc:"Display name"`
	Picture string `json:"picture,omitempty" maxLength:"2048" doc:"Avatar URL"`
}

// ChangePlanRequest is the body of PUT /api/users/{id}/plan
type ChangePlanRequest struct {
	Plan string `json:"plan" enum:"free,starter,pro,agency" doc:"Target plan"`
}

// AddCreditsRequest is the body of POST /api/users/{id}/credits
type AddCreditsRequest struct {
	Amount int `json:"amount" minimum:"1" maximum:"10000" doc:"Credits to add"`
}

// CreateKeyRequest is the body of POST /api/keys
type CreateKeyRequest struct {
	UserID string `json:"userId" minLength:"1" doc:"Owner of the new key"`
	Name   string `json:"name,omitempty" maxLength:"100" doc:"Label shown in key listings"`
}
