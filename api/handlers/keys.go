package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"web2one-api/api/dto/mappers"
	"web2one-api/api/dto/requests"
	"web2one-api/api/dto/responses"
	"web2one-api/core/domain"
)

// KeyService issues and revokes API keys
type KeyService interface {
	IssueKey(ctx context.Context, userID, name string) (*domain.APIKey, error)
	ListKeys(ctx context.Context, userID string) ([]*domain.APIKey, error)
	RevokeKey(ctx context.Context, id string) error
}

// KeyHandler handles API key requests
type KeyHandler struct {
	keys KeyService
}

// NewKeyHandler creates a new key handler
func NewKeyHandler(keys KeyService) *KeyHandler {
	return &KeyHandler{keys: keys}
}

// RegisterRoutes registers all key-related routes
func (h *KeyHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "createKey",
		Method:        http.MethodPost,
		Path:          "/api/keys",
		Summary:       "Issue an API key",
		Description:   "The full key is only returned by this call",
		Tags:          []string{"Keys"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateKey)

	huma.Register(api, huma.Operation{
		OperationID: "listKeys",
		Method:      http.MethodGet,
		Path:        "/api/keys/user/{userId}",
		Summary:     "List a user's API keys",
		Tags:        []string{"Keys"},
	}, h.ListKeys)

	huma.Register(api, huma.Operation{
		OperationID:   "revokeKey",
		Method:        http.MethodDelete,
		Path:          "/api/keys/{id}",
		Summary:       "Revoke an API key",
		Tags:          []string{"Keys"},
		DefaultStatus: http.StatusNoContent,
	}, h.RevokeKey)
}

// CreateKeyInput defines the input for the CreateKey operation
type CreateKeyInput struct {
	Body requests.CreateKeyRequest
}

// CreateKeyOutput defines the output for the CreateKey operation
type CreateKeyOutput struct {
	Body responses.APIKeyResponse
}

// CreateKey handles the POST /api/keys endpoint
func (h *KeyHandler) CreateKey(ctx context.Context, input *CreateKeyInput) (*CreateKeyOutput, error) {
	key, err := h.keys.IssueKey(ctx, input.Body.UserID, input.Body.Name)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &CreateKeyOutput{Body: mappers.ToAPIKeyResponse(key, true)}, nil
}

// ListKeysInput defines the input for the ListKeys operation
type ListKeysInput struct {
	UserID string `path:"userId" doc:"User ID"`
}

// ListKeysOutput defines the output for the ListKeys operation
type ListKeysOutput struct {
	Body responses.APIKeyListResponse
}

// ListKeys handles the GET /api/keys/user/{userId} endpoint
func (h *KeyHandler) ListKeys(ctx context.Context, input *ListKeysInput) (*ListKeysOutput, error) {
	keys, err := h.keys.ListKeys(ctx, input.UserID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ListKeysOutput{Body: *mappers.ToAPIKeyListResponse(keys)}, nil
}

// RevokeKeyInput defines the input for the RevokeKey operation
type RevokeKeyInput struct {
	ID string `path:"id" doc:"API key ID"`
}

// RevokeKey handles the DELETE /api/keys/{id} endpoint
func (h *KeyHandler) RevokeKey(ctx context.Context, input *RevokeKeyInput) (*struct{}, error) {
	if err := h.keys.RevokeKey(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}
