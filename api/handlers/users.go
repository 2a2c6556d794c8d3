// ABOUTME: User and credit handlers for the Huma API
// ABOUTME: Sign-in, plan changes and credit balance endpoints

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

// AccountService manages user accounts
type AccountService interface {
	Login(ctx context.Context, email, name, picture string) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
}

// CreditService manages balances and plans
type CreditService interface {
	Balance(ctx context.Context, userID string) (int, error)
	AddCredits(ctx context.Context, userID string, amount int) (int, error)
	ChangePlan(ctx context.Context, userID string, plan domain.PlanType) (*domain.User, error)
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	accounts AccountService
	credits  CreditService
}

// NewUserHandler creates a new user handler
func NewUserHandler(accounts AccountService, credits CreditService) *UserHandler {
	return &UserHandler{accounts: accounts, credits: credits}
}

// RegisterRoutes registers all user-related routes
func (h *UserHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "createUser",
		Method:      http.MethodPost,
		Path:        "/api/users",
		Summary:     "Sign in",
		Description: "Returns the account for the email, creating it on the free plan if it does not exist",
		Tags:        []string{"Users"},
	}, h.CreateUser)

	huma.Register(api, huma.Operation{
		OperationID: "getUser",
		Method:      http.MethodGet,
		Path:        "/api/users/{id}",
		Summary:     "Get a user",
		Tags:        []string{"Users"},
	}, h.GetUser)

	huma.Register(api, huma.Operation{
		OperationID: "getCredits",
		Method:      http.MethodGet,
		Path:        "/api/users/{id}/credits",
		Summary:     "Get a user's credit balance",
		Tags:        []string{"Users"},
	}, h.GetCredits)

	huma.Register(api, huma.Operation{
		OperationID: "addCredits",
		Method:      http.MethodPost,
		Path:        "/api/users/{id}/credits",
		Summary:     "Add credits",
		Description: "Adds credits to a limited balance; unlimited balances are unchanged",
		Tags:        []string{"Users"},
	}, h.AddCredits)

	huma.Register(api, huma.Operation{
		OperationID: "changePlan",
		Method:      http.MethodPut,
		Path:        "/api/users/{id}/plan",
		Summary:     "Change plan",
		Description: "Moves the user to a plan and resets the balance to its allowance",
		Tags:        []string{"Users"},
	}, h.ChangePlan)
}

// CreateUserInput defines the input for the CreateUser operation
type CreateUserInput struct {
	Body requests.CreateUserRequest
}

// UserOutput wraps a user response
type UserOutput struct {
	Body responses.UserResponse
}

// CreateUser handles the POST /api/users endpoint
func (h *UserHandler) CreateUser(ctx context.Context, input *CreateUserInput) (*UserOutput, error) {
	user, err := h.accounts.Login(ctx, input.Body.Email, input.Body.Name, input.Body.Picture)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &UserOutput{Body: *mappers.ToUserResponse(user)}, nil
}

// UserIDInput identifies a user by path
type UserIDInput struct {
	ID string `path:"id" doc:"User ID"`
}

// GetUser handles the GET /api/users/{id} endpoint
func (h *UserHandler) GetUser(ctx context.Context, input *UserIDInput) (*UserOutput, error) {
	user, err := h.accounts.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &UserOutput{Body: *mappers.ToUserResponse(user)}, nil
}

// CreditsOutput wraps a balance response
type CreditsOutput struct {
	Body responses.CreditsResponse
}

// GetCredits handles the GET /api/users/{id}/credits endpoint
func (h *UserHandler) GetCredits(ctx context.Context, input *UserIDInput) (*CreditsOutput, error) {
	balance, err := h.credits.Balance(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &CreditsOutput{Body: *mappers.ToCreditsResponse(input.ID, balance)}, nil
}

// AddCreditsInput defines the input for the AddCredits operation
type AddCreditsInput struct {
	ID   string `path:"id" doc:"User ID"`
	Body requests.AddCreditsRequest
}

// AddCredits handles the POST /api/users/{id}/credits endpoint
func (h *UserHandler) AddCredits(ctx context.Context, input *AddCreditsInput) (*CreditsOutput, error) {
	balance, err := h.credits.AddCredits(ctx, input.ID, input.Body.Amount)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &CreditsOutput{Body: *mappers.ToCreditsResponse(input.ID, balance)}, nil
}

// ChangePlanInput defines the input for the ChangePlan operation
type ChangePlanInput struct {
	ID   string `path:"id" doc:"User ID"`
	Body requests.ChangePlanRequest
}

// ChangePlan handles the PUT /api/users/{id}/plan endpoint
func (h *UserHandler) ChangePlan(ctx context.Context, input *ChangePlanInput) (*UserOutput, error) {
	user, err := h.credits.ChangePlan(ctx, input.ID, domain.PlanType(input.Body.Plan))
	if err != nil {
		return nil, toHumaError(err)
	}
	return &UserOutput{Body: *mappers.ToUserResponse(user)}, nil
}
