package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"web2one-api/api/dto/responses"
	"web2one-api/core/domain"
	"web2one-api/core/errors"
)

func newUserAPI(t *testing.T, accounts *mockAccountService, credits *mockCreditService) humatest.TestAPI {
	_, api := humatest.New(t)
	NewUserHandler(accounts, credits).RegisterRoutes(api)
	return api
}

func TestCreateUser(t *testing.T) {
	accounts := &mockAccountService{
		loginFunc: func(ctx context.Context, email, name, picture string) (*domain.User, error) {
			return &domain.User{ID: "u1", Email: email, Name: name, Plan: domain.PlanFree, Credits: 2}, nil
		},
	}
	api := newUserAPI(t, accounts, &mockCreditService{})

	resp := api.Post("/api/users", map[string]any{"email": "ada@example.com", "name": "Ada"})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body responses.UserResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "u1", body.ID)
	assert.Equal(t, "free", body.Plan)
	assert.Equal(t, 2, body.Credits)
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	accounts := &mockAccountService{
		loginFunc: func(ctx context.Context, email, name, picture string) (*domain.User, error) {
			return nil, &errors.ValidationError{Field: "email", Message: "invalid email address"}
		},
	}
	api := newUserAPI(t, accounts, &mockCreditService{})

	resp := api.Post("/api/users", map[string]any{"email": "nope"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "invalid email address")
}

func TestGetUser_NotFound(t *testing.T) {
	accounts := &mockAccountService{
		getFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, &errors.NotFoundError{Resource: "user", ID: id}
		},
	}
	api := newUserAPI(t, accounts, &mockCreditService{})

	resp := api.Get("/api/users/missing")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "user not found: missing")
}

func TestGetCredits(t *testing.T) {
	tests := []struct {
		name          string
		balance       int
		wantUnlimited bool
	}{
		{"limited", 3, false},
		{"exhausted", 0, false},
		{"unlimited", domain.UnlimitedCredits, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credits := &mockCreditService{
				balanceFunc: func(ctx context.Context, userID string) (int, error) {
					return tt.balance, nil
				},
			}
			api := newUserAPI(t, &mockAccountService{}, credits)

			resp := api.Get("/api/users/u1/credits")

			require.Equal(t, http.StatusOK, resp.Code)
			var body responses.CreditsResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, "u1", body.UserID)
			assert.Equal(t, tt.balance, body.Credits)
			assert.Equal(t, tt.wantUnlimited, body.Unlimited)
		})
	}
}

func TestAddCredits(t *testing.T) {
	var gotAmount int
	credits := &mockCreditService{
		addCreditsFunc: func(ctx context.Context, userID string, amount int) (int, error) {
			gotAmount = amount
			return 7, nil
		},
	}
	api := newUserAPI(t, &mockAccountService{}, credits)

	resp := api.Post("/api/users/u1/credits", map[string]any{"amount": 5})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, 5, gotAmount)
	assert.Contains(t, resp.Body.String(), `"credits":7`)
}

func TestAddCredits_RejectsNonPositiveAmount(t *testing.T) {
	called := false
	credits := &mockCreditService{
		addCreditsFunc: func(ctx context.Context, userID string, amount int) (int, error) {
			called = true
			return 0, nil
		},
	}
	api := newUserAPI(t, &mockAccountService{}, credits)

	resp := api.Post("/api/users/u1/credits", map[string]any{"amount": 0})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.False(t, called)
}

func TestChangePlan(t *testing.T) {
	var gotPlan domain.PlanType
	credits := &mockCreditService{
		changePlanFunc: func(ctx context.Context, userID string, plan domain.PlanType) (*domain.User, error) {
			gotPlan = plan
			return &domain.User{ID: userID, Plan: plan, Credits: domain.UnlimitedCredits}, nil
		},
	}
	api := newUserAPI(t, &mockAccountService{}, credits)

	resp := api.Put("/api/users/u1/plan", map[string]any{"plan": "pro"})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, domain.PlanPro, gotPlan)
	assert.Contains(t, resp.Body.String(), `"credits":-1`)
}

func TestChangePlan_UnknownPlan(t *testing.T) {
	api := newUserAPI(t, &mockAccountService{}, &mockCreditService{})

	resp := api.Put("/api/users/u1/plan", map[string]any{"plan": "platinum"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
