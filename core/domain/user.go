// ABOUTME: User and plan domain models for the credits layer
// ABOUTME: A credit balance of -1 marks an unlimited plan

package domain

import "time"

// UnlimitedCredits is the balance value of plans without a conversion cap
const UnlimitedCredits = -1

// PlanType identifies a subscription plan
type PlanType string

const (
	PlanFree    PlanType = "free"
	PlanStarter PlanType = "starter"
	PlanPro     PlanType = "pro"
	PlanAgency  PlanType = "agency"
)

// Plan describes what a subscription grants
type Plan struct {
	ID      PlanType `json:"id"`
	Name    string   `json:"name"`
	Credits int      `json:"credits"`
}

// Plans lists every plan a user can be moved to
var Plans = []Plan{
	{ID: PlanFree, Name: "Free", Credits: 2},
	{ID: PlanStarter, Name: "Starter", Credits: 25},
	{ID: PlanPro, Name: "Pro", Credits: UnlimitedCredits},
	{ID: PlanAgency, Name: "Agency", Credits: UnlimitedCredits},
}

// FindPlan returns the plan with the given id
func FindPlan(id PlanType) (Plan, bool) {
	for _, p := range Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// User is an account that owns projects and a credit balance
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Picture     string    `json:"picture,omitempty"`
	Plan        PlanType  `json:"plan"`
	Credits     int       `json:"credits"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

// HasCredits reports whether the user may start another conversion
func (u *User) HasCredits() bool {
	return u.Credits == UnlimitedCredits || u.Credits > 0
}
