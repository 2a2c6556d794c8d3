// ABOUTME: Progress model for a conversion: the four ordered steps and the run state machine
// ABOUTME: Step transitions are published as StepEvent values instead of shared UI state

package domain

import "time"

// StepID identifies one of the fixed conversion steps
type StepID string

const (
	StepFetch    StepID = "fetch"
	StepExtract  StepID = "extract"
	StepOptimize StepID = "optimize"
	StepFinalize StepID = "finalize"
)

// StepStatus is the progress of a single step
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepLoading   StepStatus = "loading"
	StepCompleted StepStatus = "completed"
	StepError     StepStatus = "error"
)

// State is the overall state of a conversion run
type State string

const (
	StateIdle       State = "idle"
	StateFetching   State = "fetching"
	StateConverting State = "converting"
	StateCompleted  State = "completed"
	StateError      State = "error"
)

// ConversionStep is one entry of the progress indicator
type ConversionStep struct {
	ID     StepID     `json:"id"`
	Label  string     `json:"label"`
	Status StepStatus `json:"status"`
}

// StepEvent describes a single step transition
type StepEvent struct {
	Step   StepID     `json:"step"`
	Status StepStatus `json:"status"`
	State  State      `json:"state"`
	At     time.Time  `json:"at"`
	Err    string     `json:"error,omitempty"`
}

// NewConversionSteps returns the four steps in order, all pending
func NewConversionSteps() []ConversionStep {
	return []ConversionStep{
		{ID: StepFetch, Label: "Deep Scrape Source", Status: StepPending},
		{ID: StepExtract, Label: "Asset & Brand Mapping", Status: StepPending},
		{ID: StepOptimize, Label: "AI Static Reconstruction", Status: StepPending},
		{ID: StepFinalize, Label: "Full-Width & Hero Fixes", Status: StepPending},
	}
}
