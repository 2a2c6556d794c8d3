// ABOUTME: Conversion orchestrator sequences fetch, pacing pause, reconstruction and persistence
// ABOUTME: Step transitions are tracked in a single-writer list and streamed as StepEvent values

package conversion

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"web2one-api/core/domain"
	"web2one-api/core/errors"
	"web2one-api/core/interfaces"
	"web2one-api/core/reconstruct"

	"github.com/google/uuid"
)

// DefaultPacingDelay is the pause taken during the extract step
const DefaultPacingDelay = 800 * time.Millisecond

// failureUpdateTimeout bounds the best-effort "failed" project update
const failureUpdateTimeout = 10 * time.Second

// Config tunes the orchestrator
type Config struct {
	PacingDelay time.Duration
}

// Orchestrator drives one conversion at a time through the four steps
type Orchestrator struct {
	fetcher       interfaces.Fetcher
	reconstructor interfaces.Reconstructor
	projects      interfaces.ProjectStore
	credits       interfaces.CreditAccount
	logger        interfaces.Logger
	cfg           Config

	now   func() time.Time
	newID func() string

	running atomic.Bool

	mu        sync.Mutex
	steps     []domain.ConversionStep
	state     domain.State
	output    string
	projectID string
}

// NewOrchestrator creates an orchestrator over its collaborators
func NewOrchestrator(
	fetcher interfaces.Fetcher,
	reconstructor interfaces.Reconstructor,
	projects interfaces.ProjectStore,
	credits interfaces.CreditAccount,
	cfg Config,
	logger interfaces.Logger,
) *Orchestrator {
	if cfg.PacingDelay < 0 {
		cfg.PacingDelay = 0
	}
	return &Orchestrator{
		fetcher:       fetcher,
		reconstructor: reconstructor,
		projects:      projects,
		credits:       credits,
		logger:        logger,
		cfg:           cfg,
		now:           time.Now,
		newID:         uuid.NewString,
		steps:         domain.NewConversionSteps(),
		state:         domain.StateIdle,
	}
}

// Steps returns a snapshot of the step list
func (o *Orchestrator) Steps() []domain.ConversionStep {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]domain.ConversionStep(nil), o.steps...)
}

// State returns the current run state
func (o *Orchestrator) State() domain.State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Output returns the HTML stored by the last successful finalize step
func (o *Orchestrator) Output() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.output
}

// ProjectID returns the id of the project created by the current or last run
func (o *Orchestrator) ProjectID() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.projectID
}

// Run converts req on behalf of userID. The caller is responsible for the credit check.
// events may be nil; when set, every step transition is sent on it.
// Stage errors are returned unwrapped.
func (o *Orchestrator) Run(ctx context.Context, userID string, req domain.ConversionRequest, events chan<- domain.StepEvent) (*domain.ReconstructionResult, error) {
	if !o.running.CompareAndSwap(false, true) {
		return nil, errors.ErrConversionInProgress
	}
	defer o.running.Store(false)

	o.reset()

	log := o.logger.With(map[string]interface{}{
		"user_id":    userID,
		"source_url": req.SourceURL,
	})

	project := &domain.Project{
		ID:        o.newID(),
		UserID:    userID,
		Name:      projectName(req.SourceURL),
		SourceURL: req.SourceURL,
		Status:    domain.ProjectPending,
		Rebrand:   req.Rebrand,
		CreatedAt: o.now(),
	}
	if err := o.projects.Create(ctx, project); err != nil {
		log.Error("Failed to create project", map[string]interface{}{"error": err.Error()})
		return nil, &errors.PersistenceError{Op: "create project", Cause: err}
	}
	o.mu.Lock()
	o.projectID = project.ID
	o.mu.Unlock()
	log = log.With(map[string]interface{}{"project_id": project.ID})

	if err := o.projects.Update(ctx, project.ID, domain.ProjectUpdate{Status: domain.ProjectProcessing}); err != nil {
		log.Error("Failed to mark project processing", map[string]interface{}{"error": err.Error()})
		o.markFailed(ctx, project.ID, log)
		return nil, &errors.PersistenceError{Op: "update project", Cause: err}
	}

	o.setState(domain.StateFetching)

	// fetch
	o.transition(ctx, events, domain.StepFetch, domain.StepLoading, nil)
	fetched, err := o.fetcher.Fetch(ctx, req.SourceURL)
	if err != nil {
		return nil, o.fail(ctx, events, domain.StepFetch, project.ID, err, log)
	}
	o.transition(ctx, events, domain.StepFetch, domain.StepCompleted, nil)
	log.Info("Source fetched", map[string]interface{}{
		"relay":  fetched.Relay,
		"length": len(fetched.HTML),
	})

	// extract
	o.setState(domain.StateConverting)
	o.transition(ctx, events, domain.StepExtract, domain.StepLoading, nil)
	if err := pause(ctx, o.cfg.PacingDelay); err != nil {
		return nil, o.fail(ctx, events, domain.StepExtract, project.ID, err, log)
	}
	o.transition(ctx, events, domain.StepExtract, domain.StepCompleted, nil)

	// optimize
	o.transition(ctx, events, domain.StepOptimize, domain.StepLoading, nil)
	html, err := o.reconstructor.Reconstruct(ctx, fetched.HTML, req.SourceURL, req.Rebrand)
	if err != nil {
		return nil, o.fail(ctx, events, domain.StepOptimize, project.ID, err, log)
	}
	o.transition(ctx, events, domain.StepOptimize, domain.StepCompleted, nil)

	// finalize
	o.transition(ctx, events, domain.StepFinalize, domain.StepLoading, nil)
	html = reconstruct.Cleanup(html)

	completedAt := o.now()
	update := domain.ProjectUpdate{
		Status:      domain.ProjectCompleted,
		OutputHTML:  &html,
		CompletedAt: &completedAt,
	}
	if fetched.Title != "" {
		update.Name = &fetched.Title
	}
	if err := o.projects.Update(ctx, project.ID, update); err != nil {
		perr := &errors.PersistenceError{Op: "update project", Cause: err}
		return nil, o.fail(ctx, events, domain.StepFinalize, project.ID, perr, log)
	}

	o.mu.Lock()
	o.output = html
	o.mu.Unlock()
	o.setState(domain.StateCompleted)
	o.transition(ctx, events, domain.StepFinalize, domain.StepCompleted, nil)

	o.settleCredit(ctx, userID, log)

	log.Info("Conversion completed", map[string]interface{}{"html_size": len(html)})
	return &domain.ReconstructionResult{HTML: html}, nil
}

// fail marks step and state as errored, marks the project failed and returns err unchanged
func (o *Orchestrator) fail(ctx context.Context, events chan<- domain.StepEvent, step domain.StepID, projectID string, err error, log interfaces.Logger) error {
	o.setState(domain.StateError)
	o.transition(ctx, events, step, domain.StepError, err)
	log.Warn("Conversion failed", map[string]interface{}{
		"step":  string(step),
		"error": err.Error(),
	})
	o.markFailed(ctx, projectID, log)
	return err
}

func (o *Orchestrator) markFailed(ctx context.Context, projectID string, log interfaces.Logger) {
	updateCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), failureUpdateTimeout)
	defer cancel()

	if err := o.projects.Update(updateCtx, projectID, domain.ProjectUpdate{Status: domain.ProjectFailed}); err != nil {
		log.Error("Failed to mark project failed", map[string]interface{}{"error": err.Error()})
	}
}

// settleCredit takes one credit and refreshes the balance. A failure here
// does not undo a conversion the user already received.
func (o *Orchestrator) settleCredit(ctx context.Context, userID string, log interfaces.Logger) {
	ctx = context.WithoutCancel(ctx)

	if err := o.credits.DecrementOne(ctx, userID); err != nil {
		log.Error("Failed to decrement credit", map[string]interface{}{"error": err.Error()})
		return
	}
	balance, err := o.credits.Refresh(ctx, userID)
	if err != nil {
		log.Warn("Failed to refresh credit balance", map[string]interface{}{"error": err.Error()})
		return
	}
	log.Debug("Credit consumed", map[string]interface{}{"balance": balance})
}

func (o *Orchestrator) reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.steps = domain.NewConversionSteps()
	o.state = domain.StateIdle
	o.output = ""
	o.projectID = ""
}

func (o *Orchestrator) setState(state domain.State) {
	o.mu.Lock()
	o.state = state
	o.mu.Unlock()
}

// transition updates one step and publishes the event
func (o *Orchestrator) transition(ctx context.Context, events chan<- domain.StepEvent, id domain.StepID, status domain.StepStatus, err error) {
	o.mu.Lock()
	for i := range o.steps {
		if o.steps[i].ID == id {
			o.steps[i].Status = status
		}
	}
	ev := domain.StepEvent{
		Step:   id,
		Status: status,
		State:  o.state,
		At:     o.now(),
	}
	o.mu.Unlock()

	if err != nil {
		ev.Err = err.Error()
	}
	if events == nil {
		return
	}
	select {
	case events <- ev:
	case <-ctx.Done():
	}
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// projectName is the initial name of a project: the source host without "www."
func projectName(sourceURL string) string {
	parsed, err := url.Parse(sourceURL)
	if err != nil || parsed.Host == "" {
		return sourceURL
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}
