package generation

import (
	"context"
	"strings"
	"sync"
	"time"
)

// State is the phase of the current generation attempt.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateWaiting
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateWaiting:
		return "waiting"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// resultDelay is how long the controller waits after a successful submission
// before polling for the result. The service offers no completion signal;
// the fixed interval is part of the app's behavioral contract and is not an
// adaptive-polling knob.
const resultDelay = 6 * time.Second

// Snapshot is the observable tuple the UI renders from. Busy gates further
// submissions while a chain is in flight.
type Snapshot struct {
	State     State
	Status    string
	ResultURL string
	Busy      bool
}

// Backend is the slice of Client the controller drives.
type Backend interface {
	Submit(ctx context.Context, prompt string) (string, error)
	FetchResult(ctx context.Context, jobID string) (string, error)
	Download(ctx context.Context, imageURL string) ([]byte, error)
}

// Saver persists downloaded image bytes and reports the stored file name.
type Saver interface {
	SaveGenerated(ctx context.Context, data []byte) (string, error)
}

// Controller owns the generation state machine. A submission runs one
// strictly sequential chain: submit, fixed delay, single poll. Exactly one
// chain may be in flight; there is no cancellation path once started.
type Controller struct {
	mu        sync.Mutex
	snap      Snapshot
	backend   Backend
	after     func(time.Duration) <-chan time.Time
	listeners []func(Snapshot)
}

// NewController returns a Controller in the idle state.
func NewController(backend Backend) *Controller {
	return &Controller{
		backend: backend,
		after:   time.After,
		snap:    Snapshot{State: StateIdle},
	}
}

// Subscribe registers a callback invoked on every state transition.
// Callbacks run in transition order; a slow callback delays the chain, so
// UI layers should hand off quickly.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Snapshot returns the current observable state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Submit starts a generation chain for the prompt. It reports false without
// any state change when the prompt is empty or whitespace, or when a chain
// is already in flight.
func (c *Controller) Submit(ctx context.Context, prompt string) bool {
	if strings.TrimSpace(prompt) == "" {
		return false
	}
	c.mu.Lock()
	if c.snap.Busy {
		c.mu.Unlock()
		return false
	}
	c.snap = Snapshot{State: StateSubmitting, Status: "Generating image...", Busy: true}
	fns := c.notifyLocked()
	c.mu.Unlock()
	emit(fns, Snapshot{State: StateSubmitting, Status: "Generating image...", Busy: true})

	go c.run(ctx, prompt)
	return true
}

func (c *Controller) run(ctx context.Context, prompt string) {
	jobID, err := c.backend.Submit(ctx, prompt)
	if err != nil {
		c.transition(Snapshot{State: StateFailed, Status: "Generation failed: " + err.Error()})
		return
	}

	c.transition(Snapshot{State: StateWaiting, Status: "Waiting for result...", Busy: true})
	<-c.after(resultDelay)

	resultURL, err := c.backend.FetchResult(ctx, jobID)
	if err != nil {
		c.transition(Snapshot{State: StateFailed, Status: "Generation failed: " + err.Error()})
		return
	}
	c.transition(Snapshot{State: StateReady, Status: "Done", ResultURL: resultURL})
}

// Download fetches the current result image and saves it locally. It is only
// meaningful in the ready state and never mutates generation state; a
// failure here is the caller's to surface.
func (c *Controller) Download(ctx context.Context, saver Saver) (string, error) {
	snap := c.Snapshot()
	if snap.State != StateReady {
		return "", ErrNoResult
	}
	data, err := c.backend.Download(ctx, snap.ResultURL)
	if err != nil {
		return "", err
	}
	return saver.SaveGenerated(ctx, data)
}

func (c *Controller) transition(next Snapshot) {
	c.mu.Lock()
	c.snap = next
	fns := c.notifyLocked()
	c.mu.Unlock()
	emit(fns, next)
}

func (c *Controller) notifyLocked() []func(Snapshot) {
	fns := make([]func(Snapshot), len(c.listeners))
	copy(fns, c.listeners)
	return fns
}

func emit(fns []func(Snapshot), snap Snapshot) {
	for _, fn := range fns {
		fn(snap)
	}
}
