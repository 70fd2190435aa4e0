package authform

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/clipsmart/clipsmart-web/internal/notify"
	"github.com/clipsmart/clipsmart-web/model"
)

// Authenticator is the backend auth service the controller submits to.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*model.Token, error)
	Register(ctx context.Context, email, password, fullName string) (*model.Token, error)
}

type Status int

const (
	StatusInvalid Status = iota + 1
	StatusIgnored
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusInvalid:
		return "invalid"
	case StatusIgnored:
		return "ignored"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type Result struct {
	Status Status
	Errors Errors
	Token  *model.Token
	Err    error
}

// State is a point-in-time copy of the form used for rendering.
type State struct {
	ID         string
	Mode       Mode
	Values     Values
	Errors     Errors
	Submitting bool
}

// Controller owns one auth modal: its mode, values, errors and the
// single-flight submit guard.
type Controller struct {
	id       string
	auth     Authenticator
	notifier notify.Notifier

	mu         sync.Mutex
	mode       Mode
	values     Values
	errors     Errors
	submitting bool
	closed     bool
	lastActive time.Time
}

func (c *Controller) ID() string {
	return c.id
}

func (c *Controller) touch() {
	c.lastActive = time.Now()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		ID:         c.id,
		Mode:       c.mode,
		Values:     c.values.clone(),
		Errors:     c.errors.clone(),
		Submitting: c.submitting,
	}
}

func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SetField stores value and clears any error the field holds.
func (c *Controller) SetField(field Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[field] = value
	delete(c.errors, field)
	c.touch()
}

// ToggleMode switches between sign in and sign up, discarding input and errors.
func (c *Controller) ToggleMode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = c.mode.Toggle()
	c.values = make(Values)
	c.errors = make(Errors)
	c.touch()
	return c.mode
}

// Validate runs the rules for the current mode without storing the result.
func (c *Controller) Validate() Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Validate(c.mode, c.values)
}

// Submit validates the form and, when valid, makes exactly one call to the
// authenticator. A call while another submit is in flight is ignored.
func (c *Controller) Submit(ctx context.Context) Result {
	return c.submit(ctx, nil)
}

// SubmitValues stores the values of the current mode's fields and submits in
// one step. An ignored submit leaves the stored values and errors untouched.
func (c *Controller) SubmitValues(ctx context.Context, values Values) Result {
	return c.submit(ctx, values)
}

func (c *Controller) submit(ctx context.Context, input Values) Result {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Result{Status: StatusIgnored, Err: ErrFormClosed}
	}
	if c.submitting {
		c.mu.Unlock()
		return Result{Status: StatusIgnored}
	}
	for field, value := range input {
		if c.mode.Uses(field) {
			c.values[field] = value
		}
	}
	c.touch()
	c.errors = Validate(c.mode, c.values)
	if len(c.errors) > 0 {
		errs := c.errors.clone()
		c.mu.Unlock()
		return Result{Status: StatusInvalid, Errors: errs}
	}
	mode := c.mode
	values := c.values.clone()
	c.submitting = true
	c.mu.Unlock()

	token, err := c.authenticate(ctx, mode, values)

	c.mu.Lock()
	c.submitting = false
	c.touch()
	closed := c.closed
	c.mu.Unlock()

	if err != nil {
		slog.Debug("Auth form submit failed", "form", c.id, "mode", mode, "error", err)
		if !closed {
			c.notifier.Notify(notify.KindError, FailureMessage(err))
		}
		return Result{Status: StatusFailed, Err: err}
	}
	if !closed {
		c.notifier.Notify(notify.KindSuccess, mode.def().successMessage)
	}
	return Result{Status: StatusSucceeded, Token: token}
}

func (c *Controller) authenticate(ctx context.Context, mode Mode, values Values) (*model.Token, error) {
	if mode == ModeSignUp {
		return c.auth.Register(ctx, values[FieldEmail], values[FieldPassword], values[FieldFullName])
	}
	return c.auth.Login(ctx, values[FieldEmail], values[FieldPassword])
}

// Close detaches the controller. An in-flight submit still completes but
// its outcome is no longer notified.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *Controller) idle(now time.Time, timeout time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.submitting && now.Sub(c.lastActive) > timeout
}

func NewController(id string, mode Mode, auth Authenticator, notifier notify.Notifier) *Controller {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &Controller{
		id:         id,
		auth:       auth,
		notifier:   notifier,
		mode:       mode,
		values:     make(Values),
		errors:     make(Errors),
		lastActive: time.Now(),
	}
}
