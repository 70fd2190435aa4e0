package authform

import (
	"sync"
	"time"

	"github.com/clipsmart/clipsmart-web/internal/notify"
	"github.com/google/uuid"
)

// Registry holds the open auth modals, keyed by an id kept in the browser session.
type Registry struct {
	auth        Authenticator
	idleTimeout time.Duration

	mu    sync.Mutex
	forms map[string]*Controller
}

func (r *Registry) sweepLocked(now time.Time) {
	for id, form := range r.forms {
		if form.idle(now, r.idleTimeout) {
			form.Close()
			delete(r.forms, id)
		}
	}
}

// Open creates a controller in mode whose toasts go to notifier.
func (r *Registry) Open(mode Mode, notifier notify.Notifier) *Controller {
	form := NewController(uuid.NewString(), mode, r.auth, notifier)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(time.Now())
	r.forms[form.id] = form
	return form
}

func (r *Registry) Get(id string) (*Controller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	form, ok := r.forms[id]
	if !ok {
		return nil, ErrFormNotFound
	}
	return form, nil
}

func (r *Registry) Close(id string) {
	r.mu.Lock()
	form, ok := r.forms[id]
	delete(r.forms, id)
	r.mu.Unlock()
	if ok {
		form.Close()
	}
}

// Sweep evicts controllers that have been idle longer than the timeout.
func (r *Registry) Sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(time.Now())
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

func NewRegistry(auth Authenticator, idleTimeout time.Duration) *Registry {
	return &Registry{
		auth:        auth,
		idleTimeout: idleTimeout,
		forms:       make(map[string]*Controller),
	}
}
