package template

import (
	"fmt"
	"sync"

	"github.com/jsamuelsen11/page-template-admin/internal/domain"
)

// ErrDuplicateKey is returned by Register when a key is already registered.
var ErrDuplicateKey = fmt.Errorf("template key already registered: %w", domain.ErrConflict)

// Registry maps template keys to templates and remembers registration order.
// It is populated once at startup; lookups are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]Template
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Template)}
}

// Register adds templates in the order given. Either every template is
// registered or none is: a malformed template or duplicate key leaves the
// registry unchanged.
func (r *Registry) Register(templates ...Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	batch := make(map[string]bool, len(templates))
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("registering template %q: %w", t.Key, err)
		}
		if _, ok := r.byKey[t.Key]; ok || batch[t.Key] {
			return fmt.Errorf("registering template %q: %w", t.Key, ErrDuplicateKey)
		}
		batch[t.Key] = true
	}

	for _, t := range templates {
		r.byKey[t.Key] = t.clone()
		r.order = append(r.order, t.Key)
	}
	return nil
}

// MustRegister is Register for startup wiring; it panics on error.
func (r *Registry) MustRegister(templates ...Template) {
	if err := r.Register(templates...); err != nil {
		panic(err)
	}
}

// Lookup returns the template registered under key.
// Returns an error wrapping domain.ErrNotFound if the key is unknown.
func (r *Registry) Lookup(key string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byKey[key]
	if !ok {
		return Template{}, fmt.Errorf("template %q: %w", key, domain.ErrNotFound)
	}
	return t.clone(), nil
}

// All returns every registered template in registration order.
func (r *Registry) All() []Template {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Template, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byKey[key].clone())
	}
	return out
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
