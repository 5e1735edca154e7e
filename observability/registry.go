package observability

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownObserver is returned for names that were never registered.
var ErrUnknownObserver = errors.New("unknown observer")

// Registry resolves the observer named in configuration.
type Registry struct {
	mu        sync.RWMutex
	observers map[string]Observer
}

// NewRegistry returns a registry holding "noop" and "slog" (default logger).
func NewRegistry() *Registry {
	return &Registry{
		observers: map[string]Observer{
			"noop": NoOpObserver{},
			"slog": NewSlogObserver(slog.Default()),
		},
	}
}

// Get returns the observer registered under name. The error lists the
// registered names.
func (r *Registry) Get(name string) (Observer, error) {
	r.mu.RLock()
	obs, ok := r.observers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownObserver, name, strings.Join(r.Names(), ", "))
	}
	return obs, nil
}

// Register adds or replaces a named observer.
func (r *Registry) Register(name string, observer Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers[name] = observer
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.observers))
	for name := range r.observers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// GetObserver resolves name in the process-wide registry.
func GetObserver(name string) (Observer, error) {
	return defaultRegistry.Get(name)
}

// RegisterObserver adds or replaces name in the process-wide registry.
func RegisterObserver(name string, observer Observer) {
	defaultRegistry.Register(name, observer)
}

// ObserverNames lists the process-wide registry.
func ObserverNames() []string {
	return defaultRegistry.Names()
}
