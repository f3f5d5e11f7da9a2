package notify

import (
	"fmt"
	"sync"
)

// Registry manages available notification backends
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new backend registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a new backend factory to the registry
func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("notifier %s already registered", name)
	}

	r.factories[name] = factory
	return nil
}

// Create instantiates a backend by name
func (r *Registry) Create(name string) (Notifier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("notifier %s not registered", name)
	}

	return factory(), nil
}

// List returns all registered backend names
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// Global registry instance
var defaultRegistry = NewRegistry()

// Register adds a backend to the global registry
func Register(name string, factory Factory) error {
	return defaultRegistry.Register(name, factory)
}

// CreateNotifier creates a backend from the global registry
func CreateNotifier(name string) (Notifier, error) {
	return defaultRegistry.Create(name)
}

// ListNotifiers returns all registered backend names from the global registry
func ListNotifiers() []string {
	return defaultRegistry.List()
}
