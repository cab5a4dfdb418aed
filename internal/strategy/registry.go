package strategy

import (
	"slices"
	"sync"

	"github.com/rxtech-lab/argo-crypto-trader/internal/logger"
	"github.com/rxtech-lab/argo-crypto-trader/pkg/errors"
)

// Factory builds a strategy from its config.
type Factory func(config Config, log *logger.Logger) Strategy

// Registry manages the available strategies by name.
type Registry interface {
	Register(name string, factory Factory) error
	Get(name string) (Factory, error)
	List() []string
}

// RegistryV1 is the map backed Registry.
type RegistryV1 struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() Registry {
	return &RegistryV1{
		factories: make(map[string]Factory),
		mu:        sync.RWMutex{},
	}
}

// NewDefaultRegistry creates a registry holding every built-in strategy.
func NewDefaultRegistry() Registry {
	registry := NewRegistry()

	// names are distinct so registration cannot fail
	_ = registry.Register(BollingerRSIName, NewBollingerRSIStrategy)
	_ = registry.Register(HoldName, NewHoldStrategy)

	return registry
}

// Register adds a strategy factory to the registry.
func (r *RegistryV1) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return errors.Newf(errors.ErrCodeStrategyAlreadyExists, "strategy %s already registered", name)
	}

	r.factories[name] = factory

	return nil
}

// Get retrieves a strategy factory by name.
func (r *RegistryV1) Get(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeStrategyNotFound, "strategy %s not found", name)
	}

	return factory, nil
}

// List returns the registered names in sorted order.
func (r *RegistryV1) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// New looks up name in registry and builds the strategy.
func New(registry Registry, name string, config Config, log *logger.Logger) (Strategy, error) {
	factory, err := registry.Get(name)
	if err != nil {
		return nil, err
	}

	return factory(config, log), nil
}
