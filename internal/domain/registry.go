package domain

import (
	"fmt"
	"sync"
)

// UseEffectFactory constructs a default instance of a use-effect kind.
type UseEffectFactory func() (UseEffect, error)

// HoldEffectFactory constructs a default instance of a hold-effect kind.
type HoldEffectFactory func() (HoldEffect, error)

// Registry maps effect kinds to constructor closures. It replaces
// reflective "new instance of type token" construction: a kind is
// instantiable only if a factory was registered for it.
type Registry struct {
	mu   sync.RWMutex
	use  map[EffectKind]UseEffectFactory
	hold map[EffectKind]HoldEffectFactory
}

// NewRegistry creates an empty effect registry.
func NewRegistry() *Registry {
	return &Registry{
		use:  make(map[EffectKind]UseEffectFactory),
		hold: make(map[EffectKind]HoldEffectFactory),
	}
}

// DefaultRegistry is the registry used by items created with
// NewEffectiveItem. Concrete effect packages register their kinds here at
// startup.
var DefaultRegistry = NewRegistry()

// RegisterUseEffect binds a factory to a use-effect kind. Registering the
// same kind twice is an error; kinds are stable identifiers, not state.
func (r *Registry) RegisterUseEffect(kind EffectKind, factory UseEffectFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.use[kind]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEffectKind, kind)
	}
	r.use[kind] = factory
	return nil
}

// RegisterHoldEffect binds a factory to a hold-effect kind.
func (r *Registry) RegisterHoldEffect(kind EffectKind, factory HoldEffectFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hold[kind]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEffectKind, kind)
	}
	r.hold[kind] = factory
	return nil
}

// UseEffectKinds returns the registered use-effect kinds, order unspecified.
func (r *Registry) UseEffectKinds() []EffectKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]EffectKind, 0, len(r.use))
	for kind := range r.use {
		kinds = append(kinds, kind)
	}
	return kinds
}

// HoldEffectKinds returns the registered hold-effect kinds.
func (r *Registry) HoldEffectKinds() []EffectKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]EffectKind, 0, len(r.hold))
	for kind := range r.hold {
		kinds = append(kinds, kind)
	}
	return kinds
}

// newUseEffect constructs a fresh instance of kind, or reports why it
// cannot. Construction failure never mutates registry state.
func (r *Registry) newUseEffect(kind EffectKind) (UseEffect, error) {
	r.mu.RLock()
	factory, ok := r.use[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: use effect %s", ErrEffectNotRegistered, kind)
	}

	effect, err := factory()
	if err != nil {
		return nil, fmt.Errorf("%w: use effect %s: %w", ErrEffectConstruction, kind, err)
	}
	if effect == nil {
		return nil, fmt.Errorf("%w: use effect %s: factory returned nil", ErrEffectConstruction, kind)
	}
	return effect, nil
}

// newHoldEffect constructs a fresh instance of a hold-effect kind.
func (r *Registry) newHoldEffect(kind EffectKind) (HoldEffect, error) {
	r.mu.RLock()
	factory, ok := r.hold[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: hold effect %s", ErrEffectNotRegistered, kind)
	}

	effect, err := factory()
	if err != nil {
		return nil, fmt.Errorf("%w: hold effect %s: %w", ErrEffectConstruction, kind, err)
	}
	if effect == nil {
		return nil, fmt.Errorf("%w: hold effect %s: factory returned nil", ErrEffectConstruction, kind)
	}
	return effect, nil
}

// RegisterUseEffect registers a use-effect factory in the default registry.
func RegisterUseEffect(kind EffectKind, factory UseEffectFactory) error {
	return DefaultRegistry.RegisterUseEffect(kind, factory)
}

// RegisterHoldEffect registers a hold-effect factory in the default registry.
func RegisterHoldEffect(kind EffectKind, factory HoldEffectFactory) error {
	return DefaultRegistry.RegisterHoldEffect(kind, factory)
}
