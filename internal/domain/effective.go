package domain

import "sync"

// EffectiveItem is an item that can carry on-use and on-hold effects. It
// composes the base Item with two independent effect mappings, one per
// category. Each mapping holds at most one effect instance per kind, created
// on demand and attached exactly once.
//
// There are deliberately no removal or replacement operations: an item's
// effect set is append-only for its lifetime.
type EffectiveItem struct {
	Item

	registry *Registry

	// The two effect mappings are guarded independently so use and hold
	// attachment never contend with each other or with attribute reads.
	useMu      sync.Mutex
	useEffects map[EffectKind]UseEffect

	holdMu      sync.Mutex
	holdEffects map[EffectKind]HoldEffect
}

// NewEffectiveItem creates an effective item backed by the default effect
// registry.
func NewEffectiveItem(name string) *EffectiveItem {
	return NewEffectiveItemWithRegistry(name, DefaultRegistry)
}

// NewEffectiveItemWithRegistry creates an effective item that resolves
// effect kinds against the given registry.
func NewEffectiveItemWithRegistry(name string, registry *Registry) *EffectiveItem {
	return &EffectiveItem{
		Item:        Item{Name: name},
		registry:    registry,
		useEffects:  make(map[EffectKind]UseEffect),
		holdEffects: make(map[EffectKind]HoldEffect),
	}
}

// GetOrCreateUseEffect returns the use effect of the given kind, creating
// and attaching it first if the item does not have one yet. The returned
// instance is identical on every call for the same kind. A successful call
// marks the item usable. Construction failure leaves the item untouched and
// is safe to retry.
//
// The whole check-then-create-then-attach sequence runs under the use-effect
// lock, so concurrent calls for the same kind construct exactly once.
func (ei *EffectiveItem) GetOrCreateUseEffect(kind EffectKind) (UseEffect, error) {
	ei.useMu.Lock()
	defer ei.useMu.Unlock()

	if existing, ok := ei.useEffects[kind]; ok {
		ei.Usable = true
		return existing, nil
	}

	effect, err := ei.registry.newUseEffect(kind)
	if err != nil {
		return nil, err
	}

	effect.Attach(ei)
	ei.useEffects[kind] = effect
	ei.Usable = true
	return effect, nil
}

// GetOrCreateHoldEffect is the hold-effect counterpart of
// GetOrCreateUseEffect. A successful call marks the item holdable and as
// having a hold effect. The hold-effect lock is independent of the
// use-effect lock.
func (ei *EffectiveItem) GetOrCreateHoldEffect(kind EffectKind) (HoldEffect, error) {
	ei.holdMu.Lock()
	defer ei.holdMu.Unlock()

	if existing, ok := ei.holdEffects[kind]; ok {
		ei.Holdable = true
		ei.HasHoldEffect = true
		return existing, nil
	}

	effect, err := ei.registry.newHoldEffect(kind)
	if err != nil {
		return nil, err
	}

	effect.Attach(ei)
	ei.holdEffects[kind] = effect
	ei.Holdable = true
	ei.HasHoldEffect = true
	return effect, nil
}

// UseEffect returns the attached use effect of the given kind, if any. Pure
// read; never constructs.
func (ei *EffectiveItem) UseEffect(kind EffectKind) (UseEffect, bool) {
	ei.useMu.Lock()
	defer ei.useMu.Unlock()

	effect, ok := ei.useEffects[kind]
	return effect, ok
}

// HoldEffect returns the attached hold effect of the given kind, if any.
func (ei *EffectiveItem) HoldEffect(kind EffectKind) (HoldEffect, bool) {
	ei.holdMu.Lock()
	defer ei.holdMu.Unlock()

	effect, ok := ei.holdEffects[kind]
	return effect, ok
}

// UseEffectKinds returns the kinds of all attached use effects.
func (ei *EffectiveItem) UseEffectKinds() []EffectKind {
	ei.useMu.Lock()
	defer ei.useMu.Unlock()

	kinds := make([]EffectKind, 0, len(ei.useEffects))
	for kind := range ei.useEffects {
		kinds = append(kinds, kind)
	}
	return kinds
}

// HoldEffectKinds returns the kinds of all attached hold effects.
func (ei *EffectiveItem) HoldEffectKinds() []EffectKind {
	ei.holdMu.Lock()
	defer ei.holdMu.Unlock()

	kinds := make([]EffectKind, 0, len(ei.holdEffects))
	for kind := range ei.holdEffects {
		kinds = append(kinds, kind)
	}
	return kinds
}
