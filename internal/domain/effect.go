package domain

// EffectKind identifies a concrete effect type. Each kind must be registered
// with a factory before an item can attach it; the kind doubles as the map
// key that guarantees at most one instance per (item, kind).
type EffectKind string

// EffectCategory distinguishes the two effect mappings an item carries.
type EffectCategory string

const (
	EffectCategoryUse  EffectCategory = "use"
	EffectCategoryHold EffectCategory = "hold"
)

// UseEffect is behavior triggered when an item is used. Attach is invoked
// exactly once, synchronously, when the effect is bound to its owning item;
// implementations record the host there and must not expect a second call.
type UseEffect interface {
	Kind() EffectKind
	Attach(item *EffectiveItem)
}

// HoldEffect is passive behavior active while an item is held. Same attach
// contract as UseEffect.
type HoldEffect interface {
	Kind() EffectKind
	Attach(item *EffectiveItem)
}
