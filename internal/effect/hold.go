package effect

import "github.com/atheriel/itemforge/internal/domain"

// Default parameters for newly constructed hold effects.
const (
	DefaultLeftoversFraction = 0.0625 // 1/16 per turn
	DefaultFocusBandChance   = 0.1
)

// Leftovers is a hold effect that restores a fraction of max HP each turn
// while held.
type Leftovers struct {
	Fraction float64 `json:"fraction"`

	host *domain.EffectiveItem
}

// NewLeftovers constructs a leftovers effect with the default fraction.
func NewLeftovers() *Leftovers {
	return &Leftovers{Fraction: DefaultLeftoversFraction}
}

func (e *Leftovers) Kind() domain.EffectKind { return KindLeftovers }

// Attach records the owning item. Called exactly once, at attachment.
func (e *Leftovers) Attach(item *domain.EffectiveItem) { e.host = item }

// Host returns the item this effect is attached to, or nil before
// attachment.
func (e *Leftovers) Host() *domain.EffectiveItem { return e.host }

// FocusBand is a hold effect giving the holder a chance to survive a
// knockout blow with 1 HP.
type FocusBand struct {
	Chance float64 `json:"chance"`

	host *domain.EffectiveItem
}

// NewFocusBand constructs a focus band effect with the default chance.
func NewFocusBand() *FocusBand {
	return &FocusBand{Chance: DefaultFocusBandChance}
}

func (e *FocusBand) Kind() domain.EffectKind { return KindFocusBand }

// Attach records the owning item. Called exactly once, at attachment.
func (e *FocusBand) Attach(item *domain.EffectiveItem) { e.host = item }

// Host returns the item this effect is attached to, or nil before
// attachment.
func (e *FocusBand) Host() *domain.EffectiveItem { return e.host }
