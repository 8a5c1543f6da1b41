// Package effect provides the stock effect implementations and their
// registration into the default effect registry. Effects here are data
// carriers describing what an item does; interpreting them is the game
// layer's job.
package effect

import "github.com/atheriel/itemforge/internal/domain"

// Effect kinds provided by this package.
const (
	KindHeal      domain.EffectKind = "heal"
	KindLeftovers domain.EffectKind = "leftovers"
	KindFocusBand domain.EffectKind = "focus_band"
)

// DefaultHealAmount is the amount a newly constructed heal effect restores.
const DefaultHealAmount = 20

// Heal is a use effect that restores a fixed amount of HP.
type Heal struct {
	Amount int `json:"amount"`

	host *domain.EffectiveItem
}

// NewHeal constructs a heal effect with the default amount.
func NewHeal() *Heal {
	return &Heal{Amount: DefaultHealAmount}
}

func (e *Heal) Kind() domain.EffectKind { return KindHeal }

// Attach records the owning item. Called exactly once, at attachment.
func (e *Heal) Attach(item *domain.EffectiveItem) { e.host = item }

// Host returns the item this effect is attached to, or nil before
// attachment.
func (e *Heal) Host() *domain.EffectiveItem { return e.host }
