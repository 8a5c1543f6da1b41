package effect

import "github.com/atheriel/itemforge/internal/domain"

// Register binds this package's effect kinds into the given registry.
// Called once at startup; a second call for the same registry reports a
// duplicate-kind error.
func Register(reg *domain.Registry) error {
	if err := reg.RegisterUseEffect(KindHeal, func() (domain.UseEffect, error) {
		return NewHeal(), nil
	}); err != nil {
		return err
	}
	if err := reg.RegisterHoldEffect(KindLeftovers, func() (domain.HoldEffect, error) {
		return NewLeftovers(), nil
	}); err != nil {
		return err
	}
	return reg.RegisterHoldEffect(KindFocusBand, func() (domain.HoldEffect, error) {
		return NewFocusBand(), nil
	})
}

// RegisterDefaults binds this package's effect kinds into the default
// registry used by domain.NewEffectiveItem.
func RegisterDefaults() error {
	return Register(domain.DefaultRegistry)
}
