package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_DuplicateRegistration(t *testing.T) {
	reg := NewRegistry()

	err := reg.RegisterUseEffect("heal", func() (UseEffect, error) {
		return &healEffect{}, nil
	})
	require.NoError(t, err)

	err = reg.RegisterUseEffect("heal", func() (UseEffect, error) {
		return &healEffect{}, nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateEffectKind))
}

func TestRegistry_KindListings(t *testing.T) {
	reg := NewRegistry()
	assert.Empty(t, reg.UseEffectKinds())
	assert.Empty(t, reg.HoldEffectKinds())

	require.NoError(t, reg.RegisterUseEffect("heal", func() (UseEffect, error) {
		return &healEffect{}, nil
	}))
	require.NoError(t, reg.RegisterHoldEffect("leftovers", func() (HoldEffect, error) {
		return &leftoversEffect{}, nil
	}))

	assert.ElementsMatch(t, []EffectKind{"heal"}, reg.UseEffectKinds())
	assert.ElementsMatch(t, []EffectKind{"leftovers"}, reg.HoldEffectKinds())
}

func TestRegistry_UseAndHoldNamespacesAreSeparate(t *testing.T) {
	reg := NewRegistry()

	// The same kind string can name a use effect and a hold effect.
	require.NoError(t, reg.RegisterUseEffect("boost", func() (UseEffect, error) {
		return &healEffect{}, nil
	}))
	require.NoError(t, reg.RegisterHoldEffect("boost", func() (HoldEffect, error) {
		return &leftoversEffect{}, nil
	}))

	item := NewEffectiveItemWithRegistry("booster", reg)
	use, err := item.GetOrCreateUseEffect("boost")
	require.NoError(t, err)
	hold, err := item.GetOrCreateHoldEffect("boost")
	require.NoError(t, err)
	assert.NotNil(t, use)
	assert.NotNil(t, hold)
}
