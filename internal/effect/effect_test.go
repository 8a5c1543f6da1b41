package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atheriel/itemforge/internal/domain"
)

func TestRegister_ProvidesAllKinds(t *testing.T) {
	reg := domain.NewRegistry()
	require.NoError(t, Register(reg))

	assert.ElementsMatch(t, []domain.EffectKind{KindHeal}, reg.UseEffectKinds())
	assert.ElementsMatch(t, []domain.EffectKind{KindLeftovers, KindFocusBand}, reg.HoldEffectKinds())

	err := Register(reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateEffectKind)
}

func TestHeal_AttachRecordsHost(t *testing.T) {
	reg := domain.NewRegistry()
	require.NoError(t, Register(reg))

	item := domain.NewEffectiveItemWithRegistry("potion", reg)
	require.False(t, item.Usable)

	got, err := item.GetOrCreateUseEffect(KindHeal)
	require.NoError(t, err)

	heal, ok := got.(*Heal)
	require.True(t, ok)
	assert.Same(t, item, heal.Host())
	assert.Equal(t, DefaultHealAmount, heal.Amount)
	assert.True(t, item.Usable)

	again, err := item.GetOrCreateUseEffect(KindHeal)
	require.NoError(t, err)
	assert.Same(t, got, again)
}

func TestHoldEffects_SetHoldFlags(t *testing.T) {
	reg := domain.NewRegistry()
	require.NoError(t, Register(reg))

	item := domain.NewEffectiveItemWithRegistry("leftovers", reg)

	got, err := item.GetOrCreateHoldEffect(KindLeftovers)
	require.NoError(t, err)

	leftovers, ok := got.(*Leftovers)
	require.True(t, ok)
	assert.Same(t, item, leftovers.Host())
	assert.InDelta(t, DefaultLeftoversFraction, leftovers.Fraction, 1e-9)
	assert.True(t, item.Holdable)
	assert.True(t, item.HasHoldEffect)
	assert.False(t, item.Usable)

	band, err := item.GetOrCreateHoldEffect(KindFocusBand)
	require.NoError(t, err)
	assert.NotSame(t, got, band, "distinct kinds get distinct instances")
}

func TestEffectsAreItemScoped(t *testing.T) {
	reg := domain.NewRegistry()
	require.NoError(t, Register(reg))

	a := domain.NewEffectiveItemWithRegistry("potion-a", reg)
	b := domain.NewEffectiveItemWithRegistry("potion-b", reg)

	effectA, err := a.GetOrCreateUseEffect(KindHeal)
	require.NoError(t, err)
	effectB, err := b.GetOrCreateUseEffect(KindHeal)
	require.NoError(t, err)

	assert.NotSame(t, effectA, effectB, "no cross-item sharing")
	assert.Same(t, a, effectA.(*Heal).Host())
	assert.Same(t, b, effectB.(*Heal).Host())
}
