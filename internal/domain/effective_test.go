package domain

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKindHeal      EffectKind = "heal"
	testKindLeftovers EffectKind = "leftovers"
)

type healEffect struct {
	host        *EffectiveItem
	attachCalls int
}

func (e *healEffect) Kind() EffectKind { return testKindHeal }

func (e *healEffect) Attach(item *EffectiveItem) {
	e.host = item
	e.attachCalls++
}

type leftoversEffect struct {
	host *EffectiveItem
}

func (e *leftoversEffect) Kind() EffectKind { return testKindLeftovers }

func (e *leftoversEffect) Attach(item *EffectiveItem) { e.host = item }

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	require.NoError(t, reg.RegisterUseEffect(testKindHeal, func() (UseEffect, error) {
		return &healEffect{}, nil
	}))
	require.NoError(t, reg.RegisterHoldEffect(testKindLeftovers, func() (HoldEffect, error) {
		return &leftoversEffect{}, nil
	}))
	return reg
}

func TestEffectiveItem_GetOrCreateUseEffect(t *testing.T) {
	reg := newTestRegistry(t)
	item := NewEffectiveItemWithRegistry("potion", reg)
	require.False(t, item.Usable)

	first, err := item.GetOrCreateUseEffect(testKindHeal)
	require.NoError(t, err)
	require.NotNil(t, first)

	heal := first.(*healEffect)
	assert.Same(t, item, heal.host, "attach must receive the owning item")
	assert.Equal(t, 1, heal.attachCalls)
	assert.True(t, item.Usable)

	// Use effects never touch the hold flags.
	assert.False(t, item.Holdable)
	assert.False(t, item.HasHoldEffect)

	second, err := item.GetOrCreateUseEffect(testKindHeal)
	require.NoError(t, err)
	assert.Same(t, first, second, "same instance on every call")
	assert.Equal(t, 1, heal.attachCalls, "attach runs exactly once per kind")
	assert.True(t, item.Usable)
}

func TestEffectiveItem_GetOrCreateHoldEffect(t *testing.T) {
	reg := newTestRegistry(t)
	item := NewEffectiveItemWithRegistry("leftovers", reg)

	first, err := item.GetOrCreateHoldEffect(testKindLeftovers)
	require.NoError(t, err)
	assert.Same(t, item, first.(*leftoversEffect).host)
	assert.True(t, item.Holdable)
	assert.True(t, item.HasHoldEffect)
	assert.False(t, item.Usable, "hold effects never touch usable")

	second, err := item.GetOrCreateHoldEffect(testKindLeftovers)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestEffectiveItem_UnregisteredKind(t *testing.T) {
	reg := newTestRegistry(t)
	item := NewEffectiveItemWithRegistry("potion", reg)

	effect, err := item.GetOrCreateUseEffect("unknown")
	assert.Nil(t, effect)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEffectNotRegistered))

	// Failure attaches nothing and mutates no flags.
	assert.False(t, item.Usable)
	assert.Empty(t, item.UseEffectKinds())
}

func TestEffectiveItem_ConstructionFailureIsRetryable(t *testing.T) {
	reg := NewRegistry()
	boom := errors.New("boom")
	var fail atomic.Bool
	fail.Store(true)

	require.NoError(t, reg.RegisterUseEffect(testKindHeal, func() (UseEffect, error) {
		if fail.Load() {
			return nil, boom
		}
		return &healEffect{}, nil
	}))

	item := NewEffectiveItemWithRegistry("potion", reg)

	effect, err := item.GetOrCreateUseEffect(testKindHeal)
	assert.Nil(t, effect)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEffectConstruction))
	assert.True(t, errors.Is(err, boom), "factory failure must stay observable")
	assert.False(t, item.Usable)

	// The mapping is uncorrupted; the same kind succeeds on retry.
	fail.Store(false)
	effect, err = item.GetOrCreateUseEffect(testKindHeal)
	require.NoError(t, err)
	require.NotNil(t, effect)
	assert.True(t, item.Usable)
}

func TestEffectiveItem_NilFactoryResult(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterHoldEffect(testKindLeftovers, func() (HoldEffect, error) {
		return nil, nil
	}))

	item := NewEffectiveItemWithRegistry("leftovers", reg)

	effect, err := item.GetOrCreateHoldEffect(testKindLeftovers)
	assert.Nil(t, effect)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEffectConstruction))
	assert.False(t, item.Holdable)
	assert.False(t, item.HasHoldEffect)
}

func TestEffectiveItem_EffectLookupNeverConstructs(t *testing.T) {
	reg := newTestRegistry(t)
	item := NewEffectiveItemWithRegistry("potion", reg)

	_, ok := item.UseEffect(testKindHeal)
	assert.False(t, ok)
	assert.False(t, item.Usable)

	created, err := item.GetOrCreateUseEffect(testKindHeal)
	require.NoError(t, err)

	got, ok := item.UseEffect(testKindHeal)
	require.True(t, ok)
	assert.Same(t, created, got)
}

func TestEffectiveItem_ConcurrentGetOrCreate(t *testing.T) {
	const goroutines = 64

	var constructions atomic.Int64
	var attaches atomic.Int64

	reg := NewRegistry()
	require.NoError(t, reg.RegisterUseEffect(testKindHeal, func() (UseEffect, error) {
		constructions.Add(1)
		return &countingEffect{attaches: &attaches}, nil
	}))

	item := NewEffectiveItemWithRegistry("potion", reg)

	results := make([]UseEffect, goroutines)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			<-start
			effect, err := item.GetOrCreateUseEffect(testKindHeal)
			assert.NoError(t, err)
			results[idx] = effect
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), constructions.Load(), "exactly one construction")
	assert.Equal(t, int64(1), attaches.Load(), "exactly one attach")
	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i], "all callers observe the same instance")
	}
	assert.True(t, item.Usable)
}

type countingEffect struct {
	attaches *atomic.Int64
	host     *EffectiveItem
}

func (e *countingEffect) Kind() EffectKind { return testKindHeal }

func (e *countingEffect) Attach(item *EffectiveItem) {
	e.host = item
	e.attaches.Add(1)
}

func TestEffectiveItem_UseAndHoldMapsAreIndependent(t *testing.T) {
	reg := newTestRegistry(t)
	item := NewEffectiveItemWithRegistry("berry", reg)

	_, err := item.GetOrCreateUseEffect(testKindHeal)
	require.NoError(t, err)
	_, err = item.GetOrCreateHoldEffect(testKindLeftovers)
	require.NoError(t, err)

	assert.ElementsMatch(t, []EffectKind{testKindHeal}, item.UseEffectKinds())
	assert.ElementsMatch(t, []EffectKind{testKindLeftovers}, item.HoldEffectKinds())
	assert.True(t, item.Usable)
	assert.True(t, item.Holdable)
	assert.True(t, item.HasHoldEffect)
}

func TestEffectiveItem_InheritsItemFields(t *testing.T) {
	reg := newTestRegistry(t)
	item := NewEffectiveItemWithRegistry("oran berry", reg)
	item.Description = "Restores a little HP"
	item.Sellable = true
	item.SalePrice = 50

	item.AddAttribute(AttributeKindPocket, &pocketAttribute{Pocket: "Berries"})
	got, ok := item.GetAttribute(AttributeKindPocket)
	require.True(t, ok)
	assert.Equal(t, "Berries", got.(*pocketAttribute).Pocket)
	assert.Equal(t, 50, item.SalePrice)
}
