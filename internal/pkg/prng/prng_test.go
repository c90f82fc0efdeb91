package prng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navix-rl/navix/internal/pkg/prng"
)

func TestNewIsDeterministic(t *testing.T) {
	assert.Equal(t, prng.New(42), prng.New(42))
	assert.NotEqual(t, prng.New(42), prng.New(43))
}

func TestSplit(t *testing.T) {
	keys := prng.New(7).Split(3)
	require.Len(t, keys, 3)

	// children are pairwise distinct and differ from the parent
	seen := map[uint64]bool{prng.New(7).State(): true}
	for _, k := range keys {
		assert.False(t, seen[k.State()], "duplicate key in split")
		seen[k.State()] = true
	}

	// fan-out is reproducible
	assert.Equal(t, keys, prng.New(7).Split(3))
}

func TestFold(t *testing.T) {
	k := prng.New(99)
	assert.Equal(t, k.Fold(0), k.Fold(0))
	assert.NotEqual(t, k.Fold(0), k.Fold(1))
	assert.NotEqual(t, k.Fold(0), prng.New(100).Fold(0))
}

func TestDrawsArePure(t *testing.T) {
	k := prng.New(1)
	assert.Equal(t, k.Uint64(), k.Uint64())
	assert.Equal(t, k.Intn(10), k.Intn(10))
	assert.Equal(t, k.Float64(), k.Float64())
}

func TestIntnRange(t *testing.T) {
	k := prng.New(5)
	for i := 0; i < 1000; i++ {
		v := k.Fold(uint64(i)).Intn(4)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 4)
	}
}

func TestFloat64Range(t *testing.T) {
	k := prng.New(11)
	for i := 0; i < 1000; i++ {
		v := k.Fold(uint64(i)).Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestIntnPanicsOnNonPositiveBound(t *testing.T) {
	assert.Panics(t, func() { prng.New(1).Intn(0) })
}

func TestStateRoundTrip(t *testing.T) {
	k := prng.New(123).Split(2)[1]
	assert.Equal(t, k, prng.FromState(k.State()))
}
