// Package prng implements a splittable deterministic pseudo-random source.
//
// Unlike math/rand there is no mutable generator state: a Key is an
// immutable value, and fresh randomness is only obtained by deriving child
// keys with Split or Fold. The same key must never be used for two
// independent draws; callers split first and hand each consumer its own
// child. This keeps every transition that consumes randomness a pure
// function of its inputs, which is what allows episodes to be replayed
// and batched without cross-instance interference.
//
// The construction is SplitMix64: a 64-bit counter sequence passed through
// a finalizing mix. It is not cryptographically secure; it is meant for
// reproducible simulation only.
package prng

// SplitMix64 constants.
const (
	gamma = 0x9e3779b97f4a7c15
	mixA  = 0xbf58476d1ce4e5b9
	mixB  = 0x94d049bb133111eb
)

func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * mixA
	z = (z ^ (z >> 27)) * mixB
	return z ^ (z >> 31)
}

// Key is an immutable random-source token.
type Key struct {
	state uint64
}

// New derives a key from a seed. Equal seeds yield equal keys.
func New(seed uint64) Key {
	return Key{state: mix64(seed + gamma)}
}

// State returns the raw token value, for serialization.
func (k Key) State() uint64 {
	return k.state
}

// FromState rebuilds a key from a serialized token value.
func FromState(state uint64) Key {
	return Key{state: state}
}

// Split deterministically fans the key out into n independent child keys.
// The parent key must not be used for draws afterwards.
func (k Key) Split(n int) []Key {
	keys := make([]Key, n)
	for i := range keys {
		keys[i] = Key{state: mix64(k.state + uint64(i+1)*gamma)}
	}
	return keys
}

// Fold derives a child key bound to the given data, e.g. a loop counter.
// Fold with distinct data values yields independent keys.
func (k Key) Fold(data uint64) Key {
	return Key{state: mix64(k.state ^ mix64(data+gamma))}
}

// Uint64 returns the uniform draw associated with this key. Repeated calls
// return the same value; derive child keys for further draws.
func (k Key) Uint64() uint64 {
	return mix64(k.state + gamma)
}

// Intn returns a uniform draw in [0, n). Panics if n <= 0.
func (k Key) Intn(n int) int {
	if n <= 0 {
		panic("prng: Intn bound must be positive")
	}
	return int(k.Uint64() % uint64(n))
}

// Float64 returns a uniform draw in [0, 1).
func (k Key) Float64() float64 {
	return float64(k.Uint64()>>11) / float64(1<<53)
}
