// Package envs registers the named environment presets. Callers invoke
// RegisterAll once at startup (or in TestMain) before using the registry.
package envs

import (
	"fmt"
	"sync"

	"github.com/navix-rl/navix/internal/core/env"
	"github.com/navix-rl/navix/internal/core/observations"
	"github.com/navix-rl/navix/internal/core/registry"
	"github.com/navix-rl/navix/internal/core/rewards"
	"github.com/navix-rl/navix/internal/core/terminations"
)

// DefaultMaxSteps is the truncation limit used by every preset unless
// overridden through registry options.
const DefaultMaxSteps = 100

var registerOnce sync.Once

// RegisterAll registers every named preset. Safe to call more than once.
func RegisterAll() {
	registerOnce.Do(func() {
		for _, size := range []int{5, 6, 8, 16} {
			registerRoom(fmt.Sprintf("Navix-Empty-%dx%d-v0", size, size), size, false)
		}
		for _, size := range []int{5, 6, 8} {
			registerRoom(fmt.Sprintf("Navix-Empty-Random-%dx%d-v0", size, size), size, true)
		}
	})
}

func registerRoom(name string, size int, randomStart bool) {
	registry.Register(name, func(opts ...registry.Option) (env.Environment, error) {
		cfg := env.Config{
			Height:      size,
			Width:       size,
			MaxSteps:    DefaultMaxSteps,
			Gamma:       1.0,
			RandomStart: randomStart,
			Observation: observations.Symbolic,
			Reward:      rewards.OnGoalReached,
			Termination: terminations.OnGoalReached,
		}
		for _, opt := range opts {
			opt(&cfg)
		}
		return env.NewRoom(&cfg)
	})
}
