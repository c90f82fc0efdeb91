// Package registry maps environment names to factories. It is plain
// process-wide configuration: variants register their presets explicitly
// at program initialization (no import side effects) and the table is
// read-only afterwards.
package registry

import (
	"sort"
	"sync"

	"github.com/navix-rl/navix/internal/core/env"
	"github.com/navix-rl/navix/internal/errors"
)

// Option overrides one field of a registered preset's configuration.
type Option func(*env.Config)

// WithHeight overrides the room height.
func WithHeight(h int) Option {
	return func(c *env.Config) { c.Height = h }
}

// WithWidth overrides the room width.
func WithWidth(w int) Option {
	return func(c *env.Config) { c.Width = w }
}

// WithMaxSteps overrides the truncation step limit.
func WithMaxSteps(n int) Option {
	return func(c *env.Config) { c.MaxSteps = n }
}

// WithObservation overrides the observation function.
func WithObservation(fn env.ObservationFn) Option {
	return func(c *env.Config) { c.Observation = fn }
}

// WithReward overrides the reward function.
func WithReward(fn env.RewardFn) Option {
	return func(c *env.Config) { c.Reward = fn }
}

// WithTermination overrides the termination function.
func WithTermination(fn env.TerminationFn) Option {
	return func(c *env.Config) { c.Termination = fn }
}

// Factory builds a configured environment, applying any overrides.
type Factory func(opts ...Option) (env.Environment, error)

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a named factory. Registering the same name twice is a
// wiring bug and panics.
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[name]; exists {
		panic("registry: duplicate environment name " + name)
	}
	factories[name] = factory
}

// Make builds the environment registered under name.
func Make(name string, opts ...Option) (env.Environment, error) {
	mu.RLock()
	factory, ok := factories[name]
	mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("environment %q is not registered", name)
	}
	return factory(opts...)
}

// Names returns all registered environment names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
