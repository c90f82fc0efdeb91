package episode

import (
	"time"

	"github.com/navix-rl/navix/internal/core/env"
	repo "github.com/navix-rl/navix/internal/repositories/episode"
)

// StartEpisodeInput contains parameters for opening a new session
type StartEpisodeInput struct {
	// Registry name of the environment, e.g. "Navix-Empty-5x5-v0"
	EnvName string
	// Seed for the first reset; subsequent auto-resets derive from it
	Seed uint64
	// Optional configuration overrides, zero means preset default
	Overrides repo.Overrides
	// Optional session TTL
	TTL time.Duration
}

// StartEpisodeOutput contains the opened session and its first timestep
type StartEpisodeOutput struct {
	EpisodeID string
	Timestep  env.Timestep
}

// StepInput contains parameters for advancing a session by one action
type StepInput struct {
	EpisodeID string
	Action    int32
}

// StepOutput contains the resulting timestep
type StepOutput struct {
	EpisodeID string
	Timestep  env.Timestep
	// Steps is the total step calls served for this session
	Steps int64
	// EpisodesDone counts episode boundaries seen so far
	EpisodesDone int64
}

// GetEpisodeInput contains parameters for inspecting a session
type GetEpisodeInput struct {
	EpisodeID string
}

// GetEpisodeOutput contains the stored session record
type GetEpisodeOutput struct {
	Episode *repo.Episode
}

// EndEpisodeInput contains parameters for closing a session
type EndEpisodeInput struct {
	EpisodeID string
}

// EndEpisodeOutput contains the result of closing a session
type EndEpisodeOutput struct{}
