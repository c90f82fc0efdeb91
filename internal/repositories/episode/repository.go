// Package episode provides the repository interface and types for
// persisted episode sessions.
package episode

import (
	"context"
	"time"

	"github.com/navix-rl/navix/internal/core/env"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=episodemock github.com/navix-rl/navix/internal/repositories/episode Repository

// Episode is one persisted simulation stream. The engine itself is
// stateless; everything needed to continue stepping lives here.
type Episode struct {
	// Unique session identifier
	ID string `json:"id"`

	// Registry name of the environment (e.g. "Navix-Empty-5x5-v0")
	EnvName string `json:"env_name"`

	// Seed the first episode was reset from
	Seed uint64 `json:"seed"`

	// Configuration overrides applied at Make time, zero means preset default
	Overrides Overrides `json:"overrides"`

	// The latest timestep; stepping resumes from it
	Current env.Timestep `json:"current"`

	// Total step calls served for this session
	Steps int64 `json:"steps"`

	// Completed episodes (terminations and truncations seen)
	EpisodesDone int64 `json:"episodes_done"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Overrides captures per-session environment configuration overrides.
type Overrides struct {
	Height   int `json:"height,omitempty"`
	Width    int `json:"width,omitempty"`
	MaxSteps int `json:"max_steps,omitempty"`
}

// CreateInput contains parameters for storing a new episode session
type CreateInput struct {
	Episode *Episode
	TTL     time.Duration // how long the session should live
}

// CreateOutput contains the result of creating an episode session
type CreateOutput struct {
	Episode *Episode
}

// GetInput contains parameters for retrieving an episode session
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving an episode session
type GetOutput struct {
	Episode *Episode
}

// UpdateInput contains parameters for replacing a stored session
type UpdateInput struct {
	Episode *Episode
	TTL     time.Duration
}

// UpdateOutput contains the result of updating an episode session
type UpdateOutput struct {
	Episode *Episode
}

// DeleteInput contains parameters for deleting an episode session
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting an episode session
type DeleteOutput struct{}

// Repository defines the storage interface for episode sessions
type Repository interface {
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
