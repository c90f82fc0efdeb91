// Package episode implements the episode orchestrator: it drives the pure
// environment engine for remote callers, persisting each session's latest
// timestep between calls.
package episode

//go:generate mockgen -destination=mock/mock_service.go -package=episodesvcmock github.com/navix-rl/navix/internal/orchestrators/episode Service

import (
	"context"
	"log/slog"

	"github.com/navix-rl/navix/internal/core/env"
	"github.com/navix-rl/navix/internal/core/registry"
	"github.com/navix-rl/navix/internal/errors"
	"github.com/navix-rl/navix/internal/pkg/idgen"
	"github.com/navix-rl/navix/internal/pkg/prng"
	repo "github.com/navix-rl/navix/internal/repositories/episode"
)

// Service defines the interface for episode session operations
type Service interface {
	StartEpisode(ctx context.Context, input *StartEpisodeInput) (*StartEpisodeOutput, error)
	Step(ctx context.Context, input *StepInput) (*StepOutput, error)
	GetEpisode(ctx context.Context, input *GetEpisodeInput) (*GetEpisodeOutput, error)
	EndEpisode(ctx context.Context, input *EndEpisodeInput) (*EndEpisodeOutput, error)
}

// Config holds the dependencies for the episode orchestrator
type Config struct {
	EpisodeRepo repo.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EpisodeRepo == nil {
		vb.RequiredField("EpisodeRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	episodeRepo repo.Repository
	idGen       idgen.Generator
}

// NewOrchestrator creates a new episode orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		episodeRepo: cfg.EpisodeRepo,
		idGen:       cfg.IDGenerator,
	}, nil
}

// StartEpisode builds the named environment, resets it from the seed, and
// persists the session.
func (o *orchestrator) StartEpisode(ctx context.Context, input *StartEpisodeInput) (*StartEpisodeOutput, error) {
	if input.EnvName == "" {
		return nil, errors.InvalidArgument("env name cannot be empty")
	}

	e, err := makeEnv(input.EnvName, input.Overrides)
	if err != nil {
		return nil, err
	}

	ts, err := e.Reset(prng.New(input.Seed))
	if err != nil {
		return nil, errors.Wrap(err, "failed to reset environment")
	}

	ep := &repo.Episode{
		ID:        o.idGen.Generate(),
		EnvName:   input.EnvName,
		Seed:      input.Seed,
		Overrides: input.Overrides,
		Current:   ts,
	}
	if _, err := o.episodeRepo.Create(ctx, repo.CreateInput{Episode: ep, TTL: input.TTL}); err != nil {
		return nil, errors.Wrap(err, "failed to persist episode")
	}

	slog.Info("episode started",
		"episode_id", ep.ID,
		"env", input.EnvName,
		"seed", input.Seed,
	)

	return &StartEpisodeOutput{EpisodeID: ep.ID, Timestep: ts}, nil
}

// Step loads the session, advances the engine by one call, and persists
// the result. Episode boundaries are transparent: stepping a finished
// timestep auto-resets.
func (o *orchestrator) Step(ctx context.Context, input *StepInput) (*StepOutput, error) {
	if input.EpisodeID == "" {
		return nil, errors.InvalidArgument("episode ID cannot be empty")
	}
	// the core treats an out-of-range id as a programming defect, so
	// screen remote input here
	if input.Action < 0 || int(input.Action) >= len(env.DefaultActions) {
		return nil, errors.InvalidArgumentf("action id %d out of range [0,%d)",
			input.Action, len(env.DefaultActions))
	}

	got, err := o.episodeRepo.Get(ctx, repo.GetInput{ID: input.EpisodeID})
	if err != nil {
		return nil, err
	}
	ep := got.Episode

	e, err := makeEnv(ep.EnvName, ep.Overrides)
	if err != nil {
		return nil, errors.Wrap(err, "stored episode references an unusable environment")
	}

	ts, err := e.Step(ep.Current, input.Action)
	if err != nil {
		return nil, errors.Wrap(err, "step failed")
	}

	ep.Current = ts
	ep.Steps++
	if ts.StepType.Last() {
		ep.EpisodesDone++
	}

	if _, err := o.episodeRepo.Update(ctx, repo.UpdateInput{Episode: ep}); err != nil {
		return nil, errors.Wrap(err, "failed to persist episode")
	}

	return &StepOutput{
		EpisodeID:    ep.ID,
		Timestep:     ts,
		Steps:        ep.Steps,
		EpisodesDone: ep.EpisodesDone,
	}, nil
}

// GetEpisode returns the stored session record.
func (o *orchestrator) GetEpisode(ctx context.Context, input *GetEpisodeInput) (*GetEpisodeOutput, error) {
	if input.EpisodeID == "" {
		return nil, errors.InvalidArgument("episode ID cannot be empty")
	}

	got, err := o.episodeRepo.Get(ctx, repo.GetInput{ID: input.EpisodeID})
	if err != nil {
		return nil, err
	}
	return &GetEpisodeOutput{Episode: got.Episode}, nil
}

// EndEpisode closes and deletes the session.
func (o *orchestrator) EndEpisode(ctx context.Context, input *EndEpisodeInput) (*EndEpisodeOutput, error) {
	if input.EpisodeID == "" {
		return nil, errors.InvalidArgument("episode ID cannot be empty")
	}

	if _, err := o.episodeRepo.Delete(ctx, repo.DeleteInput{ID: input.EpisodeID}); err != nil {
		return nil, err
	}

	slog.Info("episode ended", "episode_id", input.EpisodeID)
	return &EndEpisodeOutput{}, nil
}

func makeEnv(name string, overrides repo.Overrides) (env.Environment, error) {
	var opts []registry.Option
	if overrides.Height > 0 {
		opts = append(opts, registry.WithHeight(overrides.Height))
	}
	if overrides.Width > 0 {
		opts = append(opts, registry.WithWidth(overrides.Width))
	}
	if overrides.MaxSteps > 0 {
		opts = append(opts, registry.WithMaxSteps(overrides.MaxSteps))
	}
	return registry.Make(name, opts...)
}
