package episode_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/navix-rl/navix/internal/core/env"
	"github.com/navix-rl/navix/internal/core/envs"
	"github.com/navix-rl/navix/internal/errors"
	episodesvc "github.com/navix-rl/navix/internal/orchestrators/episode"
	"github.com/navix-rl/navix/internal/pkg/idgen"
	repo "github.com/navix-rl/navix/internal/repositories/episode"
	episodemock "github.com/navix-rl/navix/internal/repositories/episode/mock"
)

func TestMain(m *testing.M) {
	envs.RegisterAll()
	m.Run()
}

func newService(t *testing.T) (episodesvc.Service, *episodemock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockRepo := episodemock.NewMockRepository(ctrl)

	svc, err := episodesvc.NewOrchestrator(&episodesvc.Config{
		EpisodeRepo: mockRepo,
		IDGenerator: idgen.NewSequential("ep"),
	})
	require.NoError(t, err)
	return svc, mockRepo
}

func TestNewOrchestratorValidatesConfig(t *testing.T) {
	_, err := episodesvc.NewOrchestrator(&episodesvc.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestStartEpisode(t *testing.T) {
	svc, mockRepo := newService(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input repo.CreateInput) (*repo.CreateOutput, error) {
			require.NotNil(t, input.Episode)
			assert.Equal(t, "ep_1", input.Episode.ID)
			assert.Equal(t, "Navix-Empty-5x5-v0", input.Episode.EnvName)
			assert.Equal(t, uint64(7), input.Episode.Seed)
			assert.Equal(t, int32(0), input.Episode.Current.T)
			return &repo.CreateOutput{Episode: input.Episode}, nil
		})

	out, err := svc.StartEpisode(ctx, &episodesvc.StartEpisodeInput{
		EnvName: "Navix-Empty-5x5-v0",
		Seed:    7,
	})
	require.NoError(t, err)
	assert.Equal(t, "ep_1", out.EpisodeID)
	assert.Equal(t, env.Transition, out.Timestep.StepType)
	assert.Equal(t, int32(0), out.Timestep.T)
}

func TestStartEpisodeUnknownEnv(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.StartEpisode(context.Background(), &episodesvc.StartEpisodeInput{
		EnvName: "Navix-Nope-v0",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestStartEpisodeEmptyName(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.StartEpisode(context.Background(), &episodesvc.StartEpisodeInput{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestStep(t *testing.T) {
	svc, mockRepo := newService(t)
	ctx := context.Background()

	// seed the mock with a freshly started episode
	var stored *repo.Episode
	mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input repo.CreateInput) (*repo.CreateOutput, error) {
			stored = input.Episode
			return &repo.CreateOutput{Episode: stored}, nil
		})

	start, err := svc.StartEpisode(ctx, &episodesvc.StartEpisodeInput{
		EnvName: "Navix-Empty-5x5-v0",
		Seed:    11,
	})
	require.NoError(t, err)

	mockRepo.EXPECT().
		Get(ctx, repo.GetInput{ID: start.EpisodeID}).
		DoAndReturn(func(context.Context, repo.GetInput) (*repo.GetOutput, error) {
			return &repo.GetOutput{Episode: stored}, nil
		})
	mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input repo.UpdateInput) (*repo.UpdateOutput, error) {
			assert.Equal(t, int64(1), input.Episode.Steps)
			assert.Equal(t, int32(1), input.Episode.Current.T)
			return &repo.UpdateOutput{Episode: input.Episode}, nil
		})

	out, err := svc.Step(ctx, &episodesvc.StepInput{
		EpisodeID: start.EpisodeID,
		Action:    env.ActionForward,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), out.Timestep.T)
	assert.Equal(t, int64(1), out.Steps)
	assert.Equal(t, int64(0), out.EpisodesDone)
}

func TestStepMissingEpisode(t *testing.T) {
	svc, mockRepo := newService(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		Get(ctx, repo.GetInput{ID: "ghost"}).
		Return(nil, errors.NotFound("episode not found"))

	_, err := svc.Step(ctx, &episodesvc.StepInput{EpisodeID: "ghost", Action: 0})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestStepCountsEpisodeBoundaries(t *testing.T) {
	svc, mockRepo := newService(t)
	ctx := context.Background()

	var stored *repo.Episode
	mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input repo.CreateInput) (*repo.CreateOutput, error) {
			stored = input.Episode
			return &repo.CreateOutput{Episode: stored}, nil
		})

	// MaxSteps 1 forces a truncation on the first step
	start, err := svc.StartEpisode(ctx, &episodesvc.StartEpisodeInput{
		EnvName:   "Navix-Empty-5x5-v0",
		Seed:      3,
		Overrides: repo.Overrides{MaxSteps: 1},
	})
	require.NoError(t, err)

	mockRepo.EXPECT().
		Get(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, repo.GetInput) (*repo.GetOutput, error) {
			return &repo.GetOutput{Episode: stored}, nil
		}).
		Times(2)
	mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input repo.UpdateInput) (*repo.UpdateOutput, error) {
			stored = input.Episode
			return &repo.UpdateOutput{Episode: stored}, nil
		}).
		Times(2)

	out, err := svc.Step(ctx, &episodesvc.StepInput{EpisodeID: start.EpisodeID, Action: env.ActionNoop})
	require.NoError(t, err)
	assert.Equal(t, env.Truncation, out.Timestep.StepType)
	assert.Equal(t, int64(1), out.EpisodesDone)

	// the next step transparently starts a new episode
	out, err = svc.Step(ctx, &episodesvc.StepInput{EpisodeID: start.EpisodeID, Action: env.ActionNoop})
	require.NoError(t, err)
	assert.Equal(t, int32(0), out.Timestep.T)
	assert.Equal(t, env.Transition, out.Timestep.StepType)
	assert.Equal(t, int64(1), out.EpisodesDone)
}

func TestGetEpisode(t *testing.T) {
	svc, mockRepo := newService(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		Get(ctx, repo.GetInput{ID: "ep_9"}).
		Return(&repo.GetOutput{Episode: &repo.Episode{ID: "ep_9", EnvName: "Navix-Empty-5x5-v0"}}, nil)

	out, err := svc.GetEpisode(ctx, &episodesvc.GetEpisodeInput{EpisodeID: "ep_9"})
	require.NoError(t, err)
	assert.Equal(t, "ep_9", out.Episode.ID)
}

func TestEndEpisode(t *testing.T) {
	svc, mockRepo := newService(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		Delete(ctx, repo.DeleteInput{ID: "ep_9"}).
		Return(&repo.DeleteOutput{}, nil)

	_, err := svc.EndEpisode(ctx, &episodesvc.EndEpisodeInput{EpisodeID: "ep_9"})
	require.NoError(t, err)
}
