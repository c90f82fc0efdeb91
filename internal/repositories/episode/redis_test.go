package episode_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/navix-rl/navix/internal/core/env"
	"github.com/navix-rl/navix/internal/core/envs"
	"github.com/navix-rl/navix/internal/core/registry"
	"github.com/navix-rl/navix/internal/errors"
	"github.com/navix-rl/navix/internal/pkg/clock"
	"github.com/navix-rl/navix/internal/pkg/prng"
	redisclient "github.com/navix-rl/navix/internal/redis"
	"github.com/navix-rl/navix/internal/repositories/episode"
	"github.com/navix-rl/navix/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	clock     *clock.Fixed
	repo      episode.Repository
	ctx       context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	envs.RegisterAll()
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.miniRedis = testutils.CreateTestRedisClient(s.T())
	s.clock = &clock.Fixed{T: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	repo, err := episode.NewRedisRepository(&episode.Config{
		Client: s.client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) newEpisode(id string) *episode.Episode {
	e, err := registry.Make("Navix-Empty-5x5-v0")
	s.Require().NoError(err)

	ts, err := e.Reset(prng.New(42))
	s.Require().NoError(err)

	return &episode.Episode{
		ID:      id,
		EnvName: "Navix-Empty-5x5-v0",
		Seed:    42,
		Current: ts,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	ep := s.newEpisode("ep_1")

	created, err := s.repo.Create(s.ctx, episode.CreateInput{Episode: ep})
	s.Require().NoError(err)
	s.Equal(s.clock.Now(), created.Episode.CreatedAt)
	s.Equal(s.clock.Now().Add(30*time.Minute), created.Episode.ExpiresAt)

	got, err := s.repo.Get(s.ctx, episode.GetInput{ID: "ep_1"})
	s.Require().NoError(err)
	s.Equal("Navix-Empty-5x5-v0", got.Episode.EnvName)
	s.Equal(uint64(42), got.Episode.Seed)

	// the timestep survives the JSON round trip bit-for-bit
	s.Equal(created.Episode.Current, got.Episode.Current)
	s.Require().NoError(got.Episode.Current.State.Validate())
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicateFails() {
	ep := s.newEpisode("ep_dup")

	_, err := s.repo.Create(s.ctx, episode.CreateInput{Episode: ep})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, episode.CreateInput{Episode: ep})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidatesInput() {
	_, err := s.repo.Create(s.ctx, episode.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, episode.CreateInput{Episode: &episode.Episode{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, episode.GetInput{ID: "nope"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetExpired() {
	ep := s.newEpisode("ep_exp")
	_, err := s.repo.Create(s.ctx, episode.CreateInput{Episode: ep, TTL: time.Minute})
	s.Require().NoError(err)

	s.miniRedis.FastForward(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, episode.GetInput{ID: "ep_exp"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	ep := s.newEpisode("ep_upd")
	_, err := s.repo.Create(s.ctx, episode.CreateInput{Episode: ep})
	s.Require().NoError(err)

	e, err := registry.Make(ep.EnvName)
	s.Require().NoError(err)
	stepped, err := e.Step(ep.Current, env.ActionForward)
	s.Require().NoError(err)

	ep.Current = stepped
	ep.Steps = 1

	updated, err := s.repo.Update(s.ctx, episode.UpdateInput{Episode: ep})
	s.Require().NoError(err)
	s.Equal(int64(1), updated.Episode.Steps)

	got, err := s.repo.Get(s.ctx, episode.GetInput{ID: "ep_upd"})
	s.Require().NoError(err)
	s.Equal(int32(1), got.Episode.Current.T)
	s.Equal(stepped.State.PlayerPosition(), got.Episode.Current.State.PlayerPosition())
}

func (s *RedisRepositoryTestSuite) TestUpdateMissing() {
	ep := s.newEpisode("ep_ghost")
	_, err := s.repo.Update(s.ctx, episode.UpdateInput{Episode: ep})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	ep := s.newEpisode("ep_del")
	_, err := s.repo.Create(s.ctx, episode.CreateInput{Episode: ep})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, episode.DeleteInput{ID: "ep_del"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, episode.GetInput{ID: "ep_del"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, episode.DeleteInput{ID: "ep_del"})
	s.True(errors.IsNotFound(err))
}
