package episode

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/navix-rl/navix/internal/errors"
	"github.com/navix-rl/navix/internal/pkg/clock"
	redisclient "github.com/navix-rl/navix/internal/redis"
)

const (
	// Key pattern: episode:{id}
	episodeKeyPrefix = "episode:"
	defaultTTL       = 30 * time.Minute

	errEpisodeNil = "episode cannot be nil"
	errIDEmpty    = "episode ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for episode sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new episode session with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Episode == nil {
		return nil, errors.InvalidArgument(errEpisodeNil)
	}
	if input.Episode.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	ep := *input.Episode
	ep.CreatedAt = now
	ep.UpdatedAt = now
	ep.ExpiresAt = now.Add(ttl)

	payload, err := json.Marshal(&ep)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal episode")
	}

	key := r.buildKey(ep.ID)
	// NX so a colliding id cannot silently overwrite a live session
	ok, err := r.client.SetNX(ctx, key, payload, ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store episode in Redis")
	}
	if !ok {
		return nil, errors.AlreadyExists("episode already exists").WithMeta("episode_id", ep.ID)
	}

	return &CreateOutput{Episode: &ep}, nil
}

// Get retrieves an episode session by id
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	payload, err := r.client.Get(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("episode not found").WithMeta("episode_id", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get episode from Redis")
	}

	var ep Episode
	if err := json.Unmarshal([]byte(payload), &ep); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal episode")
	}

	return &GetOutput{Episode: &ep}, nil
}

// Update replaces a stored session, refreshing its TTL
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Episode == nil {
		return nil, errors.InvalidArgument(errEpisodeNil)
	}
	if input.Episode.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	ep := *input.Episode
	ep.UpdatedAt = now
	ep.ExpiresAt = now.Add(ttl)

	payload, err := json.Marshal(&ep)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal episode")
	}

	// XX so updating a vanished (expired) session surfaces as not found
	ok, err := r.client.SetXX(ctx, r.buildKey(ep.ID), payload, ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to update episode in Redis")
	}
	if !ok {
		return nil, errors.NotFound("episode not found").WithMeta("episode_id", ep.ID)
	}

	return &UpdateOutput{Episode: &ep}, nil
}

// Delete removes a stored session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	deleted, err := r.client.Del(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete episode from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFound("episode not found").WithMeta("episode_id", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) buildKey(id string) string {
	return episodeKeyPrefix + id
}
