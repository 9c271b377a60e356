package games

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
	"github.com/KirkDiggler/rpg-scoundrel/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-scoundrel/internal/redis"
)

const (
	// Key pattern: game:{id}
	gameKeyPrefix = "game:"

	// DefaultTTL is used when a game carries no expiry
	DefaultTTL = 2 * time.Hour

	// Error messages
	errGameNil     = "game cannot be nil"
	errGameIDEmpty = "game ID cannot be empty"
	errGameExpired = "game has already expired"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis backed game repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
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

// Create stores a new game with a TTL derived from its ExpiresAt
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateGame(input.Game); err != nil {
		return nil, err
	}

	ttl, err := r.ttl(input.Game)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Game)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game")
	}

	created, err := r.client.SetNX(ctx, buildKey(input.Game.ID), data, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store game in Redis")
	}
	if !created {
		return nil, errors.AlreadyExists(fmt.Sprintf("game %s already exists", input.Game.ID))
	}

	return &CreateOutput{Game: input.Game.Clone()}, nil
}

// Get retrieves a game by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("game %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get game from Redis")
	}

	game, err := decodeGame(data)
	if err != nil {
		return nil, err
	}

	if r.expired(game) {
		_ = r.client.Del(ctx, buildKey(input.ID))
		return nil, errors.NotFoundf("game %s has expired", input.ID)
	}

	return &GetOutput{Game: game}, nil
}

// Update writes the game inside a WATCH transaction so a concurrent writer
// aborts this one instead of being overwritten.
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateGame(input.Game); err != nil {
		return nil, err
	}

	ttl, err := r.ttl(input.Game)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Game)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game")
	}

	key := buildKey(input.Game.ID)
	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("game %s not found", input.Game.ID)
			}
			return errors.Wrapf(err, "failed to read game from Redis")
		}

		stored, err := decodeGame(current)
		if err != nil {
			return err
		}
		if stored.Version != input.ExpectedVersion {
			return errVersionConflict(input.Game.ID, input.ExpectedVersion, stored.Version)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, ttl)
			return nil
		})
		return err
	}

	if err := r.client.Watch(ctx, txf, key); err != nil {
		if err == redis.TxFailedErr {
			return nil, errors.Aborted(fmt.Sprintf("game %s was modified concurrently", input.Game.ID))
		}
		var appErr *errors.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errors.Wrapf(err, "failed to update game in Redis")
	}

	return &UpdateOutput{Game: input.Game.Clone()}, nil
}

// Delete removes a game
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	deleted, err := r.client.Del(ctx, buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete game from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("game %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ttl(game *entities.Game) (time.Duration, error) {
	if game.ExpiresAt.IsZero() {
		return DefaultTTL, nil
	}
	remaining := game.ExpiresAt.Sub(r.clock.Now())
	if remaining <= 0 {
		return 0, errors.InvalidArgument(errGameExpired)
	}
	return remaining, nil
}

func (r *redisRepository) expired(game *entities.Game) bool {
	return !game.ExpiresAt.IsZero() && r.clock.Now().After(game.ExpiresAt)
}

func decodeGame(data []byte) (*entities.Game, error) {
	var game entities.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal game")
	}
	return &game, nil
}

func validateGame(game *entities.Game) error {
	if game == nil {
		return errors.InvalidArgument(errGameNil)
	}
	if game.ID == "" {
		return errors.InvalidArgument(errGameIDEmpty)
	}
	return nil
}

func errVersionConflict(id string, expected, actual int64) error {
	return errors.Aborted(fmt.Sprintf("game %s is at version %d, expected %d", id, actual, expected)).
		WithMeta("game_id", id)
}

// buildKey creates the Redis key for a game
func buildKey(id string) string {
	return gameKeyPrefix + id
}
