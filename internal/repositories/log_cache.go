package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// UserLogCacheRepository caches whole user documents in Redis for the
// log query path. Entries are deleted on every exercise append.
type UserLogCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached documents
}

// NewUserLogCacheRepository creates a new cache repository with the given TTL.
func NewUserLogCacheRepository(client *redis.Client, expiration time.Duration) *UserLogCacheRepository {
	return &UserLogCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func logCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("user_log:%s", userID)
}

// Get returns the cached user document, or nil on a cache miss.
func (r *UserLogCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	key := logCacheKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		logger.Log.Errorw("failed to unmarshal cached user", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", user.Username,
		"error", nil,
	)

	return &user, nil
}

// Set caches a user document with the repository's expiration.
func (r *UserLogCacheRepository) Set(ctx context.Context, user *models.UserDB) error {
	key := logCacheKey(user.UserID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete drops the cached document for a user.
func (r *UserLogCacheRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	key := logCacheKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
