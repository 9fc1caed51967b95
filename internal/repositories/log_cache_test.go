package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

func TestUserLogCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewUserLogCacheRepository(rdb, 2*time.Second)

	user := &models.UserDB{
		UserID:   uuid.New(),
		Username: "fcc_test",
		Log: models.ExerciseLog{
			{Description: "run", Duration: 30, Date: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		},
	}

	t.Run("Set and Get document", func(t *testing.T) {
		err := repo.Set(ctx, user)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, user.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, user.Username, got.Username)
		assert.Len(t, got.Log, 1)
		assert.Equal(t, "run", got.Log[0].Description)
	})

	t.Run("Get miss returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete invalidates the document", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, user))
		assert.NoError(t, repo.Delete(ctx, user.UserID))

		got, err := repo.Get(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("entry expires after TTL", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, user))
		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
