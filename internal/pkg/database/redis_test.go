package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/veritasbank/veritas/internal/pkg/models"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "invalid-host",
		Port:     9999,
		PoolSize: 10,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}
	ctx := context.Background()

	mock.ExpectSet("accounts:user-1", "[]", time.Minute).SetVal("OK")
	assert.NoError(t, client.Set(ctx, "accounts:user-1", "[]", time.Minute))

	mock.ExpectGet("accounts:user-1").SetVal("[]")
	val, err := client.Get(ctx, "accounts:user-1")
	assert.NoError(t, err)
	assert.Equal(t, "[]", val)

	mock.ExpectDel("accounts:user-1").SetVal(1)
	assert.NoError(t, client.Delete(ctx, "accounts:user-1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
