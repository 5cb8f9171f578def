package config

import (
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestConnectRedis_SkippedInTestEnv(t *testing.T) {
	t.Setenv("APPENV", "test")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	ResetConfigForTest()
	ResetRedisClientForTest()
	t.Cleanup(func() {
		ResetConfigForTest()
		ResetRedisClientForTest()
	})

	rdb, err := ConnectRedis()
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestConnectRedis_NotConfigured(t *testing.T) {
	t.Setenv("APPENV", "development")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("STORE_DRIVER", StoreMemory)
	ResetConfigForTest()
	ResetRedisClientForTest()
	t.Cleanup(func() {
		ResetConfigForTest()
		ResetRedisClientForTest()
	})

	rdb, err := ConnectRedis()
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestSetRedisClientForTest(t *testing.T) {
	db, _ := redismock.NewClientMock()
	defer db.Close()

	SetRedisClientForTest(db)
	t.Cleanup(ResetRedisClientForTest)

	assert.Same(t, db, GetRedisClient())

	ResetRedisClientForTest()
	assert.Nil(t, GetRedisClient())
}
