package store

import (
	"testing"

	"github.com/ariebrainware/medi-help/config"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	_, db := setupSQLStore(t)

	s, err := Open(&config.Config{StoreDriver: config.StoreMemory}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(&config.Config{StoreDriver: config.StoreSQL}, db)
	require.NoError(t, err)
	assert.IsType(t, &SQL{}, s)

	_, err = Open(&config.Config{StoreDriver: config.StoreSQL}, nil)
	assert.Error(t, err)

	_, err = Open(&config.Config{StoreDriver: "etcd"}, nil)
	assert.Error(t, err)
}

func TestOpen_Redis(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	defer rdb.Close()
	config.SetRedisClientForTest(rdb)
	t.Cleanup(config.ResetRedisClientForTest)
	// Under APPENV=test ConnectRedis hands back the injected client.
	t.Setenv("APPENV", "test")
	config.ResetConfigForTest()
	t.Cleanup(config.ResetConfigForTest)

	s, err := Open(&config.Config{StoreDriver: config.StoreRedis}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Redis{}, s)
}
