package store

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	r := NewRedis(db, DefaultRedisPrefix)
	ctx := context.Background()

	mock.ExpectGet("medihelp:mh_users").SetVal(`[]`)
	v, ok, err := r.Get(ctx, "mh_users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)

	mock.ExpectGet("medihelp:mh_orders").RedisNil()
	_, ok, err = r.Get(ctx, "mh_orders")
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectGet("medihelp:mh_prices").SetErr(errors.New("connection refused"))
	_, _, err = r.Get(ctx, "mh_prices")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_SetAndRemove(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	r := NewRedis(db, "test:")
	ctx := context.Background()

	mock.ExpectSet("test:mh_settings", `{}`, 0).SetVal("OK")
	require.NoError(t, r.Set(ctx, "mh_settings", `{}`))

	mock.ExpectDel("test:mh_settings").SetVal(1)
	require.NoError(t, r.Remove(ctx, "mh_settings"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_SetMultiUsesTransaction(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	r := NewRedis(db, DefaultRedisPrefix)

	mock.ExpectTxPipeline()
	mock.ExpectSet("medihelp:mh_orders", `[]`, 0).SetVal("OK")
	mock.ExpectTxPipelineExec()

	require.NoError(t, r.SetMulti(context.Background(), map[string]string{"mh_orders": `[]`}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_SetError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	r := NewRedis(db, DefaultRedisPrefix)

	mock.ExpectSet("medihelp:mh_users", `[]`, 0).SetErr(errors.New("readonly replica"))
	err := r.Set(context.Background(), "mh_users", `[]`)
	assert.Error(t, err)
}
