package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSQLStore(t *testing.T) (*SQL, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:store_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	s := NewSQL(db)
	require.NoError(t, s.Migrate())
	return s, db
}

func TestSQL_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	s, _ := setupSQLStore(t)

	_, ok, err := s.Get(ctx, "mh_prices")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "mh_prices", `[{"id":"1"}]`))
	require.NoError(t, s.Set(ctx, "mh_prices", `[{"id":"2"}]`))

	v, ok, err := s.Get(ctx, "mh_prices")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"2"}]`, v)

	require.NoError(t, s.Remove(ctx, "mh_prices"))
	_, ok, err = s.Get(ctx, "mh_prices")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQL_SetMulti(t *testing.T) {
	ctx := context.Background()
	s, db := setupSQLStore(t)

	require.NoError(t, s.Set(ctx, "mh_users", "old"))
	require.NoError(t, s.SetMulti(ctx, map[string]string{"mh_users": "new", "mh_orders": "orders"}))

	u, _, _ := s.Get(ctx, "mh_users")
	o, _, _ := s.Get(ctx, "mh_orders")
	assert.Equal(t, "new", u)
	assert.Equal(t, "orders", o)

	var count int64
	db.Table("kv_entries").Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestSQL_SetMultiFailsWithoutTable(t *testing.T) {
	ctx := context.Background()
	s, db := setupSQLStore(t)

	require.NoError(t, s.Set(ctx, "mh_users", "old"))
	require.NoError(t, db.Migrator().DropTable("kv_entries"))

	err := s.SetMulti(ctx, map[string]string{"mh_users": "new", "mh_orders": "orders"})
	assert.Error(t, err)
}
