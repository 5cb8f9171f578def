package store

import (
	"fmt"

	"github.com/ariebrainware/medi-help/config"
	"gorm.io/gorm"
)

// Open builds the store selected by STORE_DRIVER. db is required for the sql
// driver; the redis driver connects through config.ConnectRedis.
func Open(cfg *config.Config, db *gorm.DB) (Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return NewMemory(), nil
	case config.StoreRedis:
		rdb, err := config.ConnectRedis()
		if err != nil {
			return nil, err
		}
		if rdb == nil {
			return nil, fmt.Errorf("redis store selected but redis is not configured")
		}
		return NewRedis(rdb, DefaultRedisPrefix), nil
	case config.StoreSQL, "":
		if db == nil {
			return nil, fmt.Errorf("sql store selected but no database connection")
		}
		s := NewSQL(db)
		if err := s.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate kv_entries: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
