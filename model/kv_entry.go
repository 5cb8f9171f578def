package model

import "time"

// KVEntry backs the SQL key-value store. Each row holds one JSON-encoded collection.
type KVEntry struct {
	Key       string    `gorm:"column:entry_key;primaryKey;type:varchar(191)"`
	Value     string    `gorm:"column:entry_value;type:longtext;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
