package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestSecurityLogModel_AllFields(t *testing.T) {
	db := setupTestDB(t, "security_log", &SecurityLog{})

	entry := SecurityLog{
		EventType: "ID_CHANGED",
		UserID:    "rahim02",
		Role:      RolePatient,
		IP:        "103.4.145.2",
		Location:  "Dhaka/Bangladesh",
		UserAgent: "Mozilla/5.0",
		Message:   "User id changed",
		Details:   datatypes.JSON(`{"old_id":"rahim01"}`),
	}
	require.NoError(t, db.Create(&entry).Error)
	assert.NotZero(t, entry.ID)

	var found SecurityLog
	require.NoError(t, db.First(&found, entry.ID).Error)
	assert.Equal(t, "ID_CHANGED", found.EventType)
	assert.Equal(t, "rahim02", found.UserID)
	assert.Equal(t, RolePatient, found.Role)
	assert.Equal(t, "Dhaka/Bangladesh", found.Location)
	assert.JSONEq(t, `{"old_id":"rahim01"}`, string(found.Details))
}

func TestSecurityLogModel_ListByEventType(t *testing.T) {
	db := setupTestDB(t, "security_log_list", &SecurityLog{})

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&SecurityLog{EventType: "LOGIN_SUCCESS", UserID: "rahim01"}).Error)
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&SecurityLog{EventType: "LOGIN_FAILURE", UserID: "rahim01"}).Error)
	}

	var failures []SecurityLog
	require.NoError(t, db.Where("event_type = ?", "LOGIN_FAILURE").Find(&failures).Error)
	assert.Len(t, failures, 2)

	var count int64
	require.NoError(t, db.Model(&SecurityLog{}).Where("user_id = ?", "rahim01").Count(&count).Error)
	assert.Equal(t, int64(5), count)
}

func TestPersistedModelsMigrate(t *testing.T) {
	db := setupTestDB(t, "persisted", PersistedModels...)

	assert.True(t, db.Migrator().HasTable("kv_entries"))
	assert.True(t, db.Migrator().HasTable(&SecurityLog{}))

	require.NoError(t, db.Create(&KVEntry{Key: "users", Value: "[]"}).Error)
	var got KVEntry
	require.NoError(t, db.First(&got, "entry_key = ?", "users").Error)
	assert.Equal(t, "[]", got.Value)
}
