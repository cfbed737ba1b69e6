package event

import (
	"context"
	"testing"

	"github.com/lshigami/EduSync/config"
	"github.com/lshigami/EduSync/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupEventDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.EventRecord{}))
	return db
}

func TestPublisher_WritesEventRecord(t *testing.T) {
	db := setupEventDB(t)
	cfg := &config.Config{}
	cfg.EventLog.Enabled = true
	pub := NewPublisher(cfg, db)

	pub.Publish(context.Background(), "AssessmentStarted", map[string]string{"assessment": "a1"})

	var records []model.EventRecord
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, "AssessmentStarted", records[0].EventType)
	assert.JSONEq(t, `{"assessment":"a1"}`, string(records[0].Payload))
}

func TestPublisher_DisabledWritesNothing(t *testing.T) {
	db := setupEventDB(t)
	pub := NewPublisher(&config.Config{}, db)

	pub.Publish(context.Background(), "StudentJoined", nil)

	var count int64
	require.NoError(t, db.Model(&model.EventRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPublisher_SwallowsStoreFailures(t *testing.T) {
	db := setupEventDB(t)
	cfg := &config.Config{}
	cfg.EventLog.Enabled = true
	pub := NewPublisher(cfg, db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.NotPanics(t, func() {
		pub.Publish(context.Background(), "AnswerSubmitted", map[string]int{"score": 4})
	})
}

func TestPublisher_UnserializablePayload(t *testing.T) {
	db := setupEventDB(t)
	cfg := &config.Config{}
	cfg.EventLog.Enabled = true
	pub := NewPublisher(cfg, db)

	assert.NotPanics(t, func() {
		pub.Publish(context.Background(), "Broken", func() {})
	})

	var count int64
	require.NoError(t, db.Model(&model.EventRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}
