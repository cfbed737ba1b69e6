package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/EduSync/config"
	"github.com/lshigami/EduSync/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Publisher is the durable event log sink. Publish is best-effort: failures
// are logged and swallowed, never returned, never retried inline. Callers'
// operations must succeed even when this sink is down.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload interface{})
}

const publishTimeout = 2 * time.Second

type logPublisher struct {
	db      *gorm.DB
	enabled bool
}

func NewPublisher(cfg *config.Config, db *gorm.DB) Publisher {
	if !cfg.EventLog.Enabled {
		log.Warn().Msg("Event log is disabled. Events will be logged only.")
	}
	return &logPublisher{db: db, enabled: cfg.EventLog.Enabled}
}

func (p *logPublisher) Publish(ctx context.Context, eventType string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("Failed to serialize event payload")
		return
	}

	// Every event is logged even when the durable sink is off or failing.
	log.Info().Str("event_type", eventType).RawJSON("payload", raw).Msg("event")

	if !p.enabled {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	record := model.EventRecord{
		ID:        uuid.New(),
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Payload:   raw,
	}
	if err := p.db.WithContext(ctx).Create(&record).Error; err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("Failed to publish event to durable log")
	}
}
