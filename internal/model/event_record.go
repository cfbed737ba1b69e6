package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventRecord is one row of the durable event log. Append-only, best-effort:
// a failed append is logged and dropped, never retried inline. The payload is
// an opaque JSON document; no schema is enforced beyond the type tag.
type EventRecord struct {
	ID        uuid.UUID      `gorm:"type:uuid;primarykey" json:"event_id"`
	EventType string         `json:"event_type" gorm:"size:100;not null;index"`
	Timestamp time.Time      `json:"timestamp" gorm:"not null;index"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}
