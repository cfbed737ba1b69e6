package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStudent    = "Student"
	RoleInstructor = "Instructor"
)

// User is referenced for identity and role only; credential issuance and
// password handling live outside this service.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primarykey" json:"user_id"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	Email     string         `json:"email" gorm:"size:100;not null;uniqueIndex"`
	Role      string         `json:"role" gorm:"size:20;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
