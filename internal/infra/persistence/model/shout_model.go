package model

import (
	"time"

	"github.com/google/uuid"
)

// ShoutModel is the GORM-specific struct for the 'shouts' table. A row is one
// immutable step of a chain; rows are only ever inserted and bulk-deleted.
type ShoutModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TemplateID uuid.UUID `gorm:"type:uuid;not null;index"`
	// ParticipantIDs is the ordered chain membership, stored as '+'-joined UUIDs.
	ParticipantIDs string    `gorm:"type:text;not null"`
	Latitude       float64   `gorm:"type:decimal(10,8);not null"`
	Longitude      float64   `gorm:"type:decimal(11,8);not null"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ShoutModel) TableName() string {
	return "shouts"
}
