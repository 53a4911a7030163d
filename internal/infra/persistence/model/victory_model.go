package model

import (
	"time"

	"github.com/google/uuid"
)

// VictoryModel is the GORM-specific struct for the 'victories' table. The
// unique index on TemplateID enforces at most one victory per template.
type VictoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TemplateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	// ReceiverIDs is the winning chain's participant set, stored as '+'-joined UUIDs.
	ReceiverIDs   string    `gorm:"type:text;not null"`
	PointsAwarded int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (VictoryModel) TableName() string {
	return "victories"
}
