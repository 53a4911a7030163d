package model

import (
	"time"

	"github.com/google/uuid"
)

// TemplateModel is the GORM-specific struct for the 'templates' table. It
// records one chain's goal and how long the chain can still be extended.
type TemplateModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReceiverID     *uuid.UUID `gorm:"type:uuid"`
	StartLatitude  float64    `gorm:"type:decimal(10,8);not null"`
	StartLongitude float64    `gorm:"type:decimal(11,8);not null"`
	EndLatitude    float64    `gorm:"type:decimal(10,8);not null"`
	EndLongitude   float64    `gorm:"type:decimal(11,8);not null"`
	LastShoutAt    time.Time  `gorm:"index"`
	Completed      bool       `gorm:"not null;default:false"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (TemplateModel) TableName() string {
	return "templates"
}
