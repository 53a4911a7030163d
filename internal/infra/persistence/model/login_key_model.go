package model

import (
	"time"

	"github.com/google/uuid"
)

// LoginKeyModel is the GORM-specific struct for the 'login_keys' table. Only
// the SHA-256 digest of a key is ever stored.
type LoginKeyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	KeyHash   string    `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoginKeyModel) TableName() string {
	return "login_keys"
}
