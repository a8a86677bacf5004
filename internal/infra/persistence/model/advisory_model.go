package model

import (
	"time"

	"github.com/google/uuid"
)

// AdvisoryModel is the GORM-specific struct for the 'recommendations' table.
// The SensorData snapshot is written once at insert and never updated; the
// only mutable columns are the two boolean flags.
type AdvisoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID     string    `gorm:"type:varchar(255);not null;index:idx_recommendations_device_created,priority:1"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Message      string    `gorm:"type:text;not null"`
	Priority     string    `gorm:"type:varchar(20);not null"`
	Category     string    `gorm:"type:varchar(50);not null"`
	SensorData   []byte    `gorm:"type:jsonb"`
	AIConfidence float64   `gorm:"column:ai_confidence"`
	IsRead       bool      `gorm:"not null;default:false"`
	IsDismissed  bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"index:idx_recommendations_device_created,priority:2,sort:desc"`
	ExpiresAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdvisoryModel) TableName() string {
	return "recommendations"
}
