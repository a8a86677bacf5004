package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'iot_devices' table.
// It represents a registered physical sensor unit.
type DeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID   string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	DeviceName string    `gorm:"type:varchar(255);not null"`
	DeviceType string    `gorm:"type:varchar(100);not null;default:ESP32"`
	Location   string    `gorm:"type:text"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "iot_devices"
}
