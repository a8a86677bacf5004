package model

import (
	"time"
)

// SensorReadingModel is the GORM-specific struct for the 'sensor_readings'
// table. Rows are append-only; the device is referenced by its stable
// device_id string, not by a foreign key.
type SensorReadingModel struct {
	ID         uint64    `gorm:"primary_key;autoIncrement"`
	DeviceID   string    `gorm:"type:varchar(255);not null;index:idx_readings_device_time,priority:1"`
	SensorType string    `gorm:"type:varchar(100);not null"`
	Value      float64   `gorm:"not null"`
	Unit       string    `gorm:"type:varchar(50);not null"`
	Timestamp  time.Time `gorm:"not null;index:idx_readings_device_time,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (SensorReadingModel) TableName() string {
	return "sensor_readings"
}
