package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AvailabilityMonitorModel tracks up/down state for exactly one parking
// space. Durations are stored as integer seconds; the check log keeps the
// most recent probe results as a text array.
type AvailabilityMonitorModel struct {
	AvailabilityMonitorID            uuid.UUID      `gorm:"column:availability_monitor_id;type:uuid;primaryKey" json:"availability_monitor_id"`
	AvailabilityMonitorStatus        string         `gorm:"column:availability_monitor_status;size:20;not null" json:"availability_monitor_status"`
	AvailabilityMonitorLastCheckedAt time.Time      `gorm:"column:availability_monitor_last_checked_at" json:"availability_monitor_last_checked_at"`
	AvailabilityMonitorUpSeconds     int64          `gorm:"column:availability_monitor_up_seconds;not null;default:0" json:"availability_monitor_up_seconds"`
	AvailabilityMonitorDownSeconds   int64          `gorm:"column:availability_monitor_down_seconds;not null;default:0" json:"availability_monitor_down_seconds"`
	AvailabilityMonitorIntervalSecs  int64          `gorm:"column:availability_monitor_interval_seconds;not null;default:60" json:"availability_monitor_interval_seconds"`
	AvailabilityMonitorCheckLog      pq.StringArray `gorm:"column:availability_monitor_check_log;type:text[]" json:"availability_monitor_check_log"`
	AvailabilityMonitorSpaceID       uuid.UUID      `gorm:"column:availability_monitor_space_id;type:uuid;not null;uniqueIndex" json:"availability_monitor_space_id"`
	AvailabilityMonitorCreatedAt     time.Time      `gorm:"column:availability_monitor_created_at;autoCreateTime" json:"availability_monitor_created_at"`
	AvailabilityMonitorUpdatedAt     time.Time      `gorm:"column:availability_monitor_updated_at;autoUpdateTime" json:"availability_monitor_updated_at"`
}

func (AvailabilityMonitorModel) TableName() string {
	return "availability_monitors"
}

func (m *AvailabilityMonitorModel) BeforeCreate(tx *gorm.DB) error {
	if m.AvailabilityMonitorID == uuid.Nil {
		m.AvailabilityMonitorID = uuid.New()
	}
	return nil
}
