package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParkingSpaceManagerModel is an administrative record attached to a space.
type ParkingSpaceManagerModel struct {
	ParkingSpaceManagerID        uuid.UUID `gorm:"column:parking_space_manager_id;type:uuid;primaryKey" json:"parking_space_manager_id"`
	ParkingSpaceManagerStatus    string    `gorm:"column:parking_space_manager_status;size:20;not null" json:"parking_space_manager_status"`
	ParkingSpaceManagerFee       float64   `gorm:"column:parking_space_manager_fee;type:decimal(10,2)" json:"parking_space_manager_fee"`
	ParkingSpaceManagerContact   string    `gorm:"column:parking_space_manager_contact;size:100" json:"parking_space_manager_contact"`
	ParkingSpaceManagerSpaceID   uuid.UUID `gorm:"column:parking_space_manager_space_id;type:uuid;not null;index" json:"parking_space_manager_space_id"`
	ParkingSpaceManagerCreatedAt time.Time `gorm:"column:parking_space_manager_created_at;autoCreateTime" json:"parking_space_manager_created_at"`
}

func (ParkingSpaceManagerModel) TableName() string {
	return "parking_space_managers"
}

func (m *ParkingSpaceManagerModel) BeforeCreate(tx *gorm.DB) error {
	if m.ParkingSpaceManagerID == uuid.Nil {
		m.ParkingSpaceManagerID = uuid.New()
	}
	return nil
}
