package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Parking space status values
const (
	SpaceStatusAvailable = "available"
	SpaceStatusOccupied  = "occupied"
	SpaceStatusReserved  = "reserved"
)

type ParkingSpaceModel struct {
	ParkingSpaceID           uuid.UUID `gorm:"column:parking_space_id;type:uuid;primaryKey" json:"parking_space_id"`
	ParkingSpaceLocation     string    `gorm:"column:parking_space_location;size:255;not null" json:"parking_space_location"`
	ParkingSpaceSize         string    `gorm:"column:parking_space_size;size:50" json:"parking_space_size"`
	ParkingSpaceStatus       string    `gorm:"column:parking_space_status;size:20;not null;default:'available'" json:"parking_space_status"`
	ParkingSpacePricePerHour float64   `gorm:"column:parking_space_price_per_hour;type:decimal(10,2);not null" json:"parking_space_price_per_hour"`
	ParkingSpaceCreatedAt    time.Time `gorm:"column:parking_space_created_at;autoCreateTime" json:"parking_space_created_at"`
	ParkingSpaceUpdatedAt    time.Time `gorm:"column:parking_space_updated_at;autoUpdateTime" json:"parking_space_updated_at"`

	Managers []ParkingSpaceManagerModel `gorm:"foreignKey:ParkingSpaceManagerSpaceID;constraint:OnDelete:CASCADE" json:"managers,omitempty"`
	Monitor  *AvailabilityMonitorModel  `gorm:"foreignKey:AvailabilityMonitorSpaceID;constraint:OnDelete:CASCADE" json:"monitor,omitempty"`
}

func (ParkingSpaceModel) TableName() string {
	return "parking_spaces"
}

func (m *ParkingSpaceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ParkingSpaceID == uuid.Nil {
		m.ParkingSpaceID = uuid.New()
	}
	if m.ParkingSpaceStatus == "" {
		m.ParkingSpaceStatus = SpaceStatusAvailable
	}
	return nil
}
