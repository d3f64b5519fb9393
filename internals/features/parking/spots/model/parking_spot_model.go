package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Parking spot status values
const (
	SpotStatusAvailable = "available"
	SpotStatusOccupied  = "occupied"
	SpotStatusReserved  = "reserved"
)

type ParkingSpotModel struct {
	ParkingSpotID           uuid.UUID `gorm:"column:parking_spot_id;type:uuid;primaryKey" json:"parking_spot_id"`
	ParkingSpotLocation     string    `gorm:"column:parking_spot_location;size:255;not null" json:"parking_spot_location"`
	ParkingSpotSize         string    `gorm:"column:parking_spot_size;size:50" json:"parking_spot_size"`
	ParkingSpotStatus       string    `gorm:"column:parking_spot_status;size:20;not null;default:'available'" json:"parking_spot_status"`
	ParkingSpotPricePerHour float64   `gorm:"column:parking_spot_price_per_hour;type:decimal(10,2);not null" json:"parking_spot_price_per_hour"`
	ParkingSpotCreatedAt    time.Time `gorm:"column:parking_spot_created_at;autoCreateTime" json:"parking_spot_created_at"`
	ParkingSpotUpdatedAt    time.Time `gorm:"column:parking_spot_updated_at;autoUpdateTime" json:"parking_spot_updated_at"`
}

func (ParkingSpotModel) TableName() string {
	return "parking_spots"
}

func (m *ParkingSpotModel) BeforeCreate(tx *gorm.DB) error {
	if m.ParkingSpotID == uuid.Nil {
		m.ParkingSpotID = uuid.New()
	}
	if m.ParkingSpotStatus == "" {
		m.ParkingSpotStatus = SpotStatusAvailable
	}
	return nil
}
