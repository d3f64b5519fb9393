package dto

import (
	"time"

	"github.com/google/uuid"

	"parkirku_backend/internals/features/parking/spots/model"
)

type ParkingSpotDTO struct {
	ParkingSpotID           uuid.UUID `json:"parking_spot_id"`
	ParkingSpotLocation     string    `json:"parking_spot_location"`
	ParkingSpotSize         string    `json:"parking_spot_size"`
	ParkingSpotStatus       string    `json:"parking_spot_status"`
	ParkingSpotPricePerHour float64   `json:"parking_spot_price_per_hour"`
	ParkingSpotCreatedAt    time.Time `json:"parking_spot_created_at"`
	ParkingSpotUpdatedAt    time.Time `json:"parking_spot_updated_at"`
}

type ParkingSpotRequest struct {
	ParkingSpotLocation     string  `json:"parking_spot_location" validate:"required,min=2,max=255"`
	ParkingSpotSize         string  `json:"parking_spot_size" validate:"max=50"`
	ParkingSpotStatus       string  `json:"parking_spot_status" validate:"omitempty,oneof=available occupied reserved"`
	ParkingSpotPricePerHour float64 `json:"parking_spot_price_per_hour" validate:"gte=0"`
}

func (r ParkingSpotRequest) ToModel() model.ParkingSpotModel {
	return model.ParkingSpotModel{
		ParkingSpotLocation:     r.ParkingSpotLocation,
		ParkingSpotSize:         r.ParkingSpotSize,
		ParkingSpotStatus:       r.ParkingSpotStatus,
		ParkingSpotPricePerHour: r.ParkingSpotPricePerHour,
	}
}

func (r ParkingSpotRequest) ApplyToModel(m *model.ParkingSpotModel) {
	m.ParkingSpotLocation = r.ParkingSpotLocation
	m.ParkingSpotSize = r.ParkingSpotSize
	if r.ParkingSpotStatus != "" {
		m.ParkingSpotStatus = r.ParkingSpotStatus
	}
	m.ParkingSpotPricePerHour = r.ParkingSpotPricePerHour
}

func ToParkingSpotDTO(m model.ParkingSpotModel) ParkingSpotDTO {
	return ParkingSpotDTO{
		ParkingSpotID:           m.ParkingSpotID,
		ParkingSpotLocation:     m.ParkingSpotLocation,
		ParkingSpotSize:         m.ParkingSpotSize,
		ParkingSpotStatus:       m.ParkingSpotStatus,
		ParkingSpotPricePerHour: m.ParkingSpotPricePerHour,
		ParkingSpotCreatedAt:    m.ParkingSpotCreatedAt,
		ParkingSpotUpdatedAt:    m.ParkingSpotUpdatedAt,
	}
}
