package dto

import (
	"time"

	"github.com/google/uuid"

	"parkirku_backend/internals/features/parking/reservations/model"
)

type ParkingReservationManagerDTO struct {
	ReservationManagerID        uuid.UUID `json:"reservation_manager_id"`
	ReservationManagerName      string    `json:"reservation_manager_name"`
	ReservationManagerContact   string    `json:"reservation_manager_contact"`
	ReservationManagerCreatedAt time.Time `json:"reservation_manager_created_at"`
}

type ParkingReservationManagerRequest struct {
	ReservationManagerName    string `json:"reservation_manager_name" validate:"required,min=2,max=100"`
	ReservationManagerContact string `json:"reservation_manager_contact" validate:"max=100"`
}

func (r ParkingReservationManagerRequest) ToModel() model.ParkingReservationManagerModel {
	return model.ParkingReservationManagerModel{
		ReservationManagerName:    r.ReservationManagerName,
		ReservationManagerContact: r.ReservationManagerContact,
	}
}

func (r ParkingReservationManagerRequest) ApplyToModel(m *model.ParkingReservationManagerModel) {
	m.ReservationManagerName = r.ReservationManagerName
	m.ReservationManagerContact = r.ReservationManagerContact
}

func ToParkingReservationManagerDTO(m model.ParkingReservationManagerModel) ParkingReservationManagerDTO {
	return ParkingReservationManagerDTO{
		ReservationManagerID:        m.ReservationManagerID,
		ReservationManagerName:      m.ReservationManagerName,
		ReservationManagerContact:   m.ReservationManagerContact,
		ReservationManagerCreatedAt: m.ReservationManagerCreatedAt,
	}
}

type ReservationDTO struct {
	ReservationID          uuid.UUID `json:"reservation_id"`
	ReservationStatus      string    `json:"reservation_status"`
	ReservationStartTime   time.Time `json:"reservation_start_time"`
	ReservationEndTime     time.Time `json:"reservation_end_time"`
	ReservationTotalAmount float64   `json:"reservation_total_amount"`
	ReservationSpotID      uuid.UUID `json:"reservation_spot_id"`
	ReservationManagerID   uuid.UUID `json:"reservation_manager_id"`
	ReservationCreatedAt   time.Time `json:"reservation_created_at"`
	ReservationUpdatedAt   time.Time `json:"reservation_updated_at"`
}

type ReservationRequest struct {
	ReservationStatus      string    `json:"reservation_status" validate:"omitempty,oneof=pending confirmed cancelled"`
	ReservationStartTime   time.Time `json:"reservation_start_time" validate:"required"`
	ReservationEndTime     time.Time `json:"reservation_end_time" validate:"required,gtfield=ReservationStartTime"`
	ReservationTotalAmount float64   `json:"reservation_total_amount" validate:"gte=0"`
	ReservationSpotID      uuid.UUID `json:"reservation_spot_id" validate:"required"`
	ReservationManagerID   uuid.UUID `json:"reservation_manager_id" validate:"required"`
}

func (r ReservationRequest) ToModel() model.ReservationModel {
	return model.ReservationModel{
		ReservationStatus:      r.ReservationStatus,
		ReservationStartTime:   r.ReservationStartTime,
		ReservationEndTime:     r.ReservationEndTime,
		ReservationTotalAmount: r.ReservationTotalAmount,
		ReservationSpotID:      r.ReservationSpotID,
		ReservationManagerID:   r.ReservationManagerID,
	}
}

func (r ReservationRequest) ApplyToModel(m *model.ReservationModel) {
	if r.ReservationStatus != "" {
		m.ReservationStatus = r.ReservationStatus
	}
	m.ReservationStartTime = r.ReservationStartTime
	m.ReservationEndTime = r.ReservationEndTime
	m.ReservationTotalAmount = r.ReservationTotalAmount
	m.ReservationSpotID = r.ReservationSpotID
	m.ReservationManagerID = r.ReservationManagerID
}

func ToReservationDTO(m model.ReservationModel) ReservationDTO {
	return ReservationDTO{
		ReservationID:          m.ReservationID,
		ReservationStatus:      m.ReservationStatus,
		ReservationStartTime:   m.ReservationStartTime,
		ReservationEndTime:     m.ReservationEndTime,
		ReservationTotalAmount: m.ReservationTotalAmount,
		ReservationSpotID:      m.ReservationSpotID,
		ReservationManagerID:   m.ReservationManagerID,
		ReservationCreatedAt:   m.ReservationCreatedAt,
		ReservationUpdatedAt:   m.ReservationUpdatedAt,
	}
}
