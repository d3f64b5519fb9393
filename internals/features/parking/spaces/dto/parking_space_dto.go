package dto

import (
	"time"

	"github.com/google/uuid"

	"parkirku_backend/internals/features/parking/spaces/model"
)

type ParkingSpaceDTO struct {
	ParkingSpaceID           uuid.UUID `json:"parking_space_id"`
	ParkingSpaceLocation     string    `json:"parking_space_location"`
	ParkingSpaceSize         string    `json:"parking_space_size"`
	ParkingSpaceStatus       string    `json:"parking_space_status"`
	ParkingSpacePricePerHour float64   `json:"parking_space_price_per_hour"`
	ParkingSpaceCreatedAt    time.Time `json:"parking_space_created_at"`
	ParkingSpaceUpdatedAt    time.Time `json:"parking_space_updated_at"`
}

type ParkingSpaceRequest struct {
	ParkingSpaceLocation     string  `json:"parking_space_location" validate:"required,min=2,max=255"`
	ParkingSpaceSize         string  `json:"parking_space_size" validate:"max=50"`
	ParkingSpaceStatus       string  `json:"parking_space_status" validate:"omitempty,oneof=available occupied reserved"`
	ParkingSpacePricePerHour float64 `json:"parking_space_price_per_hour" validate:"gte=0"`
}

func (r ParkingSpaceRequest) ToModel() model.ParkingSpaceModel {
	return model.ParkingSpaceModel{
		ParkingSpaceLocation:     r.ParkingSpaceLocation,
		ParkingSpaceSize:         r.ParkingSpaceSize,
		ParkingSpaceStatus:       r.ParkingSpaceStatus,
		ParkingSpacePricePerHour: r.ParkingSpacePricePerHour,
	}
}

func (r ParkingSpaceRequest) ApplyToModel(m *model.ParkingSpaceModel) {
	m.ParkingSpaceLocation = r.ParkingSpaceLocation
	m.ParkingSpaceSize = r.ParkingSpaceSize
	if r.ParkingSpaceStatus != "" {
		m.ParkingSpaceStatus = r.ParkingSpaceStatus
	}
	m.ParkingSpacePricePerHour = r.ParkingSpacePricePerHour
}

func ToParkingSpaceDTO(m model.ParkingSpaceModel) ParkingSpaceDTO {
	return ParkingSpaceDTO{
		ParkingSpaceID:           m.ParkingSpaceID,
		ParkingSpaceLocation:     m.ParkingSpaceLocation,
		ParkingSpaceSize:         m.ParkingSpaceSize,
		ParkingSpaceStatus:       m.ParkingSpaceStatus,
		ParkingSpacePricePerHour: m.ParkingSpacePricePerHour,
		ParkingSpaceCreatedAt:    m.ParkingSpaceCreatedAt,
		ParkingSpaceUpdatedAt:    m.ParkingSpaceUpdatedAt,
	}
}

type ParkingSpaceManagerDTO struct {
	ParkingSpaceManagerID        uuid.UUID `json:"parking_space_manager_id"`
	ParkingSpaceManagerStatus    string    `json:"parking_space_manager_status"`
	ParkingSpaceManagerFee       float64   `json:"parking_space_manager_fee"`
	ParkingSpaceManagerContact   string    `json:"parking_space_manager_contact"`
	ParkingSpaceManagerSpaceID   uuid.UUID `json:"parking_space_manager_space_id"`
	ParkingSpaceManagerCreatedAt time.Time `json:"parking_space_manager_created_at"`
}

type ParkingSpaceManagerRequest struct {
	ParkingSpaceManagerStatus  string    `json:"parking_space_manager_status" validate:"required,max=20"`
	ParkingSpaceManagerFee     float64   `json:"parking_space_manager_fee" validate:"gte=0"`
	ParkingSpaceManagerContact string    `json:"parking_space_manager_contact" validate:"max=100"`
	ParkingSpaceManagerSpaceID uuid.UUID `json:"parking_space_manager_space_id" validate:"required"`
}

func (r ParkingSpaceManagerRequest) ToModel() model.ParkingSpaceManagerModel {
	return model.ParkingSpaceManagerModel{
		ParkingSpaceManagerStatus:  r.ParkingSpaceManagerStatus,
		ParkingSpaceManagerFee:     r.ParkingSpaceManagerFee,
		ParkingSpaceManagerContact: r.ParkingSpaceManagerContact,
		ParkingSpaceManagerSpaceID: r.ParkingSpaceManagerSpaceID,
	}
}

func (r ParkingSpaceManagerRequest) ApplyToModel(m *model.ParkingSpaceManagerModel) {
	m.ParkingSpaceManagerStatus = r.ParkingSpaceManagerStatus
	m.ParkingSpaceManagerFee = r.ParkingSpaceManagerFee
	m.ParkingSpaceManagerContact = r.ParkingSpaceManagerContact
	m.ParkingSpaceManagerSpaceID = r.ParkingSpaceManagerSpaceID
}

func ToParkingSpaceManagerDTO(m model.ParkingSpaceManagerModel) ParkingSpaceManagerDTO {
	return ParkingSpaceManagerDTO{
		ParkingSpaceManagerID:        m.ParkingSpaceManagerID,
		ParkingSpaceManagerStatus:    m.ParkingSpaceManagerStatus,
		ParkingSpaceManagerFee:       m.ParkingSpaceManagerFee,
		ParkingSpaceManagerContact:   m.ParkingSpaceManagerContact,
		ParkingSpaceManagerSpaceID:   m.ParkingSpaceManagerSpaceID,
		ParkingSpaceManagerCreatedAt: m.ParkingSpaceManagerCreatedAt,
	}
}

type AvailabilityMonitorDTO struct {
	AvailabilityMonitorID            uuid.UUID `json:"availability_monitor_id"`
	AvailabilityMonitorStatus        string    `json:"availability_monitor_status"`
	AvailabilityMonitorLastCheckedAt time.Time `json:"availability_monitor_last_checked_at"`
	AvailabilityMonitorUpSeconds     int64     `json:"availability_monitor_up_seconds"`
	AvailabilityMonitorDownSeconds   int64     `json:"availability_monitor_down_seconds"`
	AvailabilityMonitorIntervalSecs  int64     `json:"availability_monitor_interval_seconds"`
	AvailabilityMonitorCheckLog      []string  `json:"availability_monitor_check_log"`
	AvailabilityMonitorSpaceID       uuid.UUID `json:"availability_monitor_space_id"`
	AvailabilityMonitorCreatedAt     time.Time `json:"availability_monitor_created_at"`
	AvailabilityMonitorUpdatedAt     time.Time `json:"availability_monitor_updated_at"`
}

type AvailabilityMonitorRequest struct {
	AvailabilityMonitorStatus        string    `json:"availability_monitor_status" validate:"required,max=20"`
	AvailabilityMonitorLastCheckedAt time.Time `json:"availability_monitor_last_checked_at"`
	AvailabilityMonitorUpSeconds     int64     `json:"availability_monitor_up_seconds" validate:"gte=0"`
	AvailabilityMonitorDownSeconds   int64     `json:"availability_monitor_down_seconds" validate:"gte=0"`
	AvailabilityMonitorIntervalSecs  int64     `json:"availability_monitor_interval_seconds" validate:"gte=0"`
	AvailabilityMonitorCheckLog      []string  `json:"availability_monitor_check_log"`
	AvailabilityMonitorSpaceID       uuid.UUID `json:"availability_monitor_space_id" validate:"required"`
}

func (r AvailabilityMonitorRequest) ToModel() model.AvailabilityMonitorModel {
	return model.AvailabilityMonitorModel{
		AvailabilityMonitorStatus:        r.AvailabilityMonitorStatus,
		AvailabilityMonitorLastCheckedAt: r.AvailabilityMonitorLastCheckedAt,
		AvailabilityMonitorUpSeconds:     r.AvailabilityMonitorUpSeconds,
		AvailabilityMonitorDownSeconds:   r.AvailabilityMonitorDownSeconds,
		AvailabilityMonitorIntervalSecs:  r.AvailabilityMonitorIntervalSecs,
		AvailabilityMonitorCheckLog:      r.AvailabilityMonitorCheckLog,
		AvailabilityMonitorSpaceID:       r.AvailabilityMonitorSpaceID,
	}
}

func (r AvailabilityMonitorRequest) ApplyToModel(m *model.AvailabilityMonitorModel) {
	m.AvailabilityMonitorStatus = r.AvailabilityMonitorStatus
	m.AvailabilityMonitorLastCheckedAt = r.AvailabilityMonitorLastCheckedAt
	m.AvailabilityMonitorUpSeconds = r.AvailabilityMonitorUpSeconds
	m.AvailabilityMonitorDownSeconds = r.AvailabilityMonitorDownSeconds
	m.AvailabilityMonitorIntervalSecs = r.AvailabilityMonitorIntervalSecs
	m.AvailabilityMonitorCheckLog = r.AvailabilityMonitorCheckLog
	m.AvailabilityMonitorSpaceID = r.AvailabilityMonitorSpaceID
}

func ToAvailabilityMonitorDTO(m model.AvailabilityMonitorModel) AvailabilityMonitorDTO {
	return AvailabilityMonitorDTO{
		AvailabilityMonitorID:            m.AvailabilityMonitorID,
		AvailabilityMonitorStatus:        m.AvailabilityMonitorStatus,
		AvailabilityMonitorLastCheckedAt: m.AvailabilityMonitorLastCheckedAt,
		AvailabilityMonitorUpSeconds:     m.AvailabilityMonitorUpSeconds,
		AvailabilityMonitorDownSeconds:   m.AvailabilityMonitorDownSeconds,
		AvailabilityMonitorIntervalSecs:  m.AvailabilityMonitorIntervalSecs,
		AvailabilityMonitorCheckLog:      m.AvailabilityMonitorCheckLog,
		AvailabilityMonitorSpaceID:       m.AvailabilityMonitorSpaceID,
		AvailabilityMonitorCreatedAt:     m.AvailabilityMonitorCreatedAt,
		AvailabilityMonitorUpdatedAt:     m.AvailabilityMonitorUpdatedAt,
	}
}
