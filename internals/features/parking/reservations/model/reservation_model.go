package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	spotModel "parkirku_backend/internals/features/parking/spots/model"
)

// Reservation status values
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
)

// ReservationModel references exactly one spot and one reservation manager;
// deleting either cascades to the reservation.
type ReservationModel struct {
	ReservationID          uuid.UUID `gorm:"column:reservation_id;type:uuid;primaryKey" json:"reservation_id"`
	ReservationStatus      string    `gorm:"column:reservation_status;size:20;not null;default:'pending'" json:"reservation_status"`
	ReservationStartTime   time.Time `gorm:"column:reservation_start_time;not null" json:"reservation_start_time"`
	ReservationEndTime     time.Time `gorm:"column:reservation_end_time;not null" json:"reservation_end_time"`
	ReservationTotalAmount float64   `gorm:"column:reservation_total_amount;type:decimal(10,2);not null" json:"reservation_total_amount"`
	ReservationSpotID      uuid.UUID `gorm:"column:reservation_spot_id;type:uuid;not null;index" json:"reservation_spot_id"`
	ReservationManagerID   uuid.UUID `gorm:"column:reservation_manager_id;type:uuid;not null;index" json:"reservation_manager_id"`
	ReservationCreatedAt   time.Time `gorm:"column:reservation_created_at;autoCreateTime" json:"reservation_created_at"`
	ReservationUpdatedAt   time.Time `gorm:"column:reservation_updated_at;autoUpdateTime" json:"reservation_updated_at"`

	Spot *spotModel.ParkingSpotModel `gorm:"foreignKey:ReservationSpotID;references:ParkingSpotID;constraint:OnDelete:CASCADE" json:"spot,omitempty"`
}

func (ReservationModel) TableName() string {
	return "reservations"
}

func (m *ReservationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ReservationID == uuid.Nil {
		m.ReservationID = uuid.New()
	}
	if m.ReservationStatus == "" {
		m.ReservationStatus = ReservationStatusPending
	}
	return nil
}
