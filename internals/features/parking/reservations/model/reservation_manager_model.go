package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParkingReservationManagerModel owns many reservations.
type ParkingReservationManagerModel struct {
	ReservationManagerID        uuid.UUID `gorm:"column:reservation_manager_id;type:uuid;primaryKey" json:"reservation_manager_id"`
	ReservationManagerName      string    `gorm:"column:reservation_manager_name;size:100;not null" json:"reservation_manager_name"`
	ReservationManagerContact   string    `gorm:"column:reservation_manager_contact;size:100" json:"reservation_manager_contact"`
	ReservationManagerCreatedAt time.Time `gorm:"column:reservation_manager_created_at;autoCreateTime" json:"reservation_manager_created_at"`

	Reservations []ReservationModel `gorm:"foreignKey:ReservationManagerID;constraint:OnDelete:CASCADE" json:"reservations,omitempty"`
}

func (ParkingReservationManagerModel) TableName() string {
	return "parking_reservation_managers"
}

func (m *ParkingReservationManagerModel) BeforeCreate(tx *gorm.DB) error {
	if m.ReservationManagerID == uuid.Nil {
		m.ReservationManagerID = uuid.New()
	}
	return nil
}
