package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LecturerModel struct {
	LecturerID         uuid.UUID `gorm:"column:lecturer_id;type:uuid;primaryKey" json:"lecturer_id"`
	LecturerName       string    `gorm:"column:lecturer_name;size:100;not null" json:"lecturer_name"`
	LecturerDepartment string    `gorm:"column:lecturer_department;size:100" json:"lecturer_department"`
	LecturerEmail      string    `gorm:"column:lecturer_email;size:255" json:"lecturer_email"`
	LecturerCreatedAt  time.Time `gorm:"column:lecturer_created_at;autoCreateTime" json:"lecturer_created_at"`

	Lectures []LectureModel `gorm:"foreignKey:LecturerID;constraint:OnDelete:CASCADE" json:"lectures,omitempty"`
}

func (LecturerModel) TableName() string {
	return "lecturers"
}

func (m *LecturerModel) BeforeCreate(tx *gorm.DB) error {
	if m.LecturerID == uuid.Nil {
		m.LecturerID = uuid.New()
	}
	return nil
}
