package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LectureModel struct {
	LectureID        uuid.UUID `gorm:"column:lecture_id;type:uuid;primaryKey" json:"lecture_id"`
	LectureName      string    `gorm:"column:lecture_name;size:150;not null" json:"lecture_name"`
	LecturerID       uuid.UUID `gorm:"column:lecturer_id;type:uuid;not null;index" json:"lecturer_id"`
	LectureCreatedAt time.Time `gorm:"column:lecture_created_at;autoCreateTime" json:"lecture_created_at"`
}

func (LectureModel) TableName() string {
	return "lectures"
}

func (m *LectureModel) BeforeCreate(tx *gorm.DB) error {
	if m.LectureID == uuid.Nil {
		m.LectureID = uuid.New()
	}
	return nil
}
