package dto

import (
	"time"

	"github.com/google/uuid"

	"parkirku_backend/internals/features/academics/lectures/model"
)

type LecturerDTO struct {
	LecturerID         uuid.UUID `json:"lecturer_id"`
	LecturerName       string    `json:"lecturer_name"`
	LecturerDepartment string    `json:"lecturer_department"`
	LecturerEmail      string    `json:"lecturer_email"`
	LecturerCreatedAt  time.Time `json:"lecturer_created_at"`
}

type LecturerRequest struct {
	LecturerName       string `json:"lecturer_name" validate:"required,min=2,max=100"`
	LecturerDepartment string `json:"lecturer_department" validate:"max=100"`
	LecturerEmail      string `json:"lecturer_email" validate:"omitempty,email"`
}

func (r LecturerRequest) ToModel() model.LecturerModel {
	return model.LecturerModel{
		LecturerName:       r.LecturerName,
		LecturerDepartment: r.LecturerDepartment,
		LecturerEmail:      r.LecturerEmail,
	}
}

func (r LecturerRequest) ApplyToModel(m *model.LecturerModel) {
	m.LecturerName = r.LecturerName
	m.LecturerDepartment = r.LecturerDepartment
	m.LecturerEmail = r.LecturerEmail
}

func ToLecturerDTO(m model.LecturerModel) LecturerDTO {
	return LecturerDTO{
		LecturerID:         m.LecturerID,
		LecturerName:       m.LecturerName,
		LecturerDepartment: m.LecturerDepartment,
		LecturerEmail:      m.LecturerEmail,
		LecturerCreatedAt:  m.LecturerCreatedAt,
	}
}

type LectureDTO struct {
	LectureID        uuid.UUID `json:"lecture_id"`
	LectureName      string    `json:"lecture_name"`
	LecturerID       uuid.UUID `json:"lecturer_id"`
	LectureCreatedAt time.Time `json:"lecture_created_at"`
}

type LectureRequest struct {
	LectureName string    `json:"lecture_name" validate:"required,min=2,max=150"`
	LecturerID  uuid.UUID `json:"lecturer_id" validate:"required"`
}

func (r LectureRequest) ToModel() model.LectureModel {
	return model.LectureModel{
		LectureName: r.LectureName,
		LecturerID:  r.LecturerID,
	}
}

func (r LectureRequest) ApplyToModel(m *model.LectureModel) {
	m.LectureName = r.LectureName
	m.LecturerID = r.LecturerID
}

func ToLectureDTO(m model.LectureModel) LectureDTO {
	return LectureDTO{
		LectureID:        m.LectureID,
		LectureName:      m.LectureName,
		LecturerID:       m.LecturerID,
		LectureCreatedAt: m.LectureCreatedAt,
	}
}
