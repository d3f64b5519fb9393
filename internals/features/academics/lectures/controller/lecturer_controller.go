package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/academics/lectures/dto"
	"parkirku_backend/internals/features/academics/lectures/model"
	helper "parkirku_backend/internals/helpers"
)

var validateLecture = validator.New()

type LecturerController struct {
	DB *gorm.DB
}

func NewLecturerController(db *gorm.DB) *LecturerController {
	return &LecturerController{DB: db}
}

func (ctrl *LecturerController) CreateLecturer(c *fiber.Ctx) error {
	var body dto.LecturerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLecture.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	lecturer := body.ToModel()
	if err := ctrl.DB.Create(&lecturer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lecturer")
	}

	return helper.JsonCreated(c, "Lecturer Created Successfully", dto.ToLecturerDTO(lecturer))
}

func (ctrl *LecturerController) GetAllLecturers(c *fiber.Ctx) error {
	var lecturers []model.LecturerModel
	if err := ctrl.DB.Find(&lecturers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve lecturers")
	}

	resp := make([]dto.LecturerDTO, 0, len(lecturers))
	for _, m := range lecturers {
		resp = append(resp, dto.ToLecturerDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *LecturerController) GetLecturerByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lecturer id")
	}

	var lecturer model.LecturerModel
	if err := ctrl.DB.First(&lecturer, "lecturer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lecturer Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve lecturer")
	}

	return helper.JsonOK(c, "ok", dto.ToLecturerDTO(lecturer))
}

func (ctrl *LecturerController) UpdateLecturer(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lecturer id")
	}

	var body dto.LecturerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLecture.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var lecturer model.LecturerModel
	if err := ctrl.DB.First(&lecturer, "lecturer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lecturer Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve lecturer")
	}

	body.ApplyToModel(&lecturer)
	if err := ctrl.DB.Save(&lecturer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lecturer")
	}

	return helper.JsonUpdated(c, "Lecturer Updated Successfully", dto.ToLecturerDTO(lecturer))
}

func (ctrl *LecturerController) DeleteLecturer(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lecturer id")
	}

	var lecturer model.LecturerModel
	if err := ctrl.DB.First(&lecturer, "lecturer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lecturer Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve lecturer")
	}

	if err := ctrl.DB.Delete(&lecturer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lecturer")
	}

	return helper.JsonDeleted(c, "Lecturer Deleted", fiber.Map{"lecturer_id": id})
}
