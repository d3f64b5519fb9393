package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/academics/lectures/dto"
	"parkirku_backend/internals/features/academics/lectures/model"
	helper "parkirku_backend/internals/helpers"
)

type LectureController struct {
	DB *gorm.DB
}

func NewLectureController(db *gorm.DB) *LectureController {
	return &LectureController{DB: db}
}

func (ctrl *LectureController) CreateLecture(c *fiber.Ctx) error {
	var body dto.LectureRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLecture.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	lecture := body.ToModel()
	if err := ctrl.DB.Create(&lecture).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lecture")
	}

	return helper.JsonCreated(c, "Lecture Created Successfully", dto.ToLectureDTO(lecture))
}

func (ctrl *LectureController) GetAllLectures(c *fiber.Ctx) error {
	var lectures []model.LectureModel
	if err := ctrl.DB.Find(&lectures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve lectures")
	}

	resp := make([]dto.LectureDTO, 0, len(lectures))
	for _, m := range lectures {
		resp = append(resp, dto.ToLectureDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *LectureController) GetLectureByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lecture id")
	}

	var lecture model.LectureModel
	if err := ctrl.DB.First(&lecture, "lecture_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lecture Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve lecture")
	}

	return helper.JsonOK(c, "ok", dto.ToLectureDTO(lecture))
}

func (ctrl *LectureController) UpdateLecture(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lecture id")
	}

	var body dto.LectureRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLecture.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var lecture model.LectureModel
	if err := ctrl.DB.First(&lecture, "lecture_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lecture Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve lecture")
	}

	body.ApplyToModel(&lecture)
	if err := ctrl.DB.Save(&lecture).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lecture")
	}

	return helper.JsonUpdated(c, "Lecture Updated Successfully", dto.ToLectureDTO(lecture))
}

func (ctrl *LectureController) DeleteLecture(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lecture id")
	}

	var lecture model.LectureModel
	if err := ctrl.DB.First(&lecture, "lecture_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lecture Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve lecture")
	}

	if err := ctrl.DB.Delete(&lecture).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lecture")
	}

	return helper.JsonDeleted(c, "Lecture Deleted", fiber.Map{"lecture_id": id})
}
