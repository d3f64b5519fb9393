package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/constants"
	"parkirku_backend/internals/features/academics/lectures/controller"
	authMiddleware "parkirku_backend/internals/middlewares/auth"
)

func LectureRoutes(api fiber.Router, db *gorm.DB) {
	lecturerCtrl := controller.NewLecturerController(db)
	lectureCtrl := controller.NewLectureController(db)

	adminGate := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("lecturers & lectures"),
		constants.AdminAndAbove...,
	)

	lecturer := api.Group("/lecturer")
	lecturer.Post("/create", adminGate, lecturerCtrl.CreateLecturer)
	lecturer.Get("/get", lecturerCtrl.GetAllLecturers)
	lecturer.Get("/:id", lecturerCtrl.GetLecturerByID)
	lecturer.Put("/:id", adminGate, lecturerCtrl.UpdateLecturer)
	lecturer.Delete("/:id", adminGate, lecturerCtrl.DeleteLecturer)

	lecture := api.Group("/lecture")
	lecture.Post("/create", adminGate, lectureCtrl.CreateLecture)
	lecture.Get("/get", lectureCtrl.GetAllLectures)
	lecture.Get("/:id", lectureCtrl.GetLectureByID)
	lecture.Put("/:id", adminGate, lectureCtrl.UpdateLecture)
	lecture.Delete("/:id", adminGate, lectureCtrl.DeleteLecture)
}
