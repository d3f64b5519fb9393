package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "parkirku_backend/internals/databases"
	"parkirku_backend/internals/features/academics/lectures/model"
)

func newLectureTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(database.MigrationModels()...); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	lecturerCtrl := NewLecturerController(db)
	lectureCtrl := NewLectureController(db)

	app := fiber.New()
	lecturer := app.Group("/api/lecturer")
	lecturer.Post("/create", lecturerCtrl.CreateLecturer)
	lecturer.Get("/:id", lecturerCtrl.GetLecturerByID)
	lecturer.Delete("/:id", lecturerCtrl.DeleteLecturer)

	lecture := app.Group("/api/lecture")
	lecture.Post("/create", lectureCtrl.CreateLecture)
	lecture.Get("/get", lectureCtrl.GetAllLectures)

	return app, db
}

func send(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	_ = json.Unmarshal(data, &out)
	return resp.StatusCode, out
}

func TestLectureRequiresLecturer(t *testing.T) {
	app, _ := newLectureTestApp(t)

	status, _ := send(t, app, "POST", "/api/lecture/create", fiber.Map{
		"lecture_name": "Orphan lecture",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without lecturer_id, got %d", status)
	}
}

func TestDeletingLecturerCascadesLectures(t *testing.T) {
	app, db := newLectureTestApp(t)

	status, out := send(t, app, "POST", "/api/lecturer/create", fiber.Map{
		"lecturer_name":       "Dr. Krasniqi",
		"lecturer_department": "Computer Science",
		"lecturer_email":      "krasniqi@example.edu",
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on lecturer create, got %d", status)
	}
	data, _ := out["data"].(map[string]any)
	lecturerID, _ := data["lecturer_id"].(string)

	for _, name := range []string{"Databases", "Operating Systems"} {
		status, _ = send(t, app, "POST", "/api/lecture/create", fiber.Map{
			"lecture_name": name,
			"lecturer_id":  lecturerID,
		})
		if status != fiber.StatusOK {
			t.Fatalf("expected 200 on lecture create, got %d", status)
		}
	}

	status, _ = send(t, app, "DELETE", "/api/lecturer/"+lecturerID, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on lecturer delete, got %d", status)
	}

	var count int64
	if err := db.Model(&model.LectureModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count lectures: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected lectures to cascade with the lecturer, %d left", count)
	}

	status, _ = send(t, app, "GET", "/api/lecturer/"+lecturerID, nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", status)
	}
}
