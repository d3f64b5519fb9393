package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "parkirku_backend/internals/databases"
	"parkirku_backend/internals/features/parking/reservations/model"
	spotController "parkirku_backend/internals/features/parking/spots/controller"
)

func newReservationTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(database.MigrationModels()...); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	reservationCtrl := NewReservationController(db)
	managerCtrl := NewParkingReservationManagerController(db)
	spotCtrl := spotController.NewParkingSpotController(db)

	app := fiber.New()
	spot := app.Group("/api/parkingspot")
	spot.Post("/create", spotCtrl.CreateParkingSpot)
	spot.Delete("/:id", spotCtrl.DeleteParkingSpot)

	manager := app.Group("/api/parkingreservationmanager")
	manager.Post("/create", managerCtrl.CreateParkingReservationManager)
	manager.Delete("/:id", managerCtrl.DeleteParkingReservationManager)

	reservation := app.Group("/api/reservation")
	reservation.Post("/create", reservationCtrl.CreateReservation)
	reservation.Get("/get", reservationCtrl.GetAllReservations)
	reservation.Get("/:id", reservationCtrl.GetReservationByID)

	return app, db
}

func call(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
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

func createSpotAndManager(t *testing.T, app *fiber.App) (string, string) {
	t.Helper()
	status, out := call(t, app, "POST", "/api/parkingspot/create", fiber.Map{
		"parking_spot_location":       "Level 2 - B14",
		"parking_spot_size":           "compact",
		"parking_spot_price_per_hour": 2.5,
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on spot create, got %d", status)
	}
	spotData, _ := out["data"].(map[string]any)
	spotID, _ := spotData["parking_spot_id"].(string)

	status, out = call(t, app, "POST", "/api/parkingreservationmanager/create", fiber.Map{
		"reservation_manager_name":    "Front desk",
		"reservation_manager_contact": "desk@example.com",
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on manager create, got %d", status)
	}
	mgrData, _ := out["data"].(map[string]any)
	managerID, _ := mgrData["reservation_manager_id"].(string)

	return spotID, managerID
}

func TestReservationRoundTrip(t *testing.T) {
	app, _ := newReservationTestApp(t)
	spotID, managerID := createSpotAndManager(t, app)

	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	status, out := call(t, app, "POST", "/api/reservation/create", fiber.Map{
		"reservation_start_time":   start,
		"reservation_end_time":     start.Add(2 * time.Hour),
		"reservation_total_amount": 5.0,
		"reservation_spot_id":      spotID,
		"reservation_manager_id":   managerID,
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on reservation create, got %d", status)
	}
	if out["message"] != "Reservation Created Successfully" {
		t.Fatalf("unexpected message: %v", out["message"])
	}
	data, _ := out["data"].(map[string]any)
	if data["reservation_status"] != model.ReservationStatusPending {
		t.Fatalf("expected default status pending, got %v", data["reservation_status"])
	}
	id, _ := data["reservation_id"].(string)

	status, out = call(t, app, "GET", "/api/reservation/"+id, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on get, got %d", status)
	}
	data, _ = out["data"].(map[string]any)
	if data["reservation_spot_id"] != spotID {
		t.Fatalf("expected spot %s, got %v", spotID, data["reservation_spot_id"])
	}
}

func TestRejectsEndBeforeStart(t *testing.T) {
	app, _ := newReservationTestApp(t)
	spotID, managerID := createSpotAndManager(t, app)

	start := time.Now().Add(time.Hour).UTC()
	status, _ := call(t, app, "POST", "/api/reservation/create", fiber.Map{
		"reservation_start_time":   start,
		"reservation_end_time":     start.Add(-time.Hour),
		"reservation_total_amount": 5.0,
		"reservation_spot_id":      spotID,
		"reservation_manager_id":   managerID,
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 when end precedes start, got %d", status)
	}
}

func TestDeletingSpotCascadesReservations(t *testing.T) {
	app, db := newReservationTestApp(t)
	spotID, managerID := createSpotAndManager(t, app)

	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	status, _ := call(t, app, "POST", "/api/reservation/create", fiber.Map{
		"reservation_start_time":   start,
		"reservation_end_time":     start.Add(time.Hour),
		"reservation_total_amount": 2.5,
		"reservation_spot_id":      spotID,
		"reservation_manager_id":   managerID,
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on reservation create, got %d", status)
	}

	status, _ = call(t, app, "DELETE", "/api/parkingspot/"+spotID, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on spot delete, got %d", status)
	}

	var count int64
	if err := db.Model(&model.ReservationModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count reservations: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected reservations to cascade with the spot, %d left", count)
	}

	status, out := call(t, app, "GET", "/api/reservation/get", nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on list, got %d", status)
	}
	rows, _ := out["data"].([]any)
	if len(rows) != 0 {
		t.Fatalf("expected empty reservation list after cascade, got %d", len(rows))
	}
}

func TestDeletingManagerCascadesReservations(t *testing.T) {
	app, db := newReservationTestApp(t)
	spotID, managerID := createSpotAndManager(t, app)

	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	status, _ := call(t, app, "POST", "/api/reservation/create", fiber.Map{
		"reservation_start_time":   start,
		"reservation_end_time":     start.Add(time.Hour),
		"reservation_total_amount": 2.5,
		"reservation_spot_id":      spotID,
		"reservation_manager_id":   managerID,
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on reservation create, got %d", status)
	}

	status, _ = call(t, app, "DELETE", "/api/parkingreservationmanager/"+managerID, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on manager delete, got %d", status)
	}

	var count int64
	if err := db.Model(&model.ReservationModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count reservations: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected reservations to cascade with the manager, %d left", count)
	}

	status, out := call(t, app, "GET", "/api/reservation/get", nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on list, got %d", status)
	}
	rows, _ := out["data"].([]any)
	if len(rows) != 0 {
		t.Fatalf("expected empty reservation list after cascade, got %d", len(rows))
	}
}
