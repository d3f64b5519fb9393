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
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "parkirku_backend/internals/databases"
	"parkirku_backend/internals/features/commerce/products/model"
)

func newProductTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(database.MigrationModels()...); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	categoryCtrl := NewCategoryController(db)
	productCtrl := NewProductController(db)

	app := fiber.New()
	category := app.Group("/api/category")
	category.Post("/create", categoryCtrl.CreateCategory)
	category.Get("/get", categoryCtrl.GetAllCategories)
	category.Get("/:id", categoryCtrl.GetCategoryByID)
	category.Put("/:id", categoryCtrl.UpdateCategory)
	category.Delete("/:id", categoryCtrl.DeleteCategory)

	product := app.Group("/api/product")
	product.Post("/create", productCtrl.CreateProduct)
	product.Get("/get", productCtrl.GetAllProducts)
	product.Get("/:id", productCtrl.GetProductByID)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
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

func TestCreateCategoryThenList(t *testing.T) {
	app, _ := newProductTestApp(t)

	status, out := doJSON(t, app, "POST", "/api/category/create", fiber.Map{
		"category_name":        "Electronics",
		"category_description": "Gadgets and accessories",
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on create, got %d", status)
	}
	if out["message"] != "Category Created Successfully" {
		t.Fatalf("unexpected create message: %v", out["message"])
	}

	status, out = doJSON(t, app, "GET", "/api/category/get", nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on list, got %d", status)
	}
	rows, _ := out["data"].([]any)
	if len(rows) != 1 {
		t.Fatalf("expected 1 category, got %d", len(rows))
	}
	first, _ := rows[0].(map[string]any)
	if first["category_name"] != "Electronics" {
		t.Fatalf("expected Electronics in list, got %v", first["category_name"])
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	app, _ := newProductTestApp(t)

	status, out := doJSON(t, app, "GET", "/api/category/"+uuid.NewString(), nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if out["message"] != "Category Not Found" {
		t.Fatalf("unexpected message: %v", out["message"])
	}
}

func TestUpdateMissingCategoryCreatesNothing(t *testing.T) {
	app, db := newProductTestApp(t)

	status, _ := doJSON(t, app, "PUT", "/api/category/"+uuid.NewString(), fiber.Map{
		"category_name": "Ghost",
	})
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 on update of missing row, got %d", status)
	}

	var count int64
	if err := db.Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if count != 0 {
		t.Fatalf("update of a missing row must not create one, found %d rows", count)
	}
}

func TestUpdateCategoryOverwritesAllFields(t *testing.T) {
	app, db := newProductTestApp(t)

	status, out := doJSON(t, app, "POST", "/api/category/create", fiber.Map{
		"category_name":        "Books",
		"category_description": "Paper things",
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on create, got %d", status)
	}
	data, _ := out["data"].(map[string]any)
	id, _ := data["category_id"].(string)
	if id == "" {
		t.Fatalf("expected category_id in create response")
	}

	// Omitting the description must blank it, not keep the old value.
	status, _ = doJSON(t, app, "PUT", "/api/category/"+id, fiber.Map{
		"category_name": "Books & Media",
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on update, got %d", status)
	}

	var row model.CategoryModel
	if err := db.First(&row, "category_id = ?", id).Error; err != nil {
		t.Fatalf("reload category: %v", err)
	}
	if row.CategoryName != "Books & Media" {
		t.Fatalf("expected updated name, got %q", row.CategoryName)
	}
	if row.CategoryDescription != "" {
		t.Fatalf("expected omitted description to be blanked, got %q", row.CategoryDescription)
	}
}

func TestDeleteCategoryThenGet(t *testing.T) {
	app, _ := newProductTestApp(t)

	status, out := doJSON(t, app, "POST", "/api/category/create", fiber.Map{
		"category_name": "Temporary",
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on create, got %d", status)
	}
	data, _ := out["data"].(map[string]any)
	id, _ := data["category_id"].(string)

	status, out = doJSON(t, app, "DELETE", "/api/category/"+id, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", status)
	}
	if out["message"] != "Category Deleted" {
		t.Fatalf("unexpected delete message: %v", out["message"])
	}

	status, _ = doJSON(t, app, "GET", "/api/category/"+id, nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", status)
	}
}

func TestProductRoundTrip(t *testing.T) {
	app, _ := newProductTestApp(t)

	_, catOut := doJSON(t, app, "POST", "/api/category/create", fiber.Map{
		"category_name": "Accessories",
	})
	catData, _ := catOut["data"].(map[string]any)
	catID, _ := catData["category_id"].(string)

	status, out := doJSON(t, app, "POST", "/api/product/create", fiber.Map{
		"product_name":  "Dashcam",
		"product_price": 129.90,
		"product_brand": "Viofo",
		"category_id":   catID,
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on product create, got %d", status)
	}
	if out["message"] != "Product Created Successfully" {
		t.Fatalf("unexpected message: %v", out["message"])
	}
	data, _ := out["data"].(map[string]any)
	id, _ := data["product_id"].(string)

	status, out = doJSON(t, app, "GET", "/api/product/"+id, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on get, got %d", status)
	}
	data, _ = out["data"].(map[string]any)
	if data["product_name"] != "Dashcam" {
		t.Fatalf("expected Dashcam, got %v", data["product_name"])
	}
	if data["category_id"] != catID {
		t.Fatalf("expected category %s, got %v", catID, data["category_id"])
	}
}
