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
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"parkirku_backend/internals/configs"
	"parkirku_backend/internals/constants"
	database "parkirku_backend/internals/databases"
	userModel "parkirku_backend/internals/features/users/user/model"
	authMiddleware "parkirku_backend/internals/middlewares/auth"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(database.MigrationModels()...); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newAuthTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	db := newTestDB(t)
	ac := NewAuthController(db)

	app := fiber.New()
	app.Post("/api/auth/seed-roles", ac.SeedRoles)
	app.Post("/api/auth/register", ac.Register)
	app.Post("/api/auth/login", ac.Login)
	app.Post("/api/auth/refresh-token", ac.RefreshToken)
	app.Post("/api/auth/logout", ac.Logout)
	app.Post("/api/auth/me", ac.Me)

	protected := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	ownerGate := authMiddleware.OnlyRoles(
		constants.RoleErrorOwner("role management"),
		constants.OwnerOnly...,
	)
	protected.Post("/upate-role", ownerGate, ac.UpdateRole)
	protected.Get("/usernames", ac.GetUsernames)

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, headers map[string]string) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	_ = json.Unmarshal(data, &out)
	return resp.StatusCode, out
}

func signTestToken(t *testing.T, user userModel.UserModel) string {
	t.Helper()
	claims := jwt.MapClaims{
		"typ":       "access",
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return token
}

func TestSeedRolesIdempotent(t *testing.T) {
	app, db := newAuthTestApp(t)

	status, _ := postJSON(t, app, "/api/auth/seed-roles", fiber.Map{}, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on first seed, got %d", status)
	}
	status, _ = postJSON(t, app, "/api/auth/seed-roles", fiber.Map{}, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on second seed, got %d", status)
	}

	var count int64
	if err := db.Model(&userModel.RoleModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count roles: %v", err)
	}
	if count != int64(len(constants.AllRoles)) {
		t.Fatalf("expected %d roles, got %d", len(constants.AllRoles), count)
	}
}

func TestRegisterDuplicateConflict(t *testing.T) {
	app, db := newAuthTestApp(t)

	body := fiber.Map{"user_name": "driver1", "email": "driver1@example.com", "password": "supersecret"}
	status, _ := postJSON(t, app, "/api/auth/register", body, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on first register, got %d", status)
	}

	var before userModel.UserModel
	if err := db.First(&before, "user_name = ?", "driver1").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}

	status, out := postJSON(t, app, "/api/auth/register", body, nil)
	if status != fiber.StatusConflict {
		t.Fatalf("expected 409 on duplicate register, got %d", status)
	}
	if success, _ := out["success"].(bool); success {
		t.Fatalf("expected success=false on conflict")
	}

	var after userModel.UserModel
	if err := db.First(&after, "user_name = ?", "driver1").Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if after.Password != before.Password || after.Role != before.Role {
		t.Fatalf("duplicate register must not modify the existing account")
	}
	var count int64
	db.Model(&userModel.UserModel{}).Where("user_name = ?", "driver1").Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one driver1 row, got %d", count)
	}
}

func TestLoginDoesNotDiscloseWhichFieldFailed(t *testing.T) {
	app, _ := newAuthTestApp(t)

	postJSON(t, app, "/api/auth/register", fiber.Map{
		"user_name": "driver2", "email": "driver2@example.com", "password": "supersecret",
	}, nil)

	status, wrongPw := postJSON(t, app, "/api/auth/login", fiber.Map{
		"user_name": "driver2", "password": "wrongpassword",
	}, nil)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", status)
	}
	if _, ok := wrongPw["access_token"]; ok {
		t.Fatalf("failed login must not return a token")
	}

	status, unknownUser := postJSON(t, app, "/api/auth/login", fiber.Map{
		"user_name": "nobody", "password": "wrongpassword",
	}, nil)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", status)
	}
	if wrongPw["message"] != unknownUser["message"] {
		t.Fatalf("401 message must not reveal whether the user exists: %q vs %q",
			wrongPw["message"], unknownUser["message"])
	}
}

func TestLoginReturnsTokenWithRoleClaim(t *testing.T) {
	app, _ := newAuthTestApp(t)

	postJSON(t, app, "/api/auth/register", fiber.Map{
		"user_name": "driver3", "email": "driver3@example.com", "password": "supersecret",
	}, nil)

	status, out := postJSON(t, app, "/api/auth/login", fiber.Map{
		"user_name": "driver3", "password": "supersecret",
	}, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on login, got %d", status)
	}

	data, _ := out["data"].(map[string]any)
	tokenStr, _ := data["access_token"].(string)
	if tokenStr == "" {
		t.Fatalf("expected a non-empty access_token")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenStr, claims, func(tk *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims["role"] != constants.DefaultRole {
		t.Fatalf("expected role claim %q, got %v", constants.DefaultRole, claims["role"])
	}
	if claims["user_name"] != "driver3" {
		t.Fatalf("expected user_name claim driver3, got %v", claims["user_name"])
	}
}

func TestUpdateRoleRequiresOwner(t *testing.T) {
	app, db := newAuthTestApp(t)

	postJSON(t, app, "/api/auth/register", fiber.Map{
		"user_name": "plainuser", "email": "plain@example.com", "password": "supersecret",
	}, nil)
	var plain userModel.UserModel
	if err := db.First(&plain, "user_name = ?", "plainuser").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}

	nonOwnerToken := signTestToken(t, plain)
	status, _ := postJSON(t, app, "/api/auth/upate-role",
		fiber.Map{"user_name": "plainuser", "role": "manager"},
		map[string]string{"Authorization": "Bearer " + nonOwnerToken})
	if status != fiber.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", status)
	}

	var unchanged userModel.UserModel
	db.First(&unchanged, "user_name = ?", "plainuser")
	if unchanged.Role != constants.DefaultRole {
		t.Fatalf("role must stay %q after forbidden call, got %q", constants.DefaultRole, unchanged.Role)
	}

	owner := plain
	owner.Role = constants.RoleOwner
	ownerToken := signTestToken(t, owner)
	status, _ = postJSON(t, app, "/api/auth/upate-role",
		fiber.Map{"user_name": "plainuser", "role": "manager"},
		map[string]string{"Authorization": "Bearer " + ownerToken})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 for owner, got %d", status)
	}

	db.First(&unchanged, "user_name = ?", "plainuser")
	if unchanged.Role != constants.RoleManager {
		t.Fatalf("expected role manager after owner update, got %q", unchanged.Role)
	}
}

// loginForCookies logs in and returns the refresh token issued in the
// Set-Cookie header, which the body never carries.
func loginForCookies(t *testing.T, app *fiber.App, userName, password string) string {
	t.Helper()
	raw, _ := json.Marshal(fiber.Map{"user_name": userName, "password": password})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on login, got %d", resp.StatusCode)
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == "refresh_token" {
			return ck.Value
		}
	}
	t.Fatalf("login response did not set a refresh_token cookie")
	return ""
}

func TestMeReturnsProfileForValidToken(t *testing.T) {
	app, db := newAuthTestApp(t)

	postJSON(t, app, "/api/auth/register", fiber.Map{
		"user_name": "driver4", "email": "driver4@example.com", "password": "supersecret",
	}, nil)
	var user userModel.UserModel
	if err := db.First(&user, "user_name = ?", "driver4").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}

	status, out := postJSON(t, app, "/api/auth/me",
		fiber.Map{"token": signTestToken(t, user)}, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 for a valid token, got %d", status)
	}
	data, _ := out["data"].(map[string]any)
	if data["user_name"] != "driver4" {
		t.Fatalf("expected user_name driver4, got %v", data["user_name"])
	}
	if data["role"] != constants.DefaultRole {
		t.Fatalf("expected role %q, got %v", constants.DefaultRole, data["role"])
	}
}

func TestLogoutRevokesAccessToken(t *testing.T) {
	app, db := newAuthTestApp(t)

	postJSON(t, app, "/api/auth/register", fiber.Map{
		"user_name": "driver5", "email": "driver5@example.com", "password": "supersecret",
	}, nil)
	var user userModel.UserModel
	if err := db.First(&user, "user_name = ?", "driver5").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	token := signTestToken(t, user)
	auth := map[string]string{"Authorization": "Bearer " + token}

	status, _ := postJSON(t, app, "/api/auth/me", fiber.Map{"token": token}, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 before logout, got %d", status)
	}

	status, _ = postJSON(t, app, "/api/auth/logout", fiber.Map{}, auth)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on logout, got %d", status)
	}

	// The revoked token must be dead everywhere it could be honored.
	status, _ = postJSON(t, app, "/api/auth/me", fiber.Map{"token": token}, nil)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for a revoked token at /me, got %d", status)
	}
	req := httptest.NewRequest("GET", "/api/auth/usernames", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for a revoked token on protected routes, got %d", resp.StatusCode)
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	app, db := newAuthTestApp(t)

	postJSON(t, app, "/api/auth/register", fiber.Map{
		"user_name": "driver6", "email": "driver6@example.com", "password": "supersecret",
	}, nil)
	oldRefresh := loginForCookies(t, app, "driver6", "supersecret")

	status, out := postJSON(t, app, "/api/auth/refresh-token",
		fiber.Map{"refresh_token": oldRefresh}, nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on refresh, got %d", status)
	}
	data, _ := out["data"].(map[string]any)
	if tokenStr, _ := data["access_token"].(string); tokenStr == "" {
		t.Fatalf("refresh must issue a new access_token")
	}

	// The used refresh token is rotated out, not reusable.
	status, _ = postJSON(t, app, "/api/auth/refresh-token",
		fiber.Map{"refresh_token": oldRefresh}, nil)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 when replaying a rotated refresh token, got %d", status)
	}

	var count int64
	if err := db.Table("refresh_tokens").Count(&count).Error; err != nil {
		t.Fatalf("count refresh tokens: %v", err)
	}
	if count != 1 {
		t.Fatalf("rotation must keep exactly one stored refresh token, got %d", count)
	}
}

func TestMeRejectsGarbageTokenWithout5xx(t *testing.T) {
	app, _ := newAuthTestApp(t)

	for _, token := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		status, _ := postJSON(t, app, "/api/auth/me", fiber.Map{"token": token}, nil)
		if status != fiber.StatusUnauthorized {
			t.Fatalf("expected 401 for token %q, got %d", token, status)
		}
	}
}

func TestProtectedRouteRejectsMissingToken(t *testing.T) {
	app, _ := newAuthTestApp(t)

	req := httptest.NewRequest("GET", "/api/auth/usernames", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
}
