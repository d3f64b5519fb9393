package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newRoleTestApp(role string, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals("userRole", role)
			}
			return c.Next()
		},
		OnlyRoles("no access", allowed...),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)
	return app
}

func TestRoleMiddlewareMissingRole(t *testing.T) {
	app := newRoleTestApp("", "admin")
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRoleMiddlewareForbidden(t *testing.T) {
	app := newRoleTestApp("user", "admin", "owner")
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestRoleMiddlewareAllowed(t *testing.T) {
	for _, role := range []string{"admin", "owner"} {
		app := newRoleTestApp(role, "admin", "owner")
		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200 for role %s, got %d", role, resp.StatusCode)
		}
	}
}
