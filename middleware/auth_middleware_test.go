package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/skillbridge/youth_platform/auth"
)

func testApp(t *testing.T, guards ...fiber.Handler) *fiber.App {
	t.Helper()
	app := fiber.New()
	chain := append([]fiber.Handler{Protected()}, guards...)
	chain = append(chain, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/secure", chain...)
	return app
}

func issueTestToken(t *testing.T, secret, role, ptype string) string {
	t.Helper()
	token, err := auth.IssueToken(&auth.Principal{
		ID:       uuid.New(),
		Username: "tester",
		Role:     role,
		Type:     ptype,
	}, secret, time.Hour)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}
	return token
}

func TestProtectedRejectsMissingAndBadTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	app := testApp(t)

	tests := []struct {
		name   string
		header string
	}{
		{"no token", ""},
		{"malformed token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/secure", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != fiber.StatusUnauthorized {
				t.Errorf("status = %d, want 401", resp.StatusCode)
			}
		})
	}
}

func TestProtectedAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	app := testApp(t)

	token := issueTestToken(t, "middleware-test-secret", "student", auth.TypeUser)
	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRoleRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	app := testApp(t, RoleRequired("admin", "superadmin"))

	tests := []struct {
		role       string
		wantStatus int
	}{
		{"admin", fiber.StatusOK},
		{"superadmin", fiber.StatusOK},
		{"student", fiber.StatusForbidden},
		{"company", fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			token := issueTestToken(t, "middleware-test-secret", tt.role, auth.TypeUser)
			req := httptest.NewRequest("GET", "/secure", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("role %s: status = %d, want %d", tt.role, resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestTypeRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	app := testApp(t, TypeRequired(auth.TypeCompany))

	companyToken := issueTestToken(t, "middleware-test-secret", "company", auth.TypeCompany)
	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+companyToken)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("company type: status = %d, want 200", resp.StatusCode)
	}

	userToken := issueTestToken(t, "middleware-test-secret", "student", auth.TypeUser)
	req = httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("user type: status = %d, want 403", resp.StatusCode)
	}
}
