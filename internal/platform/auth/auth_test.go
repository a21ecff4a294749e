package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestIssueAndVerify(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)
	token, err := ti.Issue("admin@hospital.com", "Admin User", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ti.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "admin@hospital.com" {
		t.Errorf("expected subject to round trip, got %q", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Errorf("expected role admin, got %q", claims.Role)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	token, _ := NewTokenIssuer("secret-a", time.Hour).Issue("a@b.c", "A", "admin")
	if _, err := NewTokenIssuer("secret-b", time.Hour).Verify(token); err == nil {
		t.Error("expected error for token signed with different secret")
	}
}

func TestVerify_Expired(t *testing.T) {
	ti := NewTokenIssuer("test-secret", -time.Minute)
	// NewTokenIssuer clamps non-positive TTLs, so build a short-lived issuer
	// manually for the expiry case.
	ti.ttl = -time.Minute
	token, _ := ti.Issue("a@b.c", "A", "admin")
	if _, err := ti.Verify(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestJWTMiddleware(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)
	token, _ := ti.Issue("admin@hospital.com", "Admin User", "admin")

	e := echo.New()
	called := false
	handler := JWTMiddleware(ti)(func(c echo.Context) error {
		called = true
		if got := UserEmailFromContext(c.Request().Context()); got != "admin@hospital.com" {
			t.Errorf("expected user email on context, got %q", got)
		}
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected handler to be called")
	}
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)
	e := echo.New()
	handler := JWTMiddleware(ti)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	err := handler(e.NewContext(req, httptest.NewRecorder()))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	h := NewHandler(NewTokenIssuer("test-secret", time.Hour), "admin@hospital.com", "password")
	e := echo.New()

	body := `{"email":"admin@hospital.com","password":"password"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.Role != "admin" {
		t.Errorf("expected role admin, got %q", resp.Role)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	h := NewHandler(NewTokenIssuer("test-secret", time.Hour), "admin@hospital.com", "password")
	e := echo.New()

	body := `{"email":"admin@hospital.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}
