package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func setupHandler() (*echo.Echo, *mockRepo) {
	e := echo.New()
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	h.RegisterRoutes(e.Group("/api"))
	return e, repo
}

func TestHandlerCreate(t *testing.T) {
	e, _ := setupHandler()

	body := `{"name":"Jane Roe","age":34,"gender":"female","phone":"555-0101","email":"jane@example.com","registrationDate":"2025-01-10T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patient", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var got Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Name != "Jane Roe" {
		t.Errorf("name = %q, want %q", got.Name, "Jane Roe")
	}
}

func TestHandlerCreateInvalid(t *testing.T) {
	e, _ := setupHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/patient", strings.NewReader(`{"name":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandlerCreateMany(t *testing.T) {
	e, repo := setupHandler()

	body := `[
		{"name":"A","age":20,"gender":"male","phone":"1","email":"a@x.com","registrationDate":"2025-01-10T00:00:00Z"},
		{"name":"B","age":30,"gender":"female","phone":"2","email":"b@x.com","registrationDate":"2025-01-11T00:00:00Z"}
	]`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if len(repo.patients) != 2 {
		t.Fatalf("persisted = %d, want 2", len(repo.patients))
	}
	var resp struct {
		Message string     `json:"message"`
		Data    []*Patient `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("data = %d, want 2", len(resp.Data))
	}
}

func TestHandlerCreateManyRejectsBadBatch(t *testing.T) {
	e, repo := setupHandler()

	// Second record is invalid; nothing from the batch may persist.
	body := `[
		{"name":"A","age":20,"gender":"male","phone":"1","email":"a@x.com","registrationDate":"2025-01-10T00:00:00Z"},
		{"name":"","age":30,"gender":"female","phone":"2","email":"b@x.com","registrationDate":"2025-01-11T00:00:00Z"}
	]`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(repo.patients) != 0 {
		t.Fatalf("persisted = %d, want 0", len(repo.patients))
	}
}

func TestHandlerCreateManyNullElement(t *testing.T) {
	e, repo := setupHandler()

	body := `[
		{"name":"A","age":20,"gender":"male","phone":"1","email":"a@x.com","registrationDate":"2025-01-10T00:00:00Z"},
		null
	]`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(repo.patients) != 0 {
		t.Fatalf("persisted = %d, want 0", len(repo.patients))
	}
}

func TestHandlerCreateManyEmptyBody(t *testing.T) {
	e, _ := setupHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(`[]`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandlerGetNotFound(t *testing.T) {
	e, _ := setupHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/patients/6f1f7a0e-76a6-4f3e-9c2e-2d7f8a3b1c4d", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandlerGetBadID(t *testing.T) {
	e, _ := setupHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/patients/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandlerListEmpty(t *testing.T) {
	e, _ := setupHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("body = %q, want empty array", got)
	}
}
