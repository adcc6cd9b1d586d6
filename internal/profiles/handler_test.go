package profiles_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"studentdocs-backend/internal/bootstrap"
	"studentdocs-backend/internal/shared/config"
)

func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func TestProfileSaveAndGet(t *testing.T) {
	router := buildTestRouter(t)

	payload := map[string]any{
		"studentId":   "S-1001",
		"firstName":   "Asha",
		"lastName":    "Verma",
		"department":  "CSE",
		"yearOfStudy": 3,
		"cgpa":        8.4,
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	reqGet.Header.Set("X-Guest-Id", "test-guest")
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}

	var got struct {
		StudentID string  `json:"studentId"`
		FirstName string  `json:"firstName"`
		CGPA      float64 `json:"cgpa"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&got); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if got.StudentID != "S-1001" || got.FirstName != "Asha" || got.CGPA != 8.4 {
		t.Fatalf("unexpected profile: %+v", got)
	}

	// Another principal has no profile yet.
	reqOther := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	reqOther.Header.Set("X-Guest-Id", "other-guest")
	respOther := httptest.NewRecorder()
	router.ServeHTTP(respOther, reqOther)
	if respOther.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", respOther.Code)
	}
}

func TestProfileSaveValidation(t *testing.T) {
	router := buildTestRouter(t)

	body := []byte(`{"studentId":"","firstName":"","lastName":""}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
