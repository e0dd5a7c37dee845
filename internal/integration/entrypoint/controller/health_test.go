package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newHealthEngine(dbUp bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/health", NewHealthController(func() bool { return dbUp }).Check)
	return engine
}

func TestHealthCheck(t *testing.T) {
	t.Run("returns 200 when the database is reachable", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		newHealthEngine(true).ServeHTTP(recorder, req)

		if recorder.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", recorder.Code)
		}

		var body HealthResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.Status != "ok" || body.Database != "connected" {
			t.Errorf("unexpected body: %+v", body)
		}
		if body.Timestamp == "" {
			t.Error("expected a timestamp")
		}
	})

	t.Run("returns 503 when the database probe fails", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		newHealthEngine(false).ServeHTTP(recorder, req)

		if recorder.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", recorder.Code)
		}

		var body HealthResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.Database != "disconnected" {
			t.Errorf("expected disconnected database, got %+v", body)
		}
	})
}
