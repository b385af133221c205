package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kavia-common/gaming-database/internal/health"
)

// MockChecker mocks the health.Checker interface
type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) Check(ctx context.Context) health.Report {
	args := m.Called(ctx)
	return args.Get(0).(health.Report)
}

func TestHandleHealth(t *testing.T) {
	t.Run("Healthy Database", func(t *testing.T) {
		checker := &MockChecker{}
		checker.On("Check", mock.Anything).Return(health.Report{Healthy: true, Detail: "ok"})

		req := httptest.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()

		handler := HandleHealth(checker, "gaming_database", "/data/myapp.db")
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var body HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "gaming_database", body.Service)
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, "sqlite", body.Database)
		assert.Equal(t, "ok", body.Detail)
		assert.Equal(t, "/data/myapp.db", body.DBPath)
		assert.InDelta(t, time.Now().Unix(), body.Time, 5)
		checker.AssertExpectations(t)
	})

	t.Run("Opened But Not Verified", func(t *testing.T) {
		// Opening the file without a clean quick_check result still
		// counts as healthy.
		checker := &MockChecker{}
		checker.On("Check", mock.Anything).Return(health.Report{Healthy: true, Detail: "opened"})

		req := httptest.NewRequest("GET", "/live", nil)
		w := httptest.NewRecorder()

		handler := HandleHealth(checker, "gaming_database", "/data/myapp.db")
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"detail":"opened"`)
	})

	t.Run("Database Unavailable", func(t *testing.T) {
		checker := &MockChecker{}
		checker.On("Check", mock.Anything).Return(health.Report{
			Healthy: false,
			Detail:  "SQLite database file not found at /data/myapp.db",
		})

		req := httptest.NewRequest("GET", "/ready", nil)
		w := httptest.NewRecorder()

		handler := HandleHealth(checker, "gaming_database", "/data/myapp.db")
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var body HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "unavailable", body.Status)
		assert.Contains(t, body.Detail, "not found")
		checker.AssertExpectations(t)
	})
}
