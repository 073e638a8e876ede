package mcphttp_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/i2y/vendorrisk/internal/adapter/inbound/mcphttp"
	"github.com/i2y/vendorrisk/internal/domain"
)

// MockHealthReporter is a mock implementation of mcphttp.HealthReporter.
type MockHealthReporter struct {
	mock.Mock
}

func (m *MockHealthReporter) Execute(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func newServer(t *testing.T, health mcphttp.HealthReporter) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mcphttp.NewHandlers(health, domain.DefaultCatalog(), logger).RegisterAdminRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name       string
		report     string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Healthy",
			report:     "VENDOR RISK ASSESSMENT - SYSTEM HEALTH",
			wantStatus: http.StatusOK,
			wantBody:   "VENDOR RISK ASSESSMENT - SYSTEM HEALTH\n",
		},
		{
			name:       "Failure",
			err:        errors.New("failed to list tools: gone"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Health Check Error: failed to list tools: gone\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			health := new(MockHealthReporter)
			health.On("Execute", mock.Anything).Return(tt.report, tt.err).Once()
			srv := newServer(t, health)

			resp, err := http.Get(srv.URL + "/healthz")
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantBody, string(body))
			health.AssertExpectations(t)
		})
	}
}

func TestHandleHealth_MethodNotAllowed(t *testing.T) {
	health := new(MockHealthReporter)
	srv := newServer(t, health)

	resp, err := http.Post(srv.URL+"/healthz", "text/plain", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	health.AssertNotCalled(t, "Execute", mock.Anything)
}

func TestHandleCatalog(t *testing.T) {
	srv := newServer(t, new(MockHealthReporter))

	resp, err := http.Get(srv.URL + "/admin/catalog")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got domain.Catalog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, *domain.DefaultCatalog(), got)
}
