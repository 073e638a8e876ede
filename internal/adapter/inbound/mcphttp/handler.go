package mcphttp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/i2y/vendorrisk/internal/domain"
)

// HealthReporter produces the system health report.
type HealthReporter interface {
	Execute(ctx context.Context) (string, error)
}

// Handlers struct holds dependencies for the HTTP handlers.
type Handlers struct {
	health  HealthReporter
	catalog *domain.Catalog
	logger  *slog.Logger
}

// NewHandlers creates a new Handlers struct.
func NewHandlers(
	health HealthReporter,
	catalog *domain.Catalog,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		health:  health,
		catalog: catalog,
		logger:  logger.With("component", "mcphttp_handler"),
	}
}

// RegisterAdminRoutes sets up the HTTP routes for admin endpoints.
func (h *Handlers) RegisterAdminRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.HandleFunc("GET /admin/catalog", h.handleCatalog)
}

// handleHealth implements GET /healthz
func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	report, err := h.health.Execute(r.Context())
	if err != nil {
		h.logger.Error("Health check failed", slog.Any("error", err))
		http.Error(w, fmt.Sprintf("Health Check Error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, report)
}

// handleCatalog implements GET /admin/catalog
func (h *Handlers) handleCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(h.catalog); err != nil {
		h.logger.Warn("Failed to encode catalog", slog.Any("error", err))
	}
}
