// internal/api/handler/dashboard.go
package handler

import (
	"log/slog"
	"net/http"

	"cardwallet/internal/api/types"
	"cardwallet/internal/service"
)

// DashboardHandler serves the home screen summary.
type DashboardHandler struct {
	responder
	service service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc service.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// GetDashboard handles the home screen request.
// GET /dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.GetDashboard(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, types.NewDashboardResponse(dashboard))
}
