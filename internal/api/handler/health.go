package handler

import (
	"log/slog"
	"net/http"

	"github.com/invitehub/invitehub/internal/api/response"
	"github.com/invitehub/invitehub/internal/team"
)

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	repo team.Repository
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(repo team.Repository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

type healthData struct {
	Status     string `json:"status"`
	TeamsCount int    `json:"teamsCount"`
}

// ServeHTTP handles the health check request. An unreachable store reports
// degraded rather than failing the probe.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	teams, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("health check: failed to list teams", "error", err)
		response.JSON(w, http.StatusOK, healthData{Status: "degraded", TeamsCount: 0})
		return
	}

	response.JSON(w, http.StatusOK, healthData{Status: "ok", TeamsCount: len(teams)})
}
