package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/invitehub/invitehub/internal/api/response"
	"github.com/invitehub/invitehub/internal/api/validation"
	"github.com/invitehub/invitehub/internal/team"
)

type createTeamRequest struct {
	Token     string `json:"token"`
	AccountID string `json:"accountId"`
	Name      string `json:"name"`
}

// TeamHandler handles team CRUD endpoints.
type TeamHandler struct {
	repo team.Repository
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(repo team.Repository) *TeamHandler {
	return &TeamHandler{repo: repo}
}

// List handles GET /api/teams. The body is a bare array sorted by name,
// tokens included: this is a single-operator admin surface.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list teams", "error", err)
		response.Err(w, http.StatusInternalServerError, "failed to list teams")
		return
	}

	response.JSON(w, http.StatusOK, teams)
}

// Create handles POST /api/teams.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	fieldErrors := validation.ValidateCreateTeamRequest(validation.CreateTeamRequest{
		Token:     req.Token,
		AccountID: req.AccountID,
		Name:      req.Name,
	})
	if len(fieldErrors) > 0 {
		response.Err(w, http.StatusBadRequest, fieldErrors[0].Message)
		return
	}

	t := &team.Team{
		Token:     req.Token,
		AccountID: req.AccountID,
		Name:      req.Name,
	}

	if err := h.repo.Upsert(r.Context(), t); err != nil {
		slog.Error("failed to save team", "error", err)
		response.Err(w, http.StatusInternalServerError, "failed to save team")
		return
	}

	response.JSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"team":    t,
	})
}

// Delete handles DELETE /api/teams/{id}. Idempotent: deleting an unknown id
// still answers success.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.Err(w, http.StatusBadRequest, "team id is required")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete team", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "failed to delete team")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"success": true})
}
