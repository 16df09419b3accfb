package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/invitehub/invitehub/internal/api/response"
	"github.com/invitehub/invitehub/internal/api/validation"
	"github.com/invitehub/invitehub/internal/invite"
)

type inviteRequest struct {
	Emails []string `json:"emails"`
	Role   string   `json:"role"`
	Resend bool     `json:"resend"`
	TeamID string   `json:"teamId"`
}

type inviteResponse struct {
	Success bool   `json:"success"`
	Team    string `json:"team"`
	Details any    `json:"details"`
}

// InviteHandler handles POST /api/invite: resolve a team, dispatch once,
// report whatever happened in a uniform envelope.
type InviteHandler struct {
	resolver *invite.Resolver
	sender   invite.Sender
}

// NewInviteHandler creates a new InviteHandler.
func NewInviteHandler(resolver *invite.Resolver, sender invite.Sender) *InviteHandler {
	return &InviteHandler{resolver: resolver, sender: sender}
}

// Send handles POST /api/invite.
func (h *InviteHandler) Send(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	// Fail fast: no outbound call is attempted for an invalid request.
	fieldErrors := validation.ValidateInviteRequest(validation.InviteRequest{Emails: req.Emails})
	if len(fieldErrors) > 0 {
		response.Err(w, http.StatusBadRequest, fieldErrors[0].Message)
		return
	}

	t, err := h.resolver.Resolve(r.Context(), req.TeamID)
	if err != nil {
		switch {
		case errors.Is(err, invite.ErrNoConfiguration):
			response.Failure(w, http.StatusInternalServerError, "", "No team configuration available")
		case errors.Is(err, invite.ErrAmbiguousSelection):
			response.Failure(w, http.StatusBadRequest, "", err.Error())
		default:
			slog.Error("failed to resolve team", "error", err)
			response.Failure(w, http.StatusInternalServerError, "", "failed to resolve team configuration")
		}
		return
	}

	outcome, err := h.sender.Dispatch(r.Context(), invite.Request{
		Emails: req.Emails,
		Role:   req.Role,
		Resend: req.Resend,
	}, t)
	if err != nil {
		slog.Error("invite dispatch failed", "error", err, "team", t.Name)
		response.Failure(w, http.StatusInternalServerError, t.Name, err.Error())
		return
	}

	status := http.StatusOK
	var details any
	if outcome.Success {
		if outcome.StatusCode != 0 {
			status = outcome.StatusCode
		}
		details = outcome.Data
	} else {
		status = outcome.StatusCode
		details = outcome
		slog.Warn("invite rejected upstream", "status", outcome.StatusCode, "team", t.Name)
	}

	response.JSON(w, status, inviteResponse{
		Success: outcome.Success,
		Team:    t.Name,
		Details: details,
	})
}
