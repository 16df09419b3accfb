package handler

import (
	"log/slog"
	"net/http"

	"github.com/invitehub/invitehub/internal/api/response"
	"github.com/invitehub/invitehub/internal/invite"
)

type configData struct {
	Token     string `json:"token"`
	AccountID string `json:"accountId"`
	HasConfig bool   `json:"hasConfig"`
}

// ConfigHandler handles the legacy GET /api/config read: the credentials an
// invite would use today if nothing were selected explicitly.
type ConfigHandler struct {
	resolver *invite.Resolver
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(resolver *invite.Resolver) *ConfigHandler {
	return &ConfigHandler{resolver: resolver}
}

// Get handles GET /api/config.
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.resolver.Default(r.Context())
	if err != nil {
		slog.Error("failed to resolve default configuration", "error", err)
		response.Err(w, http.StatusInternalServerError, "failed to load configuration")
		return
	}

	data := configData{}
	if t != nil {
		data = configData{
			Token:     t.Token,
			AccountID: t.AccountID,
			HasConfig: true,
		}
	}

	response.JSON(w, http.StatusOK, data)
}
