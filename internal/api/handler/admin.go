package handler

import (
	_ "embed"
	"net/http"
)

//go:embed admin.html
var adminPage []byte

// AdminHandler serves the embedded single-page admin UI.
type AdminHandler struct{}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// ServeHTTP serves the admin page.
func (h *AdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(adminPage)
}
