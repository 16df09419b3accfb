package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Err writes a plain error response: {"error": message}.
func Err(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Failure writes an invite-style failure response:
// {"success": false, "error": message} plus the team name when known.
func Failure(w http.ResponseWriter, status int, teamName, message string) {
	body := map[string]any{
		"success": false,
		"error":   message,
	}
	if teamName != "" {
		body["team"] = teamName
	}
	JSON(w, status, body)
}
