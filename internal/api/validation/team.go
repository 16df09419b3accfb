package validation

import "strings"

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CreateTeamRequest mirrors the fields needed for create team validation.
type CreateTeamRequest struct {
	Token     string
	AccountID string
	Name      string
}

// ValidateCreateTeamRequest validates the fields of a create team request.
// Name is optional; the store fills in a placeholder.
func ValidateCreateTeamRequest(req CreateTeamRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Token) == "" {
		errs = append(errs, FieldError{Field: "token", Message: "token is required"})
	}

	if strings.TrimSpace(req.AccountID) == "" {
		errs = append(errs, FieldError{Field: "accountId", Message: "accountId is required"})
	}

	return errs
}
