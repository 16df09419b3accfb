package validation

import "strings"

// InviteRequest mirrors the fields needed for invite validation.
type InviteRequest struct {
	Emails []string
}

// ValidateInviteRequest validates the fields of an invite request. The
// emails list must be present, non-empty, and free of blank entries.
func ValidateInviteRequest(req InviteRequest) []FieldError {
	var errs []FieldError

	if len(req.Emails) == 0 {
		errs = append(errs, FieldError{Field: "emails", Message: "emails must be a non-empty array"})
		return errs
	}

	for _, email := range req.Emails {
		if strings.TrimSpace(email) == "" {
			errs = append(errs, FieldError{Field: "emails", Message: "emails must not contain blank entries"})
			break
		}
	}

	return errs
}
