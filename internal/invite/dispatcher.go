package invite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/invitehub/invitehub/internal/team"
)

// DefaultRole is applied when an invite request does not specify a role.
const DefaultRole = "reader"

// Request is one batch of invitations to send. Emails must be non-empty;
// the caller boundary validates that before Dispatch is invoked.
type Request struct {
	Emails []string
	Role   string
	Resend bool
}

// Outcome is the normalized result of one upstream call. A non-success
// status from the provider is a reportable business outcome, not an error:
// Success is false, StatusCode and Error carry what the provider said.
type Outcome struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// Sender performs the single outbound authorized invite call.
type Sender interface {
	Dispatch(ctx context.Context, req Request, t *team.Team) (*Outcome, error)
}

// Dispatcher is a stateless single-shot wrapper around the upstream invite
// endpoint. One attempt per invocation; retries are the caller's problem.
type Dispatcher struct {
	baseURL string
	client  *http.Client
}

// NewDispatcher creates a Dispatcher for the given upstream API root.
// A nil client falls back to http.DefaultClient.
func NewDispatcher(baseURL string, client *http.Client) *Dispatcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Dispatcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type invitePayload struct {
	Emails []string `json:"emails"`
	Role   string   `json:"role"`
	Resend bool     `json:"resend"`
}

// Dispatch issues one authorized POST to the upstream invite endpoint for
// the team's account. A transport-level failure (connection, DNS, body read)
// is returned as an error; anything the provider answered, success or not,
// comes back as an Outcome with nil error.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request, t *team.Team) (*Outcome, error) {
	role := req.Role
	if role == "" {
		role = DefaultRole
	}

	body, err := json.Marshal(invitePayload{
		Emails: req.Emails,
		Role:   role,
		Resend: req.Resend,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding invite payload: %w", err)
	}

	url := fmt.Sprintf("%s/accounts/%s/invites", d.baseURL, t.AccountID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building invite request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+t.Token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling invite endpoint: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading invite response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Outcome{
			Success:    false,
			StatusCode: resp.StatusCode,
			Error:      string(respBody),
		}, nil
	}

	data := json.RawMessage(respBody)
	if !json.Valid(respBody) {
		// Some providers answer 2xx with an empty or non-JSON body.
		data, _ = json.Marshal(string(respBody))
	}

	return &Outcome{
		Success:    true,
		StatusCode: resp.StatusCode,
		Data:       data,
	}, nil
}
