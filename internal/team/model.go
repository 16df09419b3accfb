package team

// DefaultName is used when a team is created without a display name.
const DefaultName = "Unnamed Team"

// Team is a stored credential profile: the bearer token and account id used
// to authorize invite dispatch against the upstream provider.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AccountID string `json:"accountId"`
	Token     string `json:"token"`
}
