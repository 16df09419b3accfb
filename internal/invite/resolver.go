package invite

import (
	"context"
	"errors"
	"fmt"

	"github.com/invitehub/invitehub/internal/team"
)

// Sentinel identity of the environment fallback record.
const (
	FallbackID   = "env"
	FallbackName = "Environment"
)

// ErrNoConfiguration is returned when no team is stored and the environment
// fallback credentials are absent.
var ErrNoConfiguration = errors.New("no team configuration available")

// ErrAmbiguousSelection is returned when several teams are stored and the
// request named none of them.
var ErrAmbiguousSelection = errors.New("multiple teams configured; a valid teamId is required")

// Resolver decides which team record authorizes a given invite request.
type Resolver struct {
	store        team.Repository
	envToken     string
	envAccountID string
}

// NewResolver creates a Resolver over the given store. envToken and
// envAccountID are the environment fallback credentials; either may be empty,
// in which case no fallback record exists.
func NewResolver(store team.Repository, envToken, envAccountID string) *Resolver {
	return &Resolver{store: store, envToken: envToken, envAccountID: envAccountID}
}

// Resolve picks the team record for a request, in order: the stored record
// matching teamID, the sole stored record when exactly one exists, or the
// environment fallback when nothing is stored. The fallback never overrides
// stored teams: an operator who created a team always gets that team, no
// matter what the environment carries.
func (r *Resolver) Resolve(ctx context.Context, teamID string) (*team.Team, error) {
	teams, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}

	if len(teams) > 0 {
		for i := range teams {
			if teams[i].ID == teamID {
				return &teams[i], nil
			}
		}
		if len(teams) == 1 {
			return &teams[0], nil
		}
		return nil, ErrAmbiguousSelection
	}

	if fb, ok := r.fallback(); ok {
		return fb, nil
	}

	return nil, ErrNoConfiguration
}

// Default returns the configuration a fresh admin page should show: the
// first stored team in name order, else the environment fallback.
func (r *Resolver) Default(ctx context.Context) (*team.Team, error) {
	teams, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}

	if len(teams) > 0 {
		return &teams[0], nil
	}
	if fb, ok := r.fallback(); ok {
		return fb, nil
	}
	return nil, nil
}

func (r *Resolver) fallback() (*team.Team, bool) {
	if r.envToken == "" || r.envAccountID == "" {
		return nil, false
	}
	return &team.Team{
		ID:        FallbackID,
		Name:      FallbackName,
		AccountID: r.envAccountID,
		Token:     r.envToken,
	}, true
}
