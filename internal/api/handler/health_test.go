package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invitehub/invitehub/internal/api/handler"
	"github.com/invitehub/invitehub/internal/team"
)

func TestHealth_OK(t *testing.T) {
	t.Parallel()

	repo := &mockTeamRepo{
		listFn: func(ctx context.Context) ([]team.Team, error) {
			return []team.Team{alphaTeam, betaTeam}, nil
		},
	}
	h := handler.NewHealthHandler(repo)

	req, w := makeChiRequest(http.MethodGet, "/health", nil, nil)
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseBody(t, w)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(2), resp["teamsCount"])
}

func TestHealth_DegradedWhenStoreUnreachable(t *testing.T) {
	t.Parallel()

	repo := &mockTeamRepo{
		listFn: func(ctx context.Context) ([]team.Team, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := handler.NewHealthHandler(repo)

	req, w := makeChiRequest(http.MethodGet, "/health", nil, nil)
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseBody(t, w)
	assert.Equal(t, "degraded", resp["status"])
	assert.Equal(t, float64(0), resp["teamsCount"])
}
