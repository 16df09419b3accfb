package invite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invitehub/invitehub/internal/invite"
	"github.com/invitehub/invitehub/internal/team"
)

// --- Mock Team Repository ---

type mockTeamRepo struct {
	listFn   func(ctx context.Context) ([]team.Team, error)
	upsertFn func(ctx context.Context, t *team.Team) error
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockTeamRepo) List(ctx context.Context) ([]team.Team, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []team.Team{}, nil
}

func (m *mockTeamRepo) Upsert(ctx context.Context, t *team.Team) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, t)
	}
	return nil
}

func (m *mockTeamRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func storedTeams(teams ...team.Team) *mockTeamRepo {
	return &mockTeamRepo{
		listFn: func(ctx context.Context) ([]team.Team, error) {
			return teams, nil
		},
	}
}

var (
	alpha = team.Team{ID: "id-alpha", Name: "Alpha", Token: "token-alpha", AccountID: "acct-alpha"}
	beta  = team.Team{ID: "id-beta", Name: "Beta", Token: "token-beta", AccountID: "acct-beta"}
)

// ===== Resolve =====

func TestResolve_ExplicitTeamID(t *testing.T) {
	r := invite.NewResolver(storedTeams(alpha, beta), "", "")

	got, err := r.Resolve(context.Background(), "id-beta")

	require.NoError(t, err)
	assert.Equal(t, "Beta", got.Name)
	assert.Equal(t, "token-beta", got.Token)
}

func TestResolve_SingleTeamConvenience(t *testing.T) {
	r := invite.NewResolver(storedTeams(alpha), "", "")

	got, err := r.Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Name)
}

func TestResolve_SingleTeamConvenienceWithUnmatchedID(t *testing.T) {
	r := invite.NewResolver(storedTeams(alpha), "", "")

	got, err := r.Resolve(context.Background(), "no-such-id")

	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Name)
}

func TestResolve_AmbiguousWithoutTeamID(t *testing.T) {
	r := invite.NewResolver(storedTeams(alpha, beta), "", "")

	_, err := r.Resolve(context.Background(), "")

	assert.ErrorIs(t, err, invite.ErrAmbiguousSelection)
}

func TestResolve_AmbiguousWithUnmatchedTeamID(t *testing.T) {
	r := invite.NewResolver(storedTeams(alpha, beta), "", "")

	_, err := r.Resolve(context.Background(), "no-such-id")

	assert.ErrorIs(t, err, invite.ErrAmbiguousSelection)
}

func TestResolve_FallbackWhenStoreEmpty(t *testing.T) {
	r := invite.NewResolver(storedTeams(), "env-token", "env-acct")

	got, err := r.Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, invite.FallbackID, got.ID)
	assert.Equal(t, invite.FallbackName, got.Name)
	assert.Equal(t, "env-token", got.Token)
	assert.Equal(t, "env-acct", got.AccountID)
}

func TestResolve_FallbackNeverOverridesStoredTeams(t *testing.T) {
	// Environment credentials present, but a team exists: the stored team
	// wins unconditionally.
	r := invite.NewResolver(storedTeams(alpha), "env-token", "env-acct")

	got, err := r.Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Name)
	assert.NotEqual(t, invite.FallbackID, got.ID)
}

func TestResolve_FallbackRequiresBothValues(t *testing.T) {
	for _, tc := range []struct{ token, acct string }{
		{"env-token", ""},
		{"", "env-acct"},
		{"", ""},
	} {
		r := invite.NewResolver(storedTeams(), tc.token, tc.acct)
		_, err := r.Resolve(context.Background(), "")
		assert.ErrorIs(t, err, invite.ErrNoConfiguration)
	}
}

func TestResolve_StoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := &mockTeamRepo{
		listFn: func(ctx context.Context) ([]team.Team, error) {
			return nil, storeErr
		},
	}
	r := invite.NewResolver(repo, "env-token", "env-acct")

	_, err := r.Resolve(context.Background(), "")

	assert.ErrorIs(t, err, storeErr)
}

// ===== Default =====

func TestDefault_FirstStoredTeam(t *testing.T) {
	r := invite.NewResolver(storedTeams(alpha, beta), "env-token", "env-acct")

	got, err := r.Default(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alpha", got.Name)
}

func TestDefault_FallbackWhenStoreEmpty(t *testing.T) {
	r := invite.NewResolver(storedTeams(), "env-token", "env-acct")

	got, err := r.Default(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, invite.FallbackID, got.ID)
}

func TestDefault_NothingAvailable(t *testing.T) {
	r := invite.NewResolver(storedTeams(), "", "")

	got, err := r.Default(context.Background())

	require.NoError(t, err)
	assert.Nil(t, got)
}
