package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammytumzy/TunmzyTech/internal/auth"
	"github.com/sammytumzy/TunmzyTech/internal/client"
	"github.com/sammytumzy/TunmzyTech/internal/config"
	"github.com/sammytumzy/TunmzyTech/internal/model"
	"github.com/sammytumzy/TunmzyTech/internal/repository"
)

var testSessionCfg = &config.Session{Secret: "test-secret", TTL: time.Hour}

func newAuthFixture(t *testing.T, pi *fakePiClient) (AuthService, repository.UserRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := client.InitDBClient(dsn)
	require.NoError(t, err)

	repo := repository.NewUserRepository(db)
	return NewAuthService(pi, repo, testSessionCfg, zerolog.Nop()), repo
}

func TestVerify_CreatesUserAndSession(t *testing.T) {
	ctx := context.Background()
	pi := &fakePiClient{verifyProfile: &model.PiUserProfile{UID: "pi-uid-1", Username: "alice"}}
	svc, repo := newAuthFixture(t, pi)

	resp, err := svc.Verify(ctx, "valid-token")

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "pi-uid-1", resp.User.UID)
	assert.Equal(t, "alice", resp.User.Username)

	claims, err := auth.ParseSessionToken(testSessionCfg, resp.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, "pi-uid-1", claims.Subject)
	assert.Equal(t, "alice", claims.Username)

	user, err := repo.FindByUID(ctx, "pi-uid-1")
	require.NoError(t, err)
	assert.Equal(t, "valid-token", user.AccessToken)
}

func TestVerify_RepeatLoginPreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	pi := &fakePiClient{verifyProfile: &model.PiUserProfile{UID: "pi-uid-1", Username: "alice"}}
	svc, repo := newAuthFixture(t, pi)

	_, err := svc.Verify(ctx, "token-1")
	require.NoError(t, err)

	first, err := repo.FindByUID(ctx, "pi-uid-1")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.Verify(ctx, "token-2")
	require.NoError(t, err)

	second, err := repo.FindByUID(ctx, "pi-uid-1")
	require.NoError(t, err)
	assert.Equal(t, "token-2", second.AccessToken)
	assert.WithinDuration(t, first.CreatedAt, second.CreatedAt, time.Millisecond)
	assert.True(t, second.LastLogin.After(first.LastLogin))
}

func TestVerify_InvalidTokenCreatesNoUser(t *testing.T) {
	ctx := context.Background()
	pi := &fakePiClient{verifyErr: client.ErrUnauthorized}
	svc, repo := newAuthFixture(t, pi)

	_, err := svc.Verify(ctx, "garbage")

	assert.ErrorIs(t, err, client.ErrUnauthorized)

	_, err = repo.FindByUID(ctx, "pi-uid-1")
	assert.Error(t, err)
}
