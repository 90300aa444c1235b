package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammytumzy/TunmzyTech/internal/model"
)

func TestUserUpsert_PreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	firstSeen := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repo.Upsert(ctx, &model.User{
		UID:         "pi-uid-1",
		Username:    "alice",
		AccessToken: "token-1",
		CreatedAt:   firstSeen,
		LastLogin:   firstSeen,
	}))

	relogin := time.Now().UTC()
	require.NoError(t, repo.Upsert(ctx, &model.User{
		UID:         "pi-uid-1",
		Username:    "alice_renamed",
		AccessToken: "token-2",
		CreatedAt:   relogin,
		LastLogin:   relogin,
	}))

	user, err := repo.FindByUID(ctx, "pi-uid-1")
	require.NoError(t, err)
	assert.Equal(t, "alice_renamed", user.Username)
	assert.Equal(t, "token-2", user.AccessToken)
	assert.WithinDuration(t, firstSeen, user.CreatedAt, time.Second)
	assert.WithinDuration(t, relogin, user.LastLogin, time.Second)
}

func TestUserUpsert_InsertsDistinctUIDs(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	now := time.Now().UTC()
	require.NoError(t, repo.Upsert(ctx, &model.User{UID: "u1", Username: "alice", CreatedAt: now, LastLogin: now}))
	require.NoError(t, repo.Upsert(ctx, &model.User{UID: "u2", Username: "bob", CreatedAt: now, LastLogin: now}))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
