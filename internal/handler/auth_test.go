package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammytumzy/TunmzyTech/internal/client"
	"github.com/sammytumzy/TunmzyTech/internal/model"
)

func TestVerifyAuth_Success(t *testing.T) {
	pi := &fakePiClient{verifyProfile: &model.PiUserProfile{UID: "pi-uid-1", Username: "alice"}}
	f := newFixture(t, pi)

	rec, body := f.do(t, http.MethodPost, "/api/auth/verify", `{"accessToken":"valid-token"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pi-uid-1", user["uid"])
	assert.Equal(t, "alice", user["username"])
	assert.NotContains(t, user, "access_token")
}

func TestVerifyAuth_InvalidToken(t *testing.T) {
	pi := &fakePiClient{verifyErr: client.ErrUnauthorized}
	f := newFixture(t, pi)

	rec, _ := f.do(t, http.MethodPost, "/api/auth/verify", `{"accessToken":"garbage"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyAuth_ProviderUnreachable(t *testing.T) {
	pi := &fakePiClient{verifyErr: client.ErrUpstreamUnavailable}
	f := newFixture(t, pi)

	rec, _ := f.do(t, http.MethodPost, "/api/auth/verify", `{"accessToken":"valid-token"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestVerifyAuth_MissingToken(t *testing.T) {
	f := newFixture(t, &fakePiClient{})

	rec, _ := f.do(t, http.MethodPost, "/api/auth/verify", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
