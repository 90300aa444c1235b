package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStatusCheck(t *testing.T) {
	f := newFixture(t, &fakePiClient{})

	rec, body := f.do(t, http.MethodPost, "/api/status", `{"client_name":"integration-test"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "integration-test", body["client_name"])
	assert.NotEmpty(t, body["id"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestCreateStatusCheck_MissingClientName(t *testing.T) {
	f := newFixture(t, &fakePiClient{})

	rec, _ := f.do(t, http.MethodPost, "/api/status", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetStatusChecks(t *testing.T) {
	f := newFixture(t, &fakePiClient{})

	for i := 0; i < 3; i++ {
		rec, _ := f.do(t, http.MethodPost, "/api/status", fmt.Sprintf(`{"client_name":"client-%d"}`, i))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var checks []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checks))
	assert.Len(t, checks, 3)
}
