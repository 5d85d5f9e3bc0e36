package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatmock/backend/internal/models"
)

func TestGetAPIKey_StaticRecord(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/auth/key", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.GetAPIKeyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, models.Unclassified, resp.Classification)
	assert.Equal(t, models.APIKeyActive, resp.Status)
	assert.NotEmpty(t, resp.DN)
	assert.NotEmpty(t, resp.Email)
	assert.NotEmpty(t, resp.Key)
}

func TestGetRealm_OpaqueBlob(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/auth/realms/fmv", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var blob map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blob))
	assert.Equal(t, "fmv", blob["realm"])
	assert.NotEmpty(t, blob["public_key"])
}

func TestIssueToken_MintsVerifiableJWT(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/auth/realms/fmv/protocol/openid-connect/token", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)

	token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "chatmock", claims["iss"])
	assert.NotEmpty(t, claims["sub"])
}
