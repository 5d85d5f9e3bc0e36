package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"chatmock/backend/internal/models"
)

// Static API key record served to every caller. Nothing here is ever
// checked; clients only need a response with the right shape.
var apiKeyRecord = models.GetAPIKeyResponse{
	Classification: models.Unclassified,
	DN:             "CN=edge-view,OU=Test,O=ChatSurfer,C=US",
	Email:          "edge-view@test.local",
	Key:            "4fe0fc3f-dd32-4863-9da4-c6f09b0cb4e9",
	Status:         models.APIKeyActive,
}

// Opaque realm descriptor in the Keycloak shape edge-view clients fetch
// before requesting a token. The public key is a fixed test blob.
const realmJSON = `{"realm":"fmv","public_key":"MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAtestblobfmvrealmkey0000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000IDAQAB","token-service":"/auth/realms/fmv/protocol/openid-connect","account-service":"/auth/realms/fmv/account","tokens-not-before":0}`

// GetAPIKey serves GET /api/auth/key with the static key record.
func (h *Handler) GetAPIKey(c *gin.Context) {
	c.JSON(http.StatusOK, apiKeyRecord)
}

// GetRealm serves GET /auth/realms/fmv with the canned realm blob.
func (h *Handler) GetRealm(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", []byte(realmJSON))
}

// IssueToken serves POST /auth/realms/fmv/protocol/openid-connect/token.
// It mints a short-lived HS256 token for any caller, no credentials
// required. Mock only: real deployments talk to an actual Keycloak.
func (h *Handler) IssueToken(c *gin.Context) {
	ttl := h.cfg.JWTTTL

	claims := jwt.MapClaims{
		"sub": uuid.NewString(),
		"iss": "chatmock",
		"aud": "edge-view",
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		// Signing a well-formed HS256 token only fails on programmer
		// error; fail the request, not the process.
		h.log.Error("token signing failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
	})
}
