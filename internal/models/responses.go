package models

// GetChatMessagesResponse is the body of a successful get-messages-by-room
// request.
type GetChatMessagesResponse struct {
	Classification string        `json:"classification"`
	Messages       []ChatMessage `json:"messages"`
	DomainID       string        `json:"domainId"`
	Private        bool          `json:"private"`
	RoomName       string        `json:"roomName"`
}

// TimeFilterResponse reports the end of the window a search covered.
type TimeFilterResponse struct {
	EndDateTime string `json:"endDateTime"`
}

// SearchChatMessagesResponse is the body of a successful search request.
// NextCursorMark is always absent: this server does not paginate.
type SearchChatMessagesResponse struct {
	Classification string        `json:"classification"`
	Messages       []ChatMessage `json:"messages"`
	NextCursorMark *string       `json:"nextCursorMark,omitempty"`

	// Field name matches the upstream API, typo included.
	SearchTimeFilter TimeFilterResponse `json:"searchTimeFiler"`
	Total            int                `json:"total"`
}

// API key status values.
const (
	APIKeyActive   = "ACTIVE"
	APIKeyDisabled = "DISABLED"
	APIKeyPending  = "PENDING"
)

// GetAPIKeyResponse is the static record served by the API key route.
// DN is the Distinguished Name of the certificate the key was minted for.
type GetAPIKeyResponse struct {
	Classification string `json:"classification"`
	DN             string `json:"dn"`
	Email          string `json:"email"`
	Key            string `json:"key"`
	Status         string `json:"status"`
}

// TokenResponse is the body of the mock token endpoint, shaped like a
// Keycloak token grant.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
