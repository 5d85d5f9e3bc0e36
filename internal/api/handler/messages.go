package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chatmock/backend/internal/models"
	"chatmock/backend/internal/search"
)

// GetMessages serves GET /api/chat/messages/:domainId/:roomName with the
// full canned set. The path segments are echoed back but otherwise
// ignored; this server hosts exactly one fake room.
func (h *Handler) GetMessages(c *gin.Context) {
	h.log.Debug("get messages request",
		zap.String("domain_id", c.Param("domainId")),
		zap.String("room_name", c.Param("roomName")),
	)

	c.JSON(http.StatusOK, models.GetChatMessagesResponse{
		Classification: models.Unclassified,
		Messages:       h.gen.BuildSet(),
		DomainID:       c.Param("domainId"),
		Private:        false,
		RoomName:       c.Param("roomName"),
	})
}

// SearchMessages serves POST /api/chat/messages/search. Only the keyword
// filter is honored: the first whitespace-delimited token of the query is
// matched as a substring against the canned messages. All other declared
// filters are accepted and ignored.
func (h *Handler) SearchMessages(c *gin.Context) {
	var req models.SearchChatMessagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("malformed search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.NewBadRequest("Unable to parse the search request body."))
		return
	}

	query := ""
	if req.KeywordFilter != nil {
		query = req.KeywordFilter.Query
	}

	token, err := search.FirstToken(query)
	if err != nil {
		h.log.Warn("search query rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.NewBadRequest(
			"The search query must contain at least one keyword.",
			models.FieldError{
				FieldName:        "keywordFilter.query",
				Message:          "query contains no keyword",
				MessageArguments: []string{},
				MessageCode:      "NotEmpty",
				RejectedValue:    query,
			},
		))
		return
	}

	matches := search.FilterByKeyword(h.gen.BuildSet(), token)

	h.log.Debug("search request served",
		zap.String("token", token),
		zap.Int("matches", len(matches)),
	)

	c.JSON(http.StatusOK, models.SearchChatMessagesResponse{
		Classification: models.Unclassified,
		Messages:       matches,
		SearchTimeFilter: models.TimeFilterResponse{
			EndDateTime: time.Now().UTC().Format(time.RFC3339),
		},
		Total: len(matches),
	})
}

// SendMessage serves POST /api/chatserver/message. The request is parsed
// and logged, then discarded: nothing is stored, so later reads never see
// it. A syntactically valid body always yields 204.
func (h *Handler) SendMessage(c *gin.Context) {
	var req models.SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("malformed send request", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.NewBadRequest("Unable to parse the send message request body."))
		return
	}

	h.log.Info("send message accepted",
		zap.String("domain_id", req.DomainID),
		zap.String("room_name", req.RoomName),
		zap.String("nickname", req.Nickname),
		zap.String("message", req.Message),
	)

	c.Status(http.StatusNoContent)
}
