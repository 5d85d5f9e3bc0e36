// Package search implements the naive keyword filter the mock server
// applies to its canned message set.
package search

import (
	"errors"
	"strings"

	"github.com/samber/lo"

	"chatmock/backend/internal/models"
)

// ErrEmptyQuery is returned when a search query holds no usable token.
// Callers surface it as a 400 rather than letting an empty-token lookup
// blow up the request handler.
var ErrEmptyQuery = errors.New("search: query contains no keyword")

// FirstToken extracts the first whitespace-delimited token of query.
// Everything after the first token is ignored.
func FirstToken(query string) (string, error) {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return "", ErrEmptyQuery
	}
	return tokens[0], nil
}

// FilterByKeyword keeps the messages whose text contains token as an
// ordinal substring, preserving their relative order.
func FilterByKeyword(messages []models.ChatMessage, token string) []models.ChatMessage {
	return lo.Filter(messages, func(m models.ChatMessage, _ int) bool {
		return strings.Contains(m.Text, token)
	})
}
