package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatmock/backend/internal/models"
	"chatmock/backend/internal/search"
)

func TestFirstToken(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    string
		wantErr bool
	}{
		{"single keyword", "Antediluvian", "Antediluvian", false},
		{"extra tokens ignored", "Antediluvian extra words", "Antediluvian", false},
		{"leading whitespace", "   keyword", "keyword", false},
		{"tabs and newlines", "\t\nkeyword\n", "keyword", false},
		{"empty query", "", "", true},
		{"all whitespace", "   \t  ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := search.FirstToken(tt.query)
			if tt.wantErr {
				assert.ErrorIs(t, err, search.ErrEmptyQuery)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterByKeyword_SubstringAndOrder(t *testing.T) {
	messages := []models.ChatMessage{
		{Sender: "Austin", Text: "text with Antediluvian marker"},
		{Sender: "Tyler", Text: "plain text"},
		{Sender: "Joe", Text: "Antediluvian again"},
		{Sender: "Rita", Text: "antediluvian lowercase does not match"},
	}

	got := search.FilterByKeyword(messages, "Antediluvian")

	require.Len(t, got, 2)
	assert.Equal(t, "Austin", got[0].Sender, "relative order is preserved")
	assert.Equal(t, "Joe", got[1].Sender)
}

func TestFilterByKeyword_NoMatches(t *testing.T) {
	messages := []models.ChatMessage{
		{Sender: "Tyler", Text: "plain text"},
	}

	got := search.FilterByKeyword(messages, "missing")

	assert.Empty(t, got)
}
