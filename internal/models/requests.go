package models

// SendChatMessageRequest creates a new message in a chat room. The mock
// server accepts and logs these but never stores them.
type SendChatMessageRequest struct {
	Classification string `json:"classification"`
	DomainID       string `json:"domainId"`
	Message        string `json:"message"`
	Nickname       string `json:"nickname"`
	RoomName       string `json:"roomName"`
}

// KeywordFilter carries the free-text search query.
type KeywordFilter struct {
	Query string `json:"query"`
}

// Mention identifies a user referenced inside a message.
type Mention struct {
	MentionType string `json:"mentionType"`
	Value       string `json:"value"`
}

// MentionFilter restricts a search to messages mentioning given users.
type MentionFilter struct {
	Mentions []Mention `json:"mentions"`
}

// DomainFilterProperties lists room or sender names within one domain.
type DomainFilterProperties struct {
	Properties []string `json:"properties"`
}

// DomainFilterDetail maps domain IDs to room or sender names.
type DomainFilterDetail struct {
	Domains map[string]DomainFilterProperties `json:"domains"`
}

// SortOrder pairs a direction (ASC/DESC) with a sortable field.
type SortOrder struct {
	Direction string `json:"direction"`
	Field     string `json:"field"`
}

// SortFilter orders search results.
type SortFilter struct {
	Orders []SortOrder `json:"orders"`
}

// ThreadIDFilter restricts a search to the given message threads.
type ThreadIDFilter struct {
	ThreadIDs []string `json:"threadIds"`
}

// TimeFilterRequest bounds a search in time. All fields are optional.
type TimeFilterRequest struct {
	EndDateTime      *string `json:"endDateTime,omitempty"`
	LookBackDuration *string `json:"lookBackDuration,omitempty"`
	StartDateTime    *string `json:"startDateTime,omitempty"`
}

// UserIDFilter restricts a search to the given user IDs.
type UserIDFilter struct {
	UserIDs []string `json:"userIds"`
}

// SearchChatMessagesRequest mirrors ChatSurfer's search request shape.
// Only KeywordFilter.Query is acted upon; every other filter is accepted
// for wire compatibility and ignored, matching the emulated server.
type SearchChatMessagesRequest struct {
	Cursor           *string             `json:"cursor,omitempty"`
	FilesOnly        *bool               `json:"filesOnly,omitempty"`
	HighlightResults *bool               `json:"highlightResults,omitempty"`
	KeywordFilter    *KeywordFilter      `json:"keywordFilter,omitempty"`
	Limit            *int                `json:"limit,omitempty"`
	Location         *Location           `json:"location,omitempty"`
	LocationFilter   *bool               `json:"locationFilter,omitempty"`
	MentionFilter    *MentionFilter      `json:"mentionFilter,omitempty"`
	RequestGeoTags   *bool               `json:"requestGeoTags,omitempty"`
	RoomFilter       *DomainFilterDetail `json:"roomFilter,omitempty"`
	SenderFilter     *DomainFilterDetail `json:"senderFilter,omitempty"`
	Sort             *SortFilter         `json:"sort,omitempty"`
	ThreadIDFilter   *ThreadIDFilter     `json:"threadIdFilter,omitempty"`
	TimeFilter       *TimeFilterRequest  `json:"timeFilter,omitempty"`
	UserIDFilter     *UserIDFilter       `json:"userIdFilter,omitempty"`

	// The upstream API capitalizes this one field.
	UserHighClassification string `json:"UserHighClassification"`
}
