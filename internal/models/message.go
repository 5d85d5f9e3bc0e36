package models

// Classification strings used by the emulated ChatSurfer API. Every record
// carries one; it is free text and never validated.
const Unclassified = "UNCLASSIFIED"

// Fixed identifiers of the single fake room this server pretends to host.
const (
	TestDomainID = "chatsurferxmppunclass"
	TestRoomName = "Test room"
)

// ChatMessage is one chat-room message as ChatSurfer serializes it.
// Messages are value objects: they are built once by the fixture generator
// and never mutated or persisted.
type ChatMessage struct {
	Classification string   `json:"classification"`
	DomainID       string   `json:"domainId"`
	GeoTags        []GeoTag `json:"geoTags,omitempty"`
	ID             string   `json:"id"`
	RoomName       string   `json:"roomName"`
	Sender         string   `json:"sender"`
	Text           string   `json:"text"`
	ThreadID       string   `json:"threadId,omitempty"`
	Timestamp      string   `json:"timestamp"`
	UserID         string   `json:"userId"`
	Private        bool     `json:"private"`
}

// GeoTag annotates a span of message text with a geographic location.
type GeoTag struct {
	AnchorEnd   int64    `json:"anchorEnd"`
	AnchorStart int64    `json:"anchorStart"`
	AnchorText  string   `json:"anchorText"`
	Confidence  float64  `json:"confidence"`
	Location    Location `json:"location"`
	Regions     []Region `json:"regions"`
	Type        string   `json:"type"`
}

// Region describes a notable geographic area with identifying information.
type Region struct {
	Abbreviation string    `json:"abbreviation"`
	Bounds       []float64 `json:"bounds"`
	Description  string    `json:"description"`
	Name         string    `json:"name"`
	RegionType   string    `json:"regionType"`
}
