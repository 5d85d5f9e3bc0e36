// Package fixtures builds the canned chat messages this server hands out.
// The set is deterministic apart from identifiers and timestamps, which
// come from injectable sources so tests can pin them.
package fixtures

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"chatmock/backend/internal/models"
)

// Keyword is the marker appended to exactly three fixture messages. The
// search tests lean on this distribution, so it must not drift.
const Keyword = "Antediluvian"

const baseText = "This is some test message text."

// seedEntry fixes one slot of the canned message set.
type seedEntry struct {
	seed   int
	sender string
	extra  string
}

// The ten message slots, in serving order. Austin, Joe and Justin carry
// the marker keyword.
var fixtureSet = []seedEntry{
	{25, "Austin", Keyword},
	{4, "Tyler", ""},
	{7, "Joe", Keyword},
	{9, "Jeremy", ""},
	{2, "Trevor", ""},
	{4, "Justin", Keyword},
	{97856, "Ryan", ""},
	{123, "Joseph", ""},
	{432, "Rita", ""},
	{654, "Matt", ""},
}

// Generator builds ChatMessage fixtures. The zero value is not usable;
// construct with NewGenerator or NewGeneratorWithSources.
type Generator struct {
	now   func() time.Time
	newID func() string
}

// NewGenerator returns a Generator backed by the wall clock and random
// UUIDs.
func NewGenerator() *Generator {
	return NewGeneratorWithSources(
		func() time.Time { return time.Now().UTC() },
		uuid.NewString,
	)
}

// NewGeneratorWithSources returns a Generator with explicit clock and id
// sources. Tests substitute fixed implementations here.
func NewGeneratorWithSources(now func() time.Time, newID func() string) *Generator {
	return &Generator{now: now, newID: newID}
}

// BuildMessage constructs one fake chat message. Every field derived from
// the seed and the string arguments is deterministic; id, threadId, userId
// and timestamp are drawn fresh from the injected sources on each call.
func (g *Generator) BuildMessage(seed int, sender, extraText string) models.ChatMessage {
	return models.ChatMessage{
		Classification: models.Unclassified,
		DomainID:       models.TestDomainID,
		GeoTags:        []models.GeoTag{buildGeoTag(seed)},
		ID:             g.newID(),
		RoomName:       models.TestRoomName,
		Sender:         sender,
		Text:           baseText + extraText,
		ThreadID:       g.newID(),
		Timestamp:      g.now().Format(time.RFC3339),
		UserID:         g.newID(),
		Private:        false,
	}
}

// BuildSet returns the full canned set: exactly ten messages in the fixed
// sender order, three of them carrying Keyword.
func (g *Generator) BuildSet() []models.ChatMessage {
	messages := make([]models.ChatMessage, 0, len(fixtureSet))
	for _, entry := range fixtureSet {
		messages = append(messages, g.BuildMessage(entry.seed, entry.sender, entry.extra))
	}
	return messages
}

func buildGeoTag(seed int) models.GeoTag {
	return models.GeoTag{
		AnchorEnd:   int64(seed),
		AnchorStart: int64(seed),
		AnchorText:  fmt.Sprintf("Anchor text for GeoTag %d", seed),
		Confidence:  float64(seed),
		Location:    models.NewPointLocation(1.0, 1.0),
		Regions:     []models.Region{buildRegion(seed)},
		Type:        "PAL",
	}
}

func buildRegion(seed int) models.Region {
	return models.Region{
		Abbreviation: "us",
		Bounds:       []float64{float64(seed)},
		Description:  fmt.Sprintf("This region %d is for testing.", seed),
		Name:         fmt.Sprintf("Test region %d", seed),
		RegionType:   "Country",
	}
}
