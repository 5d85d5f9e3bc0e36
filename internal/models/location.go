package models

import (
	"encoding/json"
	"fmt"
)

// LocationType discriminates the two Location variants.
type LocationType string

const (
	LocationPoint   LocationType = "Point"
	LocationPolygon LocationType = "Polygon"
)

// Location is a tagged union over a single coordinate pair (Point) or an
// ordered ring of coordinate pairs (Polygon). The payload fields are
// unexported and only settable through the constructors, so exactly one
// variant is ever populated and it always matches the type tag.
type Location struct {
	typ   LocationType
	point []float64
	ring  [][]float64
}

// NewPointLocation builds a Point location from a single coordinate pair.
func NewPointLocation(lat, lon float64) Location {
	return Location{typ: LocationPoint, point: []float64{lat, lon}}
}

// NewPolygonLocation builds a Polygon location from an ordered ring of
// coordinate pairs. The first and last points implicitly close the ring.
func NewPolygonLocation(ring [][]float64) Location {
	return Location{typ: LocationPolygon, ring: ring}
}

// WorldBounds returns the four-corner ring covering the whole globe, the
// polygon ChatSurfer uses when a message has no narrower area of interest.
func WorldBounds() [][]float64 {
	return [][]float64{
		{90.0, 180.0},
		{90.0, -180.0},
		{-90.0, -180.0},
		{-90.0, 180.0},
	}
}

// Type reports which variant is populated.
func (l Location) Type() LocationType { return l.typ }

// Point returns the coordinate pair of a Point location. ok is false for
// the Polygon variant.
func (l Location) Point() (coords []float64, ok bool) {
	if l.typ != LocationPoint {
		return nil, false
	}
	return l.point, true
}

// Ring returns the coordinate ring of a Polygon location. ok is false for
// the Point variant.
func (l Location) Ring() (ring [][]float64, ok bool) {
	if l.typ != LocationPolygon {
		return nil, false
	}
	return l.ring, true
}

type pointJSON struct {
	Type        LocationType `json:"type"`
	Coordinates []float64    `json:"coordinates"`
}

type polygonJSON struct {
	Type        LocationType `json:"type"`
	Coordinates [][]float64  `json:"coordinates"`
}

// MarshalJSON writes the active variant only, keyed on the type tag.
func (l Location) MarshalJSON() ([]byte, error) {
	switch l.typ {
	case LocationPoint:
		return json.Marshal(pointJSON{Type: LocationPoint, Coordinates: l.point})
	case LocationPolygon:
		return json.Marshal(polygonJSON{Type: LocationPolygon, Coordinates: l.ring})
	default:
		return nil, fmt.Errorf("location: cannot marshal unknown type %q", l.typ)
	}
}

// UnmarshalJSON reads the type tag first and then decodes the matching
// coordinate shape.
func (l *Location) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type LocationType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch probe.Type {
	case LocationPoint:
		var p pointJSON
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*l = Location{typ: LocationPoint, point: p.Coordinates}
		return nil
	case LocationPolygon:
		var p polygonJSON
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*l = Location{typ: LocationPolygon, ring: p.Coordinates}
		return nil
	default:
		return fmt.Errorf("location: unknown type %q", probe.Type)
	}
}
