package domain

import "math"

// Coordinate is a WGS84 latitude/longitude pair. The zero value is
// treated as "not set" via IsValid.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	set       bool
}

func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{Latitude: lat, Longitude: lng, set: true}
}

func (c Coordinate) IsValid() bool {
	return c.set &&
		!math.IsNaN(c.Latitude) && !math.IsNaN(c.Longitude) &&
		c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

type BoundingAreaType int

const (
	UnknownAreaType BoundingAreaType = iota
	BoxAreaType
	CircleAreaType
)

// BoundingArea restricts a search to a geographic region. Only boxes
// and circles are understood by the request builders; anything else
// contributes nothing to the query string.
type BoundingArea interface {
	AreaType() BoundingAreaType
}

type BoundingBox struct {
	TopLeft     Coordinate `json:"top_left"`
	BottomRight Coordinate `json:"bottom_right"`
}

func (BoundingBox) AreaType() BoundingAreaType { return BoxAreaType }

func (b BoundingBox) IsValid() bool {
	return b.TopLeft.IsValid() && b.BottomRight.IsValid()
}

// Contains reports whether the coordinate lies within the box. Boxes
// never span the antimeridian in the vendor responses, so a plain
// comparison is enough.
func (b BoundingBox) Contains(c Coordinate) bool {
	if !b.IsValid() || !c.IsValid() {
		return false
	}
	return c.Latitude <= b.TopLeft.Latitude &&
		c.Latitude >= b.BottomRight.Latitude &&
		c.Longitude >= b.TopLeft.Longitude &&
		c.Longitude <= b.BottomRight.Longitude
}

type BoundingCircle struct {
	Center Coordinate `json:"center"`
	Radius float64    `json:"radius"`
}

func (BoundingCircle) AreaType() BoundingAreaType { return CircleAreaType }

type Address struct {
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	State       string `json:"state,omitempty"`
	County      string `json:"county,omitempty"`
	City        string `json:"city,omitempty"`
	District    string `json:"district,omitempty"`
	Street      string `json:"street,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
}

func (a Address) IsEmpty() bool {
	return a == Address{}
}

type Location struct {
	Coordinate  Coordinate  `json:"coordinate"`
	BoundingBox BoundingBox `json:"bounding_box,omitempty"`
	Address     Address     `json:"address,omitempty"`
}
