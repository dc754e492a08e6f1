package domain

// TravelMode selects the transport type for route calculation.
type TravelMode int

const (
	CarTravel TravelMode = iota
	PedestrianTravel
	PublicTransitTravel
	BicycleTravel
	TruckTravel
)

func (m TravelMode) String() string {
	switch m {
	case CarTravel:
		return "car"
	case PedestrianTravel:
		return "pedestrian"
	case PublicTransitTravel:
		return "publicTransport"
	case BicycleTravel:
		return "bicycle"
	case TruckTravel:
		return "truck"
	default:
		return ""
	}
}

// RouteOptimization is the goal a calculated route is optimized for.
// A query may request several; each yields its own vendor request.
type RouteOptimization int

const (
	ShortestRoute RouteOptimization = iota
	FastestRoute
)

// RouteFeatureType names a road feature whose use can be weighted.
type RouteFeatureType int

const (
	NoFeature RouteFeatureType = iota
	TollFeature
	HighwayFeature
	FerryFeature
	TunnelFeature
	DirtRoadFeature
	PublicTransitFeature
	ParksFeature
	MotorPoolFeature
)

// RouteFeatureWeight expresses the preference applied to a feature.
type RouteFeatureWeight int

const (
	NeutralFeatureWeight RouteFeatureWeight = iota
	PreferFeatureWeight
	RequireFeatureWeight
	AvoidFeatureWeight
	DisallowFeatureWeight
)

// ManeuverDirection is the turn direction announced by a maneuver,
// matching the route XML vocabulary.
type ManeuverDirection int

const (
	NoDirection ManeuverDirection = iota
	DirectionForward
	DirectionBearRight
	DirectionLightRight
	DirectionRight
	DirectionHardRight
	DirectionUTurnRight
	DirectionUTurnLeft
	DirectionHardLeft
	DirectionLeft
	DirectionLightLeft
	DirectionBearLeft
)

type Maneuver struct {
	ID              string            `json:"id,omitempty"`
	Position        Coordinate        `json:"position"`
	InstructionText string            `json:"instruction_text,omitempty"`
	Direction       ManeuverDirection `json:"direction"`
	DistanceToNext  float64           `json:"distance_to_next"`
	TimeToNext      int               `json:"time_to_next"`
	Waypoint        Coordinate        `json:"waypoint,omitempty"`
}

func (m Maneuver) IsValid() bool {
	return m.ID != ""
}

// RouteSegment is one link of a route with the maneuver leading into
// it. Segments form a singly linked chain across all legs.
type RouteSegment struct {
	Path          []Coordinate `json:"path,omitempty"`
	Distance      float64      `json:"distance"`
	TravelTime    int          `json:"travel_time"`
	Maneuver      Maneuver     `json:"maneuver,omitempty"`
	LegIndex      int          `json:"leg_index"`
	ManeuverIndex int          `json:"maneuver_index"`
	LinkToID      string       `json:"link_to_id,omitempty"`
	LegLast       bool         `json:"leg_last"`

	next *RouteSegment
}

func (s *RouteSegment) Next() *RouteSegment { return s.next }

func (s *RouteSegment) SetNext(next *RouteSegment) { s.next = next }

// RouteLeg is the part of a route between two consecutive waypoints.
type RouteLeg struct {
	Index    int             `json:"index"`
	Path     []Coordinate    `json:"path,omitempty"`
	Segments []*RouteSegment `json:"segments,omitempty"`
}

type Route struct {
	ID           string        `json:"id,omitempty"`
	Mode         TravelMode    `json:"mode"`
	Distance     float64       `json:"distance"`
	TravelTime   int           `json:"travel_time"`
	Bounds       BoundingBox   `json:"bounds,omitempty"`
	Path         []Coordinate  `json:"path,omitempty"`
	Legs         []RouteLeg    `json:"legs,omitempty"`
	FirstSegment *RouteSegment `json:"-"`
}
