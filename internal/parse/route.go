package parse

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"ovi/geoservices/internal/domain"
)

type routeResponseXML struct {
	Routes []routeXML `xml:"Response>Route"`
}

type routeXML struct {
	RouteID     string          `xml:"RouteId"`
	Mode        routeModeXML    `xml:"Mode"`
	Shape       string          `xml:"Shape"`
	BoundingBox *boundingBoxXML `xml:"BoundingBox"`
	Legs        []routeLegXML   `xml:"Leg"`
	Summary     routeSummaryXML `xml:"Summary"`
}

type routeModeXML struct {
	TransportModes string `xml:"TransportModes"`
}

type routeSummaryXML struct {
	Distance    float64 `xml:"Distance"`
	TrafficTime float64 `xml:"TrafficTime"`
}

type boundingBoxXML struct {
	TopLeft     coordinateXML `xml:"TopLeft"`
	BottomRight coordinateXML `xml:"BottomRight"`
}

type coordinateXML struct {
	Latitude  float64 `xml:"Latitude"`
	Longitude float64 `xml:"Longitude"`
}

type routeLegXML struct {
	Maneuvers []maneuverXML `xml:"Maneuver"`
	Links     []linkXML     `xml:"Link"`
}

type maneuverXML struct {
	ID          string        `xml:"id,attr"`
	Position    coordinateXML `xml:"Position"`
	Instruction string        `xml:"Instruction"`
	ToLink      string        `xml:"ToLink"`
	TravelTime  int           `xml:"TravelTime"`
	Length      float64       `xml:"Length"`
	Direction   string        `xml:"Direction"`
}

type linkXML struct {
	LinkID   string  `xml:"LinkId"`
	Shape    string  `xml:"Shape"`
	Length   float64 `xml:"Length"`
	Maneuver string  `xml:"Maneuver"`
}

// Routes decodes a routing response. The document root is
// CalculateRoute for calculated routes and GetRoute for updates; an
// Error root reporting ApplicationError/NoRouteFound is a successful
// response with no routes.
func Routes(data []byte) ([]domain.Route, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	root, err := nextStartElement(decoder)
	if err != nil {
		return nil, domain.Errorf(domain.ParseError, "decode route response: %v", err)
	}

	switch root.Name.Local {
	case "Error":
		if xmlAttr(root, "type") == "ApplicationError" && xmlAttr(root, "subtype") == "NoRouteFound" {
			return []domain.Route{}, nil
		}
		return nil, domain.Errorf(domain.ParseError,
			"route service error %q/%q", xmlAttr(root, "type"), xmlAttr(root, "subtype"))
	case "CalculateRoute", "GetRoute":
	default:
		return nil, domain.Errorf(domain.ParseError,
			"unexpected route response root element %q", root.Name.Local)
	}

	var response routeResponseXML
	if err := decoder.DecodeElement(&response, &root); err != nil {
		return nil, domain.Errorf(domain.ParseError, "decode route response: %v", err)
	}

	routes := make([]domain.Route, 0, len(response.Routes))
	for _, routeElement := range response.Routes {
		route, err := buildRoute(routeElement)
		if err != nil {
			return nil, err
		}
		if route == nil {
			// unsupported transport mode, drop the route
			continue
		}
		routes = append(routes, *route)
	}
	return routes, nil
}

func nextStartElement(decoder *xml.Decoder) (xml.StartElement, error) {
	for {
		token, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				return xml.StartElement{}, domain.NewError(domain.ParseError, "route response has no root element")
			}
			return xml.StartElement{}, err
		}
		if start, ok := token.(xml.StartElement); ok {
			return start, nil
		}
	}
}

func xmlAttr(element xml.StartElement, name string) string {
	for _, attr := range element.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

func buildRoute(element routeXML) (*domain.Route, error) {
	route := domain.Route{
		ID:         element.RouteID,
		Distance:   element.Summary.Distance,
		TravelTime: int(element.Summary.TrafficTime),
	}

	switch element.Mode.TransportModes {
	case "car", "":
		route.Mode = domain.CarTravel
	case "pedestrian":
		route.Mode = domain.PedestrianTravel
	case "publicTransport":
		route.Mode = domain.PublicTransitTravel
	case "bicycle":
		route.Mode = domain.BicycleTravel
	case "truck":
		route.Mode = domain.TruckTravel
	default:
		return nil, nil
	}

	if element.Shape != "" {
		path, err := parseGeoPoints(element.Shape, "Shape")
		if err != nil {
			return nil, err
		}
		route.Path = path
	}

	if element.BoundingBox != nil {
		route.Bounds = domain.BoundingBox{
			TopLeft: domain.NewCoordinate(
				element.BoundingBox.TopLeft.Latitude, element.BoundingBox.TopLeft.Longitude),
			BottomRight: domain.NewCoordinate(
				element.BoundingBox.BottomRight.Latitude, element.BoundingBox.BottomRight.Longitude),
		}
	}

	if err := buildLegs(element.Legs, &route); err != nil {
		return nil, err
	}
	return &route, nil
}

// buildLegs turns the per-leg maneuver and link elements into chained
// route segments. Within a leg, maneuvers whose ToLink is empty become
// standalone segments at the maneuver position; link segments pick up
// the maneuver pointing at them; link segments without a maneuver are
// folded into their predecessor. The leg's last segment is flagged and
// all segments are chained across legs in leg order, so the result
// does not depend on when each leg's data arrived.
func buildLegs(legs []routeLegXML, route *domain.Route) error {
	var all []*domain.RouteSegment

	for legIndex, leg := range legs {
		segments, err := buildLegSegments(legIndex, leg)
		if err != nil {
			return err
		}
		if len(segments) == 0 {
			continue
		}
		segments[len(segments)-1].LegLast = true

		routeLeg := domain.RouteLeg{Index: legIndex, Segments: segments}
		for _, segment := range segments {
			routeLeg.Path = append(routeLeg.Path, segment.Path...)
		}
		route.Legs = append(route.Legs, routeLeg)
		all = append(all, segments...)
	}

	for i := 0; i < len(all)-1; i++ {
		all[i].SetNext(all[i+1])
	}
	if len(all) > 0 {
		route.FirstSegment = all[0]
	}

	if len(route.Path) == 0 {
		for _, leg := range route.Legs {
			route.Path = append(route.Path, leg.Path...)
		}
	}
	return nil
}

func buildLegSegments(legIndex int, leg routeLegXML) ([]*domain.RouteSegment, error) {
	maneuvers := make([]domain.Maneuver, 0, len(leg.Maneuvers))
	toLinks := make([]string, 0, len(leg.Maneuvers))
	for _, element := range leg.Maneuvers {
		if element.ID == "" {
			return nil, domain.NewError(domain.ParseError, "maneuver element has no id attribute")
		}
		maneuvers = append(maneuvers, domain.Maneuver{
			ID:              element.ID,
			Position:        domain.NewCoordinate(element.Position.Latitude, element.Position.Longitude),
			InstructionText: element.Instruction,
			Direction:       parseDirection(element.Direction),
			DistanceToNext:  element.Length,
			TimeToNext:      element.TravelTime,
		})
		toLinks = append(toLinks, element.ToLink)
	}

	var segments []*domain.RouteSegment
	maneuverIndex := 0

	takePending := func() {
		for maneuverIndex < len(maneuvers) && toLinks[maneuverIndex] == "" {
			maneuver := maneuvers[maneuverIndex]
			segments = append(segments, &domain.RouteSegment{
				Path:          []domain.Coordinate{maneuver.Position},
				Maneuver:      maneuver,
				LegIndex:      legIndex,
				ManeuverIndex: maneuverIndex,
			})
			maneuverIndex++
		}
	}

	for _, link := range leg.Links {
		takePending()

		path, err := parseGeoPoints(link.Shape, "Shape")
		if err != nil {
			return nil, err
		}
		segment := &domain.RouteSegment{
			Path:     path,
			Distance: link.Length,
			LegIndex: legIndex,
		}
		if maneuverIndex < len(maneuvers) && toLinks[maneuverIndex] == link.LinkID {
			segment.Maneuver = maneuvers[maneuverIndex]
			segment.TravelTime = maneuvers[maneuverIndex].TimeToNext
			segment.ManeuverIndex = maneuverIndex
			segment.LinkToID = link.LinkID
			maneuverIndex++
		}
		segments = append(segments, segment)
	}
	takePending()

	return compactSegments(segments), nil
}

// compactSegments folds maneuver-less segments into their predecessor
// so every remaining segment ends at a maneuver.
func compactSegments(segments []*domain.RouteSegment) []*domain.RouteSegment {
	if len(segments) == 0 {
		return segments
	}

	compacted := []*domain.RouteSegment{segments[0]}
	for _, segment := range segments[1:] {
		last := compacted[len(compacted)-1]
		if last.Maneuver.IsValid() {
			compacted = append(compacted, segment)
			continue
		}
		last.Distance += segment.Distance
		last.TravelTime += segment.TravelTime
		last.Path = append(last.Path, segment.Path...)
		last.Maneuver = segment.Maneuver
		last.ManeuverIndex = segment.ManeuverIndex
		last.LinkToID = segment.LinkToID
	}
	return compacted
}

// parseGeoPoints reads a space separated list of "lat,lon" pairs.
func parseGeoPoints(shape, elementName string) ([]domain.Coordinate, error) {
	if shape == "" {
		return nil, nil
	}

	rawPoints := strings.Split(shape, " ")
	points := make([]domain.Coordinate, 0, len(rawPoints))
	for _, rawPoint := range rawPoints {
		coords := strings.Split(rawPoint, ",")
		if len(coords) != 2 {
			return nil, domain.Errorf(domain.ParseError,
				"%s value %q is not a comma separated coordinate pair", elementName, rawPoint)
		}
		lat, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, domain.Errorf(domain.ParseError,
				"%s latitude %q is not a number", elementName, coords[0])
		}
		lng, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, domain.Errorf(domain.ParseError,
				"%s longitude %q is not a number", elementName, coords[1])
		}
		points = append(points, domain.NewCoordinate(lat, lng))
	}
	return points, nil
}

func parseDirection(value string) domain.ManeuverDirection {
	switch value {
	case "forward":
		return domain.DirectionForward
	case "bearRight":
		return domain.DirectionBearRight
	case "lightRight":
		return domain.DirectionLightRight
	case "right":
		return domain.DirectionRight
	case "hardRight":
		return domain.DirectionHardRight
	case "uTurnRight":
		return domain.DirectionUTurnRight
	case "uTurnLeft":
		return domain.DirectionUTurnLeft
	case "hardLeft":
		return domain.DirectionHardLeft
	case "left":
		return domain.DirectionLeft
	case "lightLeft":
		return domain.DirectionLightLeft
	case "bearLeft":
		return domain.DirectionBearLeft
	default:
		return domain.NoDirection
	}
}
