package request

import (
	"fmt"
	"strings"
	"time"

	"ovi/geoservices/internal/domain"
)

// RouteQuery carries the parameters of a route calculation.
type RouteQuery struct {
	Waypoints     []domain.Coordinate
	Mode          domain.TravelMode
	Optimizations []domain.RouteOptimization
	Features      map[domain.RouteFeatureType]domain.RouteFeatureWeight
	ExcludeAreas  []domain.BoundingBox
	Alternatives  int
	Departure     time.Time
	Language      string
}

// RouteBuilder renders routing endpoint URLs. Builders return the
// empty string for queries the service cannot satisfy; callers treat
// that as an unsupported-option error without issuing I/O.
type RouteBuilder struct {
	Host    string
	Token   string
	Referer string
}

var supportedTravelModes = map[domain.TravelMode]bool{
	domain.CarTravel:           true,
	domain.PedestrianTravel:    true,
	domain.PublicTransitTravel: true,
}

var supportedRouteFeatures = map[domain.RouteFeatureType]bool{
	domain.TollFeature:     true,
	domain.HighwayFeature:  true,
	domain.FerryFeature:    true,
	domain.TunnelFeature:   true,
	domain.DirtRoadFeature: true,
}

func (b *RouteBuilder) supports(query RouteQuery) bool {
	if !supportedTravelModes[query.Mode] {
		return false
	}
	for feature, weight := range query.Features {
		if weight == domain.NeutralFeatureWeight {
			continue
		}
		if !supportedRouteFeatures[feature] {
			return false
		}
		if weight == domain.RequireFeatureWeight {
			return false
		}
	}
	return true
}

func (b *RouteBuilder) CalculateRoute(query RouteQuery) string {
	if !b.supports(query) {
		return ""
	}
	if len(query.Waypoints) < 2 {
		return ""
	}

	s := "http://" + b.Host + "/routing/6.2/calculateroute.xml?referer=" + b.Referer
	if b.Token != "" {
		s += "&token=" + b.Token
	}

	for i, waypoint := range query.Waypoints {
		s += fmt.Sprintf("&waypoint%d=%s,%s",
			i, trimDouble(waypoint.Latitude), trimDouble(waypoint.Longitude))
	}

	s += modesParams(query)

	s += fmt.Sprintf("&alternatives=%d", query.Alternatives)

	s += routeParams(query)

	return s
}

func (b *RouteBuilder) UpdateRoute(route domain.Route, position domain.Coordinate, query RouteQuery) string {
	if !b.supports(query) {
		return ""
	}

	s := "http://" + b.Host + "/routing/6.2/getroute.xml"
	s += "?routeid=" + route.ID
	s += fmt.Sprintf("&pos=%s,%s",
		formatNumber(position.Latitude), formatNumber(position.Longitude))

	s += modesParams(query)
	s += routeParams(query)

	return s
}

// modesParams renders one modeN parameter per requested optimization,
// each carrying the travel mode and the weighted feature tokens.
func modesParams(query RouteQuery) string {
	var types []string
	for _, opt := range query.Optimizations {
		switch opt {
		case domain.ShortestRoute:
			types = append(types, "shortest")
		case domain.FastestRoute:
			types = append(types, "fastestNow")
		}
	}
	if len(types) == 0 {
		types = []string{"fastestNow"}
	}

	var features []string
	for _, feature := range []domain.RouteFeatureType{
		domain.TollFeature,
		domain.HighwayFeature,
		domain.FerryFeature,
		domain.TunnelFeature,
		domain.DirtRoadFeature,
	} {
		weight, ok := query.Features[feature]
		if !ok || weight == domain.NeutralFeatureWeight {
			continue
		}

		var weightString string
		switch weight {
		case domain.PreferFeatureWeight:
			weightString = "1"
		case domain.AvoidFeatureWeight:
			weightString = "-1"
		case domain.DisallowFeatureWeight:
			weightString = "-3"
		default:
			continue
		}

		switch feature {
		case domain.TollFeature:
			features = append(features, "tollroad:"+weightString)
		case domain.HighwayFeature:
			features = append(features, "motorway:"+weightString)
		case domain.FerryFeature:
			features = append(features, "boatFerry:"+weightString, "railFerry:"+weightString)
		case domain.TunnelFeature:
			features = append(features, "tunnel:"+weightString)
		case domain.DirtRoadFeature:
			features = append(features, "dirtRoad:"+weightString)
		}
	}

	s := ""
	for i, t := range types {
		s += fmt.Sprintf("&mode%d=%s;%s", i, t, query.Mode)
		if len(features) > 0 {
			s += ";" + strings.Join(features, ",")
		}
	}
	return s
}

func routeParams(query RouteQuery) string {
	s := ""

	for i, box := range query.ExcludeAreas {
		if i == 0 {
			s += "&avoidareas="
		} else {
			s += ";"
		}
		s += fmt.Sprintf("%s,%s,%s,%s",
			trimDouble(box.TopLeft.Latitude), trimDouble(box.TopLeft.Longitude),
			trimDouble(box.BottomRight.Latitude), trimDouble(box.BottomRight.Longitude))
	}

	// shape and length per link, then maneuvers with position,
	// travel time, length, direction and the link reference
	s += "&linkattributes=sh,le"
	s += "&maneuverattributes=po,tt,le,di,li"

	// summary, shape, bounding box, legs
	s += "&routeattributes=sm,sh,bb,lg"
	s += "&legattributes=links,maneuvers"

	departure := query.Departure
	if departure.IsZero() {
		departure = time.Now()
	}
	s += "&departure=" + departure.UTC().Format("2006-01-02T15:04:05Z")

	s += "&instructionformat=text"

	language := query.Language
	if language == "" || language == "C" {
		language = "en_US"
	}
	s += "&language=" + language

	return s
}
