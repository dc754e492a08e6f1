package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ovi/geoservices/internal/domain"
)

func testRouteBuilder() *RouteBuilder {
	return &RouteBuilder{Host: "route.example", Token: "tok", Referer: "localhost"}
}

func testRouteQuery() RouteQuery {
	return RouteQuery{
		Waypoints: []domain.Coordinate{
			domain.NewCoordinate(52.5, 13.4),
			domain.NewCoordinate(48.1, 11.6),
		},
		Mode:      domain.CarTravel,
		Departure: time.Date(2011, 5, 2, 13, 4, 5, 0, time.UTC),
		Language:  "de_DE",
	}
}

func TestCalculateRoute(t *testing.T) {
	builder := testRouteBuilder()

	url := builder.CalculateRoute(testRouteQuery())
	require.NotEmpty(t, url)

	assert.Contains(t, url, "http://route.example/routing/6.2/calculateroute.xml?referer=localhost&token=tok")
	assert.Contains(t, url, "&waypoint0=52.5,13.4")
	assert.Contains(t, url, "&waypoint1=48.1,11.6")
	assert.Contains(t, url, "&mode0=fastestNow;car")
	assert.Contains(t, url, "&alternatives=0")
	assert.Contains(t, url, "&linkattributes=sh,le")
	assert.Contains(t, url, "&maneuverattributes=po,tt,le,di,li")
	assert.Contains(t, url, "&routeattributes=sm,sh,bb,lg")
	assert.Contains(t, url, "&legattributes=links,maneuvers")
	assert.Contains(t, url, "&departure=2011-05-02T13:04:05Z")
	assert.Contains(t, url, "&instructionformat=text")
	assert.Contains(t, url, "&language=de_DE")
}

func TestCalculateRouteFeatureWeights(t *testing.T) {
	builder := testRouteBuilder()
	query := testRouteQuery()
	query.Optimizations = []domain.RouteOptimization{domain.ShortestRoute}
	query.Features = map[domain.RouteFeatureType]domain.RouteFeatureWeight{
		domain.TollFeature:  domain.DisallowFeatureWeight,
		domain.FerryFeature: domain.AvoidFeatureWeight,
	}

	url := builder.CalculateRoute(query)

	assert.Contains(t, url, "&mode0=shortest;car;tollroad:-3,boatFerry:-1,railFerry:-1")
}

func TestCalculateRouteMultipleOptimizations(t *testing.T) {
	builder := testRouteBuilder()
	query := testRouteQuery()
	query.Optimizations = []domain.RouteOptimization{domain.ShortestRoute, domain.FastestRoute}

	url := builder.CalculateRoute(query)

	assert.Contains(t, url, "&mode0=shortest;car")
	assert.Contains(t, url, "&mode1=fastestNow;car")
}

func TestCalculateRouteExcludeAreas(t *testing.T) {
	builder := testRouteBuilder()
	query := testRouteQuery()
	query.ExcludeAreas = []domain.BoundingBox{
		{TopLeft: domain.NewCoordinate(53, 12), BottomRight: domain.NewCoordinate(51, 14)},
		{TopLeft: domain.NewCoordinate(50, 10), BottomRight: domain.NewCoordinate(49, 11)},
	}

	url := builder.CalculateRoute(query)

	assert.Contains(t, url, "&avoidareas=53,12,51,14;50,10,49,11")
}

func TestCalculateRouteUnsupported(t *testing.T) {
	builder := testRouteBuilder()

	bicycle := testRouteQuery()
	bicycle.Mode = domain.BicycleTravel
	assert.Empty(t, builder.CalculateRoute(bicycle))

	required := testRouteQuery()
	required.Features = map[domain.RouteFeatureType]domain.RouteFeatureWeight{
		domain.TollFeature: domain.RequireFeatureWeight,
	}
	assert.Empty(t, builder.CalculateRoute(required))

	park := testRouteQuery()
	park.Features = map[domain.RouteFeatureType]domain.RouteFeatureWeight{
		domain.ParksFeature: domain.AvoidFeatureWeight,
	}
	assert.Empty(t, builder.CalculateRoute(park))

	single := testRouteQuery()
	single.Waypoints = single.Waypoints[:1]
	assert.Empty(t, builder.CalculateRoute(single))
}

func TestCalculateRouteNeutralFeatureIsIgnored(t *testing.T) {
	builder := testRouteBuilder()
	query := testRouteQuery()
	query.Features = map[domain.RouteFeatureType]domain.RouteFeatureWeight{
		domain.ParksFeature: domain.NeutralFeatureWeight,
	}

	url := builder.CalculateRoute(query)

	require.NotEmpty(t, url)
	assert.Contains(t, url, "&mode0=fastestNow;car&")
}

func TestUpdateRoute(t *testing.T) {
	builder := testRouteBuilder()

	url := builder.UpdateRoute(
		domain.Route{ID: "route-7"},
		domain.NewCoordinate(52.52, 13.41),
		testRouteQuery())

	assert.Contains(t, url, "http://route.example/routing/6.2/getroute.xml?routeid=route-7")
	assert.Contains(t, url, "&pos=52.52,13.41")
	assert.Contains(t, url, "&mode0=fastestNow;car")
}
