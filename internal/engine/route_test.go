package engine

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ovi/geoservices/internal/domain"
	"ovi/geoservices/internal/request"
)

func routeXMLDocument(routeID string) string {
	return `<CalculateRoute><Response><Route>
		<RouteId>` + routeID + `</RouteId>
		<Mode><TransportModes>car</TransportModes></Mode>
		<Summary><Distance>1000</Distance><TrafficTime>600</TrafficTime></Summary>
	</Route></Response></CalculateRoute>`
}

func testRouteQuery() request.RouteQuery {
	return request.RouteQuery{
		Waypoints: []domain.Coordinate{
			domain.NewCoordinate(52.5, 13.4),
			domain.NewCoordinate(48.1, 11.6),
		},
		Mode: domain.CarTravel,
	}
}

func TestCalculateRoute(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/routing/6.2/calculateroute.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(routeXMLDocument("route-1")))
	})
	e := testEngine(t, mux)

	routes, err := e.CalculateRoute(context.Background(), testRouteQuery()).Wait(context.Background())
	require.NoError(t, err)

	require.Len(t, routes, 1)
	assert.Equal(t, "route-1", routes[0].ID)
	assert.Equal(t, domain.CarTravel, routes[0].Mode)
}

func TestCalculateRouteFanOut(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/routing/6.2/calculateroute.xml", func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "mode0=shortest") {
			w.Write([]byte(routeXMLDocument("short")))
			return
		}
		w.Write([]byte(routeXMLDocument("fast")))
	})
	e := testEngine(t, mux)

	query := testRouteQuery()
	query.Optimizations = []domain.RouteOptimization{domain.ShortestRoute, domain.FastestRoute}

	routes, err := e.CalculateRoute(context.Background(), query).Wait(context.Background())
	require.NoError(t, err)

	// merged in optimization order, not completion order
	require.Len(t, routes, 2)
	assert.Equal(t, "short", routes[0].ID)
	assert.Equal(t, "fast", routes[1].ID)
}

func TestCalculateRouteFanOutPartialFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/routing/6.2/calculateroute.xml", func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "mode0=shortest") {
			http.Error(w, "unavailable", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(routeXMLDocument("fast")))
	})
	e := testEngine(t, mux)

	query := testRouteQuery()
	query.Optimizations = []domain.RouteOptimization{domain.ShortestRoute, domain.FastestRoute}

	routes, err := e.CalculateRoute(context.Background(), query).Wait(context.Background())
	require.NoError(t, err)

	require.Len(t, routes, 1)
	assert.Equal(t, "fast", routes[0].ID)
}

func TestCalculateRouteAllRequestsFail(t *testing.T) {
	e := testEngine(t, http.NotFoundHandler())

	query := testRouteQuery()
	query.Optimizations = []domain.RouteOptimization{domain.ShortestRoute, domain.FastestRoute}

	_, err := e.CalculateRoute(context.Background(), query).Wait(context.Background())
	assert.Equal(t, domain.CommunicationError, domain.KindOf(err))
}

func TestCalculateRouteUnsupported(t *testing.T) {
	e := testEngine(t, http.NotFoundHandler())

	query := testRouteQuery()
	query.Mode = domain.BicycleTravel

	_, err := e.CalculateRoute(context.Background(), query).Wait(context.Background())
	assert.Equal(t, domain.UnsupportedError, domain.KindOf(err))
}

func TestCalculateRouteAbortCancelsRequests(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 2)
	mux := http.NewServeMux()
	mux.HandleFunc("/routing/6.2/calculateroute.xml", func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		<-release
		w.Write([]byte(routeXMLDocument("late")))
	})
	e := testEngine(t, mux)

	query := testRouteQuery()
	query.Optimizations = []domain.RouteOptimization{domain.ShortestRoute, domain.FastestRoute}

	r := e.CalculateRoute(context.Background(), query)
	<-started
	<-started
	r.Abort()
	close(release)

	_, err := r.Wait(context.Background())
	assert.Equal(t, domain.CancelError, domain.KindOf(err))

	// the late responses must not overwrite the aborted outcome
	assert.Empty(t, r.Result())
	assert.Equal(t, domain.CancelError, domain.KindOf(r.Err()))
}

func TestCalculateRouteNoRouteFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/routing/6.2/calculateroute.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<Error type="ApplicationError" subtype="NoRouteFound"/>`))
	})
	e := testEngine(t, mux)

	routes, err := e.CalculateRoute(context.Background(), testRouteQuery()).Wait(context.Background())
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestUpdateRoute(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/routing/6.2/getroute.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<GetRoute><Response><Route>
			<RouteId>route-7</RouteId>
			<Mode><TransportModes>car</TransportModes></Mode>
			<Summary><Distance>900</Distance><TrafficTime>500</TrafficTime></Summary>
		</Route></Response></GetRoute>`))
	})
	e := testEngine(t, mux)

	routes, err := e.UpdateRoute(context.Background(),
		domain.Route{ID: "route-7"},
		domain.NewCoordinate(52.5, 13.4),
		testRouteQuery()).Wait(context.Background())
	require.NoError(t, err)

	require.Len(t, routes, 1)
	assert.Equal(t, "route-7", routes[0].ID)
}

func TestUpdateRouteBadArguments(t *testing.T) {
	e := testEngine(t, http.NotFoundHandler())

	_, err := e.UpdateRoute(context.Background(),
		domain.Route{}, domain.NewCoordinate(52.5, 13.4), testRouteQuery()).Wait(context.Background())
	assert.Equal(t, domain.BadArgumentError, domain.KindOf(err))

	_, err = e.UpdateRoute(context.Background(),
		domain.Route{ID: "route-7"}, domain.Coordinate{}, testRouteQuery()).Wait(context.Background())
	assert.Equal(t, domain.BadArgumentError, domain.KindOf(err))
}
