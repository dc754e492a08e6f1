package main

import (
	"context"
	"flag"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"ovi/geoservices/internal/config"
	"ovi/geoservices/internal/container"
	"ovi/geoservices/internal/domain"
	"ovi/geoservices/internal/engine"
	"ovi/geoservices/internal/request"
)

func main() {
	operation := flag.String("op", "search", "operation to run: search, geocode or route")
	query := flag.String("q", "", "search term or free-text location")
	from := flag.String("from", "", "route start as lat,lon")
	to := flag.String("to", "", "route destination as lat,lon")
	flag.Parse()

	log.Info("Starting geo services client...")

	// Load configuration using viper
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Info("Configuration loaded successfully")

	// Initialize container with all dependencies
	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer app.Close()

	ctx := context.Background()

	switch *operation {
	case "search":
		if err := app.Run(ctx); err != nil {
			log.Fatalf("Application exited with error: %v", err)
		}
		search(ctx, app.Engine, *query)
	case "geocode":
		geocode(ctx, app.Engine, *query)
	case "route":
		route(ctx, app.Engine, *from, *to)
	default:
		log.Fatalf("Unknown operation %q", *operation)
	}

	log.Info("Application finished successfully")
}

func search(ctx context.Context, e *engine.Engine, term string) {
	results, err := e.Search(ctx, engine.SearchQuery{
		SearchQuery: request.SearchQuery{Term: term, Limit: 20, Offset: -1},
	}).Wait(ctx)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	log.Infof("Search for %q returned %d results", term, len(results))
	for _, result := range results {
		log.Infof("  %s (%s)", result.Place.Name, result.Place.ID)
	}
}

func geocode(ctx context.Context, e *engine.Engine, term string) {
	places, err := e.GeocodeFreeText(ctx, term, 10, 0, domain.BoundingBox{}).Wait(ctx)
	if err != nil {
		log.Fatalf("Geocoding failed: %v", err)
	}

	log.Infof("Geocoding %q returned %d placemarks", term, len(places))
	for _, place := range places {
		log.Infof("  %s (%.5f, %.5f)", place.Name,
			place.Location.Coordinate.Latitude, place.Location.Coordinate.Longitude)
	}
}

func route(ctx context.Context, e *engine.Engine, from, to string) {
	start, err := parseCoordinate(from)
	if err != nil {
		log.Fatalf("Invalid -from: %v", err)
	}
	destination, err := parseCoordinate(to)
	if err != nil {
		log.Fatalf("Invalid -to: %v", err)
	}

	routes, err := e.CalculateRoute(ctx, request.RouteQuery{
		Waypoints: []domain.Coordinate{start, destination},
		Mode:      domain.CarTravel,
	}).Wait(ctx)
	if err != nil {
		log.Fatalf("Route calculation failed: %v", err)
	}

	log.Infof("Calculated %d routes", len(routes))
	for _, r := range routes {
		log.Infof("  %s: %.1f km, %d s", r.ID, r.Distance/1000, r.TravelTime)
	}
}

func parseCoordinate(s string) (domain.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.Coordinate{}, strconv.ErrSyntax
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Coordinate{}, err
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Coordinate{}, err
	}
	return domain.NewCoordinate(lat, lng), nil
}
