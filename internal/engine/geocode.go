package engine

import (
	"context"

	"ovi/geoservices/internal/domain"
	"ovi/geoservices/internal/parse"
	"ovi/geoservices/internal/reply"
)

// Geocode resolves a structured address to placemarks. When bounds is
// a valid box the results are filtered to it; the vendor itself does
// not honour a viewport on this endpoint.
func (e *Engine) Geocode(ctx context.Context, address domain.Address, bounds domain.BoundingBox) *reply.Reply[[]domain.Place] {
	if address.IsEmpty() {
		r, _ := reply.New[[]domain.Place](ctx)
		r.SetError(domain.BadArgumentError, "address is empty")
		return r
	}

	return launch(e, ctx, e.geocoder.Geocode(address), domain.CommunicationError, boundedGeocode(bounds))
}

// ReverseGeocode resolves a coordinate to the nearest placemarks.
func (e *Engine) ReverseGeocode(ctx context.Context, position domain.Coordinate, bounds domain.BoundingBox) *reply.Reply[[]domain.Place] {
	if !position.IsValid() {
		r, _ := reply.New[[]domain.Place](ctx)
		r.SetError(domain.BadArgumentError, "position is not a valid coordinate")
		return r
	}

	return launch(e, ctx, e.geocoder.ReverseGeocode(position), domain.CommunicationError, boundedGeocode(bounds))
}

// GeocodeFreeText resolves a one-box location string to placemarks.
func (e *Engine) GeocodeFreeText(ctx context.Context, term string, limit, offset int, bounds domain.BoundingBox) *reply.Reply[[]domain.Place] {
	if term == "" {
		r, _ := reply.New[[]domain.Place](ctx)
		r.SetError(domain.BadArgumentError, "search term is empty")
		return r
	}

	return launch(e, ctx, e.geocoder.FreeTextGeocode(term, limit, offset), domain.CommunicationError, boundedGeocode(bounds))
}

func boundedGeocode(bounds domain.BoundingBox) func([]byte) ([]domain.Place, error) {
	return func(body []byte) ([]domain.Place, error) {
		places, err := parse.Geocode(body)
		if err != nil {
			return nil, err
		}
		if !bounds.IsValid() {
			return places, nil
		}
		filtered := places[:0]
		for _, place := range places {
			if bounds.Contains(place.Location.Coordinate) {
				filtered = append(filtered, place)
			}
		}
		return filtered, nil
	}
}
