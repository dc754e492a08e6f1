package request

import (
	"fmt"

	"ovi/geoservices/internal/domain"
)

// GeocodeBuilder renders geocoder endpoint URLs. Locale is resolved to
// the MARC language code at build time.
type GeocodeBuilder struct {
	Host    string
	Token   string
	Referer string
	Locale  string
}

func (b *GeocodeBuilder) base(path string) string {
	s := "http://" + b.Host + path + "?referer=" + b.Referer
	if b.Token != "" {
		s += "&token=" + b.Token
	}
	s += "&lg=" + MarcLanguage(b.Locale)
	return s
}

func (b *GeocodeBuilder) Geocode(address domain.Address) string {
	s := b.base("/geocoder/gc/1.0")

	s += "&country=" + address.Country
	if address.State != "" {
		s += "&state=" + address.State
	}
	if address.City != "" {
		s += "&city=" + address.City
	}
	if address.Postcode != "" {
		s += "&zip=" + address.Postcode
	}
	if address.Street != "" {
		s += "&street=" + address.Street
	}

	return s
}

func (b *GeocodeBuilder) ReverseGeocode(coordinate domain.Coordinate) string {
	s := b.base("/geocoder/rgc/1.0")

	// lg is appended before the position in base; the geocoder does
	// not care about parameter order
	s += "&long=" + trimDouble(coordinate.Longitude)
	s += "&lat=" + trimDouble(coordinate.Latitude)

	return s
}

// FreeTextGeocode searches with a one-box location string. Limit is
// emitted when positive; offset only when positive, unlike the places
// search where zero offsets are sent too.
func (b *GeocodeBuilder) FreeTextGeocode(term string, limit, offset int) string {
	s := b.base("/geocoder/gc/1.0")

	s += "&obloc=" + term
	if limit > 0 {
		s += fmt.Sprintf("&total=%d", limit)
	}
	if offset > 0 {
		s += fmt.Sprintf("&offset=%d", offset)
	}

	return s
}
