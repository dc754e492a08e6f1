package parse

import (
	"encoding/xml"

	"ovi/geoservices/internal/domain"
)

type geocodeResponseXML struct {
	XMLName xml.Name          `xml:"places"`
	Places  []geocodePlaceXML `xml:"place"`
}

type geocodePlaceXML struct {
	Title    string             `xml:"title"`
	Location geocodeLocationXML `xml:"location"`
}

type geocodeLocationXML struct {
	Position geocodePositionXML `xml:"position"`
	Address  geocodeAddressXML  `xml:"address"`
}

type geocodePositionXML struct {
	Latitude  float64 `xml:"latitude"`
	Longitude float64 `xml:"longitude"`
}

type geocodeAddressXML struct {
	Country     string `xml:"country"`
	CountryCode string `xml:"countryCode"`
	State       string `xml:"state"`
	County      string `xml:"county"`
	City        string `xml:"city"`
	District    string `xml:"district"`
	Street      string `xml:"street"`
	Number      string `xml:"number"`
	Postcode    string `xml:"postCode"`
}

// Geocode decodes a geocoder placemark document, a places root with
// one place element per match.
func Geocode(data []byte) ([]domain.Place, error) {
	var response geocodeResponseXML
	if err := xml.Unmarshal(data, &response); err != nil {
		return nil, domain.Errorf(domain.ParseError, "decode geocode response: %v", err)
	}

	places := make([]domain.Place, 0, len(response.Places))
	for _, element := range response.Places {
		street := element.Location.Address.Street
		if element.Location.Address.Number != "" {
			street = element.Location.Address.Number + " " + street
		}

		place := domain.Place{
			Name: element.Title,
			Location: domain.Location{
				Coordinate: domain.NewCoordinate(
					element.Location.Position.Latitude,
					element.Location.Position.Longitude),
				Address: domain.Address{
					Country:     element.Location.Address.Country,
					CountryCode: element.Location.Address.CountryCode,
					State:       element.Location.Address.State,
					County:      element.Location.Address.County,
					City:        element.Location.Address.City,
					District:    element.Location.Address.District,
					Street:      street,
					Postcode:    element.Location.Address.Postcode,
				},
			},
		}
		places = append(places, place)
	}
	return places, nil
}
