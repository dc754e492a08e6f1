package parse

import (
	"encoding/json"

	"ovi/geoservices/internal/domain"
)

// Search decodes a v1 search response, {"results": [...]}. Entries
// typed DID_YOU_MEAN_SEARCH become correction results carrying the
// suggested search string; everything else becomes a place result.
func (p *Parser) Search(data []byte) ([]domain.SearchResult, error) {
	var doc object
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.Errorf(domain.ParseError, "decode search response: %v", err)
	}

	resultsValue, ok := doc["results"]
	if !ok {
		return nil, domain.NewError(domain.ParseError, "search response has no results element")
	}

	results := []domain.SearchResult{}
	for _, item := range asArray(resultsValue) {
		element := asObject(item)
		if element == nil {
			continue
		}
		results = append(results, p.processResultElement(element))
	}
	return results, nil
}

func (p *Parser) processResultElement(element object) domain.SearchResult {
	if getString(element, "type") == "DID_YOU_MEAN_SEARCH" {
		properties := asObject(element["properties"])
		if title := getString(properties, "title"); title != "" {
			return domain.SearchResult{
				Type:       domain.CorrectionResult,
				Correction: title,
			}
		}
	}
	return p.processPlaceElement(element)
}

func (p *Parser) processPlaceElement(element object) domain.SearchResult {
	result := domain.SearchResult{Type: domain.PlaceResult}

	properties := asObject(element["properties"])
	if properties != nil {
		if distance, ok := getFloat(properties, "geoDistance"); ok {
			result.Distance = distance
		}

		place := &result.Place
		place.Name = getString(properties, "title")
		place.ID = getString(properties, "placesId")

		if provider := getString(properties, "dataProvider"); provider != "" {
			place.Supplier = p.suppliers.Add(domain.Supplier{Name: provider})
		}

		place.AddContact(domain.ContactWebsite, domain.ContactDetail{
			Label: "Website",
			Value: getString(properties, "url"),
		})
		place.AddContact(domain.ContactPhone, domain.ContactDetail{
			Label: "Phone",
			Value: getString(properties, "phoneNumber"),
		})

		if rating, ok := getFloat(properties, "placesRating"); ok {
			place.Ratings.Average = rating
		}

		place.Location = p.processSearchLocation(properties)
	}

	for _, item := range asArray(element["categories"]) {
		categoryElement := asObject(item)
		if categoryElement == nil {
			continue
		}
		code := getString(categoryElement, "id")
		if code == "" {
			continue
		}
		category := p.categories.MapCategory(code)
		if category.ID != "" {
			result.Place.Categories = append(result.Place.Categories, category)
		}
	}

	return result
}

func (p *Parser) processSearchLocation(properties object) domain.Location {
	var location domain.Location

	lat, latOK := getFloat(properties, "geoLatitude")
	lng, lngOK := getFloat(properties, "geoLongitude")
	if latOK && lngOK {
		location.Coordinate = domain.NewCoordinate(lat, lng)
	}

	topLat, topLatOK := getFloat(properties, "GEO_BBX_LATITUDE_1")
	topLng, topLngOK := getFloat(properties, "GEO_BBX_LONGITUDE_1")
	bottomLat, bottomLatOK := getFloat(properties, "GEO_BBX_LATITUDE_2")
	bottomLng, bottomLngOK := getFloat(properties, "GEO_BBX_LONGITUDE_2")
	if topLatOK && topLngOK && bottomLatOK && bottomLngOK {
		location.BoundingBox = domain.BoundingBox{
			TopLeft:     domain.NewCoordinate(topLat, topLng),
			BottomRight: domain.NewCoordinate(bottomLat, bottomLng),
		}
	}

	location.Address = processSearchAddress(properties)
	return location
}

func processSearchAddress(properties object) domain.Address {
	address := domain.Address{
		Country:  getString(properties, "addrCountryName"),
		County:   getString(properties, "addrCountyName"),
		State:    getString(properties, "addrStateName"),
		Postcode: getString(properties, "addrPostalCode"),
		City:     getString(properties, "addrCityName"),
		District: getString(properties, "addrDistrictName"),
		Street:   getString(properties, "addrStreetName"),
	}
	if code := getString(properties, "addrCountryCode"); code != "" {
		address.CountryCode = code
	}
	if houseNumber := getString(properties, "addrHouseNumber"); houseNumber != "" {
		address.Street = houseNumber + " " + address.Street
	}
	return address
}
