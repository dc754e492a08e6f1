package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ovi/geoservices/internal/domain"
)

func testPlacesBuilder() *PlacesBuilder {
	return &PlacesBuilder{
		SearchURL: "http://search.example/NOSe/json",
		PlacesURL: "http://places.example/rest/v1/places/",
	}
}

func TestSearchWithCircle(t *testing.T) {
	builder := testPlacesBuilder()

	url := builder.Search(SearchQuery{
		Term:   "pizza",
		Area:   domain.BoundingCircle{Center: domain.NewCoordinate(57.1, -27.5)},
		Limit:  20,
		Offset: 0,
	})

	assert.Equal(t,
		"http://search.example/NOSe/json?vi=where&dv=oviMaps&lat=57.1&lon=-27.5&to=20&of=0&q=pizza",
		url)
}

func TestSearchWithBox(t *testing.T) {
	builder := testPlacesBuilder()

	url := builder.Search(SearchQuery{
		Term: "hotel",
		Area: domain.BoundingBox{
			TopLeft:     domain.NewCoordinate(53, 12),
			BottomRight: domain.NewCoordinate(51, 14),
		},
		Offset: -1,
	})

	// viewport edges go out as north, west, south, east
	assert.Equal(t,
		"http://search.example/NOSe/json?vi=where&dv=oviMaps&vpn=53&vpw=12&vps=51&vpe=14&q=hotel",
		url)
}

func TestSearchOmitsUnsetWindow(t *testing.T) {
	builder := testPlacesBuilder()

	url := builder.Search(SearchQuery{Term: "cafe", Offset: -1})

	assert.NotContains(t, url, "&to=")
	assert.NotContains(t, url, "&of=")
	assert.NotContains(t, url, "&dym=")
}

func TestSearchWithCorrections(t *testing.T) {
	builder := testPlacesBuilder()

	url := builder.Search(SearchQuery{Term: "cafe", Offset: -1, Suggestions: 5})

	assert.Contains(t, url, "&dym=5")
}

func TestSuggest(t *testing.T) {
	builder := testPlacesBuilder()

	url := builder.Suggest(SearchQuery{Term: "ber", Offset: -1})

	assert.Contains(t, url, "&q=ber")
	assert.Contains(t, url, "&lh=1")
}

func TestPlaceURLs(t *testing.T) {
	builder := testPlacesBuilder()
	page := PageQuery{Offset: 10, Limit: 5}

	assert.Equal(t, "http://places.example/rest/v1/places/abc123",
		builder.PlaceDetails("abc123"))
	assert.Equal(t, "http://places.example/rest/v1/places/abc123/images?&start=10&limit=5",
		builder.PlaceImages("abc123", page))
	assert.Equal(t, "http://places.example/rest/v1/places/abc123/reviews?&start=10&limit=5",
		builder.PlaceReviews("abc123", page))
	assert.Equal(t, "http://places.example/rest/v1/places/abc123/editorials?&start=10&limit=5",
		builder.PlaceEditorials("abc123", page))
	assert.Equal(t, "http://places.example/rest/v1/places/abc123/recommendations/nearby",
		builder.Recommendations("abc123"))
}

func TestPageParamsSentinels(t *testing.T) {
	assert.Equal(t, "", pageParams(PageQuery{Offset: -1, Limit: 0}))
	assert.Equal(t, "&start=0", pageParams(PageQuery{Offset: 0, Limit: 0}))
	assert.Equal(t, "&limit=10", pageParams(PageQuery{Offset: -1, Limit: 10}))
}

func TestCategoriesURLs(t *testing.T) {
	builder := testPlacesBuilder()

	assert.Equal(t, "http://places.example/rest/v1/places/categories/find-places/grouped",
		builder.CategoriesTree())
	assert.Equal(t, "http://places.example/rest/v1/places/categories/find-places/grouped/eat-drink",
		builder.CategoryChildren("eat-drink"))
}
