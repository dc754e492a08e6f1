package request

import (
	"fmt"

	"ovi/geoservices/internal/domain"
)

const (
	recommendationsPath = "/recommendations/nearby"
	reviewsPath         = "/reviews?"
	imagesPath          = "/images?"
	editorialsPath      = "/editorials?"
	categoriesTreePath  = "categories/find-places/grouped"

	paramQuery  = "&q="
	paramLat    = "&lat="
	paramLon    = "&lon="
	paramTop    = "&vpn="
	paramBottom = "&vps="
	paramLeft   = "&vpw="
	paramRight  = "&vpe="
	paramLimit  = "&to="
	paramOffset = "&of="
	paramDym    = "&dym="

	// view and device parameters, fixed for this provider
	paramViews    = "?vi=where"
	paramDeviceID = "&dv=oviMaps"

	paramPageStart = "&start="
	paramPageLimit = "&limit="
)

// SearchQuery carries the parameters of a place search. Limit is
// emitted when positive, Offset when non-negative, Suggestions (the
// did-you-mean count) when positive.
type SearchQuery struct {
	Term        string
	Area        domain.BoundingArea
	Limit       int
	Offset      int
	Suggestions int
}

// PageQuery selects a window of a content collection. Offset is
// emitted when non-negative, Limit when positive.
type PageQuery struct {
	Offset int
	Limit  int
}

// PlacesBuilder renders the query strings of the places and search
// endpoints. All methods are pure string builders; no I/O.
type PlacesBuilder struct {
	SearchURL string
	PlacesURL string
}

func (b *PlacesBuilder) Search(query SearchQuery) string {
	return b.prepareSearch(query) + paramQuery + query.Term
}

// Suggest builds a search request in headline mode, which makes the
// endpoint return text predictions instead of results.
func (b *PlacesBuilder) Suggest(query SearchQuery) string {
	return b.prepareSearch(query) + paramQuery + query.Term + "&lh=1"
}

func (b *PlacesBuilder) PlaceDetails(placeID string) string {
	return b.PlacesURL + placeID
}

func (b *PlacesBuilder) PlaceImages(placeID string, page PageQuery) string {
	return b.PlacesURL + placeID + imagesPath + pageParams(page)
}

func (b *PlacesBuilder) PlaceReviews(placeID string, page PageQuery) string {
	return b.PlacesURL + placeID + reviewsPath + pageParams(page)
}

func (b *PlacesBuilder) PlaceEditorials(placeID string, page PageQuery) string {
	return b.PlacesURL + placeID + editorialsPath + pageParams(page)
}

func (b *PlacesBuilder) Recommendations(placeID string) string {
	return b.PlacesURL + placeID + recommendationsPath
}

func (b *PlacesBuilder) CategoriesTree() string {
	return b.PlacesURL + categoriesTreePath
}

// CategoryChildren addresses the grouped subtree of a single category.
func (b *PlacesBuilder) CategoryChildren(categoryID string) string {
	return b.PlacesURL + categoriesTreePath + "/" + categoryID
}

func pageParams(page PageQuery) string {
	s := ""
	if page.Offset > -1 {
		s += paramPageStart + fmt.Sprintf("%d", page.Offset)
	}
	if page.Limit > 0 {
		s += paramPageLimit + fmt.Sprintf("%d", page.Limit)
	}
	return s
}

func (b *PlacesBuilder) prepareSearch(query SearchQuery) string {
	s := b.SearchURL
	s += paramViews
	s += paramDeviceID

	switch area := query.Area.(type) {
	case domain.BoundingCircle:
		s += paramLat + formatNumber(area.Center.Latitude)
		s += paramLon + formatNumber(area.Center.Longitude)
	case domain.BoundingBox:
		s += paramTop + formatNumber(area.TopLeft.Latitude)
		s += paramLeft + formatNumber(area.TopLeft.Longitude)
		s += paramBottom + formatNumber(area.BottomRight.Latitude)
		s += paramRight + formatNumber(area.BottomRight.Longitude)
	}

	if query.Limit > 0 {
		s += paramLimit + fmt.Sprintf("%d", query.Limit)
	}
	if query.Offset > -1 {
		s += paramOffset + fmt.Sprintf("%d", query.Offset)
	}
	if query.Suggestions > 0 {
		s += paramDym + fmt.Sprintf("%d", query.Suggestions)
	}

	return s
}

// formatNumber renders a coordinate component the compact way,
// dropping the trailing zeros a plain %f would keep.
func formatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}
