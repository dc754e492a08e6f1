package registry

import (
	"sync"

	"ovi/geoservices/internal/domain"
)

// legacyCategoryCodes maps the numeric category tags still emitted by
// the v1 search endpoint onto canonical category ids.
var legacyCategoryCodes = map[string]string{
	// business services
	"9000269": "business-services",
	"9000005": "business-industry",
	"9000277": "travel-agency",
	"9000028": "tourist-information",
	"9000040": "police-emergency",
	"9000017": "petrol-station",
	"9000278": "communication-media",
	"9000047": "atm-bank-exchange",
	"9000002": "car-dealer-repair",
	"9000020": "car-rental",
	"9000215": "service",
	"9000019": "post-office",
	// transport
	"9000272": "transport",
	"9000216": "taxi-stand",
	"9000043": "airport",
	"9000041": "railway-station",
	"9000058": "public-transport",
	"9000035": "ferry-terminal",
	// shopping
	"9000270": "shopping",
	"9000205": "clothing-accessories-shop",
	"9000276": "bookshop",
	"9000194": "hardware-house-garden-shop",
	"9000049": "pharmacy",
	"9000024": "mall",
	"9000197": "kiosk-convenience-store",
	"9000196": "electronics-shop",
	"9000191": "sport-outdoor-shop",
	"9000189": "department-store",
	// accommodation
	"9000271": "accommodation",
	"9000032": "camping",
	"9000174": "motel",
	"9000038": "hotel",
	"9000173": "hostel",
	// going out
	"9000274": "going-out",
	"9000203": "dance-night-club",
	"9000003": "casino",
	"9000004": "cinema",
	"9000181": "theatre-music-culture",
	// facilities
	"9000261": "facilities",
	"9000039": "parking-facility",
	"9000007": "fair-convention-facility",
	"9000012": "government-community-facility",
	"9000200": "hospital-health-care-facility",
	"9000106": "education-facility",
	"9000220": "sports-facility-venue",
	"9000031": "library",
	// nature and geography
	"9000265": "natural-geographical",
	"9000262": "body-of-water",
	"9000045": "mountain-hill",
	"9000259": "forest-health-vegetation",
	"9000260": "undersea-feature",
	// areas and infrastructure
	"9000266": "administrative-areas-buildings",
	"9000279": "administrative-region",
	"9000263": "outdoor-area-complex",
	"9000283": "city-town-village",
	"9000280": "building",
	// eat and drink
	"9000275": "eat-drink",
	"9000063": "coffee-tea",
	"9000022": "restaurant",
	"9000064": "snacks-fast-food",
	"9000033": "bar-pub",
	"9000143": "food-drink",
	// leisure
	"9000267": "leisure-outdoor",
	"9000048": "recreation",
	"9000001": "amusement-holiday-park",
	// sights and museums
	"9000273": "sights-museums",
	"9000014": "museum",
	"9000158": "religious-place",
	"9000211": "landmark-attraction",
	// second search center
	"9000282": "second-search-center",
}

// CategoryRegistry holds the category tree fetched from the vendor and
// resolves legacy numeric tags against it. A registry instance is
// created per engine and shared by its parsers, which run on worker
// goroutines, so all access is mutex guarded.
type CategoryRegistry struct {
	mu   sync.RWMutex
	tree domain.CategoryTree

	sscOnce sync.Once
	ssc     domain.Category
}

func NewCategoryRegistry() *CategoryRegistry {
	return &CategoryRegistry{tree: domain.NewCategoryTree()}
}

// MapCategory resolves a legacy numeric tag to a category from the
// tree. Unknown tags resolve to the zero category. The synthetic
// second-search-center category has no tree entry and is built once on
// first use.
func (r *CategoryRegistry) MapCategory(code string) domain.Category {
	id, ok := legacyCategoryCodes[code]
	if !ok {
		return domain.Category{}
	}
	if id == "second-search-center" {
		r.sscOnce.Do(func() {
			r.ssc = domain.Category{ID: "second-search-center"}
		})
		return r.ssc
	}
	return r.FindCategoryByID(id)
}

// CategoryTagCode returns the legacy numeric tag for a canonical
// category id, or "" when the id has no legacy tag.
func (r *CategoryRegistry) CategoryTagCode(id string) string {
	for code, canonical := range legacyCategoryCodes {
		if canonical == id {
			return code
		}
	}
	return ""
}

func (r *CategoryRegistry) FindCategoryByID(id string) domain.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tree.Category(id)
}

func (r *CategoryRegistry) SetTree(tree domain.CategoryTree) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tree = tree
}

func (r *CategoryRegistry) Tree() domain.CategoryTree {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tree
}

// Children returns the direct child categories of the given parent id,
// "" meaning the root.
func (r *CategoryRegistry) Children(parentID string) []domain.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.tree.ChildIDs(parentID)
	children := make([]domain.Category, 0, len(ids))
	for _, id := range ids {
		children = append(children, r.tree.Category(id))
	}
	return children
}
