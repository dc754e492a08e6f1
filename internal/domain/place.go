package domain

// Contact kinds used as keys in Place.Contacts.
const (
	ContactPhone   = "phone"
	ContactFax     = "fax"
	ContactEmail   = "email"
	ContactWebsite = "website"
)

type ContactDetail struct {
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
}

type Ratings struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type Description struct {
	Text      string   `json:"text"`
	Title     string   `json:"title,omitempty"`
	SourceURL string   `json:"source_url,omitempty"`
	Language  string   `json:"language,omitempty"`
	Supplier  Supplier `json:"supplier,omitempty"`
}

// Place is the central entity returned by searches, detail lookups and
// geocoding. Only a subset of fields is populated depending on which
// endpoint produced it.
type Place struct {
	ID           string                              `json:"id,omitempty"`
	Name         string                              `json:"name,omitempty"`
	Location     Location                            `json:"location"`
	Categories   []Category                          `json:"categories,omitempty"`
	Ratings      Ratings                             `json:"ratings"`
	Contacts     map[string][]ContactDetail          `json:"contacts,omitempty"`
	Supplier     Supplier                            `json:"supplier,omitempty"`
	Tags         []string                            `json:"tags,omitempty"`
	Descriptions []Description                       `json:"descriptions,omitempty"`
	Content      map[ContentType]*ContentCollection  `json:"content,omitempty"`
	Attributes   map[string]string                   `json:"attributes,omitempty"`
	Detailed     bool                                `json:"detailed"`
}

// AddContact appends a contact detail under the given kind, allocating
// the map on first use.
func (p *Place) AddContact(kind string, detail ContactDetail) {
	if detail.Value == "" {
		return
	}
	if p.Contacts == nil {
		p.Contacts = map[string][]ContactDetail{}
	}
	p.Contacts[kind] = append(p.Contacts[kind], detail)
}

func (p *Place) SetAttribute(key, value string) {
	if value == "" {
		return
	}
	if p.Attributes == nil {
		p.Attributes = map[string]string{}
	}
	p.Attributes[key] = value
}

// CollectionFor returns the content collection for the given type,
// creating it if needed.
func (p *Place) CollectionFor(t ContentType) *ContentCollection {
	if p.Content == nil {
		p.Content = map[ContentType]*ContentCollection{}
	}
	coll, ok := p.Content[t]
	if !ok {
		coll = NewContentCollection()
		p.Content[t] = coll
	}
	return coll
}

type SearchResultType int

const (
	PlaceResult SearchResultType = iota
	CorrectionResult
	ProposedSearchResult
)

// SearchResult is one entry of a search response. Type discriminates
// which of the payload fields is meaningful.
type SearchResult struct {
	Type       SearchResultType `json:"type"`
	Place      Place            `json:"place,omitempty"`
	Correction string           `json:"correction,omitempty"`
	Distance   float64          `json:"distance,omitempty"`
}
