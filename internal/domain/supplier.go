package domain

// Supplier identifies the data provider that contributed a place,
// review, image or editorial. Suppliers repeat heavily inside one
// response; the registry collapses them to canonical entries.
type Supplier struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	URL     string `json:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

func (s Supplier) IsEmpty() bool {
	return s == Supplier{}
}
