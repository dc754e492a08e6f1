package domain

import "time"

type ContentType int

const (
	NoContent ContentType = iota
	ImageContent
	ReviewContent
	EditorialContent
)

func (t ContentType) String() string {
	switch t {
	case ImageContent:
		return "image"
	case ReviewContent:
		return "review"
	case EditorialContent:
		return "editorial"
	default:
		return "none"
	}
}

type Image struct {
	URL         string   `json:"url"`
	ID          string   `json:"id,omitempty"`
	MimeType    string   `json:"mime_type,omitempty"`
	Attribution string   `json:"attribution,omitempty"`
	Supplier    Supplier `json:"supplier,omitempty"`
}

type Review struct {
	ID            string    `json:"id,omitempty"`
	Date          time.Time `json:"date,omitempty"`
	Title         string    `json:"title,omitempty"`
	Text          string    `json:"text,omitempty"`
	Rating        float64   `json:"rating,omitempty"`
	User          string    `json:"user,omitempty"`
	UserID        string    `json:"user_id,omitempty"`
	Language      string    `json:"language,omitempty"`
	Attribution   string    `json:"attribution,omitempty"`
	Supplier      Supplier  `json:"supplier,omitempty"`
	OriginatorURL string    `json:"originator_url,omitempty"`
}

type Editorial struct {
	Text        string   `json:"text"`
	Title       string   `json:"title,omitempty"`
	Language    string   `json:"language,omitempty"`
	Attribution string   `json:"attribution,omitempty"`
	Supplier    Supplier `json:"supplier,omitempty"`
}

// Content is a tagged holder for exactly one of the content kinds.
type Content struct {
	Type      ContentType `json:"type"`
	Image     *Image      `json:"image,omitempty"`
	Review    *Review     `json:"review,omitempty"`
	Editorial *Editorial  `json:"editorial,omitempty"`
}

// ContentCollection holds a sparse, indexed page of content items for
// one content type. Items are keyed by their absolute index within the
// full vendor collection so that pages fetched out of order merge
// without collisions.
type ContentCollection struct {
	Items          map[int]Content `json:"items"`
	Total          int             `json:"total"`
	PreviousParams string          `json:"previous_params,omitempty"`
	NextParams     string          `json:"next_params,omitempty"`
}

func NewContentCollection() *ContentCollection {
	return &ContentCollection{Items: map[int]Content{}}
}

// NextIndex returns the index one past the highest stored item, or 0
// for an empty collection.
func (c *ContentCollection) NextIndex() int {
	next := 0
	for i := range c.Items {
		if i >= next {
			next = i + 1
		}
	}
	return next
}

// Insert stores content at the given index. Existing entries are kept;
// inserts are append-only from the parsers' point of view.
func (c *ContentCollection) Insert(index int, content Content) {
	if _, exists := c.Items[index]; exists {
		return
	}
	c.Items[index] = content
}
