package engine

import (
	"context"

	"ovi/geoservices/internal/domain"
	"ovi/geoservices/internal/reply"
	"ovi/geoservices/internal/request"
)

// Visibility is the scope a search is restricted to. The vendor only
// serves public data.
type Visibility int

const (
	UnspecifiedVisibility Visibility = iota
	PublicVisibility
	PrivateVisibility
	DeviceVisibility
)

// SearchQuery carries an engine level search. When Category is set its
// name overrides the search term, matching the behaviour of the
// category browse surface.
type SearchQuery struct {
	request.SearchQuery
	Category   domain.Category
	Visibility Visibility
}

func (q SearchQuery) effective() (request.SearchQuery, bool) {
	if q.Visibility != UnspecifiedVisibility && q.Visibility != PublicVisibility {
		return request.SearchQuery{}, false
	}
	query := q.SearchQuery
	if !q.Category.IsEmpty() {
		term := q.Category.Name
		if term == "" {
			term = q.Category.ID
		}
		query.Term = term
	}
	return query, true
}

// Search runs a place search. Non public visibility scopes error
// immediately without issuing I/O.
func (e *Engine) Search(ctx context.Context, query SearchQuery) *reply.Reply[[]domain.SearchResult] {
	effective, ok := query.effective()
	if !ok {
		r, _ := reply.New[[]domain.SearchResult](ctx)
		r.SetError(domain.UnsupportedError, "searching for places with unsupported visibility scope")
		return r
	}
	if effective.Term == "" {
		r, _ := reply.New[[]domain.SearchResult](ctx)
		r.SetError(domain.UnsupportedError, unsupportedMessage)
		return r
	}

	return launch(e, ctx, e.places.Search(effective), domain.CommunicationError, e.parser.Search)
}

// Suggest returns text predictions for a partial search term.
func (e *Engine) Suggest(ctx context.Context, query SearchQuery) *reply.Reply[[]string] {
	effective, ok := query.effective()
	if !ok {
		r, _ := reply.New[[]string](ctx)
		r.SetError(domain.UnsupportedError, "searching for places with unsupported visibility scope")
		return r
	}
	if effective.Term == "" {
		r, _ := reply.New[[]string](ctx)
		r.SetError(domain.UnsupportedError, unsupportedMessage)
		return r
	}

	return launch(e, ctx, e.places.Suggest(effective), domain.CommunicationError, e.parser.Suggestions)
}

// PlaceDetails fetches the full description of one place. An unknown
// id reports PlaceDoesNotExistError.
func (e *Engine) PlaceDetails(ctx context.Context, placeID string) *reply.Reply[domain.Place] {
	if placeID == "" {
		r, _ := reply.New[domain.Place](ctx)
		r.SetError(domain.BadArgumentError, "place id is empty")
		return r
	}

	return launch(e, ctx, e.places.PlaceDetails(placeID), domain.PlaceDoesNotExistError, e.parser.Details)
}

// Recommendations fetches places similar to the given one.
func (e *Engine) Recommendations(ctx context.Context, placeID string) *reply.Reply[[]domain.SearchResult] {
	if placeID == "" {
		r, _ := reply.New[[]domain.SearchResult](ctx)
		r.SetError(domain.BadArgumentError, "place id is empty")
		return r
	}

	return launch(e, ctx, e.places.Recommendations(placeID), domain.PlaceDoesNotExistError, e.parser.Search)
}

// ContentQuery selects a page of place content of one type.
type ContentQuery struct {
	Type   domain.ContentType
	Offset int
	Limit  int
}

// ContentResult is a fetched page of content merged into a collection.
type ContentResult struct {
	Type       domain.ContentType
	Collection *domain.ContentCollection
}

// PlaceContent fetches one page of images, reviews or editorials for a
// place. Reviews come from the dedicated reviews endpoint; images and
// editorials from the paged content collections.
func (e *Engine) PlaceContent(ctx context.Context, placeID string, query ContentQuery) *reply.Reply[ContentResult] {
	if placeID == "" {
		r, _ := reply.New[ContentResult](ctx)
		r.SetError(domain.BadArgumentError, "place id is empty")
		return r
	}

	page := request.PageQuery{Offset: query.Offset, Limit: query.Limit}

	var url string
	switch query.Type {
	case domain.ImageContent:
		url = e.places.PlaceImages(placeID, page)
	case domain.ReviewContent:
		url = e.places.PlaceReviews(placeID, page)
	case domain.EditorialContent:
		url = e.places.PlaceEditorials(placeID, page)
	default:
		r, _ := reply.New[ContentResult](ctx)
		r.SetError(domain.UnsupportedError, "unsupported content type")
		return r
	}

	offset := query.Offset
	contentType := query.Type
	return launch(e, ctx, url, domain.PlaceDoesNotExistError, func(body []byte) (ContentResult, error) {
		collection := domain.NewContentCollection()

		if contentType == domain.ReviewContent {
			reviews, total, err := e.parser.Reviews(body)
			if err != nil {
				return ContentResult{}, err
			}
			index := offset
			if index < 0 {
				index = 0
			}
			for i := range reviews {
				collection.Insert(index, domain.Content{
					Type:   domain.ReviewContent,
					Review: &reviews[i],
				})
				index++
			}
			collection.Total = total
			return ContentResult{Type: contentType, Collection: collection}, nil
		}

		if err := e.parser.ContentCollection(body, contentType, collection); err != nil {
			return ContentResult{}, err
		}
		return ContentResult{Type: contentType, Collection: collection}, nil
	})
}
