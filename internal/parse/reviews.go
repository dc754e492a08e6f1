package parse

import (
	"encoding/json"
	"time"

	"ovi/geoservices/internal/domain"
)

var reviewDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Reviews decodes a v1 reviews document:
//
//	{"reviews": {"review": [...], "totalNumberOfReviews": N}}
//
// The review field may be an array or a single object. The returned
// total is the vendor's overall count, not the page size.
func (p *Parser) Reviews(data []byte) ([]domain.Review, int, error) {
	var doc object
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, 0, domain.Errorf(domain.ParseError, "decode reviews: %v", err)
	}

	reviewsValue, ok := doc["reviews"]
	if !ok {
		return nil, 0, domain.NewError(domain.ParseError, "reviews document has no reviews element")
	}
	reviews := asObject(reviewsValue)

	total, _ := getInt(reviews, "totalNumberOfReviews")

	var result []domain.Review
	for _, item := range asArray(reviews["review"]) {
		element := asObject(item)
		if element == nil {
			continue
		}
		result = append(result, p.processReview(element))
	}
	return result, total, nil
}

func (p *Parser) processReview(element object) domain.Review {
	review := domain.Review{
		ID:            getString(element, "a_id"),
		Title:         getString(element, "title"),
		Text:          getString(element, "description"),
		User:          getString(element, "user"),
		UserID:        getString(element, "uuid"),
		OriginatorURL: getString(element, "originatorUrl"),
	}

	if date := getString(element, "creationDate"); date != "" {
		for _, layout := range reviewDateLayouts {
			if t, err := time.Parse(layout, date); err == nil {
				review.Date = t
				break
			}
		}
	}

	if rating, ok := getFloat(element, "rating"); ok {
		review.Rating = rating
	}

	supplier := domain.Supplier{
		ID:      getString(element, "vendor"),
		Name:    getString(element, "vendorDisplayName"),
		IconURL: getString(element, "vendorIconUrl"),
	}
	if !supplier.IsEmpty() {
		review.Supplier = p.suppliers.Add(supplier)
	}

	return review
}
