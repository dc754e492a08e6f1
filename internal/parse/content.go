package parse

import (
	"encoding/json"
	"time"

	"ovi/geoservices/internal/domain"
)

// ContentCollection decodes a v2 paged content document into the given
// collection:
//
//	{"items": [...], "offset": N, "available": N, "previous": url, "next": url}
//
// Items land at offset+i, or after the collection's current tail when
// the document carries no offset, so pages merge without collisions.
func (p *Parser) ContentCollection(data []byte, contentType domain.ContentType, collection *domain.ContentCollection) error {
	var doc object
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Errorf(domain.ParseError, "decode %s content: %v", contentType, err)
	}

	index, hasOffset := getInt(doc, "offset")
	if !hasOffset {
		index = collection.NextIndex()
	}

	for _, item := range asArray(doc["items"]) {
		element := asObject(item)
		if element == nil {
			continue
		}

		content, ok := p.parseContentItem(element, contentType)
		if !ok {
			continue
		}
		collection.Insert(index, content)
		index++
	}

	if available, ok := getInt(doc, "available"); ok {
		collection.Total = available
	}
	collection.PreviousParams = getString(doc, "previous")
	collection.NextParams = getString(doc, "next")

	return nil
}

func (p *Parser) parseContentItem(element object, contentType domain.ContentType) (domain.Content, bool) {
	switch contentType {
	case domain.ImageContent:
		image := p.parseImage(element)
		if image.URL == "" {
			return domain.Content{}, false
		}
		return domain.Content{Type: contentType, Image: &image}, true
	case domain.ReviewContent:
		review := p.parseCollectionReview(element)
		return domain.Content{Type: contentType, Review: &review}, true
	case domain.EditorialContent:
		editorial := p.parseEditorial(element)
		return domain.Content{Type: contentType, Editorial: &editorial}, true
	default:
		return domain.Content{}, false
	}
}

func (p *Parser) parseImage(element object) domain.Image {
	image := domain.Image{
		URL:         getString(element, "src"),
		Attribution: stripHTML(getString(element, "attribution")),
	}
	image.ID = image.URL
	image.Supplier = p.parseContentSupplier(element)
	return image
}

func (p *Parser) parseCollectionReview(element object) domain.Review {
	review := domain.Review{
		Title:       getString(element, "title"),
		Text:        getString(element, "description"),
		Language:    getString(element, "language"),
		Attribution: stripHTML(getString(element, "attribution")),
	}

	if date := getString(element, "date"); date != "" {
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

	if user := asObject(element["user"]); user != nil {
		review.UserID = getString(user, "id")
		review.User = getString(user, "title")
	}

	review.Supplier = p.parseContentSupplier(element)
	return review
}

func (p *Parser) parseEditorial(element object) domain.Editorial {
	return domain.Editorial{
		Text:        getString(element, "description"),
		Language:    getString(element, "language"),
		Attribution: stripHTML(getString(element, "attribution")),
		Supplier:    p.parseContentSupplier(element),
	}
}

// parseContentSupplier reads the v2 supplier object, {"title", "href",
// "icon"}, and registers it.
func (p *Parser) parseContentSupplier(element object) domain.Supplier {
	supplierObject := asObject(element["supplier"])
	if supplierObject == nil {
		return domain.Supplier{}
	}
	supplier := domain.Supplier{
		Name:    getString(supplierObject, "title"),
		URL:     getString(supplierObject, "href"),
		IconURL: getString(supplierObject, "icon"),
	}
	if supplier.IsEmpty() {
		return supplier
	}
	return p.suppliers.Add(supplier)
}
