package parse

import (
	"encoding/json"

	"ovi/geoservices/internal/domain"
)

// Categories decodes a categories tree document:
//
//	{"categories": {"category": [...], "group": [{"groupingCategory": {...}, ...}]}}
//
// Category and group fields may be arrays or single objects. Repeated
// category ids keep their first occurrence, so the tree stays stable
// when the same document is parsed again.
func (p *Parser) Categories(data []byte) (domain.CategoryTree, error) {
	var doc object
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.Errorf(domain.ParseError, "decode categories: %v", err)
	}

	categories, ok := doc["categories"]
	if !ok {
		return nil, domain.NewError(domain.ParseError, "categories document has no categories element")
	}

	tree := domain.NewCategoryTree()
	p.processCategories(asObject(categories), "", tree)
	return tree, nil
}

// FlatCategoryList decodes the categories element embedded in a place
// details document into a flat list.
func (p *Parser) FlatCategoryList(value any) []domain.Category {
	tree := domain.NewCategoryTree()
	p.processCategories(asObject(value), "", tree)

	var categories []domain.Category
	for id, node := range tree {
		if id == "" {
			continue
		}
		categories = append(categories, node.Category)
	}
	return categories
}

func (p *Parser) processCategories(categories object, parentID string, tree domain.CategoryTree) {
	if categories == nil {
		return
	}

	for _, item := range asArray(categories["category"]) {
		category := parseCategory(asObject(item))
		tree.Insert(category, parentID)
	}

	for _, item := range asArray(categories["group"]) {
		p.processGroup(asObject(item), parentID, tree)
	}
}

// processGroup handles a grouping category and recurses into its
// nested members.
func (p *Parser) processGroup(group object, parentID string, tree domain.CategoryTree) {
	if group == nil {
		return
	}

	grouping := parseCategory(asObject(group["groupingCategory"]))
	if grouping.ID == "" {
		return
	}
	tree.Insert(grouping, parentID)

	p.processCategories(group, grouping.ID, tree)
}

// parseCategory reads one category object; "name" carries the id and
// "displayName" the human readable name.
func parseCategory(value object) domain.Category {
	if value == nil {
		return domain.Category{}
	}
	category := domain.Category{ID: getString(value, "name")}
	if category.ID != "" {
		category.Name = getString(value, "displayName")
	}
	return category
}
