package parse

import (
	"ovi/geoservices/internal/registry"
)

// Parser decodes the places endpoints' payloads. It shares the engine
// wide registries so that categories resolve against the fetched tree
// and suppliers deduplicate across documents.
type Parser struct {
	categories *registry.CategoryRegistry
	suppliers  *registry.SupplierRegistry
}

func New(categories *registry.CategoryRegistry, suppliers *registry.SupplierRegistry) *Parser {
	return &Parser{
		categories: categories,
		suppliers:  suppliers,
	}
}
