package registry

import (
	"sync"

	"ovi/geoservices/internal/domain"
)

// SupplierRegistry deduplicates the suppliers seen across parsed
// payloads. Suppliers repeat between places, reviews and images with
// varying completeness; the registry keeps one canonical entry per
// supplier and fills in fields as richer sightings arrive.
type SupplierRegistry struct {
	mu        sync.Mutex
	suppliers []domain.Supplier
}

func NewSupplierRegistry() *SupplierRegistry {
	return &SupplierRegistry{}
}

// Add merges the candidate into the registry and returns the canonical
// entry. A candidate matches an existing entry on equal non-empty ID or
// equal non-empty Name. Matches only fill fields the entry is missing,
// never overwrite; unmatched candidates are appended. Empty candidates
// are returned as-is without registering.
func (r *SupplierRegistry) Add(candidate domain.Supplier) domain.Supplier {
	if candidate.IsEmpty() {
		return candidate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.suppliers {
		existing := &r.suppliers[i]
		matched := (candidate.ID != "" && candidate.ID == existing.ID) ||
			(candidate.Name != "" && candidate.Name == existing.Name)
		if !matched {
			continue
		}
		if existing.ID == "" {
			existing.ID = candidate.ID
		}
		if existing.Name == "" {
			existing.Name = candidate.Name
		}
		if existing.URL == "" {
			existing.URL = candidate.URL
		}
		if existing.IconURL == "" {
			existing.IconURL = candidate.IconURL
		}
		return *existing
	}

	r.suppliers = append(r.suppliers, candidate)
	return candidate
}

// All returns a snapshot of the registered suppliers.
func (r *SupplierRegistry) All() []domain.Supplier {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Supplier(nil), r.suppliers...)
}
