package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ovi/geoservices/internal/domain"
)

func TestSupplierAddMergesByName(t *testing.T) {
	registry := NewSupplierRegistry()

	registry.Add(domain.Supplier{Name: "Qype"})
	merged := registry.Add(domain.Supplier{Name: "Qype", IconURL: "http://icons/qype.png"})

	assert.Equal(t, "http://icons/qype.png", merged.IconURL)
	require.Len(t, registry.All(), 1)
	assert.Equal(t, "http://icons/qype.png", registry.All()[0].IconURL)
}

func TestSupplierAddNeverOverwrites(t *testing.T) {
	registry := NewSupplierRegistry()

	registry.Add(domain.Supplier{ID: "qype", Name: "Qype", URL: "http://qype.com"})
	merged := registry.Add(domain.Supplier{ID: "qype", URL: "http://other.example"})

	assert.Equal(t, "http://qype.com", merged.URL)
	assert.Equal(t, "Qype", merged.Name)
}

func TestSupplierAddDistinct(t *testing.T) {
	registry := NewSupplierRegistry()

	registry.Add(domain.Supplier{Name: "Qype"})
	registry.Add(domain.Supplier{Name: "Lonely Planet"})

	assert.Len(t, registry.All(), 2)
}

func TestSupplierAddEmptyPassthrough(t *testing.T) {
	registry := NewSupplierRegistry()

	assert.Equal(t, domain.Supplier{}, registry.Add(domain.Supplier{}))
	assert.Empty(t, registry.All())
}
