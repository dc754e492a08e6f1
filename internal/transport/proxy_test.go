package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxySupplierEmptyPool(t *testing.T) {
	supplier, err := NewProxySupplier(context.Background(), nil, "http://unused.example")
	require.NoError(t, err)

	assert.Equal(t, "", supplier.Get())
	assert.Equal(t, "", supplier.Get())
}

func TestProxySupplierRoundRobin(t *testing.T) {
	okProxy := func() *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
	}
	first := okProxy()
	t.Cleanup(first.Close)
	second := okProxy()
	t.Cleanup(second.Close)

	supplier, err := NewProxySupplier(context.Background(),
		[]string{first.URL, second.URL}, first.URL)
	require.NoError(t, err)

	seen := map[string]int{}
	for i := 0; i < 4; i++ {
		seen[supplier.Get()]++
	}
	assert.Equal(t, 2, seen[first.URL])
	assert.Equal(t, 2, seen[second.URL])
}

func TestProxySupplierDropsDeadProxies(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(target.Close)

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	t.Cleanup(dead.Close)

	supplier, err := NewProxySupplier(context.Background(),
		[]string{target.URL, dead.URL}, target.URL)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, target.URL, supplier.Get())
	}
}
