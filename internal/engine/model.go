package engine

import (
	"context"
	"sync"

	"ovi/geoservices/internal/domain"
	"ovi/geoservices/internal/reply"
)

// SearchModel keeps the results of the most recent search and notifies
// observers when its store changes. Notifications fire only after the
// underlying reply has reached a terminal state; observers reading
// Results or Err from a callback always see the final snapshot.
type SearchModel struct {
	engine *Engine

	mu      sync.Mutex
	current *reply.Reply[[]domain.SearchResult]
	results []domain.SearchResult
	err     *domain.Error

	onResultsChanged []func()
	onStoreChanged   []func()
}

func NewSearchModel(engine *Engine) *SearchModel {
	return &SearchModel{engine: engine}
}

// Run starts a new search, replacing the previous one. A search still
// in flight is aborted; its late completion cannot overwrite the
// results of the newer query.
func (m *SearchModel) Run(ctx context.Context, query SearchQuery) {
	r := m.engine.Search(ctx, query)

	m.mu.Lock()
	previous := m.current
	m.current = r
	m.mu.Unlock()

	// aborted outside the lock, the abort runs callbacks synchronously
	if previous != nil {
		previous.Abort()
	}

	r.OnFinished(func() {
		m.mu.Lock()
		if m.current != r {
			m.mu.Unlock()
			return
		}
		m.current = nil
		if err := r.Err(); err != nil {
			derr, ok := err.(*domain.Error)
			if !ok {
				derr = domain.NewError(domain.KindOf(err), err.Error())
			}
			m.err = derr
			store := m.storeCallbacks()
			m.mu.Unlock()
			fire(store)
			return
		}
		m.results = r.Result()
		m.err = nil
		results := append([]func(){}, m.onResultsChanged...)
		store := m.storeCallbacks()
		m.mu.Unlock()

		fire(results)
		fire(store)
	})
}

// Results returns a snapshot of the current result list.
func (m *SearchModel) Results() []domain.SearchResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SearchResult{}, m.results...)
}

// Err returns the error of the last finished search, nil on success.
func (m *SearchModel) Err() *domain.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// OnResultsChanged registers a callback fired after a search finishes
// with new results.
func (m *SearchModel) OnResultsChanged(callback func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onResultsChanged = append(m.onResultsChanged, callback)
}

// OnStoreChanged registers a callback fired after any change to the
// model's store: new results, a failed search, or a Clear. For a
// successful search it fires after the results callbacks.
func (m *SearchModel) OnStoreChanged(callback func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onStoreChanged = append(m.onStoreChanged, callback)
}

// Clear drops the current results without starting a new search.
func (m *SearchModel) Clear() {
	m.mu.Lock()
	current := m.current
	m.current = nil
	m.results = nil
	m.err = nil
	store := m.storeCallbacks()
	m.mu.Unlock()

	if current != nil {
		current.Abort()
	}
	fire(store)
}

func (m *SearchModel) storeCallbacks() []func() {
	return append([]func(){}, m.onStoreChanged...)
}

func fire(callbacks []func()) {
	for _, callback := range callbacks {
		callback()
	}
}
