package store

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ghiac/appshell/model"
)

// Registry is an in-memory, process-wide map from visitor ID to AppStore.
// The least recently used visitors are evicted once the size is reached;
// an evicted visitor starts over from the initial state.
type Registry struct {
	stores  *lru.Cache[string, *AppStore]
	initial model.AppSharedState
}

// NewRegistry creates a registry holding at most size visitors
func NewRegistry(size int, initial model.AppSharedState) (*Registry, error) {
	cache, err := lru.New[string, *AppStore](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create visitor cache: %w", err)
	}
	return &Registry{stores: cache, initial: initial}, nil
}

// Get returns the store for a visitor, creating it when missing
func (r *Registry) Get(visitorID string) (*AppStore, error) {
	if visitorID == "" {
		return nil, fmt.Errorf("visitor ID cannot be empty")
	}

	if s, ok := r.stores.Get(visitorID); ok {
		return s, nil
	}

	// PeekOrAdd keeps concurrent first requests of one visitor on the same store
	s := NewAppStore(r.initial)
	if prev, ok, _ := r.stores.PeekOrAdd(visitorID, s); ok {
		return prev, nil
	}
	return s, nil
}

// Delete forgets a visitor
func (r *Registry) Delete(visitorID string) {
	r.stores.Remove(visitorID)
}

// Len returns the number of tracked visitors
func (r *Registry) Len() int {
	return r.stores.Len()
}
