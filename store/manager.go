package store

import (
	"context"
	"sync"
)

// Manager owns the per-user store instances. The application shell creates
// one Manager and hands it to the handlers; stores hydrate from durable
// storage on first access and stay cached for the life of the process.
type Manager struct {
	mu        sync.Mutex
	persister Persister
	carts     map[string]*CartStore
	wishlists map[string]*WishlistStore
}

func NewManager(p Persister) *Manager {
	return &Manager{
		persister: p,
		carts:     make(map[string]*CartStore),
		wishlists: make(map[string]*WishlistStore),
	}
}

func (m *Manager) Cart(ctx context.Context, userID string) (*CartStore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.carts[userID]; ok {
		return s, nil
	}
	s, err := NewCartStore(ctx, m.persister, userID)
	if err != nil {
		return nil, err
	}
	m.carts[userID] = s
	return s, nil
}

func (m *Manager) Wishlist(ctx context.Context, userID string) (*WishlistStore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.wishlists[userID]; ok {
		return s, nil
	}
	s, err := NewWishlistStore(ctx, m.persister, userID)
	if err != nil {
		return nil, err
	}
	m.wishlists[userID] = s
	return s, nil
}
