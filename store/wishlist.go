package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/yogendra-08/vastraverse-api/models"
)

const wishlistKeyPrefix = "vastraverse:wishlist:"

// WishlistState is the full serialized shape of one user's wishlist.
type WishlistState struct {
	Items []models.WishlistItem `json:"items"`
}

// WishlistStore holds one user's saved-for-later items. Same persistence
// discipline as CartStore, toggle semantics instead of quantities.
type WishlistStore struct {
	mu        sync.Mutex
	key       string
	state     WishlistState
	persister Persister
	now       func() time.Time
}

func NewWishlistStore(ctx context.Context, p Persister, userID string) (*WishlistStore, error) {
	s := &WishlistStore{
		key:       wishlistKeyPrefix + userID,
		persister: p,
		now:       time.Now,
	}
	data, err := p.Load(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if data != nil {
		if err := decodeSnapshot(data, &s.state); err != nil {
			log.Printf("discarding unreadable wishlist snapshot for %s: %v", userID, err)
			s.state = WishlistState{}
		}
	}
	return s, nil
}

// Toggle adds the item when its product is absent and removes it when
// present. Returns true when the item ended up in the wishlist. Applying
// Toggle twice with the same product restores the prior state.
func (s *WishlistStore) Toggle(ctx context.Context, item models.WishlistItem) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Items[:0]
	removed := false
	for _, it := range s.state.Items {
		if it.ProductID == item.ProductID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if removed {
		s.state.Items = kept
		return false, s.persist(ctx)
	}

	item.ID = s.now().UnixMilli()
	item.AddedAt = s.now()
	s.state.Items = append(s.state.Items, item)
	return true, s.persist(ctx)
}

func (s *WishlistStore) Contains(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.state.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

func (s *WishlistStore) Snapshot() WishlistState {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := s.state
	cp.Items = make([]models.WishlistItem, len(s.state.Items))
	copy(cp.Items, s.state.Items)
	return cp
}

func (s *WishlistStore) persist(ctx context.Context) error {
	data, err := encodeSnapshot(s.state)
	if err != nil {
		return err
	}
	return s.persister.Save(ctx, s.key, data)
}
