package store

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/yogendra-08/vastraverse-api/models"
)

const (
	cartKeyPrefix = "vastraverse:cart:"

	// MaxQuantityPerAdd caps a single add; the running line total is
	// deliberately unclamped.
	MaxQuantityPerAdd = 10
)

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidPrice    = errors.New("invalid product price")
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 10")
)

// CartState is the full serialized shape of one user's cart: the lines plus
// the derived aggregates. Aggregates are recomputed from scratch after every
// mutation, never maintained incrementally, so they cannot drift.
type CartState struct {
	Items      []models.CartLine `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice float64           `json:"total_price"`
}

// ItemDetails is everything needed to open a new cart line for a product.
type ItemDetails struct {
	ProductID  uint
	Name       string
	Price      float64
	Image      string
	Category   string
	Gender     string
	Collection string
}

// CartStore holds one user's cart. All mutations are serialized by the
// store's mutex and flushed to the persister before returning; the
// in-memory state stays authoritative for the session even when a flush
// fails. Concurrent writers to the same persisted key race and the last
// write wins.
type CartStore struct {
	mu        sync.Mutex
	key       string
	state     CartState
	persister Persister
	now       func() time.Time
}

// NewCartStore rehydrates the user's cart from durable storage. A malformed
// blob is discarded and the store starts fresh.
func NewCartStore(ctx context.Context, p Persister, userID string) (*CartStore, error) {
	s := &CartStore{
		key:       cartKeyPrefix + userID,
		persister: p,
		now:       time.Now,
	}
	data, err := p.Load(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if data != nil {
		if err := decodeSnapshot(data, &s.state); err != nil {
			log.Printf("discarding unreadable cart snapshot for %s: %v", userID, err)
			s.state = CartState{}
		}
	}
	s.recompute()
	return s, nil
}

// AddToCart validates the product details and the quantity, then either
// merges into the existing line for the product or opens a new one. A cart
// never holds two lines for the same product.
func (s *CartStore) AddToCart(ctx context.Context, d ItemDetails, quantity int) (models.CartLine, error) {
	if d.ProductID == 0 {
		return models.CartLine{}, ErrInvalidProduct
	}
	if d.Price <= 0 {
		return models.CartLine{}, ErrInvalidPrice
	}
	if quantity < 1 || quantity > MaxQuantityPerAdd {
		return models.CartLine{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if s.state.Items[i].ProductID != d.ProductID {
			continue
		}
		line := &s.state.Items[i]
		line.Quantity += quantity
		// keep the category/collection recorded on first add
		if line.Category == "" {
			line.Category = d.Category
		}
		if line.Collection == "" {
			line.Collection = d.Collection
		}
		s.recompute()
		return *line, s.persist(ctx)
	}

	line := models.CartLine{
		ID:         s.now().UnixMilli(),
		ProductID:  d.ProductID,
		Name:       d.Name,
		Price:      d.Price,
		Image:      d.Image,
		Category:   d.Category,
		Gender:     d.Gender,
		Collection: d.Collection,
		Quantity:   quantity,
		AddedAt:    s.now(),
	}
	s.state.Items = append(s.state.Items, line)
	s.recompute()
	return line, s.persist(ctx)
}

// UpdateQuantity replaces a line's quantity in place. A quantity of zero or
// less removes the line, exactly like RemoveFromCart.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID uint, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if s.state.Items[i].ProductID == productID {
			s.state.Items[i].Quantity = quantity
			s.recompute()
			return s.persist(ctx)
		}
	}
	return nil
}

// RemoveFromCart filters the product's line out. Removing an absent product
// is a silent no-op.
func (s *CartStore) RemoveFromCart(ctx context.Context, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Items[:0]
	removed := false
	for _, line := range s.state.Items {
		if line.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	if !removed {
		return nil
	}
	s.state.Items = kept
	s.recompute()
	return s.persist(ctx)
}

// ClearCart empties the cart and zeroes the aggregates.
func (s *CartStore) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Items = nil
	s.recompute()
	return s.persist(ctx)
}

func (s *CartStore) ItemQuantity(productID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.state.Items {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}

func (s *CartStore) Contains(productID uint) bool {
	return s.ItemQuantity(productID) > 0
}

// Snapshot returns a copy of the current state.
func (s *CartStore) Snapshot() CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := s.state
	cp.Items = make([]models.CartLine, len(s.state.Items))
	copy(cp.Items, s.state.Items)
	return cp
}

// recompute derives the aggregates from the line list. Callers hold the lock.
func (s *CartStore) recompute() {
	total := 0
	price := 0.0
	for _, line := range s.state.Items {
		total += line.Quantity
		price += line.Price * float64(line.Quantity)
	}
	s.state.TotalItems = total
	s.state.TotalPrice = price
}

func (s *CartStore) persist(ctx context.Context) error {
	data, err := encodeSnapshot(s.state)
	if err != nil {
		return err
	}
	return s.persister.Save(ctx, s.key, data)
}
