package store

import (
	"context"
	"testing"
)

func newTestCart(t *testing.T) (*CartStore, *MemoryPersister) {
	t.Helper()
	p := NewMemoryPersister()
	s, err := NewCartStore(context.Background(), p, "u1")
	if err != nil {
		t.Fatalf("NewCartStore: %v", err)
	}
	return s, p
}

func kurta(id uint, price float64) ItemDetails {
	return ItemDetails{ProductID: id, Name: "Chikankari Kurta", Price: price, Category: "Women's Ethnic Wear"}
}

func checkTotals(t *testing.T, s *CartStore, items int, price float64) {
	t.Helper()
	snap := s.Snapshot()
	if snap.TotalItems != items {
		t.Errorf("TotalItems = %d, want %d", snap.TotalItems, items)
	}
	if snap.TotalPrice != price {
		t.Errorf("TotalPrice = %v, want %v", snap.TotalPrice, price)
	}
}

func TestAddToCartValidation(t *testing.T) {
	s, _ := newTestCart(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		details ItemDetails
		qty     int
		wantErr error
	}{
		{"zero product id", ItemDetails{ProductID: 0, Price: 100}, 1, ErrInvalidProduct},
		{"zero price", ItemDetails{ProductID: 1, Price: 0}, 1, ErrInvalidPrice},
		{"negative price", ItemDetails{ProductID: 1, Price: -5}, 1, ErrInvalidPrice},
		{"zero quantity", ItemDetails{ProductID: 1, Price: 100}, 0, ErrInvalidQuantity},
		{"quantity above cap", ItemDetails{ProductID: 1, Price: 100}, 11, ErrInvalidQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.AddToCart(ctx, tt.details, tt.qty); err != tt.wantErr {
				t.Errorf("AddToCart = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// rejected adds mutate nothing
	checkTotals(t, s, 0, 0)
	if len(s.Snapshot().Items) != 0 {
		t.Error("rejected adds should leave the cart empty")
	}
}

func TestAddToCartMergesLines(t *testing.T) {
	s, _ := newTestCart(t)
	ctx := context.Background()

	for _, qty := range []int{2, 3, 10} {
		if _, err := s.AddToCart(ctx, kurta(5, 1000), qty); err != nil {
			t.Fatalf("AddToCart(qty=%d): %v", qty, err)
		}
	}

	snap := s.Snapshot()
	if len(snap.Items) != 1 {
		t.Fatalf("got %d lines for one product, want 1", len(snap.Items))
	}
	// running total is unclamped even though each call is capped at 10
	if snap.Items[0].Quantity != 15 {
		t.Errorf("Quantity = %d, want 15", snap.Items[0].Quantity)
	}
	checkTotals(t, s, 15, 15000)
}

func TestAddToCartPreservesFirstCategory(t *testing.T) {
	s, _ := newTestCart(t)
	ctx := context.Background()

	first := ItemDetails{ProductID: 7, Price: 500, Category: "Men's Casuals", Collection: "men"}
	if _, err := s.AddToCart(ctx, first, 1); err != nil {
		t.Fatal(err)
	}
	second := ItemDetails{ProductID: 7, Price: 500, Category: "Sale", Collection: "women"}
	if _, err := s.AddToCart(ctx, second, 1); err != nil {
		t.Fatal(err)
	}

	line := s.Snapshot().Items[0]
	if line.Category != "Men's Casuals" || line.Collection != "men" {
		t.Errorf("merge overwrote recorded metadata: %+v", line)
	}
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()

	viaUpdate, _ := newTestCart(t)
	viaRemove, _ := newTestCart(t)
	for _, s := range []*CartStore{viaUpdate, viaRemove} {
		if _, err := s.AddToCart(ctx, kurta(5, 1000), 2); err != nil {
			t.Fatal(err)
		}
	}

	if err := viaUpdate.UpdateQuantity(ctx, 5, 0); err != nil {
		t.Fatal(err)
	}
	if err := viaRemove.RemoveFromCart(ctx, 5); err != nil {
		t.Fatal(err)
	}

	for name, s := range map[string]*CartStore{"update(0)": viaUpdate, "remove": viaRemove} {
		if s.Contains(5) {
			t.Errorf("%s left the line in place", name)
		}
		checkTotals(t, s, 0, 0)
	}
}

func TestUpdateQuantityInPlace(t *testing.T) {
	s, _ := newTestCart(t)
	ctx := context.Background()

	if _, err := s.AddToCart(ctx, kurta(5, 1000), 2); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateQuantity(ctx, 5, 7); err != nil {
		t.Fatal(err)
	}
	if got := s.ItemQuantity(5); got != 7 {
		t.Errorf("ItemQuantity = %d, want 7", got)
	}
	checkTotals(t, s, 7, 7000)

	// updating an absent product changes nothing
	if err := s.UpdateQuantity(ctx, 99, 3); err != nil {
		t.Fatal(err)
	}
	checkTotals(t, s, 7, 7000)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s, _ := newTestCart(t)
	if err := s.RemoveFromCart(context.Background(), 42); err != nil {
		t.Errorf("removing an absent product should not fail: %v", err)
	}
}

func TestClearCart(t *testing.T) {
	s, _ := newTestCart(t)
	ctx := context.Background()

	if _, err := s.AddToCart(ctx, kurta(1, 100), 2); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddToCart(ctx, kurta(2, 200), 3); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearCart(ctx); err != nil {
		t.Fatal(err)
	}
	if len(s.Snapshot().Items) != 0 {
		t.Error("ClearCart left lines behind")
	}
	checkTotals(t, s, 0, 0)
}

// The end-to-end sequence: add qty 2 at 1000, add 1 more, remove.
func TestCartLifecycle(t *testing.T) {
	s, _ := newTestCart(t)
	ctx := context.Background()

	if _, err := s.AddToCart(ctx, kurta(5, 1000), 2); err != nil {
		t.Fatal(err)
	}
	checkTotals(t, s, 2, 2000)

	if _, err := s.AddToCart(ctx, kurta(5, 1000), 1); err != nil {
		t.Fatal(err)
	}
	if got := s.ItemQuantity(5); got != 3 {
		t.Errorf("ItemQuantity = %d, want 3", got)
	}
	checkTotals(t, s, 3, 3000)

	if err := s.RemoveFromCart(ctx, 5); err != nil {
		t.Fatal(err)
	}
	if len(s.Snapshot().Items) != 0 {
		t.Error("cart should be empty")
	}
	checkTotals(t, s, 0, 0)
}

func TestCartRehydrates(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersister()

	s, err := NewCartStore(ctx, p, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddToCart(ctx, kurta(5, 1000), 2); err != nil {
		t.Fatal(err)
	}

	// a second store over the same persisted key sees the snapshot
	s2, err := NewCartStore(ctx, p, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if got := s2.ItemQuantity(5); got != 2 {
		t.Errorf("rehydrated quantity = %d, want 2", got)
	}
	checkTotals(t, s2, 2, 2000)
}

func TestCartSurvivesCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersister()
	if err := p.Save(ctx, cartKeyPrefix+"u1", []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	s, err := NewCartStore(ctx, p, "u1")
	if err != nil {
		t.Fatalf("corrupt snapshot should not fail construction: %v", err)
	}
	checkTotals(t, s, 0, 0)
}

func TestCartReadsLegacySnapshot(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersister()

	// version 0: bare state, no envelope
	legacy := []byte(`{"items":[{"id":1,"product_id":5,"name":"Kurta","price":1000,"quantity":2}],"total_items":2,"total_price":2000}`)
	if err := p.Save(ctx, cartKeyPrefix+"u1", legacy); err != nil {
		t.Fatal(err)
	}

	s, err := NewCartStore(ctx, p, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.ItemQuantity(5); got != 2 {
		t.Errorf("legacy quantity = %d, want 2", got)
	}
	checkTotals(t, s, 2, 2000)
}
