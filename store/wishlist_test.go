package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/yogendra-08/vastraverse-api/models"
)

func TestToggleIsItsOwnInverse(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersister()
	s, err := NewWishlistStore(ctx, p, "u1")
	if err != nil {
		t.Fatal(err)
	}

	item := models.WishlistItem{ProductID: 9, Name: "Linen Shirt", Price: 1499, Stock: 4}

	added, err := s.Toggle(ctx, item)
	if err != nil || !added {
		t.Fatalf("first toggle: added=%v err=%v", added, err)
	}
	if !s.Contains(9) {
		t.Error("item should be present after first toggle")
	}

	added, err = s.Toggle(ctx, item)
	if err != nil || added {
		t.Fatalf("second toggle: added=%v err=%v", added, err)
	}
	if s.Contains(9) {
		t.Error("item should be absent after second toggle")
	}

	before := s.Snapshot()
	if _, err := s.Toggle(ctx, item); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Toggle(ctx, item); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before.Items, s.Snapshot().Items) {
		t.Error("double toggle should restore the prior state")
	}
}

func TestToggleKeepsOneEntryPerProduct(t *testing.T) {
	ctx := context.Background()
	s, err := NewWishlistStore(ctx, NewMemoryPersister(), "u1")
	if err != nil {
		t.Fatal(err)
	}

	a := models.WishlistItem{ProductID: 1, Name: "Saree", Price: 2999}
	b := models.WishlistItem{ProductID: 2, Name: "Sherwani", Price: 5999}
	for _, it := range []models.WishlistItem{a, b} {
		if _, err := s.Toggle(ctx, it); err != nil {
			t.Fatal(err)
		}
	}
	if got := len(s.Snapshot().Items); got != 2 {
		t.Fatalf("got %d items, want 2", got)
	}
	if !s.Contains(1) || !s.Contains(2) {
		t.Error("both products should be present")
	}
	if s.Contains(3) {
		t.Error("product 3 was never added")
	}
}

func TestWishlistRehydrates(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersister()

	s, err := NewWishlistStore(ctx, p, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Toggle(ctx, models.WishlistItem{ProductID: 3, Name: "Dupatta", Price: 799}); err != nil {
		t.Fatal(err)
	}

	s2, err := NewWishlistStore(ctx, p, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if !s2.Contains(3) {
		t.Error("rehydrated wishlist should contain product 3")
	}
}

func TestCartAndWishlistPersistIndependently(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersister()
	m := NewManager(p)

	cart, err := m.Cart(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	wish, err := m.Wishlist(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := cart.AddToCart(ctx, ItemDetails{ProductID: 1, Name: "Tee", Price: 399}, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := wish.Toggle(ctx, models.WishlistItem{ProductID: 2, Name: "Jeans", Price: 1299}); err != nil {
		t.Fatal(err)
	}

	// clearing the cart blob must not touch the wishlist blob
	if err := cart.ClearCart(ctx); err != nil {
		t.Fatal(err)
	}
	if !wish.Contains(2) {
		t.Error("wishlist should be untouched by cart mutations")
	}
}
