package productcontroller

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadStaticProductsCanonicalizes(t *testing.T) {
	feed := `[
		{"id":1,"name":"Chikankari Kurta","price":1499,"discounted_price":999,"category":"Women's Ethnic Wear","stock":12},
		{"id":2,"title":"Nehru Jacket","discounted_price":2499,"gender":"male","stock":3},
		{"id":3,"name":"Plain Tee","title":"ignored when name set","price":399}
	]`
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(feed), 0o644); err != nil {
		t.Fatal(err)
	}

	products, err := LoadStaticProducts(path)
	if err != nil {
		t.Fatalf("LoadStaticProducts: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("got %d products, want 3", len(products))
	}

	if products[0].Name != "Chikankari Kurta" || products[0].Price != 1499 {
		t.Errorf("product 1 not canonical: %+v", products[0])
	}
	if len(products[0].Categories) != 1 || products[0].Categories[0].Name != "Women's Ethnic Wear" {
		t.Errorf("product 1 category not mapped: %+v", products[0].Categories)
	}

	// title stands in for a missing name, discounted price for a missing price
	if products[1].Name != "Nehru Jacket" {
		t.Errorf("product 2 name = %q, want title fallback", products[1].Name)
	}
	if products[1].Price != 2499 {
		t.Errorf("product 2 price = %v, want discounted fallback", products[1].Price)
	}

	// name wins over title when both are present
	if products[2].Name != "Plain Tee" {
		t.Errorf("product 3 name = %q", products[2].Name)
	}
}

func TestLoadStaticProductsRejectsBadFeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStaticProducts(path); err == nil {
		t.Error("malformed feed should fail loudly")
	}
}
