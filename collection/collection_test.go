package collection

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		meta Meta
		want Tag
	}{
		{"explicit collection men", Meta{Collection: "men"}, Men},
		{"explicit collection male", Meta{Collection: "male"}, Men},
		{"explicit collection women", Meta{Collection: "women"}, Women},
		{"explicit collection female", Meta{Collection: "female"}, Women},
		{"explicit collection padded", Meta{Collection: "  Women  "}, Women},
		{"gender male", Meta{Gender: "male"}, Men},
		{"gender female", Meta{Gender: "FEMALE"}, Women},
		{"category womens ethnic wear", Meta{Category: "Women's Ethnic Wear"}, Women},
		{"category mens casuals", Meta{Category: "Men's Casuals"}, Men},
		{"women substring beats men substring", Meta{Category: "Womenswear"}, Women},
		{"name fallback", Meta{Name: "Men's Oxford Shirt"}, Men},
		{"title fallback", Meta{Title: "Kurta for Women"}, Women},
		{"no signal", Meta{Name: "Plain Tee"}, None},
		{"empty meta", Meta{}, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.meta); got != tt.want {
				t.Errorf("Normalize(%+v) = %q, want %q", tt.meta, got, tt.want)
			}
		})
	}
}

func TestNormalizePrecedence(t *testing.T) {
	// explicit collection wins over every weaker signal
	meta := Meta{Collection: "men", Gender: "female", Category: "Women's Sarees"}
	if got := Normalize(meta); got != Men {
		t.Errorf("collection field should win, got %q", got)
	}

	// gender wins over category text
	meta = Meta{Gender: "male", Category: "Women's Sarees"}
	if got := Normalize(meta); got != Men {
		t.Errorf("gender field should win over category, got %q", got)
	}

	// category text wins over name text
	meta = Meta{Category: "Men's Shoes", Name: "Trainers for Women"}
	if got := Normalize(meta); got != Men {
		t.Errorf("category should win over name, got %q", got)
	}
}
