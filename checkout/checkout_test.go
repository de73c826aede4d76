package checkout

import (
	"testing"

	"github.com/yogendra-08/vastraverse-api/models"
)

func oneLine() []models.CartLine {
	return []models.CartLine{{ProductID: 5, Name: "Kurta", Price: 1000, Quantity: 2}}
}

func TestValidateOrder(t *testing.T) {
	good := OrderInput{
		UserName:  "Asha Verma",
		UserEmail: "asha@example.com",
		UserPhone: "+91 98765 43210",
		Location:  "221B Baker Street, Flat 4, Mumbai 400001",
	}

	tests := []struct {
		name    string
		in      OrderInput
		lines   []models.CartLine
		wantErr error
	}{
		{"accepts valid submission", good, oneLine(), nil},
		{"rejects empty cart", good, nil, ErrEmptyCart},
		{"rejects missing name", OrderInput{UserPhone: good.UserPhone, Location: good.Location}, oneLine(), ErrNameRequired},
		{"rejects blank name", OrderInput{UserName: "   ", UserPhone: good.UserPhone, Location: good.Location}, oneLine(), ErrNameRequired},
		{"rejects missing phone", OrderInput{UserName: good.UserName, Location: good.Location}, oneLine(), ErrPhoneInvalid},
		{"rejects short phone", OrderInput{UserName: good.UserName, UserPhone: "123", Location: good.Location}, oneLine(), ErrPhoneInvalid},
		{"rejects lettered phone", OrderInput{UserName: good.UserName, UserPhone: "call me 9876543210", Location: good.Location}, oneLine(), ErrPhoneInvalid},
		{"rejects short address", OrderInput{UserName: good.UserName, UserPhone: good.UserPhone, Location: "Home"}, oneLine(), ErrAddressShort},
		{"accepts punctuated phone", OrderInput{UserName: good.UserName, UserPhone: "(022) 987-654-3210", Location: good.Location}, oneLine(), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateOrder(tt.in, tt.lines); err != tt.wantErr {
				t.Errorf("ValidateOrder = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// The preconditions fail in a fixed order: cart before name before phone
// before address.
func TestValidateOrderFailsFastInOrder(t *testing.T) {
	if err := ValidateOrder(OrderInput{}, nil); err != ErrEmptyCart {
		t.Errorf("empty everything should report the cart first, got %v", err)
	}
	if err := ValidateOrder(OrderInput{}, oneLine()); err != ErrNameRequired {
		t.Errorf("want name error before phone, got %v", err)
	}
	if err := ValidateOrder(OrderInput{UserName: "A"}, oneLine()); err != ErrPhoneInvalid {
		t.Errorf("want phone error before address, got %v", err)
	}
}

func TestBuildOrderItems(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: 1, Name: "Saree", Price: 2999, Quantity: 1, Category: "Women's Ethnic Wear"},
		{ProductID: 2, Name: "Sherwani", Price: 5999, Quantity: 2, Gender: "male"},
		{ProductID: 3, Name: "Plain Tee", Price: 399, Quantity: 3}, // no signal
	}

	items := BuildOrderItems(lines)
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	wantTags := []string{"women", "men", "men"} // no-signal lines default to men
	for i, want := range wantTags {
		if items[i].Collection != want {
			t.Errorf("item %d collection = %q, want %q", i, items[i].Collection, want)
		}
	}
	if items[0].ProductName != "Saree" || items[0].Quantity != 1 || items[0].ProductPrice != 2999 {
		t.Errorf("item 0 lost line fields: %+v", items[0])
	}

	if got := OrderTotal(items); got != 2999+2*5999+3*399 {
		t.Errorf("OrderTotal = %v", got)
	}
}
