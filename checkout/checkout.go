package checkout

import (
	"errors"
	"regexp"
	"strings"

	"github.com/yogendra-08/vastraverse-api/collection"
	"github.com/yogendra-08/vastraverse-api/models"
)

// Shipping details entered at checkout.
type OrderInput struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserPhone string `json:"user_phone"`
	Location  string `json:"location"`
}

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrNameRequired = errors.New("name is required")
	ErrPhoneInvalid = errors.New("a valid phone number with at least 10 digits is required")
	ErrAddressShort = errors.New("delivery address must be at least 10 characters")
)

// digits plus the punctuation people type into phone fields
var phonePattern = regexp.MustCompile(`^[0-9+\-\s().]+$`)

// ValidateOrder checks the submission preconditions in order and fails fast
// on the first violation, so the caller always gets one specific message.
func ValidateOrder(in OrderInput, lines []models.CartLine) error {
	if len(lines) == 0 {
		return ErrEmptyCart
	}
	if strings.TrimSpace(in.UserName) == "" {
		return ErrNameRequired
	}
	phone := strings.TrimSpace(in.UserPhone)
	if phone == "" || !phonePattern.MatchString(phone) || digitCount(phone) < 10 {
		return ErrPhoneInvalid
	}
	if len(strings.TrimSpace(in.Location)) < 10 {
		return ErrAddressShort
	}
	return nil
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// BuildOrderItems maps cart lines to order items, attaching the derived
// collection tag. Lines with no collection signal ship under "men", matching
// the storefront's long-standing behaviour.
func BuildOrderItems(lines []models.CartLine) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		tag := collection.Normalize(collection.Meta{
			Collection: line.Collection,
			Gender:     line.Gender,
			Category:   line.Category,
			Name:       line.Name,
		})
		if tag == collection.None {
			tag = collection.Men
		}
		items = append(items, models.OrderItem{
			ProductID:    line.ProductID,
			ProductName:  line.Name,
			ProductPrice: line.Price,
			ProductImage: line.Image,
			Quantity:     line.Quantity,
			Collection:   string(tag),
		})
	}
	return items
}

// OrderTotal sums price times quantity over the items.
func OrderTotal(items []models.OrderItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.ProductPrice * float64(it.Quantity)
	}
	return total
}
