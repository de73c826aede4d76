package productcontroller

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yogendra-08/vastraverse-api/models"
)

// jsonProduct is the duck-typed shape of the static product feed: some
// entries carry name, others title; some price, others only
// discounted_price. It is canonicalized here, at the data-access edge, so
// nothing downstream ever branches on which field was present.
type jsonProduct struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discounted_price"`
	Image           string  `json:"image"`
	Category        string  `json:"category"`
	Gender          string  `json:"gender"`
	Collection      string  `json:"collection"`
	Stock           int     `json:"stock"`
}

func (j jsonProduct) canonical() models.Product {
	name := strings.TrimSpace(j.Name)
	if name == "" {
		name = strings.TrimSpace(j.Title)
	}
	price := j.Price
	if price == 0 {
		price = j.DiscountedPrice
	}

	p := models.Product{
		ID:              j.ID,
		Name:            name,
		Description:     j.Description,
		Price:           price,
		DiscountedPrice: j.DiscountedPrice,
		Image:           j.Image,
		Gender:          j.Gender,
		Collection:      j.Collection,
		Stock:           j.Stock,
	}
	if j.Category != "" {
		p.Categories = []models.Category{{Name: j.Category}}
	}
	return p
}

// LoadStaticProducts reads the static product feed and returns it in the
// canonical shape. Both this feed and the database listing present the same
// product type to callers.
func LoadStaticProducts(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []jsonProduct
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(raw))
	for _, j := range raw {
		products = append(products, j.canonical())
	}
	return products, nil
}

// GET /products/json serves the static JSON asset, interchangeable with the
// database-backed listing
func GetProductsJSON(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := LoadStaticProducts(path)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product data"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
