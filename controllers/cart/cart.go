package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yogendra-08/vastraverse-api/models"
	"github.com/yogendra-08/vastraverse-api/store"
	"gorm.io/gorm"
)

type AddCartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

func userIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

func userCart(c *gin.Context, stores *store.Manager) (*store.CartStore, bool) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return nil, false
	}
	cart, err := stores.Cart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return nil, false
	}
	return cart, true
}

// POST /user/cart
func AddCartItem(db *gorm.DB, stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, stores)
		if !ok {
			return
		}

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		// The product row is the source of truth for the line details.
		var product models.Product
		if err := db.Preload("Categories").First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		category := ""
		if len(product.Categories) > 0 {
			category = product.Categories[0].Name
		}

		line, err := cart.AddToCart(c.Request.Context(), store.ItemDetails{
			ProductID:  product.ID,
			Name:       product.Name,
			Price:      product.EffectivePrice(),
			Image:      product.Image,
			Category:   category,
			Gender:     product.Gender,
			Collection: product.Collection,
		}, input.Quantity)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, store.ErrInvalidProduct) ||
				errors.Is(err, store.ErrInvalidPrice) ||
				errors.Is(err, store.ErrInvalidQuantity) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Added to cart", "item": line, "cart": cart.Snapshot()})
	}
}

// PUT /user/cart/:product_id
func UpdateCartItem(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, stores)
		if !ok {
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// quantity <= 0 drops the line
		if err := cart.UpdateQuantity(c.Request.Context(), uint(productID), input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, cart.Snapshot())
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, stores)
		if !ok {
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if err := cart.RemoveFromCart(c.Request.Context(), uint(productID)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed", "cart": cart.Snapshot()})
	}
}

// DELETE /user/cart
func ClearUserCart(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, stores)
		if !ok {
			return
		}

		if err := cart.ClearCart(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart
func GetUserCart(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, stores)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cart.Snapshot())
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		cart, err := stores.Cart(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cart.Snapshot())
	}
}
