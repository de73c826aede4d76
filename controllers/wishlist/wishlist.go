package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yogendra-08/vastraverse-api/models"
	"github.com/yogendra-08/vastraverse-api/store"
	"gorm.io/gorm"
)

type ToggleWishlistInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

func userWishlist(c *gin.Context, stores *store.Manager) (*store.WishlistStore, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	userID, ok := val.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	wishlist, err := stores.Wishlist(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wishlist"})
		return nil, false
	}
	return wishlist, true
}

// GET /user/wishlist
func GetWishlist(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		wishlist, ok := userWishlist(c, stores)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, wishlist.Snapshot())
	}
}

// POST /user/wishlist/toggle. Present removes, absent adds.
func ToggleWishlistItem(db *gorm.DB, stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		wishlist, ok := userWishlist(c, stores)
		if !ok {
			return
		}

		var input ToggleWishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

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

		added, err := wishlist.Toggle(c.Request.Context(), models.WishlistItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.EffectivePrice(),
			Image:     product.Image,
			Category:  category,
			Stock:     product.Stock,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}

		message := "Removed from wishlist"
		if added {
			message = "Added to wishlist"
		}
		c.JSON(http.StatusOK, gin.H{
			"message":     message,
			"in_wishlist": added,
			"wishlist":    wishlist.Snapshot(),
		})
	}
}

// GET /user/wishlist/:product_id reports whether the product is wishlisted.
func CheckWishlistItem(stores *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		wishlist, ok := userWishlist(c, stores)
		if !ok {
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"in_wishlist": wishlist.Contains(uint(productID))})
	}
}
