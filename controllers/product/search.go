package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yogendra-08/vastraverse-api/models"
	"gorm.io/gorm"
)

// GET /products/search?q=
// Case-insensitive substring filter over name and description. Not a search
// engine and not meant to become one.
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.TrimSpace(c.Query("q"))
		if q == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
			return
		}

		likePattern := "%" + q + "%"
		var products []models.Product
		if err := db.Preload("Categories").
			Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern).
			Order("name asc").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"query": q, "results": products, "count": len(products)})
	}
}

// GET /products/category/:category lists products in a category, looked up by name.
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("category")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
			return
		}

		var category models.Category
		if err := db.Preload("Products.Categories").
			Where("LOWER(name) = LOWER(?)", name).
			First(&category).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			return
		}

		c.JSON(http.StatusOK, category.Products)
	}
}
