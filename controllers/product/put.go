package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/yogendra-08/vastraverse-api/models"
	"gorm.io/gorm"
)

// UpdateProduct updates an existing product by ID.
// Accepts the same fields as CreateProduct and an optional "image" file.
func UpdateProduct(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Categories").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		parseFloat := func(val string) *float64 {
			if val == "" {
				return nil
			}
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return &f
			}
			return nil
		}
		parseInt := func(val string) *int {
			if val == "" {
				return nil
			}
			if i, err := strconv.Atoi(val); err == nil {
				return &i
			}
			return nil
		}

		// Optional updates
		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("gender"); v != "" {
			product.Gender = v
		}
		if v := c.PostForm("collection"); v != "" {
			product.Collection = v
		}
		if v := parseFloat(c.PostForm("price")); v != nil {
			product.Price = *v
		}
		if v := parseFloat(c.PostForm("discounted_price")); v != nil {
			product.DiscountedPrice = *v
		}
		if v := parseInt(c.PostForm("stock")); v != nil {
			product.Stock = *v
		}

		// Update categories if provided
		if categoryIDsStr := c.PostForm("category_ids"); categoryIDsStr != "" {
			idTokens := strings.Split(categoryIDsStr, ",")
			var parsedIDs []uint
			for _, tok := range idTokens {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				if id64, parseErr := strconv.ParseUint(tok, 10, 64); parseErr == nil {
					parsedIDs = append(parsedIDs, uint(id64))
				}
			}
			if len(parsedIDs) > 0 {
				var categories []models.Category
				if err := db.Where("id IN ?", parsedIDs).Find(&categories).Error; err == nil {
					product.Categories = categories
				}
			}
		}

		// Optional image upload
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := saveImage(c, file, productUploadDir(), "/uploads/products")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			product.Image = imageURL
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		invalidateProductCache(c.Request.Context(), rdb)
		c.JSON(http.StatusOK, product)
	}
}
