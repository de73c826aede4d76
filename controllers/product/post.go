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

// CreateProduct creates a new product with categories + image upload.
func CreateProduct(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		// Optional fields
		description := c.PostForm("description")
		discountedPriceStr := c.PostForm("discounted_price")
		gender := c.PostForm("gender")
		collectionTag := c.PostForm("collection")
		stockStr := c.PostForm("stock")
		categoryIDsStr := c.PostForm("category_ids")

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var discountedPrice float64
		if discountedPriceStr != "" {
			if dp, parseErr := strconv.ParseFloat(discountedPriceStr, 64); parseErr == nil {
				discountedPrice = dp
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discounted_price"})
				return
			}
		}

		var stock int
		if stockStr != "" {
			if s, parseErr := strconv.Atoi(stockStr); parseErr == nil {
				stock = s
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		// Categories
		var categories []models.Category
		if categoryIDsStr != "" {
			idTokens := strings.Split(categoryIDsStr, ",")
			var parsedIDs []uint
			for _, tok := range idTokens {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				if id64, parseErr := strconv.ParseUint(tok, 10, 64); parseErr == nil {
					parsedIDs = append(parsedIDs, uint(id64))
				} else {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_ids format"})
					return
				}
			}
			if len(parsedIDs) > 0 {
				if err := db.Where("id IN ?", parsedIDs).Find(&categories).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
					return
				}
			}
		}

		// Image upload
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		imageURL, err := saveImage(c, file, productUploadDir(), "/uploads/products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		newProduct := models.Product{
			Name:            name,
			Description:     description,
			Price:           price,
			DiscountedPrice: discountedPrice,
			Gender:          gender,
			Collection:      collectionTag,
			Stock:           stock,
			Image:           imageURL,
			Categories:      categories,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		invalidateProductCache(c.Request.Context(), rdb)
		c.JSON(http.StatusCreated, newProduct)
	}
}
