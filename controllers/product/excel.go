package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/tealeg/xlsx"
	"github.com/yogendra-08/vastraverse-api/models"
	"gorm.io/gorm"
)

// ImportProductsFromExcel upserts products from a sheet in the export
// layout. Rows with an ID update the matching product; rows without one
// create a new product.
func ImportProductsFromExcel(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			priceStr := get(3)
			discountedPriceStr := get(4)
			gender := get(5)
			collectionTag := get(6)
			stockStr := get(7)
			image := get(8)
			categoryIDsStr := get(9)

			if name == "" || priceStr == "" {
				skippedCount++
				continue
			}
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil || price <= 0 {
				skippedCount++
				continue
			}
			discountedPrice, _ := strconv.ParseFloat(discountedPriceStr, 64)
			stock, _ := strconv.Atoi(stockStr)

			var categories []models.Category
			if categoryIDsStr != "" {
				var parsedIDs []uint
				for _, tok := range strings.Split(categoryIDsStr, ",") {
					tok = strings.TrimSpace(tok)
					if tok == "" {
						continue
					}
					if id64, parseErr := strconv.ParseUint(tok, 10, 64); parseErr == nil {
						parsedIDs = append(parsedIDs, uint(id64))
					}
				}
				if len(parsedIDs) > 0 {
					db.Where("id IN ?", parsedIDs).Find(&categories)
				}
			}

			if idStr != "" {
				id, parseErr := strconv.ParseUint(idStr, 10, 64)
				if parseErr != nil {
					skippedCount++
					continue
				}
				var product models.Product
				if err := db.First(&product, id).Error; err == nil {
					product.Name = name
					product.Description = description
					product.Price = price
					product.DiscountedPrice = discountedPrice
					product.Gender = gender
					product.Collection = collectionTag
					product.Stock = stock
					if image != "" {
						product.Image = image
					}
					if len(categories) > 0 {
						db.Model(&product).Association("Categories").Replace(categories)
					}
					if err := db.Save(&product).Error; err != nil {
						skippedCount++
						continue
					}
					updatedCount++
					continue
				}
			}

			product := models.Product{
				Name:            name,
				Description:     description,
				Price:           price,
				DiscountedPrice: discountedPrice,
				Gender:          gender,
				Collection:      collectionTag,
				Stock:           stock,
				Image:           image,
				Categories:      categories,
			}
			if err := db.Create(&product).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		invalidateProductCache(c.Request.Context(), rdb)
		c.JSON(http.StatusOK, gin.H{
			"message": "Import complete",
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
