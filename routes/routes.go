package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	productcontroller "github.com/yogendra-08/vastraverse-api/controllers/product"
	"github.com/yogendra-08/vastraverse-api/store"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the public catalog,
// auth, user, admin, and order route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, stores *store.Manager, productFeedPath string, statusStep time.Duration) {
	// Public catalog (no middleware)
	SetupProductRoutes(r, db, rdb, productFeedPath)

	// Public auth routes
	SetupAuthRoutes(r, db)

	// User routes (JWT protected)
	SetupUserRoutes(r, db, rdb, stores)

	// Admin routes (API key protected)
	SetupAdminRoutes(r, db, rdb, stores)

	// Order routes
	SetupOrderRoutes(r, db, stores, statusStep)
}

// SetupProductRoutes registers the public "/products/*" endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, productFeedPath string) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db, rdb))
		products.GET("/json", productcontroller.GetProductsJSON(productFeedPath))
		products.GET("/search", productcontroller.SearchProducts(db))
		products.GET("/category/:category", productcontroller.GetProductsByCategory(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
	}

	r.GET("/categories", productcontroller.GetAllCategoriesWithProducts(db))
}
