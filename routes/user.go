package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	cartControllers "github.com/yogendra-08/vastraverse-api/controllers/cart"
	productcontroller "github.com/yogendra-08/vastraverse-api/controllers/product"
	userControllers "github.com/yogendra-08/vastraverse-api/controllers/user"
	wishlistControllers "github.com/yogendra-08/vastraverse-api/controllers/wishlist"
	"github.com/yogendra-08/vastraverse-api/middleware"
	"github.com/yogendra-08/vastraverse-api/store"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, stores *store.Manager) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// Profile
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		// Shopping cart
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(stores))
			cartGroup.POST("/", cartControllers.AddCartItem(db, stores))
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(stores))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(stores))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(stores))
		}

		// Wishlist
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(stores))
			wishlistGroup.POST("/toggle", wishlistControllers.ToggleWishlistItem(db, stores))
			wishlistGroup.GET("/:product_id", wishlistControllers.CheckWishlistItem(stores))
		}

		// Browse products while signed in
		userGroup.GET("/products", productcontroller.GetProducts(db, rdb))
		userGroup.GET("/products/:id", productcontroller.GetProductByID(db))
	}
}
