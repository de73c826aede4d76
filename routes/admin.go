package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	adminController "github.com/yogendra-08/vastraverse-api/controllers/admin"
	cartControllers "github.com/yogendra-08/vastraverse-api/controllers/cart"
	orderControllers "github.com/yogendra-08/vastraverse-api/controllers/order"
	productcontroller "github.com/yogendra-08/vastraverse-api/controllers/product"
	userControllers "github.com/yogendra-08/vastraverse-api/controllers/user"
	"github.com/yogendra-08/vastraverse-api/middleware"
	"github.com/yogendra-08/vastraverse-api/store"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, stores *store.Manager) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// Admin and user management
		adminGroup.GET("/admins", adminController.GetAllAdmins(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// Product management
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db, rdb))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db, rdb))
			productAdmin.GET("", productcontroller.GetProducts(db, rdb))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db, rdb))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db, rdb))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// Category management
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// Admin approval workflow
		adminMgmt := adminGroup.Group("/admin-management")
		{
			adminMgmt.GET("/pending", adminController.ListPendingAdmins(db))
			adminMgmt.POST("/approve", adminController.ApproveAdmin(db))
			adminMgmt.POST("/reject", adminController.RejectAdmin(db))
		}

		bannerMgmt := adminGroup.Group("/banner")
		{
			bannerMgmt.POST("/upload", adminController.UploadBanner(db))
			bannerMgmt.GET("/", adminController.GetBanners(db))
			bannerMgmt.DELETE("/:id", adminController.DeleteBanner(db))
		}

		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(stores))
		}

		// Order dashboard
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
	}
}
