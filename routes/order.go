package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	orderControllers "github.com/yogendra-08/vastraverse-api/controllers/order"
	"github.com/yogendra-08/vastraverse-api/middleware"
	"github.com/yogendra-08/vastraverse-api/store"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, stores *store.Manager, statusStep time.Duration) {
	orders := r.Group("/orders")
	{
		// Place a new order
		orders.POST("", middleware.ValidateToken, orderControllers.PlaceOrderHandler(db, stores, statusStep))

		// Websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Orders for a specific user
		orders.GET("/user/:userID", middleware.ValidateToken, orderControllers.GetUserOrdersHandler(db))

		// Single order by numeric id or order reference
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Update order status (admin)
		orders.PUT("/:orderID/status", middleware.ValidateAPIKey, orderControllers.UpdateOrderStatusHandler(db))

		// Delete an order (admin)
		orders.DELETE("/:orderID", middleware.ValidateAPIKey, orderControllers.DeleteOrderHandler(db))
	}
}
