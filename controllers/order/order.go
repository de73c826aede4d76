package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yogendra-08/vastraverse-api/checkout"
	"github.com/yogendra-08/vastraverse-api/models"
	"github.com/yogendra-08/vastraverse-api/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Request Structs --------

type OrderLineInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	UserName  string           `json:"user_name"`
	UserEmail string           `json:"user_email"`
	UserPhone string           `json:"user_phone"`
	Location  string           `json:"location"`
	Products  []OrderLineInput `json:"products"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusPlaced):
		return models.OrderStatusPlaced, nil
	case string(models.OrderStatusPacked):
		return models.OrderStatusPacked, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusOutForDelivery):
		return models.OrderStatusOutForDelivery, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Generate unique order reference
func generateOrderRef() string {
	// Example: 20250908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Status playback --------

// Live playbacks by order ID. Handles are stopped when the order is deleted,
// its status is overridden by an admin, or the server shuts down.
var (
	playbackMu sync.Mutex
	playbacks  = make(map[uint]*checkout.Playback)
)

func startStatusPlayback(db *gorm.DB, orderID uint, step time.Duration) {
	p := checkout.StartPlayback(step, func(status models.OrderStatus) {
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", status).Error; err != nil {
			log.Printf("failed to advance order %d to %s: %v", orderID, status, err)
			return
		}
		broadcastOrderStatus(orderID, status)
	})

	playbackMu.Lock()
	playbacks[orderID] = p
	playbackMu.Unlock()

	go func() {
		<-p.Done()
		playbackMu.Lock()
		delete(playbacks, orderID)
		playbackMu.Unlock()
	}()
}

func stopStatusPlayback(orderID uint) {
	playbackMu.Lock()
	p, ok := playbacks[orderID]
	playbackMu.Unlock()
	if ok {
		p.Stop()
	}
}

// StopAllPlaybacks cancels every live playback. Called on shutdown.
func StopAllPlaybacks() {
	playbackMu.Lock()
	handles := make([]*checkout.Playback, 0, len(playbacks))
	for _, p := range playbacks {
		handles = append(handles, p)
	}
	playbackMu.Unlock()
	for _, p := range handles {
		p.Stop()
	}
}

// -------- Core Logic --------

// PlaceOrder validates the submission, reserves stock, creates the order and
// clears the session cart. Lines come from the request body; when the body
// carries none and the caller has a session, the server-side cart is used.
func PlaceOrder(db *gorm.DB, stores *store.Manager, c *gin.Context, req PlaceOrderRequest) (models.Order, error) {
	ctx := c.Request.Context()
	sessionID, _ := c.Get("user_id")
	userID, _ := sessionID.(string)

	var cart *store.CartStore
	var lines []models.CartLine

	if len(req.Products) > 0 {
		for _, in := range req.Products {
			var product models.Product
			if err := db.Preload("Categories").First(&product, in.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.Order{}, errors.New("product does not exist")
				}
				return models.Order{}, err
			}
			category := ""
			if len(product.Categories) > 0 {
				category = product.Categories[0].Name
			}
			lines = append(lines, models.CartLine{
				ProductID:  product.ID,
				Name:       product.Name,
				Price:      product.EffectivePrice(),
				Image:      product.Image,
				Category:   category,
				Gender:     product.Gender,
				Collection: product.Collection,
				Quantity:   in.Quantity,
			})
		}
	} else if userID != "" {
		var err error
		cart, err = stores.Cart(ctx, userID)
		if err != nil {
			return models.Order{}, err
		}
		lines = cart.Snapshot().Items
	}

	input := checkout.OrderInput{
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		UserPhone: req.UserPhone,
		Location:  req.Location,
	}
	if err := checkout.ValidateOrder(input, lines); err != nil {
		return models.Order{}, err
	}

	items := checkout.BuildOrderItems(lines)
	order := models.Order{
		OrderRef:    generateOrderRef(),
		UserID:      userID,
		UserName:    strings.TrimSpace(req.UserName),
		UserEmail:   strings.TrimSpace(req.UserEmail),
		UserPhone:   strings.TrimSpace(req.UserPhone),
		Location:    strings.TrimSpace(req.Location),
		Items:       items,
		TotalAmount: checkout.OrderTotal(items),
		Status:      models.OrderStatusPlaced,
		CreatedAt:   time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", line.ProductID).Error; err != nil {
				return err
			}
			if product.Stock < line.Quantity {
				return errors.New("insufficient stock for product: " + line.Name)
			}
			product.Stock -= line.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	// The cart is spent once the order exists, whichever source the lines
	// came from.
	if cart == nil && userID != "" {
		cart, _ = stores.Cart(ctx, userID)
	}
	if cart != nil {
		if err := cart.ClearCart(ctx); err != nil {
			log.Printf("order %s placed but cart for %s not cleared: %v", order.OrderRef, userID, err)
		}
	}

	return order, nil
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(db *gorm.DB, stores *store.Manager, statusStep time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, stores, c, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		broadcastNewOrder(order)
		startStatusPlayback(db, order.ID, statusStep)

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data":    gin.H{"order": order},
		})
	}
}

// GET /orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/user/:userID
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userID")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
			return
		}
		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID accepts a numeric id or an order_ref.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Where("id = ? OR order_ref = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID/status. A manual override ends the playback.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		stopStatusPlayback(order.ID)

		if err := db.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		broadcastOrderStatus(order.ID, newStatus)

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// DELETE /orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		stopStatusPlayback(order.ID)

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
