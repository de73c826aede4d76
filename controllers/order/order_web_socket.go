package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yogendra-08/vastraverse-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// orderEvent is the wire shape of every feed message: a new order or a
// status transition.
type orderEvent struct {
	Type    string             `json:"type"` // "order_placed" or "status_update"
	OrderID uint               `json:"order_id"`
	Status  models.OrderStatus `json:"status"`
	Order   *models.Order      `json:"order,omitempty"`
	At      time.Time          `json:"at"`
}

// GET /orders/ws streams order placements and status transitions.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

func broadcast(ev orderEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}

func broadcastNewOrder(order models.Order) {
	broadcast(orderEvent{
		Type:    "order_placed",
		OrderID: order.ID,
		Status:  order.Status,
		Order:   &order,
		At:      time.Now(),
	})
}

func broadcastOrderStatus(orderID uint, status models.OrderStatus) {
	broadcast(orderEvent{
		Type:    "status_update",
		OrderID: orderID,
		Status:  status,
		At:      time.Now(),
	})
}
