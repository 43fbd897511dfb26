// Package hub fans cart and order events out to websocket clients (customer
// display, kitchen screens, reporting dashboards). It subscribes to the cart
// store's observer, so broadcasts happen right after each mutation.
package hub

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/utils"
)

// Event types
const (
	EventCartUpdate     = "cart_update"
	EventCartCleared    = "cart_cleared"
	EventOrderCompleted = "order_completed"
	EventKOTCreated     = "kot_created"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds the connected clients and their roles.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var posHub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection with its role.
func RegisterClient(conn *websocket.Conn, role string) {
	posHub.mutex.Lock()
	defer posHub.mutex.Unlock()
	posHub.clients[conn] = role
}

// UnregisterClient drops and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	posHub.mutex.Lock()
	defer posHub.mutex.Unlock()
	delete(posHub.clients, conn)
	conn.Close()
}

// BroadcastCartEvent relays a cart store event.
func BroadcastCartEvent(event string, data interface{}) {
	broadcast(Message{Event: event, Data: data})
}

// BroadcastOrderCompleted announces a settled order.
func BroadcastOrderCompleted(order *models.OrderDocument) {
	broadcast(Message{Event: EventOrderCompleted, Data: order})
}

// BroadcastKOT sends a kitchen ticket to the kitchen screens.
func BroadcastKOT(kot models.KOTDocument) {
	broadcast(Message{Event: EventKOTCreated, Data: kot})
}

func broadcast(msg Message) {
	posHub.mutex.Lock()
	defer posHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("hub: marshal failed: %v", err)
		return
	}

	for conn := range posHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("hub: send failed: %v", err)
			continue
		}
	}
}
