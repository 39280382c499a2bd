package ws

import (
	"log"
	"net/http"
	"sync"

	"grillpos/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// KitchenHub pushes the in-progress queue to connected kitchen displays.
// HTTP polling of /transactions/in-progress keeps working; this is an
// additive notification channel with the same payload.
type KitchenHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []services.KitchenOrder
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
	service    *services.TransactionService
}

func NewKitchenHub(service *services.TransactionService) *KitchenHub {
	return &KitchenHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []services.KitchenOrder),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		service:    service,
	}
}

func (h *KitchenHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case orders := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(orders); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify re-reads the queue and pushes it to every display. Controllers call
// it after submit, fulfill and reconcile.
func (h *KitchenHub) Notify() {
	orders, err := h.service.ListInProgress()
	if err != nil {
		log.Printf("kitchen feed refresh error: %v", err)
		return
	}
	h.broadcast <- orders
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/kitchen
func (h *KitchenHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	// send the current queue right away so the display is never blank
	if orders, err := h.service.ListInProgress(); err == nil {
		if err := conn.WriteJSON(orders); err != nil {
			conn.Close()
			return
		}
	}

	h.register <- conn

	go h.listen(conn)
}

// listen drains client frames (displays send nothing meaningful) and
// unregisters on disconnect.
func (h *KitchenHub) listen(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
