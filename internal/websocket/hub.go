package websocket

import "github.com/rs/zerolog/log"

// Hub maintains the set of active clients and broadcasts messages to them.
// All client bookkeeping happens on the Run goroutine.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Outbound messages for every client.
	broadcast chan []byte

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	counts  chan chan int
	done    chan struct{}
	stopped chan struct{}
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		counts:     make(chan chan int),
		clients:    make(map[*Client]bool),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}
}

// Run starts the Hub's message processing loop. It returns after Stop.
func (h *Hub) Run() {
	defer close(h.stopped)
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Info().Int("total_clients", len(h.clients)).Msg("Client connected")
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				log.Info().Int("total_clients", len(h.clients)).Msg("Client disconnected")
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Slow consumer; drop it rather than block everyone else.
					close(client.Send)
					delete(h.clients, client)
				}
			}
		case reply := <-h.counts:
			reply <- len(h.clients)
		case <-h.done:
			for client := range h.clients {
				close(client.Send)
				delete(h.clients, client)
			}
			return
		}
	}
}

// Stop terminates Run and disconnects every client. Run must have been started.
func (h *Hub) Stop() {
	select {
	case <-h.done:
	default:
		close(h.done)
	}
	<-h.stopped
}

// Add registers client. It is a no-op once the hub has stopped.
func (h *Hub) Add(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// Remove unregisters client. It is a no-op once the hub has stopped.
func (h *Hub) Remove(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish queues message for every connected client. It never blocks the caller;
// messages are dropped when the queue is full or the hub has stopped.
func (h *Hub) Publish(message []byte) {
	select {
	case <-h.done:
	case h.broadcast <- message:
	default:
		log.Warn().Msg("Websocket broadcast queue full, dropping message")
	}
}

// ClientCount reports the number of registered clients.
func (h *Hub) ClientCount() int {
	reply := make(chan int, 1)
	select {
	case h.counts <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}
