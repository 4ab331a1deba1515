package websocket

import "sync"

type Client struct {
	TournamentID string
	Send         chan []byte
}

type message struct {
	tournamentID string
	data         []byte
}

// Hub fans standings snapshots out to the clients watching each tournament.
type Hub struct {
	clients    map[string]map[*Client]bool
	broadcast  chan *message
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan *message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.TournamentID] == nil {
				h.clients[client.TournamentID] = make(map[*Client]bool)
			}
			h.clients[client.TournamentID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.TournamentID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.Send)
					if len(clients) == 0 {
						delete(h.clients, client.TournamentID)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			clients := h.clients[msg.tournamentID]
			for client := range clients {
				select {
				case client.Send <- msg.data:
				default:
					// Slow consumer, drop it here; sending on the
					// unregister channel would block Run on itself.
					delete(clients, client)
					close(client.Send)
				}
			}
			if clients != nil && len(clients) == 0 {
				delete(h.clients, msg.tournamentID)
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Broadcast(tournamentID string, data []byte) {
	h.broadcast <- &message{tournamentID: tournamentID, data: data}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}
