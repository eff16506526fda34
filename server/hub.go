// Package server lets browsers follow a running presentation. It
// serves the exported HTML document, a JSON view of the deck and the
// live state, and a websocket stream of state frames. Navigation
// requests arriving over HTTP are queued for the presenter's event
// loop; handlers never touch presentation state themselves.
package server

import "context"

// Hub tracks connected viewers and fans state frames out to them.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client

	// latest is replayed to viewers that join between frames, so a
	// late browser syncs immediately instead of waiting for the next
	// slide change.
	latest []byte

	done chan struct{}
}

// NewHub creates a hub ready for Run.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

// Run owns the client set until ctx is cancelled. All map access
// happens on this goroutine.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			if h.latest != nil {
				select {
				case c.send <- h.latest:
				default:
				}
			}
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			h.latest = msg
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					close(c.send)
					delete(h.clients, c)
				}
			}
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			return
		}
	}
}
