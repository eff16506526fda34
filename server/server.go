package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/deckplay/deck"
	"github.com/lixenwraith/deckplay/export"
	"github.com/lixenwraith/deckplay/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Viewers join from whatever host the presenter's machine is
	// reachable as on the local network.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Server exposes a running presentation to browsers. It holds no
// reference to the controller: state arrives via Publish and
// navigation requests leave via Goto.
type Server struct {
	log     *logger.Logger
	deck    *deck.Deck
	page    []byte
	hub     *Hub
	httpSrv *http.Server
	addr    string
	gotoCh  chan int

	mu    sync.RWMutex
	state State
}

// New prepares a server for the deck. The HTML page is rendered once
// up front; a template failure surfaces here rather than on the first
// request.
func New(d *deck.Deck, log *logger.Logger) (*Server, error) {
	page, err := export.Render(d)
	if err != nil {
		return nil, fmt.Errorf("failed to render deck page: %w", err)
	}

	return &Server{
		log:    log,
		deck:   d,
		page:   page,
		hub:    NewHub(),
		gotoCh: make(chan int, 16),
	}, nil
}

// Start binds addr and begins serving. The listen happens
// synchronously so an unusable address fails startup instead of dying
// later inside a goroutine.
func (s *Server) Start(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.addr = ln.Addr().String()

	go s.hub.Run(ctx)

	s.httpSrv = &http.Server{Handler: s.routes()}
	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.Info("Server error: %v", err)
		}
	}()

	s.log.Info("Sync server listening on %s", s.addr)
	return nil
}

// Addr returns the bound address, useful when Start was given ":0".
func (s *Server) Addr() string {
	return s.addr
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Goto is the stream of navigation requests received over HTTP. The
// event loop drains it and applies each request through the
// controller, which clamps out-of-range targets.
func (s *Server) Goto() <-chan int {
	return s.gotoCh
}

// Publish records a state frame and fans it out to connected viewers.
func (s *Server) Publish(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	data, err := json.Marshal(state)
	if err != nil {
		s.log.Debug("Failed to marshal state frame: %v", err)
		return
	}
	select {
	case s.hub.broadcast <- data:
	default:
		s.log.Trace("Dropped state frame, hub backlogged")
	}
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	r.HandleFunc("/api/deck", s.handleDeck).Methods(http.MethodGet)
	r.HandleFunc("/api/state", s.handleState).Methods(http.MethodGet)
	r.HandleFunc("/api/goto", s.handleGoto).Methods(http.MethodPost)
	r.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)
	return r
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(s.page)
}

func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.deck)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// GotoRequest asks the presenter to move to a slide. Out-of-range
// targets are accepted here and ignored by the presenter.
type GotoRequest struct {
	Slide int `json:"slide"`
}

// GotoResponse acknowledges that the request was queued.
type GotoResponse struct {
	Success bool `json:"success"`
}

func (s *Server) handleGoto(w http.ResponseWriter, r *http.Request) {
	var req GotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	select {
	case s.gotoCh <- req.Slide:
	default:
		http.Error(w, "Presenter busy", http.StatusServiceUnavailable)
		return
	}

	s.log.Debug("Queued goto request for slide %d", req.Slide)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GotoResponse{Success: true})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Info("Websocket upgrade failed: %v", err)
		return
	}

	c := &client{hub: s.hub, conn: conn, send: make(chan []byte, 8)}
	select {
	case s.hub.register <- c:
	case <-s.hub.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()

	s.log.Debug("Viewer connected: %s", r.RemoteAddr)
}
