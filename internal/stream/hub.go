package stream

import (
	"context"
	"errors"

	"github.com/lukaszgryglicki/marcher3d/internal/logging"
	"github.com/lukaszgryglicki/marcher3d/internal/marcher3d"
)

// ErrHubStopped is returned when the hub goroutine is no longer running.
var ErrHubStopped = errors.New("hub stopped")

const sendBuffer = 16

// Hub owns the viewer; every camera or light change goes through its goroutine.
type Hub struct {
	viewer     *marcher3d.Viewer
	maxClients int

	register   chan *client
	unregister chan *client
	commands   chan marcher3d.Command
	snapshots  chan chan []byte
	done       chan struct{}

	clients map[*client]bool
	current []byte
}

// NewHub wraps v; maxClients of zero means unlimited.
func NewHub(v *marcher3d.Viewer, maxClients int) *Hub {
	return &Hub{
		viewer:     v,
		maxClients: maxClients,
		register:   make(chan *client),
		unregister: make(chan *client),
		commands:   make(chan marcher3d.Command),
		snapshots:  make(chan chan []byte),
		done:       make(chan struct{}),
		clients:    make(map[*client]bool),
	}
}

// Run renders the first frame and serves the hub until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	log := logging.LoggerFromContext(ctx).With(logging.String("component", "hub"))
	defer close(h.done)
	h.render()
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return
		case c := <-h.register:
			if h.maxClients > 0 && len(h.clients) >= h.maxClients {
				log.Warn("client limit reached", logging.String("client", c.id), logging.Int("max", h.maxClients))
				c.rejected = true
				close(c.send)
				continue
			}
			h.clients[c] = true
			c.send <- h.current
			log.Info("client joined", logging.String("client", c.id), logging.Int("clients", len(h.clients)))
		case c := <-h.unregister:
			if h.clients[c] {
				h.drop(c)
				log.Info("client left", logging.String("client", c.id), logging.Int("clients", len(h.clients)))
			}
		case cmd := <-h.commands:
			if cmd == marcher3d.CmdQuit {
				continue
			}
			h.viewer.Apply(cmd)
			h.render()
			h.broadcast(log)
		case reply := <-h.snapshots:
			reply <- h.current
		}
	}
}

func (h *Hub) render() {
	h.current = []byte(h.viewer.Screen())
}

// broadcast drops clients whose buffer is full instead of blocking the hub.
func (h *Hub) broadcast(log *logging.Logger) {
	for c := range h.clients {
		select {
		case c.send <- h.current:
		default:
			log.Warn("dropping slow client", logging.String("client", c.id))
			h.drop(c)
		}
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
}

// Submit queues a command for the viewer.
func (h *Hub) Submit(ctx context.Context, cmd marcher3d.Command) error {
	select {
	case h.commands <- cmd:
		return nil
	case <-h.done:
		return ErrHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the latest rendered frame followed by the status line.
func (h *Hub) Snapshot(ctx context.Context) ([]byte, error) {
	reply := make(chan []byte, 1)
	select {
	case h.snapshots <- reply:
	case <-h.done:
		return nil, ErrHubStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case frame := <-reply:
		return frame, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *Hub) join(c *client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
