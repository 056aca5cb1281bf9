package stream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/gzhttp"

	"github.com/lukaszgryglicki/marcher3d/internal/logging"
	"github.com/lukaszgryglicki/marcher3d/internal/marcher3d"
)

const (
	maxCommandSize  = 512
	writeWait       = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Options configures the frame server.
type Options struct {
	PingInterval time.Duration
	MaxClients   int
}

// Server streams rendered frames to WebSocket viewers and accepts their commands.
type Server struct {
	hub  *Hub
	opts Options
	log  *logging.Logger
}

type client struct {
	id       string
	conn     *websocket.Conn
	send     chan []byte
	codec    Compressor
	rejected bool
}

// NewServer wraps v; the hub only starts with Run.
func NewServer(v *marcher3d.Viewer, opts Options) *Server {
	if opts.PingInterval <= 0 {
		opts.PingInterval = 30 * time.Second
	}
	return &Server{
		hub:  NewHub(v, opts.MaxClients),
		opts: opts,
		log:  logging.L().With(logging.String("component", "stream")),
	}
}

// Hub exposes the command hub.
func (s *Server) Hub() *Hub { return s.hub }

// Run serves the hub until ctx is cancelled.
func (s *Server) Run(ctx context.Context) {
	s.hub.Run(logging.ContextWithLogger(ctx, s.log))
}

// Handler routes /ws, /frame and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.Handle("/frame", gzhttp.GzipHandler(http.HandlerFunc(s.serveFrame)))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.String("remote", r.RemoteAddr),
			logging.Duration("took", time.Since(start)),
		)
	})
}

func (s *Server) serveFrame(w http.ResponseWriter, r *http.Request) {
	frame, err := s.hub.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(frame)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	codec, err := NewCompressor(r.URL.Query().Get("codec"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", logging.Error(err))
		return
	}
	c := &client{
		id:    uuid.NewString(),
		conn:  conn,
		send:  make(chan []byte, sendBuffer),
		codec: codec,
	}
	if !s.hub.join(c) {
		_ = conn.Close()
		return
	}
	go s.writePump(c)
	go s.readPump(c)
}

// readPump forwards commands until the peer closes or sends quit.
func (s *Server) readPump(c *client) {
	defer func() {
		s.hub.leave(c)
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(maxCommandSize)
	ctx := context.Background()
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("read error", logging.String("client", c.id), logging.Error(err))
			}
			return
		}
		cmd := marcher3d.ParseCommand(string(msg))
		if cmd == marcher3d.CmdQuit {
			return
		}
		if err := s.hub.Submit(ctx, cmd); err != nil {
			return
		}
	}
}

// writePump is the only writer on the connection.
func (s *Server) writePump(c *client) {
	ticker := time.NewTicker(s.opts.PingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	msgType := websocket.BinaryMessage
	if c.codec.Name() == CodecText {
		msgType = websocket.TextMessage
	}
	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				code, reason := websocket.CloseNormalClosure, ""
				if c.rejected {
					code, reason = websocket.ClosePolicyViolation, "too many clients"
				}
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason))
				return
			}
			payload, err := c.codec.Compress(frame)
			if err != nil {
				s.log.Error("compress frame", logging.String("client", c.id), logging.Error(err))
				return
			}
			if err := c.conn.WriteMessage(msgType, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ListenAndServe runs the hub and an HTTP server on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, s *Server) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.Run(ctx)

	srv := &http.Server{Addr: addr, Handler: s.Handler(), ReadHeaderTimeout: writeWait}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("listening", logging.String("addr", addr))

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
