package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/status"
)

// ErrServerFull is returned when MaxSessions are already running
var ErrServerFull = errors.New("max sessions reached")

// Server accepts websocket players, one game session per connection
type Server struct {
	config   *Config
	log      *slog.Logger
	router   *mux.Router
	upgrader websocket.Upgrader
	metrics  *status.Registry

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	// Parent of every session context; cancelled by Close
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer creates a server; nil config uses defaults, nil logger uses slog.Default
func NewServer(cfg *Config, log *slog.Logger) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Options == nil {
		cfg.Options = engine.DefaultOptions
	}
	if log == nil {
		log = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		config: cfg,
		log:    log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		metrics:  status.NewRegistry(),
		sessions: make(map[uuid.UUID]*Session),
		ctx:      ctx,
		cancel:   cancel,
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/ws/{game}", s.handleSession)
	s.router = r
	return s
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the server counters
func (s *Server) Metrics() *status.Registry {
	return s.metrics
}

// SessionCount returns the number of running sessions
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ListenAndServe serves on the configured address until ctx ends, then drains sessions
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.config.Address,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "address", s.config.Address)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.Close()
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	// Hijacked websocket connections are not tracked by Shutdown
	s.Close()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Close ends every session and waits for them
func (s *Server) Close() {
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
}

type healthResponse struct {
	Status   string             `json:"status"`
	Sessions int                `json:"sessions"`
	Metrics  map[string]float64 `json:"metrics"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:   "ok",
		Sessions: s.SessionCount(),
		Metrics:  s.metrics.Snapshot(),
	})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["game"]

	game, err := engine.NewGameContext(s.config.Options(name))
	if err != nil {
		if errors.Is(err, engine.ErrUnknownGame) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.log.Error("create game", "game", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if s.SessionCount() >= s.config.MaxSessions {
		http.Error(w, ErrServerFull.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		s.log.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	sess := newSession(conn, game, s.config, s.log, s.metrics)
	if !s.add(sess) {
		sess.Close(websocket.CloseTryAgainLater, ErrServerFull.Error())
		return
	}
	defer s.remove(sess)

	s.metrics.Counter(status.SessionsStarted).Add(1)
	active := s.metrics.Counter(status.SessionsActive)
	active.Add(1)
	defer active.Add(-1)

	started := time.Now()
	sess.log.Info("session started", "remote", r.RemoteAddr)
	if err := sess.Run(s.ctx); err != nil {
		s.metrics.Counter(status.SessionsFailed).Add(1)
		sess.log.Warn("session failed", "error", err)
	}
	elapsed := time.Since(started)
	s.metrics.Gauge(status.SessionSeconds).Add(elapsed.Seconds())
	sess.log.Info("session ended", "frames", game.GetFrameNumber(), "dropped", sess.Dropped(), "elapsed", elapsed)
}

// add registers sess unless the server is full or closing
func (s *Server) add(sess *Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil || len(s.sessions) >= s.config.MaxSessions {
		return false
	}
	s.sessions[sess.ID] = sess
	s.wg.Add(1)
	return true
}

func (s *Server) remove(sess *Session) {
	s.mu.Lock()
	delete(s.sessions, sess.ID)
	s.mu.Unlock()
	s.wg.Done()
}
