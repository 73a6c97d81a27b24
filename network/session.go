package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/input"
	"github.com/lixenwraith/arcade/render"
	"github.com/lixenwraith/arcade/status"
)

// errClientGone ends a session when the client closes; Run reports it as nil
var errClientGone = errors.New("client gone")

// Session is one websocket connection playing its own game.
// The game, recorder and input snapshot belong to the frame loop goroutine
type Session struct {
	ID uuid.UUID

	cfg  *Config
	conn *websocket.Conn
	log  *slog.Logger

	game     *engine.GameContext
	loop     *engine.FrameLoop
	recorder *render.Recorder
	in       input.State

	// Encoded messages waiting for the writer
	send chan []byte

	// Frames skipped because the client fell behind
	dropped atomic.Int64

	// Server-wide counters, cached at creation
	framesSent    *atomic.Int64
	framesDropped *atomic.Int64
	messagesBad   *atomic.Int64

	closeOnce sync.Once
}

// newSession creates a session around an upgraded connection
func newSession(conn *websocket.Conn, game *engine.GameContext, cfg *Config, log *slog.Logger, metrics *status.Registry) *Session {
	s := &Session{
		ID:            uuid.New(),
		cfg:           cfg,
		conn:          conn,
		game:          game,
		recorder:      render.NewRecorder(game.Bounds),
		in:            input.NewState(),
		send:          make(chan []byte, cfg.SendQueueSize),
		framesSent:    metrics.Counter(status.FramesSent),
		framesDropped: metrics.Counter(status.FramesDropped),
		messagesBad:   metrics.Counter(status.MessagesBad),
	}
	s.log = log.With("session", s.ID.String(), "game", game.Name)
	s.loop = engine.NewFrameLoop(cfg.FrameInterval, s.step)
	return s
}

// Dropped returns the number of frames skipped for a slow client
func (s *Session) Dropped() int64 {
	return s.dropped.Load()
}

// Run serves the session until the client leaves, ctx ends or I/O fails.
// Reader, frame loop and writer run as one errgroup; the first to stop ends the others
func (s *Session) Run(ctx context.Context) error {
	hello, err := json.Marshal(HelloMessage{
		Type:    MsgHello,
		Session: s.ID.String(),
		Game:    s.game.Name,
		Width:   s.game.Bounds.Width,
		Height:  s.game.Bounds.Height,
	})
	if err != nil {
		return fmt.Errorf("encode hello: %w", err)
	}
	s.send <- hello

	g, gctx := errgroup.WithContext(ctx)

	// Unblock the reader once any member stops
	g.Go(func() error {
		<-gctx.Done()
		s.Close(websocket.CloseGoingAway, "session ended")
		return nil
	})
	g.Go(func() error { return s.readLoop(gctx) })
	g.Go(func() error {
		if err := s.loop.Run(gctx); err != nil {
			return err
		}
		return errClientGone
	})
	g.Go(func() error { return s.writeLoop(gctx) })

	err = g.Wait()
	if errors.Is(err, errClientGone) {
		return nil
	}
	return err
}

// Close sends a close frame once and closes the connection
func (s *Session) Close(code int, reason string) {
	s.closeOnce.Do(func() {
		deadline := time.Now().Add(s.cfg.WriteTimeout)
		_ = s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), deadline)
		s.conn.Close()
	})
}

// step runs on the loop goroutine: simulate, draw, queue the frame
func (s *Session) step() error {
	s.game.Update(s.in)
	if err := s.game.Draw(s.recorder); err != nil {
		return err
	}

	data, err := EncodeFrame(s.game.GetFrameNumber(), s.recorder.Take())
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	select {
	case s.send <- data:
		s.framesSent.Add(1)
	default:
		s.dropped.Add(1)
		s.framesDropped.Add(1)
	}
	return nil
}

// apply runs on the loop goroutine
func (s *Session) apply(msg ClientMessage) {
	switch msg.Type {
	case MsgInput:
		msg.ApplyTo(&s.in)
	case MsgRestart:
		s.game.Apply(input.IntentRestart)
	case MsgPause:
		s.game.Apply(input.IntentPause)
	case MsgAutoFire:
		s.game.Apply(input.IntentToggleAutoFire)
	}
}

// readLoop decodes client messages and posts them to the frame loop
func (s *Session) readLoop(ctx context.Context) error {
	s.conn.SetReadLimit(s.cfg.MaxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived, websocket.CloseAbnormalClosure) {
				return errClientGone
			}
			return fmt.Errorf("read: %w", err)
		}
		_ = s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))

		msg, err := DecodeClientMessage(data)
		if err != nil {
			s.messagesBad.Add(1)
			s.log.Warn("dropping client message", "error", err)
			continue
		}

		if err := s.loop.Post(ctx, func() { s.apply(msg) }); err != nil {
			return errClientGone
		}
	}
}

// writeLoop is the only writer of data frames on the connection
func (s *Session) writeLoop(ctx context.Context) error {
	ping := time.NewTicker(s.cfg.PingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case data := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("write: %w", err)
			}
		case <-ping.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.cfg.WriteTimeout)); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
		}
	}
}
