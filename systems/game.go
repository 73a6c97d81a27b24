package systems

import (
	"time"

	"github.com/lixenwraith/arcade/events"
	"github.com/lixenwraith/arcade/input"
)

// Game names the playable simulations
const (
	GameShooter = "shooter"
	GameArena   = "arena"
)

// Session is one running simulation driven by a frame loop.
// All methods are called from the loop goroutine only
type Session interface {
	// Step advances one frame using the input snapshot taken at now
	Step(now time.Time, in input.State)
	Reset()
	Score() int
	GameOver() bool
	Paused() bool
	SetPaused(paused bool)
}

// sessionState carries the flags shared by every session
type sessionState struct {
	score    int
	gameOver bool
	paused   bool
	queue    *events.EventQueue
}

func (s *sessionState) Score() int { return s.score }
func (s *sessionState) GameOver() bool { return s.gameOver }
func (s *sessionState) Paused() bool { return s.paused }
func (s *sessionState) SetPaused(paused bool) { s.paused = paused }
func (s *sessionState) frozen() bool { return s.gameOver || s.paused }

func (s *sessionState) clear() {
	s.score = 0
	s.gameOver = false
	s.paused = false
}

// emit pushes an event when a queue is attached
func (s *sessionState) emit(t events.EventType, x, y float64, value int) {
	if s.queue == nil {
		return
	}
	s.queue.Push(events.GameEvent{Type: t, X: x, Y: y, Value: value})
}

func (s *sessionState) endGame(x, y float64) {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.emit(events.EventGameOver, x, y, s.score)
}
