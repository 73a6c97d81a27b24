package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/arcade/vmath"
)

// DefaultReleaseTimeout covers the initial auto-repeat delay of common terminals
const DefaultReleaseTimeout = 550 * time.Millisecond

// HeldKeys synthesizes held state from terminal key events.
// Terminals report presses and auto-repeats but never releases, so a key counts
// as held until ReleaseTimeout passes without a repeat
type HeldKeys struct {
	ReleaseTimeout time.Duration

	lastSeen    map[string]time.Time
	pointer     vmath.Vec2
	pointerDown bool
}

// NewHeldKeys creates a tracker with the given release timeout (<=0 uses the default)
func NewHeldKeys(timeout time.Duration) *HeldKeys {
	if timeout <= 0 {
		timeout = DefaultReleaseTimeout
	}
	return &HeldKeys{
		ReleaseTimeout: timeout,
		lastSeen:       make(map[string]time.Time),
	}
}

// Press records a press or auto-repeat of key at now
func (h *HeldKeys) Press(key string, now time.Time) {
	if key == "" {
		return
	}
	h.lastSeen[key] = now
}

// Release drops key immediately
func (h *HeldKeys) Release(key string) {
	delete(h.lastSeen, key)
}

// Pointer records pointer position in world units and primary button state
func (h *HeldKeys) Pointer(pos vmath.Vec2, down bool) {
	h.pointer = pos
	h.pointerDown = down
}

// HandleKey translates and records a tcell key event, returning any intent
func (h *HeldKeys) HandleKey(ev *tcell.EventKey, now time.Time) Intent {
	key, intent := Translate(ev)
	if intent != IntentNone {
		return intent
	}
	h.Press(key, now)
	return IntentNone
}

// Snapshot expires stale keys and returns the state for this frame
func (h *HeldKeys) Snapshot(now time.Time) State {
	s := State{
		Keys:        make(KeyState, len(h.lastSeen)),
		Pointer:     h.pointer,
		PointerDown: h.pointerDown,
	}
	for key, seen := range h.lastSeen {
		if now.Sub(seen) > h.ReleaseTimeout {
			delete(h.lastSeen, key)
			continue
		}
		s.Keys[key] = true
	}
	return s
}

// Reset releases everything
func (h *HeldKeys) Reset() {
	clear(h.lastSeen)
	h.pointerDown = false
}
