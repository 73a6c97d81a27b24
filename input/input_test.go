package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestKeyStateAliases(t *testing.T) {
	tests := []struct {
		key   string
		check func(KeyState) bool
	}{
		{"w", KeyState.Up},
		{"W", KeyState.Up},
		{KeyArrowUp, KeyState.Up},
		{"s", KeyState.Down},
		{"S", KeyState.Down},
		{KeyArrowDown, KeyState.Down},
		{"a", KeyState.Left},
		{"A", KeyState.Left},
		{KeyArrowLeft, KeyState.Left},
		{"d", KeyState.Right},
		{"D", KeyState.Right},
		{KeyArrowRight, KeyState.Right},
		{KeySpace, KeyState.Fire},
	}

	for _, tt := range tests {
		ks := KeyState{tt.key: true}
		if !tt.check(ks) {
			t.Errorf("Key %q not recognized by its direction", tt.key)
		}
	}

	empty := KeyState{}
	if empty.Up() || empty.Down() || empty.Left() || empty.Right() || empty.Fire() {
		t.Error("Empty key state should report nothing held")
	}

	// Explicit false entries are not held
	if (KeyState{"w": false}).Up() {
		t.Error("False entry should not count as held")
	}
}

func TestTranslate(t *testing.T) {
	key, intent := Translate(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if key != KeyArrowLeft || intent != IntentNone {
		t.Errorf("KeyLeft translated to %q/%v", key, intent)
	}

	key, intent = Translate(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	if key != "w" || intent != IntentNone {
		t.Errorf("'w' translated to %q/%v", key, intent)
	}

	_, intent = Translate(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	if intent != IntentPause {
		t.Errorf("'p' should be pause intent, got %v", intent)
	}

	_, intent = Translate(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if intent != IntentQuit {
		t.Errorf("Ctrl+C should be quit intent, got %v", intent)
	}
}

func TestHeldKeysExpire(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	start := time.Unix(1000, 0)

	h.Press("d", start)
	if !h.Snapshot(start.Add(50 * time.Millisecond)).Keys.Right() {
		t.Fatal("Expected key held within timeout")
	}

	// Auto-repeat refreshes the hold
	h.Press("d", start.Add(90*time.Millisecond))
	if !h.Snapshot(start.Add(150 * time.Millisecond)).Keys.Right() {
		t.Error("Expected repeat to extend hold")
	}

	if h.Snapshot(start.Add(300 * time.Millisecond)).Keys.Right() {
		t.Error("Expected key released after timeout")
	}
}

func TestHeldKeysHandleKey(t *testing.T) {
	h := NewHeldKeys(0)
	now := time.Unix(1000, 0)

	if in := h.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), now); in != IntentRestart {
		t.Errorf("Expected restart intent, got %v", in)
	}
	if in := h.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now); in != IntentNone {
		t.Errorf("Expected no intent for arrow, got %v", in)
	}

	s := h.Snapshot(now)
	if !s.Keys.Up() {
		t.Error("Expected up held")
	}
	if len(s.Keys) != 1 {
		t.Errorf("Intent keys must not be held, got %v", s.Keys)
	}

	h.Reset()
	if len(h.Snapshot(now).Keys) != 0 {
		t.Error("Expected no keys after reset")
	}
}
