package events

import "testing"

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventShotFired, Value: 1})
	q.Push(GameEvent{Type: EventEnemyDestroyed, Value: 10})

	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}

	got := q.Consume()
	if len(got) != 2 || got[0].Type != EventShotFired || got[1].Type != EventEnemyDestroyed {
		t.Fatalf("Consume returned %+v", got)
	}
	if q.Consume() != nil {
		t.Error("Second consume should be empty")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueueSize(3)
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Value: i})
	}

	got := q.Consume()
	if len(got) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(got))
	}
	for i, ev := range got {
		if ev.Value != i+2 {
			t.Errorf("Event %d value = %d, want %d", i, ev.Value, i+2)
		}
	}
}

type recordingHandler struct {
	name  string
	types []EventType
	log   *[]string
}

func (h *recordingHandler) HandleEvent(_ *int, ev GameEvent) {
	*h.log = append(*h.log, h.name+":"+ev.Type.String())
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func TestRouterRegistrationOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)

	var log []string
	r.Register(&recordingHandler{name: "a", types: []EventType{EventGameOver}, log: &log})
	r.Register(&recordingHandler{name: "b", types: []EventType{EventGameOver, EventLevelUp}, log: &log})

	counter := 0
	r.Register(HandlerFunc[*int]{
		Types: []EventType{EventLevelUp},
		Fn:    func(ctx *int, _ GameEvent) { *ctx++ },
	})

	q.Push(GameEvent{Type: EventGameOver})
	q.Push(GameEvent{Type: EventLevelUp})
	q.Push(GameEvent{Type: EventShotFired})

	if n := r.DispatchAll(&counter); n != 3 {
		t.Errorf("DispatchAll consumed %d, want 3", n)
	}

	want := []string{"a:game_over", "b:game_over", "b:level_up"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %s, want %s", i, log[i], want[i])
		}
	}
	if counter != 1 {
		t.Errorf("HandlerFunc ran %d times, want 1", counter)
	}
	if r.HandlerCount(EventShotFired) != 0 {
		t.Error("No handler should be registered for shot_fired")
	}
}
