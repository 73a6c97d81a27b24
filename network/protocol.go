package network

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lixenwraith/arcade/input"
	"github.com/lixenwraith/arcade/render"
	"github.com/lixenwraith/arcade/vmath"
)

// Message types, client to server
const (
	MsgInput    = "input"    // Held keys and pointer snapshot
	MsgRestart  = "restart"  // Start a new session state
	MsgPause    = "pause"    // Toggle pause
	MsgAutoFire = "autofire" // Toggle arena auto-fire
)

// Message types, server to client
const (
	MsgHello = "hello" // Sent once after upgrade
	MsgFrame = "frame" // One rendered frame
)

// ErrBadMessage wraps every client message decode failure
var ErrBadMessage = errors.New("bad message")

// Point is a pointer position in world units
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ClientMessage is any message a client sends
type ClientMessage struct {
	Type        string          `json:"type"`
	Keys        map[string]bool `json:"keys,omitempty"`
	Pointer     *Point          `json:"pointer,omitempty"`
	PointerDown bool            `json:"pointerDown,omitempty"`
}

// HelloMessage introduces the session to the client
type HelloMessage struct {
	Type    string  `json:"type"`
	Session string  `json:"session"`
	Game    string  `json:"game"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// FrameMessage carries the draw ops of one frame
type FrameMessage struct {
	Type string          `json:"type"`
	Seq  int64           `json:"seq"`
	Ops  []render.DrawOp `json:"ops"`
}

// DecodeClientMessage parses and checks a client message
func DecodeClientMessage(data []byte) (ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return msg, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	switch msg.Type {
	case MsgInput, MsgRestart, MsgPause, MsgAutoFire:
		return msg, nil
	case "":
		return msg, fmt.Errorf("%w: missing type", ErrBadMessage)
	default:
		return msg, fmt.Errorf("%w: unknown type %q", ErrBadMessage, msg.Type)
	}
}

// ApplyTo folds an input message into the held-input snapshot.
// Keys replace the previous set; an absent pointer keeps its last position
func (m ClientMessage) ApplyTo(st *input.State) {
	st.Keys = input.KeyState(m.Keys).Clone()
	if m.Pointer != nil {
		st.Pointer = vmath.Vec2{X: m.Pointer.X, Y: m.Pointer.Y}
	}
	st.PointerDown = m.PointerDown
}

// EncodeFrame serializes a frame message
func EncodeFrame(seq int64, ops []render.DrawOp) ([]byte, error) {
	return json.Marshal(FrameMessage{Type: MsgFrame, Seq: seq, Ops: ops})
}
