package render

import (
	"github.com/lixenwraith/arcade/core"
	"github.com/lixenwraith/arcade/vmath"
)

// Draw op kinds
const (
	OpClear  = "clear"
	OpRect   = "rect"
	OpCircle = "circle"
	OpText   = "text"
)

// DrawOp is one recorded Surface call, shaped for a browser canvas.
// Coordinates and sizes are always encoded since zero is a valid position
type DrawOp struct {
	Op    string  `json:"op"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	R     float64 `json:"r,omitempty"`
	Size  float64 `json:"size,omitempty"`
	Text  string  `json:"text,omitempty"`
	Align string  `json:"align,omitempty"`
	Color string  `json:"color"`
}

// Recorder is a Surface that captures draw calls instead of rasterizing them
type Recorder struct {
	bounds vmath.Size
	ops    []DrawOp
}

// NewRecorder creates a recorder for a world of the given size
func NewRecorder(bounds vmath.Size) *Recorder {
	return &Recorder{
		bounds: bounds,
		ops:    make([]DrawOp, 0, 64),
	}
}

func (r *Recorder) Bounds() vmath.Size { return r.bounds }

// Clear drops ops recorded so far; earlier draws would be painted over anyway
func (r *Recorder) Clear(c core.RGB) {
	r.ops = r.ops[:0]
	r.ops = append(r.ops, DrawOp{Op: OpClear, Color: c.Hex()})
}

func (r *Recorder) FillRect(x, y, w, h float64, c core.RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	r.ops = append(r.ops, DrawOp{Op: OpRect, X: x, Y: y, W: w, H: h, Color: c.Hex()})
}

func (r *Recorder) FillCircle(x, y, radius float64, c core.RGB) {
	if radius <= 0 {
		return
	}
	r.ops = append(r.ops, DrawOp{Op: OpCircle, X: x, Y: y, R: radius, Color: c.Hex()})
}

func (r *Recorder) FillText(text string, x, y, size float64, c core.RGB, align Align) {
	r.ops = append(r.ops, DrawOp{Op: OpText, X: x, Y: y, Size: size, Text: text, Align: align.String(), Color: c.Hex()})
}

// Take returns a copy of the recorded ops and resets the recorder
func (r *Recorder) Take() []DrawOp {
	out := make([]DrawOp, len(r.ops))
	copy(out, r.ops)
	r.ops = r.ops[:0]
	return out
}
