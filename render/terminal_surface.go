package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/arcade/core"
	"github.com/lixenwraith/arcade/vmath"
)

// Glyph used when a shape is smaller than one cell
const dotGlyph = '•'

// TerminalSurface rasterizes world-unit drawing onto a tcell screen.
// The world is stretched over the whole terminal; one cell covers
// Width/cols by Height/rows world units
type TerminalSurface struct {
	screen tcell.Screen
	bounds vmath.Size
	cols   int
	rows   int

	// bg mirrors cell backgrounds so text keeps what is beneath it
	bg []core.RGB
}

// NewTerminalSurface wraps screen for a world of the given size
func NewTerminalSurface(screen tcell.Screen, bounds vmath.Size) *TerminalSurface {
	t := &TerminalSurface{
		screen: screen,
		bounds: bounds,
	}
	t.syncSize()
	return t
}

func (t *TerminalSurface) Bounds() vmath.Size { return t.bounds }

// CellSize returns the terminal size in cells as of the last Clear
func (t *TerminalSurface) CellSize() (cols, rows int) {
	return t.cols, t.rows
}

// CellToWorld maps a cell to the world coordinate of its center
func (t *TerminalSurface) CellToWorld(col, row int) vmath.Vec2 {
	if t.cols == 0 || t.rows == 0 {
		return vmath.Vec2{}
	}
	return vmath.Vec2{
		X: (float64(col) + 0.5) * t.bounds.Width / float64(t.cols),
		Y: (float64(row) + 0.5) * t.bounds.Height / float64(t.rows),
	}
}

// Sync forces a full repaint on the next Present, used after terminal resize
func (t *TerminalSurface) Sync() {
	t.syncSize()
	t.screen.Sync()
}

func (t *TerminalSurface) syncSize() {
	cols, rows := t.screen.Size()
	if cols == t.cols && rows == t.rows && t.bg != nil {
		return
	}
	t.cols, t.rows = cols, rows
	t.bg = make([]core.RGB, max(cols*rows, 0))
}

func (t *TerminalSurface) scaleX() float64 { return float64(t.cols) / t.bounds.Width }
func (t *TerminalSurface) scaleY() float64 { return float64(t.rows) / t.bounds.Height }

func (t *TerminalSurface) toCell(x, y float64) (int, int) {
	return int(math.Floor(x * t.scaleX())), int(math.Floor(y * t.scaleY()))
}

func (t *TerminalSurface) inside(col, row int) bool {
	return col >= 0 && col < t.cols && row >= 0 && row < t.rows
}

func toColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *TerminalSurface) setCell(col, row int, ch rune, fg, bg core.RGB) {
	if !t.inside(col, row) {
		return
	}
	style := tcell.StyleDefault.Foreground(toColor(fg)).Background(toColor(bg))
	t.screen.SetContent(col, row, ch, nil, style)
	t.bg[row*t.cols+col] = bg
}

func (t *TerminalSurface) bgAt(col, row int) core.RGB {
	if !t.inside(col, row) {
		return core.RGBBlack
	}
	return t.bg[row*t.cols+col]
}

// Clear picks up terminal resizes and paints every cell with c
func (t *TerminalSurface) Clear(c core.RGB) {
	t.syncSize()
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			t.setCell(col, row, ' ', c, c)
		}
	}
}

// FillRect paints every cell the rectangle touches, at least one
func (t *TerminalSurface) FillRect(x, y, w, h float64, c core.RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	c0, r0 := t.toCell(x, y)
	c1 := int(math.Ceil((x+w)*t.scaleX())) - 1
	r1 := int(math.Ceil((y+h)*t.scaleY())) - 1
	c1, r1 = max(c1, c0), max(r1, r0)

	for row := max(r0, 0); row <= min(r1, t.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, t.cols-1); col++ {
			t.setCell(col, row, ' ', c, c)
		}
	}
}

// FillCircle paints cells whose centers fall inside the circle.
// Circles too small to cover a cell center become a dot glyph
func (t *TerminalSurface) FillCircle(x, y, r float64, c core.RGB) {
	if r <= 0 {
		return
	}
	c0, r0 := t.toCell(x-r, y-r)
	c1, r1 := t.toCell(x+r, y+r)

	painted := false
	for row := max(r0, 0); row <= min(r1, t.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, t.cols-1); col++ {
			center := t.CellToWorld(col, row)
			if vmath.Distance(center.X, center.Y, x, y) <= r {
				t.setCell(col, row, ' ', c, c)
				painted = true
			}
		}
	}

	if !painted {
		col, row := t.toCell(x, y)
		t.setCell(col, row, dotGlyph, c, t.bgAt(col, row))
	}
}

// FillText writes text on the row holding the glyph middle, one rune per cell.
// Size only shifts the row; terminals have a single font size
func (t *TerminalSurface) FillText(text string, x, y, size float64, c core.RGB, align Align) {
	runes := []rune(text)
	col, row := t.toCell(x, y-size/3)
	if align == AlignCenter {
		col -= len(runes) / 2
	}
	for i, ch := range runes {
		t.setCell(col+i, row, ch, c, t.bgAt(col+i, row))
	}
}

// Present flushes the frame to the terminal
func (t *TerminalSurface) Present() error {
	t.screen.Show()
	return nil
}
