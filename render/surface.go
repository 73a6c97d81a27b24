package render

import (
	"github.com/lixenwraith/arcade/core"
	"github.com/lixenwraith/arcade/vmath"
)

//go:generate mockgen -destination=mock_surface.go -package=render github.com/lixenwraith/arcade/render Surface

// Align anchors text horizontally at its x coordinate
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

func (a Align) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "left"
}

// Surface is a 2D drawing target in world units with a top-left origin.
// Text y is the baseline
type Surface interface {
	Bounds() vmath.Size
	Clear(c core.RGB)
	FillRect(x, y, w, h float64, c core.RGB)
	FillCircle(x, y, r float64, c core.RGB)
	FillText(text string, x, y, size float64, c core.RGB, align Align)
}

// Presenter is optionally implemented by surfaces that buffer a frame
type Presenter interface {
	Present() error
}
