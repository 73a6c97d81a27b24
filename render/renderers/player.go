package renderers

import (
	"github.com/lixenwraith/arcade/components"
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/core"
	"github.com/lixenwraith/arcade/render"
)

// HealthBarColor tiers a health ratio: green above 60%, orange above 30%, red otherwise
func HealthBarColor(ratio float64) core.RGB {
	switch {
	case ratio > constants.HealthBarGreenRatio:
		return core.RGBHealthGreen
	case ratio > constants.HealthBarOrangeRatio:
		return core.RGBOrange
	default:
		return core.RGBRed
	}
}

// DrawPlayer draws the player body scaled by its scale factor and its health bar above it
func DrawPlayer(s render.Surface, p *components.Player) {
	r := p.Radius()
	s.FillCircle(p.X, p.Y, r, p.Color)

	barX := p.X - constants.HealthBarWidth/2
	barY := p.Y - r - constants.HealthBarOffset
	s.FillRect(barX, barY, constants.HealthBarWidth, constants.HealthBarHeight, core.RGBBlack)

	ratio := p.HealthRatio()
	s.FillRect(barX, barY, ratio*constants.HealthBarWidth, constants.HealthBarHeight, HealthBarColor(ratio))
}

// PlayerRenderer draws whatever player the source returns, skipping nil
type PlayerRenderer struct {
	source func() *components.Player
}

func NewPlayerRenderer(source func() *components.Player) *PlayerRenderer {
	return &PlayerRenderer{source: source}
}

func (r *PlayerRenderer) Render(_ render.RenderContext, s render.Surface) {
	if p := r.source(); p != nil {
		DrawPlayer(s, p)
	}
}
