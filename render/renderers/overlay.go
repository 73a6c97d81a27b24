package renderers

import (
	"fmt"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/core"
	"github.com/lixenwraith/arcade/render"
)

// scoreKeeper is the slice of a session the overlays need
type scoreKeeper interface {
	Score() int
	GameOver() bool
	Paused() bool
}

// drawScore writes the running score in the top-left corner
func drawScore(s render.Surface, score int) {
	s.FillText(fmt.Sprintf(constants.TextScore, score), 10, 30, constants.TextSizeHUD, core.RGBWhite, render.AlignLeft)
}

// shade dims playfield colors under the pause overlay
func shade(ctx render.RenderContext, c core.RGB) core.RGB {
	if ctx.IsPaused {
		return c.Scale(constants.PauseDimFactor)
	}
	return c
}

// overlayPanel is the backdrop behind centered overlay text
var overlayPanel = core.RGBBlack.Blend(core.RGBGray, constants.OverlayPanelAlpha)

// OverlayRenderer draws the centered game-over and pause screens
type OverlayRenderer struct {
	game scoreKeeper
}

func NewOverlayRenderer(game scoreKeeper) *OverlayRenderer {
	return &OverlayRenderer{game: game}
}

func (r *OverlayRenderer) IsVisible() bool {
	return r.game.GameOver() || r.game.Paused()
}

func (r *OverlayRenderer) Render(_ render.RenderContext, s render.Surface) {
	center := s.Bounds().Center()
	s.FillRect(center.X-constants.OverlayPanelWidth/2, center.Y-constants.TextSizeTitle-12,
		constants.OverlayPanelWidth, constants.OverlayPanelHeight, overlayPanel)

	if r.game.GameOver() {
		s.FillText(constants.TextGameOver, center.X, center.Y, constants.TextSizeTitle, core.RGBWhite, render.AlignCenter)
		s.FillText(fmt.Sprintf(constants.TextFinalScore, r.game.Score()), center.X, center.Y+40, constants.TextSizeSubtitle, core.RGBWhite, render.AlignCenter)
		s.FillText(constants.TextRestart, center.X, center.Y+80, constants.TextSizeHUD, core.RGBGray, render.AlignCenter)
		return
	}

	s.FillText(constants.TextPaused, center.X, center.Y, constants.TextSizeTitle, core.RGBYellow, render.AlignCenter)
	s.FillText(constants.TextResume, center.X, center.Y+40, constants.TextSizeSubtitle, core.RGBWhite, render.AlignCenter)
}
