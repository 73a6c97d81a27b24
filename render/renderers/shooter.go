package renderers

import (
	"github.com/lixenwraith/arcade/core"
	"github.com/lixenwraith/arcade/render"
	"github.com/lixenwraith/arcade/systems"
)

var (
	shooterPlayerColor = core.RGBGreen
	shooterEnemyColor  = core.RGBRed
	shooterBulletColor = core.RGBWhite
)

// ShooterRenderer draws the space-shooter playfield and score
type ShooterRenderer struct {
	game *systems.Shooter
}

func NewShooterRenderer(game *systems.Shooter) *ShooterRenderer {
	return &ShooterRenderer{game: game}
}

func (r *ShooterRenderer) Render(ctx render.RenderContext, s render.Surface) {
	g := r.game
	s.Clear(core.RGBBlack)

	p := g.Player
	s.FillRect(p.X, p.Y, p.Width, p.Height, shade(ctx, shooterPlayerColor))

	for _, b := range g.Bullets {
		s.FillCircle(b.X, b.Y, b.Size, shade(ctx, shooterBulletColor))
	}
	for _, e := range g.Enemies {
		s.FillRect(e.X, e.Y, e.Width, e.Height, shade(ctx, shooterEnemyColor))
	}

	drawScore(s, g.Score())
}

// RegisterShooter wires the space-shooter renderers into o
func RegisterShooter(o *render.Orchestrator, game *systems.Shooter) {
	o.Register(NewShooterRenderer(game), render.PriorityBackground)
	o.Register(NewOverlayRenderer(game), render.PriorityOverlay)
}
