package renderers

import (
	"fmt"

	"github.com/lixenwraith/arcade/components"
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/core"
	"github.com/lixenwraith/arcade/render"
	"github.com/lixenwraith/arcade/systems"
)

// Wounded-zombie bar dimensions per kind
var zombieBars = map[components.ZombieKind][2]float64{
	components.ZombieNormal: {20, 4},
	components.ZombieBuff:   {30, 6},
	components.ZombieGreen:  {40, 8},
}

// ZombieColor returns the body color for z; normal zombies darken once hurt
func ZombieColor(z components.Zombie) core.RGB {
	switch z.Kind {
	case components.ZombieGreen:
		return core.RGBGreen
	case components.ZombieBuff:
		return core.RGBOrange
	}
	if z.Health == z.MaxHealth {
		return core.RGBRed
	}
	return core.RGBDarkRed
}

// BulletColor separates the high damage tier
func BulletColor(b components.Bullet) core.RGB {
	if b.Red {
		return core.RGBRed
	}
	return core.RGBYellow
}

// ArenaFieldRenderer clears the frame and draws orbs, zombies and bullets
type ArenaFieldRenderer struct {
	game *systems.Arena
}

func NewArenaFieldRenderer(game *systems.Arena) *ArenaFieldRenderer {
	return &ArenaFieldRenderer{game: game}
}

func (r *ArenaFieldRenderer) Render(ctx render.RenderContext, s render.Surface) {
	g := r.game
	s.Clear(core.RGBBlack)

	for _, o := range g.Orbs {
		s.FillCircle(o.X, o.Y, constants.OrbSize, shade(ctx, core.RGBGreen))
	}

	for _, z := range g.Zombies {
		s.FillCircle(z.X, z.Y, z.Size, shade(ctx, ZombieColor(z)))
		if z.Health < z.MaxHealth {
			bar := zombieBars[z.Kind]
			x, y := z.X-bar[0]/2, z.Y-z.Size-10
			s.FillRect(x, y, bar[0], bar[1], core.RGBBlack)
			s.FillRect(x, y, float64(max(z.Health, 0))/float64(z.MaxHealth)*bar[0], bar[1], core.RGBGreen)
		}
	}

	for _, b := range g.Bullets {
		s.FillCircle(b.X, b.Y, b.Size, shade(ctx, BulletColor(b)))
	}
}

// ArenaHUDRenderer draws score, level, orb progress and the auto-fire flag
type ArenaHUDRenderer struct {
	game *systems.Arena
}

func NewArenaHUDRenderer(game *systems.Arena) *ArenaHUDRenderer {
	return &ArenaHUDRenderer{game: game}
}

func (r *ArenaHUDRenderer) Render(_ render.RenderContext, s render.Surface) {
	g := r.game
	bounds := s.Bounds()

	drawScore(s, g.Score())
	s.FillText(fmt.Sprintf(constants.TextLevel, g.Level), 10, 60, constants.TextSizeHUD, core.RGBGold, render.AlignLeft)

	// Orb progress bar along the bottom edge
	const barH = 8.0
	y := bounds.Height - barH - 4
	s.FillRect(0, y, bounds.Width, barH, core.RGBGray)
	if g.OrbsNeeded > 0 {
		ratio := min(float64(g.OrbsCollected)/float64(g.OrbsNeeded), 1)
		s.FillRect(0, y, ratio*bounds.Width, barH, core.RGBGreen)
	}
	s.FillText(fmt.Sprintf(constants.TextOrbs, g.OrbsCollected, g.OrbsNeeded), bounds.Width/2, y-6, constants.TextSizeHUD, core.RGBWhite, render.AlignCenter)

	if g.AutoFire {
		s.FillText("AUTO", bounds.Width-10-4*constants.TextSizeHUD/2, 30, constants.TextSizeHUD, core.RGBGreen, render.AlignLeft)
	}
}

// RegisterArena wires the zombie arena renderers into o
func RegisterArena(o *render.Orchestrator, game *systems.Arena) {
	o.Register(NewArenaFieldRenderer(game), render.PriorityBackground)
	o.Register(NewPlayerRenderer(func() *components.Player { return game.Player }), render.PriorityPlayer)
	o.Register(NewArenaHUDRenderer(game), render.PriorityUI)
	o.Register(NewOverlayRenderer(game), render.PriorityOverlay)
}
