package renderers

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/arcade/components"
	"github.com/lixenwraith/arcade/core"
	"github.com/lixenwraith/arcade/render"
	"github.com/lixenwraith/arcade/systems"
	"github.com/lixenwraith/arcade/vmath"
	"go.uber.org/mock/gomock"
)

var testBounds = vmath.Size{Width: 800, Height: 600}

func TestHealthBarColor(t *testing.T) {
	tests := []struct {
		ratio float64
		want  core.RGB
	}{
		{1.0, core.RGBHealthGreen},
		{0.61, core.RGBHealthGreen},
		{0.6, core.RGBOrange},
		{0.31, core.RGBOrange},
		{0.3, core.RGBRed},
		{0, core.RGBRed},
	}
	for _, tt := range tests {
		if got := HealthBarColor(tt.ratio); got != tt.want {
			t.Errorf("HealthBarColor(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestDrawPlayerCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := render.NewMockSurface(ctrl)

	p := components.NewPlayer(400, 300, testBounds, components.DefaultPlayerConfig())
	p.Health = 5
	p.Scale = 1.5

	// radius 30, bar 40x6 at (380, 300-30-15)
	gomock.InOrder(
		s.EXPECT().FillCircle(400.0, 300.0, 30.0, core.RGBWhite),
		s.EXPECT().FillRect(380.0, 255.0, 40.0, 6.0, core.RGBBlack),
		s.EXPECT().FillRect(380.0, 255.0, 20.0, 6.0, core.RGBOrange),
	)

	DrawPlayer(s, p)
}

func TestPlayerRendererSkipsNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := render.NewMockSurface(ctrl)

	// No expectations: any surface call fails the test
	NewPlayerRenderer(func() *components.Player { return nil }).Render(render.RenderContext{}, s)
}

func TestShooterFrame(t *testing.T) {
	cfg := systems.DefaultShooterConfig()
	cfg.SpawnChance = 0
	g := systems.NewShooter(testBounds, cfg, rand.New(rand.NewPCG(1, 2)), nil)
	g.Enemies = []systems.Enemy{{X: 10, Y: 10, Width: 40, Height: 30}}
	g.Bullets = []systems.Shot{{X: 100, Y: 200, Size: 5}}

	o := render.NewOrchestrator()
	RegisterShooter(o, g)

	rec := render.NewRecorder(testBounds)
	if err := o.RenderFrame(render.RenderContext{}, rec); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	ops := rec.Take()
	kinds := make([]string, len(ops))
	for i, op := range ops {
		kinds[i] = op.Op
	}
	want := []string{render.OpClear, render.OpRect, render.OpCircle, render.OpRect, render.OpText}
	if len(kinds) != len(want) {
		t.Fatalf("ops %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("op[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
	if ops[1].Color != "#00ff00" || ops[3].Color != "#ff0000" {
		t.Error("Player should be green and enemies red")
	}
	if ops[4].Text != "Score: 0" {
		t.Errorf("Score text = %q", ops[4].Text)
	}
}

func TestShooterGameOverOverlay(t *testing.T) {
	cfg := systems.DefaultShooterConfig()
	cfg.SpawnChance = 0
	g := systems.NewShooter(testBounds, cfg, rand.New(rand.NewPCG(1, 2)), nil)
	g.Enemies = []systems.Enemy{{X: g.Player.X, Y: g.Player.Y, Width: 40, Height: 30}}
	g.Update(nil)

	o := render.NewOrchestrator()
	RegisterShooter(o, g)
	rec := render.NewRecorder(testBounds)
	_ = o.RenderFrame(render.RenderContext{}, rec)

	var texts []render.DrawOp
	for _, op := range rec.Take() {
		if op.Op == render.OpText {
			texts = append(texts, op)
		}
	}
	if len(texts) != 4 {
		t.Fatalf("Expected score plus 3 overlay lines, got %+v", texts)
	}
	over := texts[1]
	if over.Text != "GAME OVER" || over.X != 400 || over.Y != 300 || over.Align != "center" {
		t.Errorf("Game over text = %+v", over)
	}
	if texts[2].Text != "Final Score: 0" {
		t.Errorf("Final score text = %q", texts[2].Text)
	}
}

func TestShooterPausedFrameDimsPlayfield(t *testing.T) {
	cfg := systems.DefaultShooterConfig()
	cfg.SpawnChance = 0
	g := systems.NewShooter(testBounds, cfg, rand.New(rand.NewPCG(1, 2)), nil)
	g.SetPaused(true)

	o := render.NewOrchestrator()
	RegisterShooter(o, g)
	rec := render.NewRecorder(testBounds)
	if err := o.RenderFrame(render.RenderContext{IsPaused: true}, rec); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	ops := rec.Take()
	if len(ops) < 2 || ops[1].Op != render.OpRect || ops[1].Color != "#007f00" {
		t.Fatalf("Paused player should be half-bright green, got %+v", ops)
	}

	var panel *render.DrawOp
	var paused bool
	for i, op := range ops {
		if op.Op == render.OpRect && op.W == 360 && op.H == 160 {
			panel = &ops[i]
		}
		if op.Op == render.OpText && op.Text == "PAUSED" {
			paused = true
		}
	}
	if panel == nil || panel.X != 220 || panel.Y != 240 || panel.Color != "#2c2c2c" {
		t.Errorf("Overlay panel = %+v", panel)
	}
	if !paused {
		t.Error("Pause text missing")
	}
}

func TestArenaFrame(t *testing.T) {
	cfg := systems.DefaultArenaConfig()
	g := systems.NewArena(testBounds, cfg, components.DefaultPlayerConfig(), rand.New(rand.NewPCG(3, 4)), nil)

	hurt := components.NewZombie(100, 100, components.ZombieBuff)
	hurt.Health = 8
	g.Zombies = []components.Zombie{hurt, components.NewZombie(700, 500, components.ZombieNormal)}
	g.Orbs = []components.Orb{{X: 50, Y: 50}}
	g.Bullets = []components.Bullet{{X: 300, Y: 300, Size: 3, Red: true}}

	o := render.NewOrchestrator()
	RegisterArena(o, g)
	rec := render.NewRecorder(testBounds)
	if err := o.RenderFrame(render.RenderContext{GameTime: time.Unix(0, 0)}, rec); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	ops := rec.Take()
	if ops[0].Op != render.OpClear {
		t.Fatal("Frame should start with clear")
	}

	var circles, greenBars int
	for _, op := range ops {
		if op.Op == render.OpCircle {
			circles++
		}
		// Wounded buff bar: half of 30 wide
		if op.Op == render.OpRect && op.W == 15 && op.H == 6 && op.Color == "#00ff00" {
			greenBars++
		}
	}
	// orb + 2 zombies + bullet + player
	if circles != 5 {
		t.Errorf("circles = %d, want 5", circles)
	}
	if greenBars != 1 {
		t.Errorf("Wounded zombie bar missing")
	}
}

func TestZombieColor(t *testing.T) {
	z := components.NewZombie(0, 0, components.ZombieNormal)
	if ZombieColor(z) != core.RGBRed {
		t.Error("Healthy normal zombie should be red")
	}
	z.Health--
	if ZombieColor(z) != core.RGBDarkRed {
		t.Error("Wounded normal zombie should darken")
	}
	if ZombieColor(components.NewZombie(0, 0, components.ZombieGreen)) != core.RGBGreen {
		t.Error("Green zombie color")
	}
}
