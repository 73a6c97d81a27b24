package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/arcade/events"
	"github.com/lixenwraith/arcade/input"
	"github.com/lixenwraith/arcade/vmath"
	"pgregory.net/rapid"
)

var testBounds = vmath.Size{Width: 800, Height: 600}

func newTestShooter(cfg ShooterConfig, seed uint64) (*Shooter, *events.EventQueue) {
	q := events.NewEventQueue()
	return NewShooter(testBounds, cfg, rand.New(rand.NewPCG(seed, seed^0x9e3779b9)), q), q
}

func quietConfig() ShooterConfig {
	cfg := DefaultShooterConfig()
	cfg.SpawnChance = 0
	return cfg
}

func TestShooterInitialState(t *testing.T) {
	s, _ := newTestShooter(DefaultShooterConfig(), 1)
	if s.Player.X != 400 || s.Player.Y != 550 {
		t.Errorf("Player at (%v, %v), want (400, 550)", s.Player.X, s.Player.Y)
	}
	if s.Player.Width != 50 || s.Player.Height != 30 {
		t.Errorf("Player size %vx%v, want 50x30", s.Player.Width, s.Player.Height)
	}
	if s.Score() != 0 || s.GameOver() {
		t.Error("Fresh session should have zero score and not be over")
	}
}

func TestCreateEnemyRespectsCap(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.SpawnChance = 1
	s, _ := newTestShooter(cfg, 2)

	for i := 0; i < 20; i++ {
		s.CreateEnemy()
	}
	if len(s.Enemies) != 5 {
		t.Fatalf("Enemy count = %d, want 5", len(s.Enemies))
	}
	for _, e := range s.Enemies {
		if e.Y != 0 || e.X < 0 || e.X >= 800-40 {
			t.Errorf("Enemy spawned at (%v, %v)", e.X, e.Y)
		}
	}
}

func TestCreateEnemyAtCapLeavesRNGUntouched(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.SpawnChance = 1
	s, _ := newTestShooter(cfg, 4)
	for range cfg.MaxEnemies {
		s.CreateEnemy()
	}

	ref := rand.New(rand.NewPCG(99, 99))
	s.rng = rand.New(rand.NewPCG(99, 99))
	for range 10 {
		s.CreateEnemy()
	}
	if got, want := s.rng.Float64(), ref.Float64(); got != want {
		t.Errorf("Full spawn attempts drew from rng: next = %v, want %v", got, want)
	}
}

func TestCreateEnemyNeverWithZeroChance(t *testing.T) {
	s, _ := newTestShooter(quietConfig(), 3)
	for i := 0; i < 1000; i++ {
		s.CreateEnemy()
	}
	if len(s.Enemies) != 0 {
		t.Errorf("Spawned %d enemies with zero chance", len(s.Enemies))
	}
}

func TestShootSpawnsAtNose(t *testing.T) {
	s, q := newTestShooter(quietConfig(), 4)
	s.Update(input.KeyState{input.KeySpace: true})

	if len(s.Bullets) != 1 {
		t.Fatalf("Bullets = %d, want 1", len(s.Bullets))
	}
	b := s.Bullets[0]
	if b.X != 425 || b.Y != 550 {
		t.Errorf("Bullet at (%v, %v), want (425, 550)", b.X, b.Y)
	}

	evs := q.Consume()
	if len(evs) != 1 || evs[0].Type != events.EventShotFired {
		t.Errorf("Expected one shot_fired event, got %+v", evs)
	}
}

func TestShootCapWhileHeld(t *testing.T) {
	s, _ := newTestShooter(quietConfig(), 5)
	fire := input.KeyState{"Space": true}

	for i := 0; i < 5; i++ {
		s.Update(fire)
		if len(s.Bullets) != i+1 {
			t.Fatalf("Frame %d: bullets = %d, want %d", i, len(s.Bullets), i+1)
		}
	}
	s.Update(fire)
	if len(s.Bullets) != 5 {
		t.Errorf("Bullets = %d after cap, want 5", len(s.Bullets))
	}
}

func TestBulletsLeaveTop(t *testing.T) {
	s, _ := newTestShooter(quietConfig(), 6)
	s.Bullets = []Shot{{X: 100, Y: 6, Size: 5, Speed: 7}, {X: 200, Y: 7, Size: 5, Speed: 7}}

	s.Update(nil)
	if len(s.Bullets) != 1 || s.Bullets[0].Y != 0 {
		t.Errorf("Expected only the bullet reaching y=0 to remain, got %+v", s.Bullets)
	}
}

func TestBulletPointHitsEnemy(t *testing.T) {
	s, q := newTestShooter(quietConfig(), 7)
	s.Enemies = []Enemy{{X: 100, Y: 100, Width: 40, Height: 30, Speed: 2}}
	s.Bullets = []Shot{{X: 120, Y: 120, Size: 5, Speed: 7}}

	s.Update(nil)

	if len(s.Enemies) != 0 || len(s.Bullets) != 0 {
		t.Errorf("Hit should remove both: enemies=%d bullets=%d", len(s.Enemies), len(s.Bullets))
	}
	if s.Score() != 10 {
		t.Errorf("Score = %d, want 10", s.Score())
	}

	evs := q.Consume()
	if len(evs) != 1 || evs[0].Type != events.EventEnemyDestroyed || evs[0].Value != 10 {
		t.Errorf("Expected enemy_destroyed worth 10, got %+v", evs)
	}
}

func TestBulletOnEnemyEdgeMisses(t *testing.T) {
	s, _ := newTestShooter(quietConfig(), 8)
	// After one frame the enemy spans x (100, 140); a bullet at x=100 sits on the edge
	s.Enemies = []Enemy{{X: 100, Y: 100, Width: 40, Height: 30, Speed: 2}}
	s.Bullets = []Shot{{X: 100, Y: 120, Size: 5, Speed: 7}}

	s.Update(nil)

	if len(s.Enemies) != 1 || len(s.Bullets) != 1 || s.Score() != 0 {
		t.Error("Edge contact should not count as a hit")
	}
}

func TestEnemyLeavesBottom(t *testing.T) {
	s, _ := newTestShooter(quietConfig(), 9)
	s.Enemies = []Enemy{{X: 10, Y: 599, Width: 40, Height: 30, Speed: 2}}

	s.Update(nil)
	if len(s.Enemies) != 0 {
		t.Error("Enemy below the bottom edge should be removed")
	}
	if s.GameOver() {
		t.Error("Distant enemy should not end the game")
	}
}

func TestPlayerCollisionFreezes(t *testing.T) {
	s, q := newTestShooter(quietConfig(), 10)
	s.Enemies = []Enemy{{X: s.Player.X, Y: s.Player.Y - 10, Width: 40, Height: 30, Speed: 2}}

	s.Update(nil)
	if !s.GameOver() {
		t.Fatal("Overlap with the player should end the game")
	}

	x, score := s.Player.X, s.Score()
	enemyY := s.Enemies[0].Y
	for i := 0; i < 10; i++ {
		s.Update(input.KeyState{input.KeyArrowRight: true, input.KeySpace: true})
	}
	if s.Player.X != x || s.Score() != score || s.Enemies[0].Y != enemyY || len(s.Bullets) != 0 {
		t.Error("Updates after game over must not change state")
	}

	var over int
	for _, ev := range q.Consume() {
		if ev.Type == events.EventGameOver {
			over++
		}
	}
	if over != 1 {
		t.Errorf("game_over emitted %d times, want 1", over)
	}
}

func TestShooterMovementClamped(t *testing.T) {
	s, _ := newTestShooter(quietConfig(), 11)

	s.Player.X = 2
	s.Update(input.KeyState{"a": true})
	if s.Player.X != 0 {
		t.Errorf("Left edge X = %v, want 0", s.Player.X)
	}
	s.Update(input.KeyState{"ArrowLeft": true})
	if s.Player.X != 0 {
		t.Errorf("Guarded move went to %v", s.Player.X)
	}

	s.Player.X = 748
	s.Update(input.KeyState{"d": true})
	if s.Player.X != 750 {
		t.Errorf("Right edge X = %v, want 750", s.Player.X)
	}
}

func TestShooterReset(t *testing.T) {
	s, _ := newTestShooter(quietConfig(), 12)
	s.Enemies = []Enemy{{X: s.Player.X, Y: s.Player.Y, Width: 40, Height: 30}}
	s.Update(nil)
	if !s.GameOver() {
		t.Fatal("Expected game over")
	}

	s.Reset()
	if s.GameOver() || s.Score() != 0 || len(s.Enemies) != 0 || s.Player.X != 400 {
		t.Error("Reset should restore a fresh session")
	}
}

func TestShooterInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := DefaultShooterConfig()
		cfg.SpawnChance = rapid.Float64Range(0, 1).Draw(t, "chance")
		s, _ := newTestShooter(cfg, rapid.Uint64().Draw(t, "seed"))

		frames := rapid.IntRange(1, 400).Draw(t, "frames")
		for i := 0; i < frames; i++ {
			keys := input.KeyState{
				input.KeyArrowLeft:  rapid.Bool().Draw(t, "left"),
				input.KeyArrowRight: rapid.Bool().Draw(t, "right"),
				input.KeySpace:      rapid.Bool().Draw(t, "fire"),
			}

			wasOver := s.GameOver()
			x, score := s.Player.X, s.Score()

			s.Update(keys)

			if len(s.Enemies) > 5 {
				t.Fatalf("enemy count %d exceeds cap", len(s.Enemies))
			}
			if len(s.Bullets) > 5 {
				t.Fatalf("bullet count %d exceeds cap", len(s.Bullets))
			}
			if s.Player.X < 0 || s.Player.X > 750 {
				t.Fatalf("player x %v out of bounds", s.Player.X)
			}
			if s.Score()%10 != 0 {
				t.Fatalf("score %d not a multiple of 10", s.Score())
			}
			if wasOver && (s.Player.X != x || s.Score() != score) {
				t.Fatal("state changed after game over")
			}
		}
	})
}
