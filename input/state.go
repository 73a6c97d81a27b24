package input

import "github.com/lixenwraith/arcade/vmath"

// Key identifiers follow browser KeyboardEvent.key names so remote clients can send them verbatim
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeySpace      = " "
)

// Direction aliases, any held alias counts as the direction held
var (
	upAliases    = []string{"w", "W", KeyArrowUp}
	downAliases  = []string{"s", "S", KeyArrowDown}
	leftAliases  = []string{"a", "A", KeyArrowLeft}
	rightAliases = []string{"d", "D", KeyArrowRight}
	fireAliases  = []string{KeySpace, "Space"}
)

// KeyState maps key identifiers to pressed state
type KeyState map[string]bool

func (k KeyState) any(aliases []string) bool {
	for _, a := range aliases {
		if k[a] {
			return true
		}
	}
	return false
}

func (k KeyState) Up() bool    { return k.any(upAliases) }
func (k KeyState) Down() bool  { return k.any(downAliases) }
func (k KeyState) Left() bool  { return k.any(leftAliases) }
func (k KeyState) Right() bool { return k.any(rightAliases) }
func (k KeyState) Fire() bool  { return k.any(fireAliases) }

// Clone returns an independent copy
func (k KeyState) Clone() KeyState {
	out := make(KeyState, len(k))
	for key, v := range k {
		if v {
			out[key] = true
		}
	}
	return out
}

// State is the per-frame input snapshot consumed by the simulations
type State struct {
	Keys    KeyState
	Pointer vmath.Vec2

	// PointerDown is a held primary pointer button
	PointerDown bool
}

// NewState returns an empty snapshot
func NewState() State {
	return State{Keys: make(KeyState)}
}

// Firing reports fire key or pointer button held
func (s State) Firing() bool {
	return s.PointerDown || s.Keys.Fire()
}
