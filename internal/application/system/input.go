package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem samples player input once per tick.
type InputSystem struct{}

// NewInputSystem creates a new input system.
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds one tick's worth of discrete action events.
type InputState struct {
	Left  bool
	Right bool

	Jump   bool
	Attack bool
	Parry  bool
	Dash   bool

	Pause   bool
	Restart bool

	// Debug keys, carried over from the original prototype.
	HurtSelf       bool
	KillSelf       bool
	HurtBoss       bool
	KillBoss       bool
	ToggleHitboxes bool
}

// GetInput reads the current input state from the keyboard and mouse.
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),

		Jump: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Attack: inpututil.IsKeyJustPressed(ebiten.KeyE) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Parry: inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Dash: inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) ||
			inpututil.IsKeyJustPressed(ebiten.KeyShiftRight),

		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),

		HurtSelf:       inpututil.IsKeyJustPressed(ebiten.KeyT),
		KillSelf:       inpututil.IsKeyJustPressed(ebiten.KeyN),
		HurtBoss:       inpututil.IsKeyJustPressed(ebiten.KeyY),
		KillBoss:       inpututil.IsKeyJustPressed(ebiten.KeyM),
		ToggleHitboxes: inpututil.IsKeyJustPressed(ebiten.KeyF1),
	}
}
