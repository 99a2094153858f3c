// Package arena provides the boss-fight gameplay scene.
package arena

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/krefel/bossfight/internal/application/replay"
	"github.com/krefel/bossfight/internal/application/scene"
	"github.com/krefel/bossfight/internal/application/state"
	"github.com/krefel/bossfight/internal/application/system"
	"github.com/krefel/bossfight/internal/domain/anim"
	"github.com/krefel/bossfight/internal/domain/entity"
	"github.com/krefel/bossfight/internal/infrastructure/assets"
	"github.com/krefel/bossfight/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{40, 44, 52, 255}
	colorBarBG       = color.RGBA{50, 50, 50, 200}
	colorHealthHigh  = color.RGBA{0, 200, 0, 220}
	colorHealthMid   = color.RGBA{220, 220, 0, 220}
	colorHealthLow   = color.RGBA{220, 0, 0, 220}
	colorBossHealth  = color.RGBA{200, 0, 0, 220}
	colorPlayerBox   = color.RGBA{0, 255, 0, 90}
	colorBossBox     = color.RGBA{255, 0, 0, 90}
	colorOverlayDark = color.RGBA{0, 0, 0, 128}
)

// Health bar layout, in screen space.
const (
	playerBarW = 300.0
	playerBarH = 20.0
	playerBarX = 25.0
	playerBarY = 25.0

	bossBarW = 400.0
	bossBarH = 25.0
	bossBarY = 25.0
)

// Options configures an Arena scene.
type Options struct {
	// RecordPath enables input recording when non-empty.
	RecordPath string
	// Replay plays back a recorded fight instead of sampling input.
	Replay *replay.ReplayData
}

// Arena is the boss-fight scene: the fixed-topology tick over the
// player, the boss and combat resolution, plus rendering.
type Arena struct {
	cfg    *config.GameConfig
	images *assets.Registry
	opts   Options

	player *entity.Player
	boss   *entity.Boss
	combat *system.CombatSystem
	input  *system.InputSystem

	state        state.GameState
	showHitboxes bool

	rng  *rand.Rand
	seed int64

	recorder *Recorder
	replayer *replay.Replayer

	screenW int
	screenH int
}

// New creates the arena scene from loaded config and textures.
func New(cfg *config.GameConfig, images *assets.Registry, opts Options) *Arena {
	a := &Arena{
		cfg:     cfg,
		images:  images,
		opts:    opts,
		input:   system.NewInputSystem(),
		state:   state.StatePlaying,
		screenW: cfg.Balance.Display.ScreenWidth,
		screenH: cfg.Balance.Display.ScreenHeight,
	}

	seed := time.Now().UnixNano()
	if opts.Replay != nil {
		seed = opts.Replay.Seed
		a.replayer = replay.NewReplayer(*opts.Replay)
	}
	a.setup(seed)

	if opts.RecordPath != "" {
		a.recorder = NewRecorder(seed)
		log.Printf("[arena] recording enabled: %s (seed: %d)", opts.RecordPath, seed)
	}

	return a
}

// setup builds both actors and the combat resolver for a fresh fight.
func (a *Arena) setup(seed int64) {
	a.seed = seed
	a.rng = rand.New(rand.NewSource(seed))

	playerTrack := buildTrack(a.cfg.Animations.Player, a.images)
	bossTrack := buildTrack(a.cfg.Animations.Boss, a.images)

	a.player = entity.NewPlayer(playerParams(a.cfg.Balance), playerTrack, a.rng)
	a.boss = entity.NewBoss(bossParams(a.cfg.Balance), bossTrack, activeWindows(a.cfg.Animations), a.player, a.rng)
	a.combat = system.NewCombatSystem(a.cfg.Balance, a.player, a.boss)
}

// buildTrack defines a track from a clip config table.
func buildTrack(clips map[string]config.ClipConfig, images *assets.Registry) *anim.Track {
	track := anim.NewTrack(images)
	for name, c := range clips {
		track.Define(name, anim.Clip{
			TextureID:     c.Texture,
			FrameCount:    c.Frames,
			FrameDuration: c.Duration,
			FrameW:        c.FrameW,
			FrameH:        c.FrameH,
			Loops:         c.Loop,
		})
	}
	return track
}

func activeWindows(cfg *config.AnimationsConfig) map[string]entity.FrameWindow {
	windows := make(map[string]entity.FrameWindow, len(cfg.ActiveWindows))
	for clip, w := range cfg.ActiveWindows {
		windows[clip] = entity.FrameWindow{From: w.From, To: w.To}
	}
	return windows
}

func playerParams(cfg *config.BalanceConfig) entity.PlayerParams {
	p := cfg.Player
	return entity.PlayerParams{
		MaxHealth:    p.MaxHealth,
		MoveSpeed:    p.MoveSpeed,
		RunThreshold: p.RunThreshold,
		JumpForce:    p.JumpForce,
		Gravity:      p.Gravity,
		SpawnX:       p.Spawn.X,
		SpawnY:       p.Spawn.Y,
		HitboxW:      p.Hitbox.W,
		HitboxH:      p.Hitbox.H,

		DashSpeed:    p.Dash.Speed,
		DashDuration: p.Dash.Duration,
		DashCooldown: p.Dash.Cooldown,

		AttackCooldown: p.AttackCooldown,

		ParryCooldown: p.Parry.Cooldown,
		ParryWindow:   p.Parry.SuccessWindow,

		HurtDuration:  p.Hurt.Duration,
		FlashInterval: p.Hurt.FlashInterval,
		KnockbackX:    p.Hurt.KnockbackX,
		KnockbackY:    p.Hurt.KnockbackY,

		GroundLevel:  cfg.Arena.GroundLevel,
		LeftBoundary: cfg.Arena.LeftBoundary,
	}
}

func bossParams(cfg *config.BalanceConfig) entity.BossParams {
	b := cfg.Boss
	return entity.BossParams{
		MaxHealth: b.MaxHealth,
		MoveSpeed: b.MoveSpeed,
		SpawnX:    b.Spawn.X,
		SpawnY:    b.Spawn.Y,

		MinMoveDuration: b.MinMoveDuration,
		MaxMoveDuration: b.MaxMoveDuration,

		ActionDelayBase:      b.ActionDelay.Base,
		ActionDelayJitterMin: b.ActionDelay.JitterMin,
		ActionDelayJitterMax: b.ActionDelay.JitterMax,

		Attack1Cooldown:  b.Attack1Cooldown,
		Attack2Cooldown:  b.Attack2Cooldown,
		UltimateCooldown: b.UltimateCooldown,

		FlashDuration: b.FlashDuration,
		FlashInterval: b.FlashInterval,

		LeftBoundary:   b.LeftBoundary,
		RightBoundary:  b.RightBoundary,
		BoundaryMargin: b.BoundaryMargin,

		HitboxW:           b.Hitbox.W,
		HitboxH:           b.Hitbox.H,
		HitboxYOffset:     b.HitboxYOffset,
		AttackHitboxWidth: b.AttackHitboxWidth,
	}
}

// OnEnter implements scene.Scene.
func (a *Arena) OnEnter() {}

// OnExit saves any pending recording.
func (a *Arena) OnExit() {
	a.saveRecording()
}

// Update implements scene.Scene.
func (a *Arena) Update(dt float64) (scene.Scene, error) {
	switch a.state {
	case state.StatePlaying:
		a.updatePlaying(dt)
	case state.StatePaused:
		if a.input.GetInput().Pause {
			a.state = state.StatePlaying
		}
	case state.StateVictory, state.StateGameOver:
		if a.input.GetInput().Restart {
			a.restart()
		}
	}
	return nil, nil
}

func (a *Arena) updatePlaying(dt float64) {
	input := a.sampleInput()

	if input.Pause {
		a.state = state.StatePaused
		return
	}
	if input.ToggleHitboxes {
		a.showHitboxes = !a.showHitboxes
	}

	if a.recorder != nil {
		a.recorder.RecordFrame(input)
	}

	a.applyInput(input)

	// Fixed tick topology: player, then boss, then combat resolution.
	a.player.Update(dt)
	a.boss.Update(dt)
	a.combat.Update()

	if !a.player.Alive() && a.player.AnimationDone() {
		a.state = state.StateGameOver
		a.saveRecording()
	} else if !a.boss.Alive() && a.boss.AnimationDone() {
		a.state = state.StateVictory
		a.saveRecording()
	}
}

// sampleInput reads live input, or the next replay frame when playing
// one back. A finished replay leaves the player idle.
func (a *Arena) sampleInput() system.InputState {
	if a.replayer == nil {
		return a.input.GetInput()
	}

	ri, ok := a.replayer.GetInput()
	if !ok {
		return system.InputState{}
	}
	return system.InputState{
		Left:   ri.Left,
		Right:  ri.Right,
		Jump:   ri.Jump,
		Attack: ri.Attack,
		Parry:  ri.Parry,
		Dash:   ri.Dash,
	}
}

// applyInput translates one tick of input into player intents.
func (a *Arena) applyInput(input system.InputState) {
	dir := 0.0
	if input.Left {
		dir -= 1
	}
	if input.Right {
		dir += 1
	}
	a.player.Move(dir)

	if input.Jump {
		a.player.Jump()
	}
	if input.Attack {
		a.player.Attack()
	}
	if input.Parry {
		a.player.Parry()
	}
	if input.Dash {
		a.player.Dash()
	}

	// Debug keys from the original prototype.
	if input.HurtSelf {
		a.player.TakeDamage(10)
	}
	if input.KillSelf {
		a.player.Death()
	}
	if input.HurtBoss {
		a.boss.TakeDamage(100)
	}
	if input.KillBoss {
		a.boss.Death()
	}
}

// restart rebuilds the fight with a fresh seed.
func (a *Arena) restart() {
	seed := time.Now().UnixNano()
	if a.replayer != nil {
		seed = a.seed
		a.replayer.Reset()
	}
	a.setup(seed)
	a.state = state.StatePlaying

	if a.opts.RecordPath != "" {
		a.recorder = NewRecorder(seed)
		log.Printf("[arena] recording restarted (seed: %d)", seed)
	}
}

func (a *Arena) saveRecording() {
	if a.recorder == nil || a.recorder.FrameCount() == 0 {
		return
	}
	if err := a.recorder.Save(a.opts.RecordPath); err != nil {
		log.Printf("[arena] failed to save recording: %v", err)
	} else {
		log.Printf("[arena] recording saved: %s (%d frames)", a.opts.RecordPath, a.recorder.FrameCount())
	}
	a.recorder.Stop()
}

// Draw implements scene.Scene.
func (a *Arena) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	a.drawBackground(screen)

	a.drawActor(screen, a.player.Render())
	a.drawActor(screen, a.boss.Render())

	if a.showHitboxes {
		a.drawHitboxes(screen)
	}

	a.drawUI(screen)

	switch a.state {
	case state.StatePaused:
		a.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case state.StateVictory:
		a.drawOverlay(screen, "VICTORY\n\nPress R to restart")
	case state.StateGameOver:
		a.drawOverlay(screen, "GAME OVER\n\nPress R to restart")
	}
}

// drawBackground scales the background texture to the screen.
func (a *Arena) drawBackground(screen *ebiten.Image) {
	bg, ok := a.images.Image("background")
	if !ok {
		return
	}
	bounds := bg.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(a.screenW)/float64(bounds.Dx()),
		float64(a.screenH)/float64(bounds.Dy()),
	)
	screen.DrawImage(bg, op)
}

// drawActor renders a snapshot: current frame, flipped for facing,
// tinted while the damage flash is on, centered on world position.
func (a *Arena) drawActor(screen *ebiten.Image, rs entity.RenderState) {
	img, ok := a.images.Image(rs.TextureID)
	if !ok {
		return
	}

	frame, ok := img.SubImage(rs.FrameRect).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	if !rs.FacingRight {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(rs.FrameW), 0)
	}
	op.GeoM.Translate(rs.X-float64(rs.FrameW)/2, rs.Y-float64(rs.FrameH)/2)
	if rs.FlashOn {
		op.ColorScale.Scale(1, 0.35, 0.35, 0.9)
	}
	screen.DrawImage(frame, op)
}

func (a *Arena) drawHitboxes(screen *ebiten.Image) {
	ph := a.player.Hitbox()
	ebitenutil.DrawRect(screen, ph.X, ph.Y, ph.W, ph.H, colorPlayerBox)

	bh := a.boss.Hitbox()
	ebitenutil.DrawRect(screen, bh.X, bh.Y, bh.W, bh.H, colorBossBox)
}

func (a *Arena) drawUI(screen *ebiten.Image) {
	// Player health bar, green/yellow/red by remaining fraction.
	ratio := healthRatio(a.player.Health, a.player.MaxHealth)
	fill := colorHealthHigh
	switch {
	case ratio <= 0:
		fill = colorBarBG
	case ratio < 0.33:
		fill = colorHealthLow
	case ratio < 0.66:
		fill = colorHealthMid
	}
	ebitenutil.DrawRect(screen, playerBarX, playerBarY, playerBarW, playerBarH, colorBarBG)
	ebitenutil.DrawRect(screen, playerBarX, playerBarY, playerBarW*ratio, playerBarH, fill)

	// Boss health bar, right-aligned.
	bossBarX := float64(a.screenW) - bossBarW - 25
	bossRatio := healthRatio(a.boss.Health, a.boss.MaxHealth)
	ebitenutil.DrawRect(screen, bossBarX, bossBarY, bossBarW, bossBarH, colorBarBG)
	ebitenutil.DrawRect(screen, bossBarX, bossBarY, bossBarW*bossRatio, bossBarH, colorBossHealth)

	controls := "A/D: Move | Space: Jump | E/LClick: Attack | Q/RClick: Parry | Shift: Dash | ESC: Pause"
	ebitenutil.DebugPrintAt(screen, controls, 10, a.screenH-20)

	if a.replayer != nil {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("REPLAY %d/%d", a.replayer.CurrentFrame(), a.replayer.TotalFrames()),
			10, a.screenH-40)
	}
}

func (a *Arena) drawOverlay(screen *ebiten.Image, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(a.screenW), float64(a.screenH), colorOverlayDark)
	ebitenutil.DebugPrintAt(screen, text, a.screenW/2-60, a.screenH/2-20)
}

// healthRatio guards the zero-max edge case: treat as empty, never fault.
func healthRatio(health, maxHealth int) float64 {
	if maxHealth <= 0 {
		return 0
	}
	r := float64(health) / float64(maxHealth)
	if r < 0 {
		return 0
	}
	return r
}
