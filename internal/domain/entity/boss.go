package entity

import (
	"log"
	"math/rand"

	"github.com/krefel/bossfight/internal/domain/anim"
)

// Phase is the boss's mutually exclusive AI state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMove
	PhaseAttack
	PhaseUltimate
	PhaseDead
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMove:
		return "move"
	case PhaseAttack:
		return "attack"
	case PhaseUltimate:
		return "ultimate"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// FrameWindow is the inclusive frame range of a clip during which its
// attack hitbox is live.
type FrameWindow struct {
	From int
	To   int
}

// BossParams is the boss tuning, mapped from config at scene setup.
type BossParams struct {
	MaxHealth int
	MoveSpeed float64
	SpawnX    float64
	SpawnY    float64

	MinMoveDuration float64
	MaxMoveDuration float64

	ActionDelayBase      float64
	ActionDelayJitterMin float64
	ActionDelayJitterMax float64

	Attack1Cooldown  float64
	Attack2Cooldown  float64
	UltimateCooldown float64

	FlashDuration float64
	FlashInterval float64

	LeftBoundary   float64
	RightBoundary  float64
	BoundaryMargin float64

	HitboxW           float64
	HitboxH           float64
	HitboxYOffset     float64
	AttackHitboxWidth float64
}

// Boss is the AI-driven actor: a randomized, cooldown-gated decision
// policy over idle/move/attack/ultimate, with frame-accurate attack
// windows derived from the animation track.
type Boss struct {
	BossParams

	X, Y        float64
	VX          float64
	FacingRight bool
	Health      int
	FlashOn     bool

	phase Phase
	track *anim.Track
	rng   *rand.Rand

	// Non-owning reference, read for targeting only.
	target *Player

	// Active hit window per attack clip name.
	windows map[string]FrameWindow

	attack1Cooldown  Countdown
	attack2Cooldown  Countdown
	ultimateCooldown Countdown
	actionDelay      Countdown
	moveTimer        Countdown
	flash            Countdown
	flashTick        Countdown

	attackActive bool
}

// NewBoss creates the boss at its spawn, facing the arena, with the
// idle action delay armed.
func NewBoss(params BossParams, track *anim.Track, windows map[string]FrameWindow, target *Player, rng *rand.Rand) *Boss {
	b := &Boss{
		BossParams:  params,
		X:           params.SpawnX,
		Y:           params.SpawnY,
		FacingRight: false,
		Health:      params.MaxHealth,
		phase:       PhaseIdle,
		track:       track,
		rng:         rng,
		target:      target,
		windows:     windows,
	}
	track.Play(PhaseIdle.String())
	b.rearmActionDelay()
	return b
}

// Phase returns the current AI phase.
func (b *Boss) Phase() Phase {
	return b.phase
}

// Alive reports whether the boss has not entered its terminal phase.
func (b *Boss) Alive() bool {
	return b.phase != PhaseDead
}

// AttackActive reports whether the attack hitbox is live this tick.
// True only within the active frame window of an attack or ultimate.
func (b *Boss) AttackActive() bool {
	return b.attackActive
}

// Invulnerable reports whether damage is currently ignored: the boss
// cannot be hit mid-action or during its post-hit flash window.
func (b *Boss) Invulnerable() bool {
	return b.phase == PhaseAttack || b.phase == PhaseUltimate ||
		b.phase == PhaseMove || b.flash.Active()
}

// Hitbox returns the bounding box: a static box normally, widened and
// offset toward facing while an attack reaches forward.
func (b *Boss) Hitbox() Rect {
	attacking := b.phase == PhaseAttack || b.phase == PhaseUltimate

	w := b.HitboxW
	x := b.X
	if attacking {
		w = b.AttackHitboxWidth
		dir := -1.0
		if b.FacingRight {
			dir = 1.0
		}
		x += b.HitboxW / 2 * dir
	}

	return Rect{
		X: x - w/2,
		Y: b.Y - b.HitboxH/2 + b.HitboxYOffset,
		W: w,
		H: b.HitboxH,
	}
}

// TakeDamage applies damage unless the boss is invulnerable or dead,
// and starts the post-hit flash. Health reaching zero is terminal.
func (b *Boss) TakeDamage(amount int) {
	if b.Invulnerable() || b.phase == PhaseDead {
		return
	}

	b.Health -= amount
	if b.Health < 0 {
		b.Health = 0
	}
	log.Printf("[boss] took %d damage, health %d/%d", amount, b.Health, b.MaxHealth)

	b.flash.Start(b.FlashDuration)
	b.flashTick.Start(0)
	b.FlashOn = true

	if b.Health == 0 {
		b.Death()
	}
}

// Death forces the terminal Dead phase. Idempotent.
func (b *Boss) Death() {
	if b.phase == PhaseDead {
		return
	}
	b.phase = PhaseDead
	b.track.Play(PhaseDead.String())
	b.Health = 0
	b.VX = 0
	b.attackActive = false
	b.FlashOn = false
}

// AnimationDone reports whether the current (non-looping) clip has
// finished.
func (b *Boss) AnimationDone() bool {
	return b.track.Done()
}

// Update advances the boss by one tick.
func (b *Boss) Update(dt float64) {
	if b.phase == PhaseDead {
		b.track.Advance(dt)
		return
	}

	b.attack1Cooldown.Tick(dt)
	b.attack2Cooldown.Tick(dt)
	b.ultimateCooldown.Tick(dt)
	b.updateFlash(dt)

	b.actionDelay.Tick(dt)
	if b.phase == PhaseIdle && b.actionDelay.Ready() {
		b.chooseNextAction()
	}

	if b.phase == PhaseMove {
		b.handleMovement(dt)
	}

	if b.phase == PhaseAttack || b.phase == PhaseUltimate {
		if b.track.Done() {
			b.setPhase(PhaseIdle)
			b.attackActive = false
			b.rearmActionDelay()
		} else {
			b.updateAttackWindow()
		}
	}

	b.track.Advance(dt)
}

// setPhase is the single transition point for looping phases.
// Attack variants start their clips in perform.
func (b *Boss) setPhase(p Phase) {
	if b.phase == p {
		return
	}
	b.phase = p
	switch p {
	case PhaseIdle:
		b.VX = 0
		b.track.Play(PhaseIdle.String())
	case PhaseMove:
		b.track.Play(PhaseMove.String())
	}
}

// rearmActionDelay restarts the idle delay: base scaled by a uniform
// jitter so the boss's rhythm is not metronomic.
func (b *Boss) rearmActionDelay() {
	jitter := b.ActionDelayJitterMin + b.rng.Float64()*(b.ActionDelayJitterMax-b.ActionDelayJitterMin)
	b.actionDelay.Start(b.ActionDelayBase * jitter)
}

// chooseNextAction picks the next move once the idle delay elapses.
// A ready ultimate always wins; otherwise a uniform pick among the two
// attacks and moving, falling through to re-arming the delay when the
// chosen branch's cooldown is not ready.
func (b *Boss) chooseNextAction() {
	if b.target != nil {
		b.FacingRight = b.target.X > b.X
	}

	if b.ultimateCooldown.Ready() && b.target != nil {
		b.perform(PhaseUltimate, "ultimate", &b.ultimateCooldown, b.UltimateCooldown)
		return
	}

	switch b.rng.Intn(3) {
	case 0:
		if b.attack1Cooldown.Ready() {
			b.perform(PhaseAttack, "attack1", &b.attack1Cooldown, b.Attack1Cooldown)
			return
		}
	case 1:
		if b.attack2Cooldown.Ready() {
			b.perform(PhaseAttack, "attack2", &b.attack2Cooldown, b.Attack2Cooldown)
			return
		}
	case 2:
		if b.startMoving() {
			return
		}
	}
	b.rearmActionDelay()
}

// perform enters an attack phase, plays its one-shot clip and arms the
// cooldown that gates its reuse.
func (b *Boss) perform(phase Phase, clip string, cd *Countdown, cooldown float64) {
	b.phase = phase
	b.VX = 0
	b.track.Play(clip)
	cd.Start(cooldown)
}

// startMoving picks a random direction and duration. Refuses to start
// toward a wall the boss is already within the margin of.
func (b *Boss) startMoving() bool {
	dir := b.rng.Intn(2) // 0 = left, 1 = right

	if dir == 0 && b.X <= b.LeftBoundary+b.BoundaryMargin {
		return false
	}
	if dir == 1 && b.X >= b.RightBoundary-b.BoundaryMargin {
		return false
	}

	b.setPhase(PhaseMove)
	if dir == 0 {
		b.VX = -b.MoveSpeed
		b.FacingRight = false
	} else {
		b.VX = b.MoveSpeed
		b.FacingRight = true
	}
	b.moveTimer.Start(b.MinMoveDuration + b.rng.Float64()*(b.MaxMoveDuration-b.MinMoveDuration))
	return true
}

// handleMovement integrates the walk, clamped inside the margins, and
// returns to idle when the duration elapses.
func (b *Boss) handleMovement(dt float64) {
	b.X += b.VX * dt

	if b.X < b.LeftBoundary+b.BoundaryMargin {
		b.X = b.LeftBoundary + b.BoundaryMargin
	}
	if b.X > b.RightBoundary-b.BoundaryMargin {
		b.X = b.RightBoundary - b.BoundaryMargin
	}

	b.moveTimer.Tick(dt)
	if b.moveTimer.Ready() {
		b.setPhase(PhaseIdle)
		b.rearmActionDelay()
	}
}

// updateAttackWindow recomputes the live-hitbox flag from the current
// clip and frame index. The window is a sub-range of the animation so
// hits land only during the visually telegraphed swing.
func (b *Boss) updateAttackWindow() {
	w, ok := b.windows[b.track.Current()]
	frame := b.track.FrameIndex()
	b.attackActive = ok && frame >= w.From && frame <= w.To
}

// updateFlash drives the post-hit tint toggle.
func (b *Boss) updateFlash(dt float64) {
	if !b.flash.Active() {
		return
	}
	b.flash.Tick(dt)
	b.flashTick.Tick(dt)
	if b.flashTick.Ready() {
		b.flashTick.Start(b.FlashInterval)
		b.FlashOn = !b.FlashOn
	}
	if b.flash.Ready() {
		b.FlashOn = false
	}
}

// Render returns the snapshot the renderer consumes.
func (b *Boss) Render() RenderState {
	w, h := b.track.FrameSize()
	return RenderState{
		X:           b.X,
		Y:           b.Y,
		TextureID:   b.track.TextureID(),
		FrameRect:   b.track.FrameRect(),
		FrameW:      w,
		FrameH:      h,
		FacingRight: b.FacingRight,
		FlashOn:     b.FlashOn,
	}
}
