package entity

import (
	"log"
	"math"
	"math/rand"

	"github.com/krefel/bossfight/internal/domain/anim"
)

// ActionState is the player's mutually exclusive behavior mode.
// Exactly one is active at any instant; all legality checks derive
// from it rather than from the animation system.
type ActionState int

const (
	ActionIdle ActionState = iota
	ActionRun
	ActionJump
	ActionAttack1
	ActionAttack2
	ActionAttack3
	ActionDash
	ActionParry
	ActionHurt
	ActionDead
)

// String returns the action state name, which doubles as the
// animation clip key.
func (s ActionState) String() string {
	switch s {
	case ActionIdle:
		return "idle"
	case ActionRun:
		return "run"
	case ActionJump:
		return "jump"
	case ActionAttack1:
		return "attack1"
	case ActionAttack2:
		return "attack2"
	case ActionAttack3:
		return "attack3"
	case ActionDash:
		return "dash"
	case ActionParry:
		return "parry"
	case ActionHurt:
		return "hurt"
	case ActionDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Attacking reports whether the state is one of the three attack variants.
func (s ActionState) Attacking() bool {
	return s == ActionAttack1 || s == ActionAttack2 || s == ActionAttack3
}

// uninterruptible actions hold until their animation finishes.
func (s ActionState) uninterruptible() bool {
	return s.Attacking() || s == ActionDash || s == ActionParry
}

// PlayerParams is the player tuning, mapped from config at scene setup.
type PlayerParams struct {
	MaxHealth    int
	MoveSpeed    float64
	RunThreshold float64
	JumpForce    float64
	Gravity      float64
	SpawnX       float64
	SpawnY       float64
	HitboxW      float64
	HitboxH      float64

	DashSpeed    float64
	DashDuration float64
	DashCooldown float64

	AttackCooldown float64

	ParryCooldown float64
	ParryWindow   float64

	HurtDuration  float64
	FlashInterval float64
	KnockbackX    float64
	KnockbackY    float64

	GroundLevel  float64
	LeftBoundary float64
}

// Player is the player actor: position, velocity, health, its
// animation track and the action state machine.
type Player struct {
	PlayerParams

	X, Y   float64
	VX, VY float64

	FacingRight bool
	OnGround    bool
	Health      int
	FlashOn     bool

	state ActionState
	track *anim.Track
	rng   *rand.Rand

	dashTimer      Countdown // dash duration
	dashCooldown   Countdown
	attackCooldown Countdown
	parryCooldown  Countdown
	parryWindow    Countdown // incoming damage nullified while active
	hurtTimer      Countdown
	flashTick      Countdown // hurt tint toggle interval
	canDash        bool

	rightBoundary float64 // dynamic, tracks the boss's left edge
}

// NewPlayer creates the player at its spawn with full health.
func NewPlayer(params PlayerParams, track *anim.Track, rng *rand.Rand) *Player {
	p := &Player{
		PlayerParams:  params,
		X:             params.SpawnX,
		Y:             params.SpawnY,
		FacingRight:   true,
		OnGround:      true,
		Health:        params.MaxHealth,
		state:         ActionIdle,
		track:         track,
		rng:           rng,
		canDash:       true,
		rightBoundary: math.Inf(1),
	}
	track.Play(ActionIdle.String())
	return p
}

// State returns the current action state.
func (p *Player) State() ActionState {
	return p.state
}

// Alive reports whether health is above zero.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// ParryProtected reports whether incoming damage is nullified: the
// parry success window (which can outlast the parry animation), the
// parry pose itself, or dash i-frames.
func (p *Player) ParryProtected() bool {
	return p.parryWindow.Active() || p.state == ActionParry || p.state == ActionDash
}

// SetRightBoundary sets the dynamic right wall, supplied each tick by
// combat resolution so the player cannot walk through the boss.
func (p *Player) SetRightBoundary(b float64) {
	p.rightBoundary = b
}

// Hitbox returns the player's bounding box, centered on position.
func (p *Player) Hitbox() Rect {
	return Rect{
		X: p.X - p.HitboxW/2,
		Y: p.Y - p.HitboxH/2,
		W: p.HitboxW,
		H: p.HitboxH,
	}
}

// setState is the single transition point: it swaps the state and
// starts the matching clip. Re-entering the same state is a no-op so
// non-looping clips are not restarted mid-action.
func (p *Player) setState(s ActionState) {
	if p.state == s {
		return
	}
	p.state = s
	p.track.Play(s.String())
}

// Move sets horizontal velocity from held input (-1, 0, +1). Ignored
// while hurt, dead or dashing; ground-locked actions pin velocity to
// zero instead.
func (p *Player) Move(dir float64) {
	if p.state == ActionHurt || p.state == ActionDead {
		return
	}
	if p.state == ActionDash || p.dashTimer.Active() {
		return
	}
	if p.OnGround && (p.state.Attacking() || p.state == ActionParry) {
		p.VX = 0
		return
	}
	switch {
	case dir > 0:
		p.VX = p.MoveSpeed
	case dir < 0:
		p.VX = -p.MoveSpeed
	default:
		p.VX = 0
	}
}

// Jump launches upward. Legal only when grounded and not in the middle
// of an attack, dash or parry.
func (p *Player) Jump() {
	if p.state == ActionHurt || p.state == ActionDead {
		return
	}
	if !p.OnGround || p.state.Attacking() || p.state == ActionDash || p.state == ActionParry {
		return
	}
	p.VY = -p.JumpForce
	p.OnGround = false
}

// Attack starts one of the three attack variants, picked uniformly at
// random, and arms the attack cooldown.
func (p *Player) Attack() {
	if p.state == ActionHurt || p.state == ActionDead {
		return
	}
	if !p.attackCooldown.Ready() || p.state.Attacking() || p.state == ActionDash || p.state == ActionParry {
		return
	}
	p.setState(ActionAttack1 + ActionState(p.rng.Intn(3)))
	p.attackCooldown.Start(p.AttackCooldown)
	if p.OnGround {
		p.VX = 0
	}
}

// Dash bursts horizontally in the facing direction with i-frames for
// its duration. Consumes the dash charge until the cooldown elapses on
// the ground.
func (p *Player) Dash() {
	if p.state == ActionHurt || p.state == ActionDead {
		return
	}
	if !p.canDash || p.dashTimer.Active() || p.state.Attacking() || p.state == ActionParry {
		return
	}
	if p.FacingRight {
		p.VX = p.DashSpeed
	} else {
		p.VX = -p.DashSpeed
	}
	p.VY = 0
	p.dashTimer.Start(p.DashDuration)
	p.canDash = false
	p.dashCooldown.Start(p.DashCooldown)
	p.setState(ActionDash)
}

// Parry opens the success window during which incoming damage is
// nullified, independent of the parry animation's length.
func (p *Player) Parry() {
	if p.state == ActionHurt || p.state == ActionDead {
		return
	}
	if !p.parryCooldown.Ready() || p.state.Attacking() || p.state == ActionDash || p.dashTimer.Active() {
		return
	}
	p.setState(ActionParry)
	p.parryCooldown.Start(p.ParryCooldown)
	p.parryWindow.Start(p.ParryWindow)
	if p.OnGround {
		p.VX = 0
	}
}

// TakeDamage applies damage with a non-stacking hurt stun and a
// knockback impulse away from the boss side. Health reaching zero is
// terminal in the same call.
func (p *Player) TakeDamage(amount int) {
	if !p.Alive() || p.state == ActionDead || p.state == ActionHurt {
		return
	}

	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	log.Printf("[player] took %d damage, health %d/%d", amount, p.Health, p.MaxHealth)

	if !p.Alive() {
		p.Death()
		return
	}

	p.setState(ActionHurt)
	p.hurtTimer.Start(p.HurtDuration)
	p.flashTick.Start(0) // flash starts immediately
	p.FlashOn = true
	p.VX = -p.KnockbackX // boss occupies the right side of the arena
	p.VY = p.KnockbackY
	p.OnGround = false
}

// Death forces the terminal Dead state. Idempotent.
func (p *Player) Death() {
	if p.state == ActionDead {
		return
	}
	p.setState(ActionDead)
	p.Health = 0
	p.VX = 0
	p.VY = 0
	p.OnGround = true
	p.FlashOn = false
}

// AnimationDone reports whether the current (non-looping) clip has
// finished. Used by the scene to time end-of-fight transitions.
func (p *Player) AnimationDone() bool {
	return p.track.Done()
}

// Update advances the player by one tick: physics, state selection,
// animation and timers.
func (p *Player) Update(dt float64) {
	if p.state == ActionDead {
		p.track.Advance(dt)
		return
	}

	if p.state == ActionHurt {
		p.hurtTimer.Tick(dt)
		p.flashTick.Tick(dt)
		if p.flashTick.Ready() {
			p.flashTick.Start(p.FlashInterval)
			p.FlashOn = !p.FlashOn
		}
		if p.hurtTimer.Active() {
			// Knockback physics applies while input is ignored.
			p.integrate(dt)
			p.track.Advance(dt)
			return
		}
		p.FlashOn = false
		p.VX = 0
		if p.OnGround {
			p.state = ActionIdle
		} else {
			p.state = ActionJump
		}
		p.track.Play(p.state.String())
	}

	p.integrate(dt)
	p.updateFacing()
	p.selectAnimation()
	p.track.Advance(dt)
	p.tickTimers(dt)
}

// integrate applies gravity (skipped while dashing), moves, and
// resolves the ground plane and both arena walls.
func (p *Player) integrate(dt float64) {
	if p.state != ActionDash && !p.dashTimer.Active() {
		p.VY += p.Gravity * dt
	}

	nx := p.X + p.VX*dt
	ny := p.Y + p.VY*dt

	if ny >= p.GroundLevel {
		ny = p.GroundLevel
		if p.VY > 0 {
			p.VY = 0
			p.OnGround = true
			if p.dashCooldown.Ready() {
				p.canDash = true
			}
		}
	} else if math.Abs(p.VY) > 0.1 {
		p.OnGround = false
	}

	if nx < p.LeftBoundary {
		nx = p.LeftBoundary
		if p.VX < 0 {
			p.VX = 0
		}
	}
	if nx > p.rightBoundary {
		nx = p.rightBoundary
		if p.VX > 0 {
			p.VX = 0
		}
	}

	p.X = nx
	p.Y = ny
}

// updateFacing flips toward movement, suppressed mid-action so the
// sprite cannot turn around during a swing.
func (p *Player) updateFacing() {
	if p.state.uninterruptible() || p.dashTimer.Active() {
		return
	}
	if p.VX > 1 {
		p.FacingRight = true
	} else if p.VX < -1 {
		p.FacingRight = false
	}
}

// selectAnimation drives the state machine's fallthrough rules:
// uninterruptible actions hold until their clip reports done, then
// revert to idle/jump; otherwise the state follows movement.
func (p *Player) selectAnimation() {
	if p.state.uninterruptible() {
		if !p.track.Done() {
			return
		}
		if p.state == ActionDash {
			// Dash momentum stops with the burst; held input re-applies
			// velocity on the next tick.
			p.VX = 0
		}
		if p.OnGround {
			p.setState(ActionIdle)
		} else {
			p.setState(ActionJump)
		}
		return
	}

	if !p.OnGround {
		p.setState(ActionJump)
		return
	}
	if math.Abs(p.VX) > p.RunThreshold {
		p.setState(ActionRun)
	} else {
		p.setState(ActionIdle)
	}
}

func (p *Player) tickTimers(dt float64) {
	p.dashTimer.Tick(dt)
	p.dashCooldown.Tick(dt)
	p.attackCooldown.Tick(dt)
	p.parryCooldown.Tick(dt)
	p.parryWindow.Tick(dt)

	if p.OnGround && p.dashCooldown.Ready() {
		p.canDash = true
	}
}

// Render returns the snapshot the renderer consumes.
func (p *Player) Render() RenderState {
	w, h := p.track.FrameSize()
	return RenderState{
		X:           p.X,
		Y:           p.Y,
		TextureID:   p.track.TextureID(),
		FrameRect:   p.track.FrameRect(),
		FrameW:      w,
		FrameH:      h,
		FacingRight: p.FacingRight,
		FlashOn:     p.FlashOn,
	}
}
