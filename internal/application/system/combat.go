package system

import (
	"github.com/krefel/bossfight/internal/domain/entity"
	"github.com/krefel/bossfight/internal/infrastructure/config"
)

// CombatSystem resolves the per-tick combat interaction between the
// player and the boss after both actors have updated.
type CombatSystem struct {
	player *entity.Player
	boss   *entity.Boss

	meleeDamage   int
	bossDamage    int
	bossHitboxW   float64
	playerHitboxW float64
}

// NewCombatSystem creates a combat resolver over both actors.
func NewCombatSystem(cfg *config.BalanceConfig, player *entity.Player, boss *entity.Boss) *CombatSystem {
	return &CombatSystem{
		player:        player,
		boss:          boss,
		meleeDamage:   cfg.Combat.PlayerMeleeDamage,
		bossDamage:    cfg.Combat.BossAttackDamage,
		bossHitboxW:   cfg.Boss.Hitbox.W,
		playerHitboxW: cfg.Player.Hitbox.W,
	}
}

// Update runs one resolution pass: player melee against the boss,
// the boss's live attack window against the player, and the player's
// dynamic right boundary.
func (s *CombatSystem) Update() {
	// Player attacks land only while an attack variant is the active
	// state and the player faces the boss. Overlap is evaluated every
	// tick; the boss's post-hit flash window bounds one swing to one
	// hit in practice.
	if s.player.State().Attacking() && s.boss.Alive() && s.playerFacesBoss() {
		if s.player.Hitbox().Overlaps(s.boss.Hitbox()) {
			s.boss.TakeDamage(s.meleeDamage)
		}
	}

	// Boss hits land only within the active frame window of its swing
	// and never through parry or dash protection.
	if s.boss.AttackActive() && s.player.Alive() && !s.player.ParryProtected() {
		if s.boss.Hitbox().Overlaps(s.player.Hitbox()) {
			s.player.TakeDamage(s.bossDamage)
		}
	}

	// The player's right wall tracks the boss so the player cannot
	// walk through it. Allows a third of overlap for melee range.
	bossLeft := s.boss.X - s.bossHitboxW/2
	s.player.SetRightBoundary(bossLeft + s.bossHitboxW/3 - s.playerHitboxW/2)
}

// playerFacesBoss reports whether the player's facing points at the
// boss's side of the arena.
func (s *CombatSystem) playerFacesBoss() bool {
	return (s.boss.X >= s.player.X) == s.player.FacingRight
}
