package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBalanceYAML = `
display:
  screenWidth: 1280
  screenHeight: 720
  framerate: 60
arena:
  groundLevel: 485
  leftBoundary: 25
player:
  maxHealth: 100
  moveSpeed: 300
  jumpForce: 700
  gravity: 1800
  spawn:
    x: 200
    y: 500
  hitbox:
    w: 60
    h: 100
  dash:
    speed: 800
    duration: 0.15
    cooldown: 0.4
  attackCooldown: 0.4
  parry:
    cooldown: 0.8
    successWindow: 0.8
  hurt:
    duration: 0.4
    flashInterval: 0.08
    knockbackX: 60
    knockbackY: -300
boss:
  maxHealth: 1000
  moveSpeed: 120
  spawn:
    x: 950
    y: 385
  actionDelay:
    base: 1.8
    jitterMin: 0.8
    jitterMax: 1.3
  ultimateCooldown: 15
  hitbox:
    w: 150
    h: 200
  attackHitboxWidth: 220
combat:
  playerMeleeDamage: 15
  bossAttackDamage: 5
`

const testAnimationsYAML = `
player:
  idle:
    texture: player_idle
    frames: 8
    duration: 0.2
    frameW: 160
    frameH: 128
    loop: true
boss:
  attack1:
    texture: boss_attack1
    frames: 8
    duration: 0.12
    frameW: 800
    frameH: 800
    loop: false
activeWindows:
  attack1:
    from: 3
    to: 6
textures:
  player_idle: assets/player/Idle.png
  boss_attack1: assets/boss/Attack1.png
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"balance.yaml":    {Data: []byte(testBalanceYAML)},
		"animations.yaml": {Data: []byte(testAnimationsYAML)},
	}
}

func TestLoadBalance(t *testing.T) {
	loader := NewFSLoader(testFS())

	cfg, err := loader.LoadBalance()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 485.0, cfg.Arena.GroundLevel)

	assert.Equal(t, 100, cfg.Player.MaxHealth)
	assert.Equal(t, 800.0, cfg.Player.Dash.Speed)
	assert.Equal(t, 0.8, cfg.Player.Parry.SuccessWindow)
	assert.Equal(t, -300.0, cfg.Player.Hurt.KnockbackY)

	assert.Equal(t, 1000, cfg.Boss.MaxHealth)
	assert.Equal(t, 1.8, cfg.Boss.ActionDelay.Base)
	assert.Equal(t, 220.0, cfg.Boss.AttackHitboxWidth)

	assert.Equal(t, 15, cfg.Combat.PlayerMeleeDamage)
	assert.Equal(t, 5, cfg.Combat.BossAttackDamage)
}

func TestLoadAnimations(t *testing.T) {
	loader := NewFSLoader(testFS())

	cfg, err := loader.LoadAnimations()
	require.NoError(t, err)

	idle, ok := cfg.Player["idle"]
	require.True(t, ok)
	assert.Equal(t, "player_idle", idle.Texture)
	assert.Equal(t, 8, idle.Frames)
	assert.True(t, idle.Loop)

	attack1, ok := cfg.Boss["attack1"]
	require.True(t, ok)
	assert.False(t, attack1.Loop)
	assert.Equal(t, 800, attack1.FrameW)

	window, ok := cfg.ActiveWindows["attack1"]
	require.True(t, ok)
	assert.Equal(t, 3, window.From)
	assert.Equal(t, 6, window.To)

	assert.Equal(t, "assets/player/Idle.png", cfg.Textures["player_idle"])
}

func TestLoadAll(t *testing.T) {
	loader := NewFSLoader(testFS())

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Balance)
	assert.NotNil(t, cfg.Animations)
}

func TestLoadBalance_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{})

	_, err := loader.LoadBalance()
	assert.Error(t, err)
}

func TestLoadBalance_InvalidYAML(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{
		"balance.yaml": {Data: []byte("display: [not a mapping")},
	})

	_, err := loader.LoadBalance()
	assert.Error(t, err)
}
