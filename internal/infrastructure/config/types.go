package config

// BalanceConfig is the root config for balance.yaml
type BalanceConfig struct {
	Display DisplayConfig `yaml:"display"`
	Arena   ArenaConfig   `yaml:"arena"`
	Player  PlayerConfig  `yaml:"player"`
	Boss    BossConfig    `yaml:"boss"`
	Combat  CombatConfig  `yaml:"combat"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Framerate    int `yaml:"framerate"`
}

// ArenaConfig describes the flat arena: a ground plane and two walls.
type ArenaConfig struct {
	GroundLevel  float64 `yaml:"groundLevel"`
	LeftBoundary float64 `yaml:"leftBoundary"`
}

type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type PlayerConfig struct {
	MaxHealth    int     `yaml:"maxHealth"`
	MoveSpeed    float64 `yaml:"moveSpeed"`
	RunThreshold float64 `yaml:"runThreshold"`
	JumpForce    float64 `yaml:"jumpForce"`
	Gravity      float64 `yaml:"gravity"`
	Spawn        Vec     `yaml:"spawn"`
	Hitbox       Size    `yaml:"hitbox"`

	Dash           DashConfig  `yaml:"dash"`
	AttackCooldown float64     `yaml:"attackCooldown"`
	Parry          ParryConfig `yaml:"parry"`
	Hurt           HurtConfig  `yaml:"hurt"`
}

type DashConfig struct {
	Speed    float64 `yaml:"speed"`
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
}

type ParryConfig struct {
	Cooldown      float64 `yaml:"cooldown"`
	SuccessWindow float64 `yaml:"successWindow"`
}

type HurtConfig struct {
	Duration      float64 `yaml:"duration"`
	FlashInterval float64 `yaml:"flashInterval"`
	KnockbackX    float64 `yaml:"knockbackX"`
	KnockbackY    float64 `yaml:"knockbackY"`
}

type BossConfig struct {
	MaxHealth       int     `yaml:"maxHealth"`
	MoveSpeed       float64 `yaml:"moveSpeed"`
	MinMoveDuration float64 `yaml:"minMoveDuration"`
	MaxMoveDuration float64 `yaml:"maxMoveDuration"`
	Spawn           Vec     `yaml:"spawn"`

	// Idle delay between actions: base scaled by a uniform jitter.
	ActionDelay ActionDelayConfig `yaml:"actionDelay"`

	Attack1Cooldown  float64 `yaml:"attack1Cooldown"`
	Attack2Cooldown  float64 `yaml:"attack2Cooldown"`
	UltimateCooldown float64 `yaml:"ultimateCooldown"`

	FlashDuration float64 `yaml:"flashDuration"`
	FlashInterval float64 `yaml:"flashInterval"`

	LeftBoundary   float64 `yaml:"leftBoundary"`
	RightBoundary  float64 `yaml:"rightBoundary"`
	BoundaryMargin float64 `yaml:"boundaryMargin"`

	Hitbox            Size    `yaml:"hitbox"`
	HitboxYOffset     float64 `yaml:"hitboxYOffset"`
	AttackHitboxWidth float64 `yaml:"attackHitboxWidth"`
}

type ActionDelayConfig struct {
	Base      float64 `yaml:"base"`
	JitterMin float64 `yaml:"jitterMin"`
	JitterMax float64 `yaml:"jitterMax"`
}

type CombatConfig struct {
	PlayerMeleeDamage int `yaml:"playerMeleeDamage"`
	BossAttackDamage  int `yaml:"bossAttackDamage"`
}

// AnimationsConfig is the root config for animations.yaml
type AnimationsConfig struct {
	Player map[string]ClipConfig `yaml:"player"`
	Boss   map[string]ClipConfig `yaml:"boss"`

	// ActiveWindows maps a boss clip name to the inclusive frame range
	// during which its hitbox deals damage.
	ActiveWindows map[string]WindowConfig `yaml:"activeWindows"`

	// Textures maps symbolic texture ids to asset paths.
	Textures map[string]string `yaml:"textures"`
}

type ClipConfig struct {
	Texture  string  `yaml:"texture"`
	Frames   int     `yaml:"frames"`
	Duration float64 `yaml:"duration"`
	FrameW   int     `yaml:"frameW"`
	FrameH   int     `yaml:"frameH"`
	Loop     bool    `yaml:"loop"`
}

type WindowConfig struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}
