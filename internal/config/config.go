// Package config provides YAML-based tuning configuration for the platformer
// and the difficulty presets applied on top of it.
package config

// PlatformerConfig contains every tunable constant of the platformer.
// Distances are world units (a tile is 32), times are seconds.
type PlatformerConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Coin    CoinConfig    `yaml:"coin"`
	Scoring ScoringConfig `yaml:"scoring"`
	Camera  CameraConfig  `yaml:"camera"`
	Timing  TimingConfig  `yaml:"timing"`
}

// PhysicsConfig defines gravity and jump shaping.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	JumpSpeed        float64 `yaml:"jump_speed"` // negative is up
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	JumpCutThreshold float64 `yaml:"jump_cut_threshold"` // fraction of jump_speed
	JumpCutFactor    float64 `yaml:"jump_cut_factor"`
}

// PlayerConfig defines the player body and jump assists.
type PlayerConfig struct {
	Speed      float64 `yaml:"speed"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CoyoteTime float64 `yaml:"coyote_time"`
	JumpBuffer float64 `yaml:"jump_buffer"`
}

// EnemyConfig defines patrolling enemies.
type EnemyConfig struct {
	Speed       float64 `yaml:"speed"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StompBounce float64 `yaml:"stomp_bounce"` // fraction of jump_speed
}

// CoinConfig defines pickups.
type CoinConfig struct {
	Size float64 `yaml:"size"`
}

// ScoringConfig defines points per action.
type ScoringConfig struct {
	Coin  int `yaml:"coin"`
	Stomp int `yaml:"stomp"`
}

// CameraConfig defines the follow camera.
type CameraConfig struct {
	Lerp          float64 `yaml:"lerp"`
	ViewportWidth float64 `yaml:"viewport_width"`
}

// TimingConfig defines the fixed-step clock and death sequence.
type TimingConfig struct {
	FixedStep     float64 `yaml:"fixed_step"`
	MaxSubsteps   int     `yaml:"max_substeps"`
	MaxFrameTime  float64 `yaml:"max_frame_time"`
	DeathDuration float64 `yaml:"death_duration"`
	FallMargin    float64 `yaml:"fall_margin"`
}
