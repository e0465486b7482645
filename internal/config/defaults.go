package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the stock Pixel Dash tuning.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:          1500,
			JumpSpeed:        -420,
			TerminalVelocity: 600,
			JumpCutThreshold: 0.4,
			JumpCutFactor:    0.5,
		},
		Player: PlayerConfig{
			Speed:      150,
			Width:      20,
			Height:     28,
			CoyoteTime: 0.083,
			JumpBuffer: 0.083,
		},
		Enemy: EnemyConfig{
			Speed:       40,
			Width:       28,
			Height:      20,
			StompBounce: 0.6,
		},
		Coin: CoinConfig{
			Size: 16,
		},
		Scoring: ScoringConfig{
			Coin:  1,
			Stomp: 5,
		},
		Camera: CameraConfig{
			Lerp:          0.1,
			ViewportWidth: 480,
		},
		Timing: TimingConfig{
			FixedStep:     1.0 / 60.0,
			MaxSubsteps:   5,
			MaxFrameTime:  0.25,
			DeathDuration: 1.0,
			FallMargin:    50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML, e.g. for `config dump`.
func GetDefaultYAML() []byte {
	return defaultPlatformerYAML
}
