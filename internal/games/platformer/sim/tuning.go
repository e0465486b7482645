package sim

import "fmt"

// Tuning holds every numeric constant the simulation uses. Distances are world
// units, times are seconds, speeds are units per second.
type Tuning struct {
	PlayerSpeed      float64
	Gravity          float64
	JumpSpeed        float64 // negative: up
	TerminalVelocity float64
	CoyoteTime       float64
	JumpBuffer       float64
	JumpCutThreshold float64 // fraction of JumpSpeed below which a released jump is damped
	JumpCutFactor    float64
	PlayerWidth      float64
	PlayerHeight     float64

	EnemySpeed  float64
	EnemyWidth  float64
	EnemyHeight float64
	StompBounce float64 // fraction of JumpSpeed applied on a stomp
	StompScore  int

	CoinSize  float64
	CoinScore int

	DeathDuration float64
	FallMargin    float64

	CameraLerp    float64
	ViewportWidth float64

	FixedStep    float64
	MaxSubsteps  int
	MaxFrameTime float64
}

// DefaultTuning returns the stock constants of Pixel Dash.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:      150,
		Gravity:          1500,
		JumpSpeed:        -420,
		TerminalVelocity: 600,
		CoyoteTime:       0.083,
		JumpBuffer:       0.083,
		JumpCutThreshold: 0.4,
		JumpCutFactor:    0.5,
		PlayerWidth:      20,
		PlayerHeight:     28,

		EnemySpeed:  40,
		EnemyWidth:  28,
		EnemyHeight: 20,
		StompBounce: 0.6,
		StompScore:  5,

		CoinSize:  16,
		CoinScore: 1,

		DeathDuration: 1.0,
		FallMargin:    50,

		CameraLerp:    0.1,
		ViewportWidth: 480,

		FixedStep:    1.0 / 60.0,
		MaxSubsteps:  5,
		MaxFrameTime: 0.25,
	}
}

// Validate rejects tunings that would make the simulation ill-defined.
func (t Tuning) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{t.FixedStep > 0, "fixed step must be positive"},
		{t.MaxSubsteps > 0, "max substeps must be positive"},
		{t.JumpSpeed < 0, "jump speed must be negative (upward)"},
		{t.Gravity >= 0, "gravity must not be negative"},
		{t.TerminalVelocity > 0, "terminal velocity must be positive"},
		{t.PlayerWidth > 0 && t.PlayerHeight > 0, "player size must be positive"},
		{t.EnemyWidth > 0 && t.EnemyHeight > 0, "enemy size must be positive"},
		{t.CoinSize > 0, "coin size must be positive"},
		{t.DeathDuration > 0, "death duration must be positive"},
		{t.CameraLerp > 0 && t.CameraLerp <= 1, "camera lerp must be in (0, 1]"},
		{t.ViewportWidth > 0, "viewport width must be positive"},
	}
	for _, c := range checks {
		if !c.ok {
			return ValidationError{Code: CodeBadTuning, Message: c.what}
		}
	}
	if t.CoyoteTime < 0 || t.JumpBuffer < 0 {
		return ValidationError{
			Code:    CodeBadTuning,
			Message: fmt.Sprintf("coyote %g / buffer %g must not be negative", t.CoyoteTime, t.JumpBuffer),
		}
	}
	return nil
}
