package sim

import "github.com/vovakirdan/pixel-dash/internal/core"

// updateCamera eases the camera toward centering the player, a fixed fraction
// of the remaining distance per substep, then clamps it to the level.
func updateCamera(s *Session) {
	t := &s.tuning
	target := s.Player.Rect().CenterX() - t.ViewportWidth/2
	s.Camera.X += (target - s.Camera.X) * t.CameraLerp
	s.Camera.X = core.ClampF(s.Camera.X, 0, s.cameraMax())
}

// cameraMax is the largest camera offset; zero when the level fits the viewport.
func (s *Session) cameraMax() float64 {
	return max(0, s.level.Grid.Width()-s.tuning.ViewportWidth)
}
