package main

import "github.com/charmbracelet/harmonica"

// Spin velocity decays on a critically damped 4 Hz spring.
const (
	spinFrequency = 4.0
	spinDamping   = 1.0
)

// spinAxis is one rotation angle whose angular velocity eases back to zero.
type spinAxis struct {
	angle    float64
	velocity float64
	spring   harmonica.Spring
	accel    float64
}

func newSpinAxis(fps int) spinAxis {
	return spinAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), spinFrequency, spinDamping)}
}

// step advances the angle by one frame and damps the velocity.
func (a *spinAxis) step() {
	a.angle += a.velocity
	a.velocity, a.accel = a.spring.Update(a.velocity, a.accel, 0)
}

// spinState is the preview's pitch (about X) and yaw (about Y).
type spinState struct {
	pitch, yaw spinAxis
	fps        int
}

func newSpinState(fps int) *spinState {
	return &spinState{pitch: newSpinAxis(fps), yaw: newSpinAxis(fps), fps: fps}
}

// step advances both axes by one frame.
func (s *spinState) step() {
	s.pitch.step()
	s.yaw.step()
}

// push adds angular velocity in radians per frame.
func (s *spinState) push(pitch, yaw float64) {
	s.pitch.velocity += pitch
	s.yaw.velocity += yaw
}

// reset returns both axes to rest at angle zero.
func (s *spinState) reset() {
	s.pitch = newSpinAxis(s.fps)
	s.yaw = newSpinAxis(s.fps)
}
