package water

import (
	"math"

	"GopherWater/internal/behaviour"
	"GopherWater/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinDeltaTime floors the frame time used to derive velocity.
	MinDeltaTime float32 = 1e-6

	// angularInfluence scales Euler-degree deltas relative to linear velocity.
	angularInfluence float32 = 0.5

	settleInterval     float32 = 0.01
	settleThresholdSqr float32 = 0.001
)

// Params are the tunable wobble settings.
type Params struct {
	MaxAngle      float32 // degrees, 0-90, forwarded to the shader as-is
	MaxWobble     float32 // bound on each frame's tilt contribution per axis
	WobbleSpeed   float32 // oscillation frequency in Hz
	RecoverySpeed float32 // fraction of the accumulated tilt removed per second
	WrapAngles    bool    // wrap Euler deltas into (-180, 180]
}

// DefaultParams returns the settings used when nothing is configured.
func DefaultParams() Params {
	return Params{
		MaxAngle:      90,
		MaxWobble:     0.03,
		WobbleSpeed:   1,
		RecoverySpeed: 1,
	}
}

// WobbleState is the per-instance integrator state. Only X and Z of the
// accumulator are ever driven.
type WobbleState struct {
	LastPosition      mgl32.Vec3
	LastRotation      mgl32.Vec3
	Velocity          mgl32.Vec3
	AngularVelocity   mgl32.Vec3
	WobbleAmount      mgl32.Vec3
	WobbleAmountToAdd mgl32.Vec3
	WobbleTimer       float32
	LastWobbleTime    float32
	Active            bool
}

// NewWobbleState starts an inactive integrator at rest at transform t.
func NewWobbleState(t behaviour.TransformSnapshot) WobbleState {
	return WobbleState{
		LastPosition: t.Position,
		LastRotation: t.Rotation,
	}
}

// Intensity is the accumulated tilt magnitude clamped to [0, 1].
func (s *WobbleState) Intensity() float32 {
	return mgl32.Clamp(s.WobbleAmountToAdd.Len(), 0, 1)
}

// Uniform packs the current wobble for the shader as (x, y, z, intensity).
func (s *WobbleState) Uniform() mgl32.Vec4 {
	return s.WobbleAmount.Vec4(s.Intensity())
}

// Step advances the integrator by one frame of length deltaTime with the
// parent at transform t, and returns the oscillating tilt and its intensity.
//
// Velocity is last minus current position, so it points against the motion.
// Angular velocity is the raw Euler difference unless p.WrapAngles is set.
// Non-finite or negative deltaTime counts as zero; velocity divides by at
// least MinDeltaTime.
func Step(s *WobbleState, t behaviour.TransformSnapshot, deltaTime float32, p Params) (mgl32.Vec3, float32) {
	dt := deltaTime
	if !(dt >= 0) || math.IsInf(float64(dt), 1) {
		dt = 0
	}

	s.WobbleTimer += dt

	decay := mgl32.Clamp(dt*p.RecoverySpeed, 0, 1)
	s.WobbleAmountToAdd = s.WobbleAmountToAdd.Mul(1 - decay)

	phase := 2 * math.Pi * float64(p.WobbleSpeed) * float64(s.WobbleTimer)
	s.WobbleAmount = s.WobbleAmountToAdd.Mul(float32(math.Sin(phase)))

	velocityDt := dt
	if velocityDt < MinDeltaTime {
		velocityDt = MinDeltaTime
	}
	s.Velocity = s.LastPosition.Sub(t.Position).Mul(1 / velocityDt)

	s.AngularVelocity = t.Rotation.Sub(s.LastRotation)
	if p.WrapAngles {
		for i := range s.AngularVelocity {
			s.AngularVelocity[i] = renderer.WrapAngle(s.AngularVelocity[i])
		}
	}

	mw := p.MaxWobble
	addX := mgl32.Clamp((s.Velocity.Z()+s.AngularVelocity.X()*angularInfluence)*mw, -mw, mw)
	addZ := mgl32.Clamp((s.Velocity.X()+s.AngularVelocity.Z()*angularInfluence)*mw, -mw, mw)
	s.WobbleAmountToAdd[0] += addX
	s.WobbleAmountToAdd[2] += addZ

	s.LastPosition = t.Position
	s.LastRotation = t.Rotation

	if s.WobbleTimer-s.LastWobbleTime > settleInterval && s.WobbleAmountToAdd.LenSqr() < settleThresholdSqr {
		s.LastWobbleTime = s.WobbleTimer
		s.Active = false
		s.WobbleAmount = mgl32.Vec3{}
		s.WobbleAmountToAdd = mgl32.Vec3{}
	}

	return s.WobbleAmount, s.Intensity()
}
