package water

import (
	"math"
	"testing"

	"GopherWater/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(pos, rot mgl32.Vec3) behaviour.TransformSnapshot {
	return behaviour.TransformSnapshot{Position: pos, Rotation: rot, Scale: mgl32.Vec3{1, 1, 1}}
}

func finite(v ...float32) bool {
	for _, f := range v {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return false
		}
	}
	return true
}

func TestNewWobbleStateStartsAtRest(t *testing.T) {
	snap := at(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{10, 20, 30})

	s := NewWobbleState(snap)

	assert.Equal(t, snap.Position, s.LastPosition)
	assert.Equal(t, snap.Rotation, s.LastRotation)
	assert.False(t, s.Active)
	assert.Equal(t, mgl32.Vec4{}, s.Uniform())
}

func TestWobbleDecaysAndSettles(t *testing.T) {
	snap := at(mgl32.Vec3{}, mgl32.Vec3{})
	s := NewWobbleState(snap)
	s.Active = true
	s.WobbleAmountToAdd = mgl32.Vec3{0.05, 0, 0.05}
	p := Params{MaxWobble: 0.1, WobbleSpeed: 1, RecoverySpeed: 1}
	const dt = 0.016

	settled := false
	for frame := 0; frame < 500; frame++ {
		prev := s.WobbleAmountToAdd.Len()
		Step(&s, snap, dt, p)

		if !s.Active {
			decayed := prev * (1 - dt*p.RecoverySpeed)
			assert.Less(t, decayed*decayed, settleThresholdSqr, "settled above threshold at frame %d", frame)
			assert.Greater(t, s.WobbleTimer, settleInterval)
			assert.Equal(t, s.WobbleTimer, s.LastWobbleTime)
			assert.Equal(t, mgl32.Vec3{}, s.WobbleAmountToAdd)
			assert.Equal(t, mgl32.Vec3{}, s.WobbleAmount)
			settled = true
			break
		}
		require.Less(t, s.WobbleAmountToAdd.Len(), prev, "magnitude must strictly decrease at frame %d", frame)
		require.GreaterOrEqual(t, s.WobbleAmountToAdd.LenSqr(), settleThresholdSqr)
	}
	assert.True(t, settled, "wobble never settled")
}

func TestWobbleRecoveryOvershootSnapsToZero(t *testing.T) {
	snap := at(mgl32.Vec3{}, mgl32.Vec3{})
	s := NewWobbleState(snap)
	s.Active = true
	s.WobbleAmountToAdd = mgl32.Vec3{0.02, 0, -0.02}

	amount, intensity := Step(&s, snap, 0.5, Params{MaxWobble: 0.03, WobbleSpeed: 1, RecoverySpeed: 5})

	assert.Equal(t, mgl32.Vec3{}, amount)
	assert.Zero(t, intensity)
	assert.False(t, s.Active)
}

func TestWobbleOscillation(t *testing.T) {
	snap := at(mgl32.Vec3{}, mgl32.Vec3{})
	s := NewWobbleState(snap)
	s.WobbleAmountToAdd = mgl32.Vec3{0.2, 0, 0}

	amount, intensity := Step(&s, snap, 0.25, Params{MaxWobble: 1, WobbleSpeed: 1, RecoverySpeed: 0})

	// timer 0.25 at 1 Hz is a quarter period: sin = 1
	assert.InDelta(t, 0.2, amount.X(), eps)
	assert.InDelta(t, 0.2, intensity, eps)
	assert.InDelta(t, 0.2, s.Uniform().W(), eps)
}

func TestWobbleStepFromRestIsClamped(t *testing.T) {
	p := Params{MaxWobble: 0.03, WobbleSpeed: 1, RecoverySpeed: 1}
	s := NewWobbleState(at(mgl32.Vec3{}, mgl32.Vec3{}))

	Step(&s, at(mgl32.Vec3{1e4, 0, 1e4}, mgl32.Vec3{500, 0, 500}), 0.016, p)

	assert.InDelta(t, -p.MaxWobble, s.WobbleAmountToAdd.X(), eps)
	assert.InDelta(t, -p.MaxWobble, s.WobbleAmountToAdd.Z(), eps)
}

func TestWobbleAccumulatesAcrossFrames(t *testing.T) {
	p := Params{MaxWobble: 0.03, WobbleSpeed: 1, RecoverySpeed: 1}
	s := NewWobbleState(at(mgl32.Vec3{}, mgl32.Vec3{}))

	Step(&s, at(mgl32.Vec3{1e4, 0, 1e4}, mgl32.Vec3{}), 0.016, p)
	Step(&s, at(mgl32.Vec3{2e4, 0, 2e4}, mgl32.Vec3{}), 0.016, p)

	// only each frame's contribution is clamped, the total keeps growing
	want := -p.MaxWobble*(1-0.016) - p.MaxWobble
	assert.InDelta(t, want, s.WobbleAmountToAdd.X(), eps)
	assert.InDelta(t, want, s.WobbleAmountToAdd.Z(), eps)
	assert.Greater(t, s.WobbleAmountToAdd.LenSqr(), settleThresholdSqr)
}

func TestWobbleSustainedMotionSaturatesIntensity(t *testing.T) {
	p := DefaultParams()
	s := NewWobbleState(at(mgl32.Vec3{}, mgl32.Vec3{}))
	const dt = 0.02

	// 2 m/s diagonally in the XZ plane saturates every frame's contribution
	var pos mgl32.Vec3
	var intensity float32
	for frame := 0; frame < 200; frame++ {
		pos = pos.Add(mgl32.Vec3{2 * dt, 0, 2 * dt})
		_, intensity = Step(&s, at(pos, mgl32.Vec3{}), dt, p)
	}

	// steady state of toAdd*(1-dt) - mw is -mw/dt = -1.5
	assert.InDelta(t, -1.4736, s.WobbleAmountToAdd.X(), 1e-3)
	assert.InDelta(t, -1.4736, s.WobbleAmountToAdd.Z(), 1e-3)
	assert.Equal(t, float32(1), intensity)
}

func TestWobbleVelocityOpposesDisplacement(t *testing.T) {
	p := Params{MaxWobble: 0.1, WobbleSpeed: 1, RecoverySpeed: 0}
	s := NewWobbleState(at(mgl32.Vec3{}, mgl32.Vec3{}))

	Step(&s, at(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}), 0.1, p)

	assert.InDelta(t, -10, s.Velocity.X(), eps)
	assert.InDelta(t, -0.1, s.WobbleAmountToAdd.Z(), eps, "moving +X tilts toward -Z")
	assert.Zero(t, s.WobbleAmountToAdd.X())
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, s.LastPosition)
}

func TestWobbleVerticalMotionDoesNotTilt(t *testing.T) {
	p := Params{MaxWobble: 0.1, WobbleSpeed: 1, RecoverySpeed: 0}
	s := NewWobbleState(at(mgl32.Vec3{}, mgl32.Vec3{}))

	Step(&s, at(mgl32.Vec3{0, 50, 0}, mgl32.Vec3{0, 90, 0}), 0.016, p)

	assert.Equal(t, mgl32.Vec3{}, s.WobbleAmountToAdd)
}

func TestWobbleAngularVelocity(t *testing.T) {
	p := Params{MaxWobble: 1, WobbleSpeed: 1, RecoverySpeed: 0}
	s := NewWobbleState(at(mgl32.Vec3{}, mgl32.Vec3{}))

	Step(&s, at(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}), 1, p)

	assert.InDelta(t, 1, s.AngularVelocity.X(), eps)
	assert.InDelta(t, 0.5, s.WobbleAmountToAdd.X(), eps)
}

func TestWobbleEulerWraparound(t *testing.T) {
	p := Params{MaxWobble: 0.5, WobbleSpeed: 1, RecoverySpeed: 0}

	raw := NewWobbleState(at(mgl32.Vec3{}, mgl32.Vec3{359, 0, 0}))
	Step(&raw, at(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}), 1, p)
	assert.InDelta(t, -358, raw.AngularVelocity.X(), eps, "raw Euler difference is kept")
	assert.InDelta(t, -0.5, raw.WobbleAmountToAdd.X(), eps)

	p.WrapAngles = true
	wrapped := NewWobbleState(at(mgl32.Vec3{}, mgl32.Vec3{359, 0, 0}))
	Step(&wrapped, at(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}), 1, p)
	assert.InDelta(t, 2, wrapped.AngularVelocity.X(), eps)
	assert.InDelta(t, 0.5, wrapped.WobbleAmountToAdd.X(), eps)
}

func TestWobbleZeroDeltaTime(t *testing.T) {
	p := Params{MaxWobble: 0.03, WobbleSpeed: 1, RecoverySpeed: 1}

	for _, dt := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1))} {
		s := NewWobbleState(at(mgl32.Vec3{}, mgl32.Vec3{}))

		amount, intensity := Step(&s, at(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}), dt, p)

		assert.True(t, finite(amount[0], amount[1], amount[2], intensity), "dt=%v", dt)
		assert.True(t, finite(s.Velocity[0], s.Velocity[1], s.Velocity[2]), "dt=%v", dt)
		assert.Zero(t, s.WobbleTimer, "dt=%v", dt)
		assert.InDelta(t, -p.MaxWobble, s.WobbleAmountToAdd.Z(), eps, "dt=%v", dt)
	}
}

func TestWobbleIntensityClamped(t *testing.T) {
	s := WobbleState{WobbleAmountToAdd: mgl32.Vec3{3, 0, 4}}

	assert.Equal(t, float32(1), s.Intensity())
}

func abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}
