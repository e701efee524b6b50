package scripts

import (
	"GopherWater/internal/behaviour"

	perlin "github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// DriftScript pushes the object around with smooth Perlin noise, like a
// container carried by an unsteady hand. Each axis samples the noise at its
// own offset so the motion stays uncorrelated.
type DriftScript struct {
	behaviour.BaseComponent
	Amplitude float32 // world units of horizontal drift
	Tilt      float32 // degrees of roll and pitch
	Frequency float32 // noise samples per second
	Seed      int64

	noise  *perlin.Perlin
	origin behaviour.TransformSnapshot
	time   float64
}

const (
	driftAlpha  = 2
	driftBeta   = 2
	driftOctave = 3
)

var driftOffsets = [4]float64{0, 17.3, 41.7, 73.1}

func init() {
	behaviour.RegisterScript("DriftScript", func(props map[string]any) behaviour.Component {
		return &DriftScript{
			Amplitude: behaviour.FloatProp(props, "amplitude", 0.5),
			Tilt:      behaviour.FloatProp(props, "tilt", 10.0),
			Frequency: behaviour.FloatProp(props, "frequency", 0.5),
			Seed:      int64(behaviour.FloatProp(props, "seed", 1)),
		}
	})
}

func (d *DriftScript) Start() {
	d.noise = perlin.NewPerlin(driftAlpha, driftBeta, driftOctave, d.Seed)
	d.origin = d.GetGameObject().Transform.Snapshot()
}

func (d *DriftScript) Update(deltaTime float32) {
	if d.noise == nil {
		return
	}
	d.time += float64(deltaTime * d.Frequency)

	t := d.GetGameObject().Transform
	t.Position[0] = d.origin.Position.X() + d.sample(0)*d.Amplitude
	t.Position[2] = d.origin.Position.Z() + d.sample(1)*d.Amplitude
	t.Rotation = d.origin.Rotation.Add(mgl32.Vec3{
		d.sample(2) * d.Tilt,
		0,
		d.sample(3) * d.Tilt,
	})
}

func (d *DriftScript) sample(axis int) float32 {
	return mgl32.Clamp(float32(d.noise.Noise1D(d.time+driftOffsets[axis])), -1, 1)
}
