package scripts

import (
	"math"

	"GopherWater/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitScript carries the object on a horizontal circle around the point
// where it started.
type OrbitScript struct {
	behaviour.BaseComponent
	Radius float32
	Speed  float32 // radians per second
	center mgl32.Vec3
	time   float32
}

func init() {
	behaviour.RegisterScript("OrbitScript", func(props map[string]any) behaviour.Component {
		return &OrbitScript{
			Radius: behaviour.FloatProp(props, "radius", 10.0),
			Speed:  behaviour.FloatProp(props, "speed", 1.0),
		}
	})
}

func (o *OrbitScript) Start() {
	o.center = o.GetGameObject().Transform.Position
}

func (o *OrbitScript) Update(deltaTime float32) {
	o.time += deltaTime * o.Speed

	x := float32(math.Cos(float64(o.time))) * o.Radius
	z := float32(math.Sin(float64(o.time))) * o.Radius

	o.GetGameObject().Transform.Position[0] = o.center.X() + x
	o.GetGameObject().Transform.Position[2] = o.center.Z() + z
}
