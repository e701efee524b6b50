package scripts

import (
	"GopherWater/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

// RotateScript spins the object at a constant rate in degrees per second
// around each axis.
type RotateScript struct {
	behaviour.BaseComponent
	Speed mgl32.Vec3
}

func init() {
	behaviour.RegisterScript("RotateScript", func(props map[string]any) behaviour.Component {
		return &RotateScript{Speed: mgl32.Vec3{
			behaviour.FloatProp(props, "speed_x", 0),
			behaviour.FloatProp(props, "speed", 45.0),
			behaviour.FloatProp(props, "speed_z", 0),
		}}
	})
}

func (r *RotateScript) Update(deltaTime float32) {
	r.GetGameObject().Transform.Rotate(r.Speed.Mul(deltaTime))
}
