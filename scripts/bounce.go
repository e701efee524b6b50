package scripts

import (
	"math"

	"GopherWater/internal/behaviour"
)

// BounceScript moves the object up and down around its starting height.
type BounceScript struct {
	behaviour.BaseComponent
	Height float32
	Speed  float32
	startY float32
	time   float32
}

func init() {
	behaviour.RegisterScript("BounceScript", func(props map[string]any) behaviour.Component {
		return &BounceScript{
			Height: behaviour.FloatProp(props, "height", 5.0),
			Speed:  behaviour.FloatProp(props, "speed", 2.0),
		}
	})
}

func (b *BounceScript) Start() {
	b.startY = b.GetGameObject().Transform.Position.Y()
}

func (b *BounceScript) Update(deltaTime float32) {
	b.time += deltaTime * b.Speed
	offset := float32(math.Sin(float64(b.time))) * b.Height
	b.GetGameObject().Transform.Position[1] = b.startY + offset
}
