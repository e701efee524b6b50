package renderer

import "github.com/go-gl/mathgl/mgl32"

// ParameterSink receives named shader parameters. Writes are fire-and-forget;
// there is no read-back through this interface.
type ParameterSink interface {
	SetFloat(name string, value float32)
	SetVec2(name string, value mgl32.Vec2)
	SetVec4(name string, value mgl32.Vec4)
}

// UniformMap is a ParameterSink backed by a model's custom uniform map.
// The renderer uploads the map contents when it draws the model.
type UniformMap map[string]interface{}

func (u UniformMap) SetFloat(name string, value float32) {
	u[name] = value
}

func (u UniformMap) SetVec2(name string, value mgl32.Vec2) {
	u[name] = value
}

func (u UniformMap) SetVec4(name string, value mgl32.Vec4) {
	u[name] = value
}

// Float returns the float uniform stored under name.
func (u UniformMap) Float(name string) (float32, bool) {
	v, ok := u[name].(float32)
	return v, ok
}

// Vec2 returns the vec2 uniform stored under name.
func (u UniformMap) Vec2(name string) (mgl32.Vec2, bool) {
	v, ok := u[name].(mgl32.Vec2)
	return v, ok
}

// Vec4 returns the vec4 uniform stored under name.
func (u UniformMap) Vec4(name string) (mgl32.Vec4, bool) {
	v, ok := u[name].(mgl32.Vec4)
	return v, ok
}
