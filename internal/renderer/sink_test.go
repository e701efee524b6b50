package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestUniformMapStoresTypedValues(t *testing.T) {
	u := UniformMap{}
	var sink ParameterSink = u

	sink.SetFloat("MaxAngle", 45)
	sink.SetVec2("WorldHeightRange", mgl32.Vec2{-2, 2})
	sink.SetVec4("Wobble", mgl32.Vec4{0.1, 0, -0.1, 0.5})

	if v, ok := u.Float("MaxAngle"); !ok || v != 45 {
		t.Errorf("Expected MaxAngle 45, got %v (ok=%v)", v, ok)
	}
	if v, ok := u.Vec2("WorldHeightRange"); !ok || v != (mgl32.Vec2{-2, 2}) {
		t.Errorf("Expected range (-2,2), got %v (ok=%v)", v, ok)
	}
	if v, ok := u.Vec4("Wobble"); !ok || v != (mgl32.Vec4{0.1, 0, -0.1, 0.5}) {
		t.Errorf("Expected wobble (0.1,0,-0.1,0.5), got %v (ok=%v)", v, ok)
	}
}

func TestUniformMapWrongType(t *testing.T) {
	u := UniformMap{"Wobble": float32(1)}

	if _, ok := u.Vec4("Wobble"); ok {
		t.Error("Vec4 should report false for a float entry")
	}
	if _, ok := u.Vec2("missing"); ok {
		t.Error("Vec2 should report false for a missing entry")
	}
}
