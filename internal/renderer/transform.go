package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// EulerToQuat converts Euler angles in degrees to a rotation quaternion.
// Rotations apply about Z first, then X, then Y.
func EulerToQuat(euler mgl32.Vec3) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(euler.X()), mgl32.Vec3{1, 0, 0})
	qy := mgl32.QuatRotate(mgl32.DegToRad(euler.Y()), mgl32.Vec3{0, 1, 0})
	qz := mgl32.QuatRotate(mgl32.DegToRad(euler.Z()), mgl32.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}

// TRSMatrix builds translation * rotation * scale.
// Vertices are scaled first, then rotated, then translated.
func TRSMatrix(position, eulerDegrees, scale mgl32.Vec3) mgl32.Mat4 {
	scaleMatrix := mgl32.Scale3D(scale[0], scale[1], scale[2])
	rotationMatrix := EulerToQuat(eulerDegrees).Mat4()
	translationMatrix := mgl32.Translate3D(position[0], position[1], position[2])
	return translationMatrix.Mul4(rotationMatrix).Mul4(scaleMatrix)
}

// ApplyModelTransformation moves a local-space vertex into world space.
func ApplyModelTransformation(vertex, position, scale mgl32.Vec3, rotation mgl32.Quat) mgl32.Vec3 {
	scaledVertex := mgl32.Vec3{vertex[0] * scale[0], vertex[1] * scale[1], vertex[2] * scale[2]}
	rotatedVertex := rotation.Rotate(scaledVertex)
	return rotatedVertex.Add(position)
}

// WrapAngle maps an angle in degrees into (-180, 180].
func WrapAngle(deg float32) float32 {
	w := float32(math.Mod(float64(deg), 360))
	if w > 180 {
		w -= 360
	} else if w <= -180 {
		w += 360
	}
	return w
}

// NormalizeAngle maps an angle in degrees into [0, 360).
func NormalizeAngle(deg float32) float32 {
	n := float32(math.Mod(float64(deg), 360))
	if n < 0 {
		n += 360
	}
	if n >= 360 {
		n = 0
	}
	return n
}

// NormalizeEuler maps each Euler angle into [0, 360).
func NormalizeEuler(euler mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{NormalizeAngle(euler[0]), NormalizeAngle(euler[1]), NormalizeAngle(euler[2])}
}
