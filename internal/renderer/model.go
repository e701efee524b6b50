package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SubMesh is a contiguous range of the index buffer drawn as one part of a model.
type SubMesh struct {
	IndexStart int32 // Starting index in the index buffer
	IndexCount int32 // Number of indices in this part
}

type Model struct {
	ModelMatrix    mgl32.Mat4             // Transformation matrix
	Position       mgl32.Vec3             // Position in world space
	Rotation       mgl32.Vec3             // Euler angles in degrees
	Scale          mgl32.Vec3             // Scale factors
	IsDirty        bool                   // Transform changed since the last ClearDirty
	CustomUniforms map[string]interface{} // Shader parameters uploaded with this model
	Metadata       map[string]interface{} // General metadata for game logic

	Id         int
	Name       string
	SourcePath string    // Original file path
	Vertices   []float32 // Vertex position data, x,y,z per vertex
	Faces      []int32   // Index data
	SubMeshes  []SubMesh // Index ranges for multi-part models
}

// CreateModel builds a model from vertex positions and triangle indices.
func CreateModel(vertices []mgl32.Vec3, indices []int32) *Model {
	flat := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		flat = append(flat, v.X(), v.Y(), v.Z())
	}
	m := &Model{
		Position:       mgl32.Vec3{0, 0, 0},
		Scale:          mgl32.Vec3{1, 1, 1},
		Vertices:       flat,
		Faces:          indices,
		CustomUniforms: make(map[string]interface{}),
	}
	m.updateModelMatrix()
	return m
}

func (m *Model) X() float32 {
	return m.Position[0]
}

func (m *Model) Y() float32 {
	return m.Position[1]
}

func (m *Model) Z() float32 {
	return m.Position[2]
}

// VertexCount returns the number of x,y,z triples in Vertices.
func (m *Model) VertexCount() int {
	return len(m.Vertices) / 3
}

// Vertex returns the local-space position of vertex i.
func (m *Model) Vertex(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
}

// Rotate adds Euler angles in degrees to the current rotation.
func (m *Model) Rotate(angleX, angleY, angleZ float32) {
	m.Rotation = m.Rotation.Add(mgl32.Vec3{angleX, angleY, angleZ})
	m.updateModelMatrix()
	m.IsDirty = true
}

// SetPosition sets the position of the model
func (m *Model) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
	m.updateModelMatrix()
	m.IsDirty = true
}

func (m *Model) SetScale(x, y, z float32) {
	m.Scale = mgl32.Vec3{x, y, z}
	m.updateModelMatrix()
	m.IsDirty = true
}

func (m *Model) GetPosition() mgl32.Vec3 { return m.Position }
func (m *Model) GetRotation() mgl32.Vec3 { return m.Rotation }
func (m *Model) GetScale() mgl32.Vec3    { return m.Scale }

func (m *Model) SetPositionVec(p mgl32.Vec3) {
	m.Position = p
	m.MarkDirty()
}

func (m *Model) SetRotationEuler(r mgl32.Vec3) {
	m.Rotation = r
	m.MarkDirty()
}

func (m *Model) SetScaleVec(s mgl32.Vec3) {
	m.Scale = s
	m.MarkDirty()
}

// MarkDirty recomputes the model matrix and flags the transform as changed.
func (m *Model) MarkDirty() {
	m.updateModelMatrix()
	m.IsDirty = true
}

// ClearDirty resets the change flag after a consumer has observed it.
func (m *Model) ClearDirty() {
	m.IsDirty = false
}

// Uniforms returns the model's custom uniform map as a ParameterSink,
// allocating it on first use.
func (m *Model) Uniforms() UniformMap {
	if m.CustomUniforms == nil {
		m.CustomUniforms = make(map[string]interface{})
	}
	return UniformMap(m.CustomUniforms)
}

func (m *Model) updateModelMatrix() {
	m.ModelMatrix = TRSMatrix(m.Position, m.Rotation, m.Scale)
}
