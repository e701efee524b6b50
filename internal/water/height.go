package water

import (
	"math"

	"GopherWater/internal/behaviour"
	"GopherWater/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// HeightRange is a world-space vertical extent.
type HeightRange struct {
	Min float32
	Max float32
}

// EmptyHeightRange returns the (+Inf, -Inf) sentinel that every included
// point narrows.
func EmptyHeightRange() HeightRange {
	return HeightRange{
		Min: float32(math.Inf(1)),
		Max: float32(math.Inf(-1)),
	}
}

// Include widens the range to cover y.
func (r *HeightRange) Include(y float32) {
	if y < r.Min {
		r.Min = y
	}
	if y > r.Max {
		r.Max = y
	}
}

// Valid reports whether at least one point was included.
func (r HeightRange) Valid() bool {
	return r.Min <= r.Max
}

// Vec2 packs the range as (min, max) for the shader.
func (r HeightRange) Vec2() mgl32.Vec2 {
	return mgl32.Vec2{r.Min, r.Max}
}

// Mesh is a local-space vertex list with an optional index buffer split
// into sub-meshes. SubMesh selects which part is sampled when the mesh has
// more than one.
type Mesh struct {
	Vertices  []mgl32.Vec3
	Indices   []int32
	SubMeshes []renderer.SubMesh
	SubMesh   int
}

// MeshFromModel copies the vertex positions and index layout of a model.
func MeshFromModel(m *renderer.Model, subMesh int) *Mesh {
	mesh := &Mesh{
		Vertices:  make([]mgl32.Vec3, m.VertexCount()),
		Indices:   m.Faces,
		SubMeshes: m.SubMeshes,
		SubMesh:   subMesh,
	}
	for i := range mesh.Vertices {
		mesh.Vertices[i] = m.Vertex(i)
	}
	return mesh
}

// Box is an oriented box given by its local-space center and full size.
type Box struct {
	Center mgl32.Vec3
	Size   mgl32.Vec3
}

// Corners returns the 8 local-space corners of the box.
func (b Box) Corners() [8]mgl32.Vec3 {
	half := b.Size.Mul(0.5)
	var corners [8]mgl32.Vec3
	for i := 0; i < 8; i++ {
		sign := mgl32.Vec3{-1, -1, -1}
		if i&1 != 0 {
			sign[0] = 1
		}
		if i&2 != 0 {
			sign[1] = 1
		}
		if i&4 != 0 {
			sign[2] = 1
		}
		corners[i] = b.Center.Add(mgl32.Vec3{half[0] * sign[0], half[1] * sign[1], half[2] * sign[2]})
	}
	return corners
}

// ComputeHeightRange returns the world-space vertical extent of the water
// shape. With useRealHeightRange the mesh vertices are scanned, otherwise the
// corners of box. An empty shape yields the EmptyHeightRange sentinel.
func ComputeHeightRange(t behaviour.TransformSnapshot, mesh *Mesh, box Box, useRealHeightRange bool) HeightRange {
	if useRealHeightRange {
		return MeshHeightRange(t, mesh)
	}
	return BoxHeightRange(t, box)
}

// MeshHeightRange scans the selected sub-mesh when the mesh has more than one,
// and every vertex otherwise.
func MeshHeightRange(t behaviour.TransformSnapshot, mesh *Mesh) HeightRange {
	r := EmptyHeightRange()
	if mesh == nil {
		return r
	}

	m := t.Matrix()
	include := func(v mgl32.Vec3) {
		r.Include(mgl32.TransformCoordinate(v, m).Y())
	}

	if len(mesh.SubMeshes) > 1 && mesh.SubMesh >= 0 && mesh.SubMesh < len(mesh.SubMeshes) {
		sm := mesh.SubMeshes[mesh.SubMesh]
		end := int(sm.IndexStart) + int(sm.IndexCount)
		if sm.IndexStart >= 0 && end <= len(mesh.Indices) {
			for _, idx := range mesh.Indices[sm.IndexStart:end] {
				if idx >= 0 && int(idx) < len(mesh.Vertices) {
					include(mesh.Vertices[idx])
				}
			}
			return r
		}
	}

	for _, v := range mesh.Vertices {
		include(v)
	}
	return r
}

// BoxHeightRange scans the 8 transformed corners of box.
func BoxHeightRange(t behaviour.TransformSnapshot, box Box) HeightRange {
	r := EmptyHeightRange()
	m := t.Matrix()
	for _, c := range box.Corners() {
		r.Include(mgl32.TransformCoordinate(c, m).Y())
	}
	return r
}
