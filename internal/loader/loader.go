package loader

import (
	"fmt"

	"GopherWater/internal/logger"
	"GopherWater/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	minResolution = 2
	maxResolution = 8192
)

// LoadWaterSurface builds a flat square grid of size x size world units
// centered at (centerX, 0, centerZ) with resolution vertices per side.
func LoadWaterSurface(size float32, centerX, centerZ float32, resolution int) (*renderer.Model, error) {
	if size <= 0 {
		return nil, fmt.Errorf("water surface size must be positive, got %v", size)
	}
	if resolution < minResolution {
		resolution = minResolution
	}
	if resolution > maxResolution {
		resolution = maxResolution
	}

	vertices := make([]mgl32.Vec3, 0, resolution*resolution)
	indices := make([]int32, 0, (resolution-1)*(resolution-1)*6)

	stepSize := size / float32(resolution-1)
	startX := centerX - size*0.5
	startZ := centerZ - size*0.5

	for x := 0; x < resolution; x++ {
		for z := 0; z < resolution; z++ {
			vertices = append(vertices, mgl32.Vec3{startX + float32(x)*stepSize, 0, startZ + float32(z)*stepSize})
		}
	}

	for x := 0; x < resolution-1; x++ {
		for z := 0; z < resolution-1; z++ {
			topLeft := int32(x*resolution + z)
			topRight := topLeft + 1
			bottomLeft := int32((x+1)*resolution + z)
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, bottomRight)
			indices = append(indices, topLeft, bottomRight, topRight)
		}
	}

	model := renderer.CreateModel(vertices, indices)
	model.Name = "Water Surface"
	model.Metadata = map[string]interface{}{"type": "water"}

	logger.Log.Info("Water surface created",
		zap.Int("vertices", len(vertices)),
		zap.Int("triangles", len(indices)/3),
		zap.Float32("size", size),
		zap.Int("resolution", resolution))

	return model, nil
}

// LoadMesh reads a binary mesh file into a model.
func LoadMesh(path string) (*renderer.Model, error) {
	mesh, err := renderer.ReadMeshFile(path)
	if err != nil {
		return nil, err
	}

	model := renderer.DeserializeMesh(mesh)
	model.SourcePath = path
	model.Name = path

	logger.Log.Info("Mesh loaded",
		zap.String("path", path),
		zap.Int("vertices", model.VertexCount()),
		zap.Int("subMeshes", len(model.SubMeshes)))

	return model, nil
}
