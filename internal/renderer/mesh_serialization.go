package renderer

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	meshMagic   uint32 = 0x4D455348 // "MESH"
	meshVersion uint32 = 2
)

// ErrInvalidMesh is returned when mesh data is malformed.
var ErrInvalidMesh = errors.New("invalid mesh data")

// SerializedMesh contains the geometry needed to rebuild a model at runtime.
type SerializedMesh struct {
	Vertices  []float32  `json:"vertices,omitempty"`
	Faces     []int32    `json:"faces,omitempty"`
	SubMeshes [][2]int32 `json:"sub_meshes,omitempty"` // start, count
}

// SerializeMesh converts a Model's mesh data to SerializedMesh
func SerializeMesh(model *Model) *SerializedMesh {
	mesh := &SerializedMesh{
		Vertices: model.Vertices,
		Faces:    model.Faces,
	}
	for _, sm := range model.SubMeshes {
		mesh.SubMeshes = append(mesh.SubMeshes, [2]int32{sm.IndexStart, sm.IndexCount})
	}
	return mesh
}

// DeserializeMesh reconstructs a Model from SerializedMesh
func DeserializeMesh(mesh *SerializedMesh) *Model {
	model := &Model{
		Vertices:       mesh.Vertices,
		Faces:          mesh.Faces,
		Position:       mgl32.Vec3{0, 0, 0},
		Scale:          mgl32.Vec3{1, 1, 1},
		CustomUniforms: make(map[string]interface{}),
		IsDirty:        true,
	}
	for _, sm := range mesh.SubMeshes {
		model.SubMeshes = append(model.SubMeshes, SubMesh{IndexStart: sm[0], IndexCount: sm[1]})
	}
	model.updateModelMatrix()
	return model
}

// Validate checks that vertex data is whole triples and that every index and
// sub-mesh range stays inside its buffer.
func (mesh *SerializedMesh) Validate() error {
	if len(mesh.Vertices)%3 != 0 {
		return fmt.Errorf("%w: vertex array length %d is not a multiple of 3", ErrInvalidMesh, len(mesh.Vertices))
	}
	vertexCount := int32(len(mesh.Vertices) / 3)
	for i, idx := range mesh.Faces {
		if idx < 0 || idx >= vertexCount {
			return fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidMesh, i, idx, vertexCount)
		}
	}
	for i, sm := range mesh.SubMeshes {
		if sm[0] < 0 || sm[1] < 0 || int(sm[0])+int(sm[1]) > len(mesh.Faces) {
			return fmt.Errorf("%w: sub-mesh %d range [%d,+%d) exceeds %d indices", ErrInvalidMesh, i, sm[0], sm[1], len(mesh.Faces))
		}
	}
	return nil
}

// EncodeMeshBinary encodes mesh data to compressed binary format
func EncodeMeshBinary(mesh *SerializedMesh) ([]byte, error) {
	var buf bytes.Buffer
	gzWriter := gzip.NewWriter(&buf)

	header := []uint32{meshMagic, meshVersion}
	if err := binary.Write(gzWriter, binary.LittleEndian, header); err != nil {
		return nil, err
	}
	if err := writeFloat32Slice(gzWriter, mesh.Vertices); err != nil {
		return nil, err
	}
	if err := writeInt32Slice(gzWriter, mesh.Faces); err != nil {
		return nil, err
	}
	if err := binary.Write(gzWriter, binary.LittleEndian, int32(len(mesh.SubMeshes))); err != nil {
		return nil, err
	}
	for _, sm := range mesh.SubMeshes {
		if err := binary.Write(gzWriter, binary.LittleEndian, sm); err != nil {
			return nil, err
		}
	}

	if err := gzWriter.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeMeshBinary decodes compressed binary mesh data
func DecodeMeshBinary(data []byte) (*SerializedMesh, error) {
	gzReader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	var header [2]uint32
	if err := binary.Read(gzReader, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if header[0] != meshMagic {
		return nil, fmt.Errorf("%w: magic %x", ErrInvalidMesh, header[0])
	}
	if header[1] != meshVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidMesh, header[1])
	}

	mesh := &SerializedMesh{}
	if mesh.Vertices, err = readFloat32Slice(gzReader); err != nil {
		return nil, err
	}
	if mesh.Faces, err = readInt32Slice(gzReader); err != nil {
		return nil, err
	}

	var subCount int32
	if err := binary.Read(gzReader, binary.LittleEndian, &subCount); err != nil {
		return nil, err
	}
	if subCount < 0 {
		return nil, fmt.Errorf("%w: negative sub-mesh count", ErrInvalidMesh)
	}
	mesh.SubMeshes = make([][2]int32, subCount)
	for i := range mesh.SubMeshes {
		if err := binary.Read(gzReader, binary.LittleEndian, &mesh.SubMeshes[i]); err != nil {
			return nil, err
		}
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	return mesh, nil
}

// WriteMeshFile encodes mesh and writes it to path.
func WriteMeshFile(path string, mesh *SerializedMesh) error {
	data, err := EncodeMeshBinary(mesh)
	if err != nil {
		return fmt.Errorf("encoding mesh: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ReadMeshFile reads and decodes a mesh written by WriteMeshFile.
func ReadMeshFile(path string) (*SerializedMesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mesh, err := DecodeMeshBinary(data)
	if err != nil {
		return nil, fmt.Errorf("decoding mesh %s: %w", path, err)
	}
	return mesh, nil
}

func writeFloat32Slice(w io.Writer, data []float32) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(data))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, data)
}

func writeInt32Slice(w io.Writer, data []int32) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(data))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, data)
}

func readFloat32Slice(r io.Reader) ([]float32, error) {
	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidMesh, count)
	}
	data := make([]float32, count)
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, err
	}
	return data, nil
}

func readInt32Slice(r io.Reader) ([]int32, error) {
	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidMesh, count)
	}
	data := make([]int32, count)
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, err
	}
	return data, nil
}
