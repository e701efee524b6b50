package renderer

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"path/filepath"
	"testing"
)

func TestMeshSerialization(t *testing.T) {
	original := &Model{
		Name:      "TestModel",
		Vertices:  []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Faces:     []int32{0, 1, 2},
		SubMeshes: []SubMesh{{IndexStart: 0, IndexCount: 3}},
	}

	mesh := SerializeMesh(original)
	if mesh == nil {
		t.Fatal("SerializeMesh returned nil")
	}
	if len(mesh.SubMeshes) != 1 || mesh.SubMeshes[0] != [2]int32{0, 3} {
		t.Errorf("Sub-mesh table mismatch: got %v", mesh.SubMeshes)
	}

	restored := DeserializeMesh(mesh)
	if restored == nil {
		t.Fatal("DeserializeMesh returned nil")
	}
	if len(restored.Vertices) != len(original.Vertices) {
		t.Errorf("Restored vertices length mismatch: got %d, want %d", len(restored.Vertices), len(original.Vertices))
	}
	if len(restored.SubMeshes) != 1 || restored.SubMeshes[0].IndexCount != 3 {
		t.Errorf("Restored sub-meshes mismatch: got %v", restored.SubMeshes)
	}
}

func TestMeshBinaryEncoding(t *testing.T) {
	mesh := &SerializedMesh{
		Vertices:  []float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 0},
		Faces:     []int32{0, 1, 2, 1, 3, 2},
		SubMeshes: [][2]int32{{0, 3}, {3, 3}},
	}

	data, err := EncodeMeshBinary(mesh)
	if err != nil {
		t.Fatalf("EncodeMeshBinary failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Encoded data is empty")
	}

	decoded, err := DecodeMeshBinary(data)
	if err != nil {
		t.Fatalf("DecodeMeshBinary failed: %v", err)
	}
	if len(decoded.Vertices) != len(mesh.Vertices) {
		t.Errorf("Vertices length mismatch: got %d, want %d", len(decoded.Vertices), len(mesh.Vertices))
	}
	if len(decoded.Faces) != len(mesh.Faces) {
		t.Errorf("Faces length mismatch: got %d, want %d", len(decoded.Faces), len(mesh.Faces))
	}
	if len(decoded.SubMeshes) != 2 || decoded.SubMeshes[1] != [2]int32{3, 3} {
		t.Errorf("Sub-mesh table mismatch: got %v", decoded.SubMeshes)
	}
}

func TestDecodeMeshRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_ = binary.Write(gz, binary.LittleEndian, []uint32{0xDEADBEEF, meshVersion})
	_ = gz.Close()

	_, err := DecodeMeshBinary(buf.Bytes())
	if !errors.Is(err, ErrInvalidMesh) {
		t.Errorf("Expected ErrInvalidMesh, got %v", err)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	cases := map[string]*SerializedMesh{
		"partial vertex": {Vertices: []float32{0, 0}},
		"bad face":       {Vertices: []float32{0, 0, 0}, Faces: []int32{1}},
		"bad sub-mesh":   {Vertices: []float32{0, 0, 0}, Faces: []int32{0}, SubMeshes: [][2]int32{{0, 2}}},
	}
	for name, mesh := range cases {
		if err := mesh.Validate(); !errors.Is(err, ErrInvalidMesh) {
			t.Errorf("%s: expected ErrInvalidMesh, got %v", name, err)
		}
	}
}

func TestMeshFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "water.mesh")
	mesh := &SerializedMesh{Vertices: []float32{0, 1, 0, 0, 5, 0, 0, -2, 0}, Faces: []int32{0, 1, 2}}

	if err := WriteMeshFile(path, mesh); err != nil {
		t.Fatalf("WriteMeshFile failed: %v", err)
	}
	read, err := ReadMeshFile(path)
	if err != nil {
		t.Fatalf("ReadMeshFile failed: %v", err)
	}
	if read.Vertices[4] != 5 {
		t.Errorf("Expected second vertex Y 5, got %v", read.Vertices[4])
	}
}
