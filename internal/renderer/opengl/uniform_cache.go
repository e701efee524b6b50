// Package opengl uploads shader parameters to a GL program.
// Callers must own a current GL context on the calling thread.
package opengl

import (
	"GopherWater/internal/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var _ renderer.ParameterSink = (*UniformCache)(nil)

// UniformCache caches uniform locations to avoid repeated gl.GetUniformLocation calls.
// It implements renderer.ParameterSink.
type UniformCache struct {
	locations map[string]int32
	program   uint32
}

// NewUniformCache creates a new uniform cache for a shader program
func NewUniformCache(program uint32) *UniformCache {
	return &UniformCache{
		locations: make(map[string]int32),
		program:   program,
	}
}

// GetLocation returns the cached uniform location or fetches and caches it
func (uc *UniformCache) GetLocation(name string) int32 {
	if loc, exists := uc.locations[name]; exists {
		return loc
	}

	loc := gl.GetUniformLocation(uc.program, gl.Str(name+"\x00"))
	uc.locations[name] = loc
	return loc
}

// SetFloat sets a float uniform using cached location
func (uc *UniformCache) SetFloat(name string, value float32) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

// SetVec2 sets a vec2 uniform using cached location
func (uc *UniformCache) SetVec2(name string, value mgl32.Vec2) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform2f(loc, value.X(), value.Y())
	}
}

// SetVec4 sets a vec4 uniform using cached location
func (uc *UniformCache) SetVec4(name string, value mgl32.Vec4) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform4f(loc, value.X(), value.Y(), value.Z(), value.W())
	}
}

// Clear clears the cache (call when shader program changes)
func (uc *UniformCache) Clear() {
	uc.locations = make(map[string]int32)
}
