package water

import (
	"GopherWater/internal/behaviour"
	"GopherWater/internal/logger"
	"GopherWater/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Shader parameter names.
const (
	ParamMaxAngle         = "MaxAngle"
	ParamWorldHeightRange = "WorldHeightRange"
	ParamWobble           = "Wobble"
)

// Surface drives the height range and wobble parameters of one water body
// from the motion of its GameObject.
type Surface struct {
	behaviour.BaseComponent

	Params             Params
	UseRealHeightRange bool
	Mesh               *Mesh
	Box                Box

	// Sink receives shader parameters. When nil at Start the attached
	// model's custom uniforms are used.
	Sink renderer.ParameterSink

	state         WobbleState
	heightRange   HeightRange
	lastTransform behaviour.TransformSnapshot
	recomputes    int
}

// NewSurface creates a box-shaped surface with a unit box.
func NewSurface(params Params) *Surface {
	return &Surface{
		Params:      params,
		Box:         Box{Size: mgl32.Vec3{1, 1, 1}},
		heightRange: EmptyHeightRange(),
	}
}

func (s *Surface) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeWater
}

func (s *Surface) GetTypeName() string {
	return "WaterSurface"
}

// Start writes the constant parameters and the initial height range.
func (s *Surface) Start() {
	if s.Sink == nil {
		if model, ok := s.GetGameObject().GetModel().(*renderer.Model); ok {
			s.Sink = model.Uniforms()
		} else {
			s.Sink = renderer.UniformMap{}
		}
	}

	snap := s.GetGameObject().Transform.Snapshot()
	s.state = NewWobbleState(snap)
	s.lastTransform = snap

	s.Sink.SetFloat(ParamMaxAngle, s.Params.MaxAngle)
	s.Sink.SetVec4(ParamWobble, s.state.Uniform())
	s.refreshHeightRange(snap)
}

// Update recomputes the height range when the transform moved and steps the
// wobble while it is active.
func (s *Surface) Update(deltaTime float32) {
	if s.Sink == nil {
		return
	}

	snap := s.GetGameObject().Transform.Snapshot()
	if !snap.ApproxEqual(s.lastTransform) {
		s.lastTransform = snap
		s.refreshHeightRange(snap)
		s.state.Active = true
	}

	if !s.state.Active {
		return
	}

	if !(deltaTime > 0) {
		logger.Log.Warn("Non-positive frame time, flooring velocity step",
			zap.String("object", s.GetGameObject().Name),
			zap.Float32("delta", deltaTime))
	}

	Step(&s.state, snap, deltaTime, s.Params)
	s.Sink.SetVec4(ParamWobble, s.state.Uniform())

	if !s.state.Active {
		logger.Log.Debug("Wobble settled",
			zap.String("object", s.GetGameObject().Name),
			zap.Float32("timer", s.state.WobbleTimer))
	}
}

// HeightRange returns the last valid range written to the sink.
func (s *Surface) HeightRange() HeightRange {
	return s.heightRange
}

// State returns a copy of the wobble integrator state.
func (s *Surface) State() WobbleState {
	return s.state
}

// Recomputes counts height range evaluations since Start.
func (s *Surface) Recomputes() int {
	return s.recomputes
}

func (s *Surface) refreshHeightRange(snap behaviour.TransformSnapshot) {
	s.recomputes++
	r := ComputeHeightRange(snap, s.Mesh, s.Box, s.UseRealHeightRange)
	if !r.Valid() {
		logger.Log.Warn("Water shape has no points, keeping previous height range",
			zap.String("object", s.GetGameObject().Name),
			zap.Bool("mesh", s.UseRealHeightRange))
		return
	}

	s.heightRange = r
	s.Sink.SetVec2(ParamWorldHeightRange, r.Vec2())
	logger.Log.Debug("Height range updated",
		zap.String("object", s.GetGameObject().Name),
		zap.Float32("min", r.Min),
		zap.Float32("max", r.Max))
}
