package behaviour

import (
	"GopherWater/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// Component is the base interface for all components
// Components can be attached to models/game objects
type Component interface {
	// Lifecycle methods
	Awake()                   // Called when component is first created
	Start()                   // Called before first Update
	Update(deltaTime float32) // Called every frame with the host frame time in seconds
	FixedUpdate()             // Called at fixed frame intervals
	OnDestroy()               // Called when component/object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides default implementations for all Component methods
// User scripts can embed this to only override methods they need
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()                   {}
func (c *BaseComponent) Start()                   {}
func (c *BaseComponent) Update(deltaTime float32) {}
func (c *BaseComponent) FixedUpdate()             {}
func (c *BaseComponent) OnDestroy()               {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// GameObject represents an object in the scene
type GameObject struct {
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component
	model      interface{} // Reference to renderer.Model
	started    bool
}

// Transform holds position, Euler rotation in degrees and scale.
type Transform struct {
	BaseComponent
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// TransformSnapshot is a value copy of a Transform used for change detection.
type TransformSnapshot struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// IdentitySnapshot is the transform at the origin with no rotation and unit scale.
func IdentitySnapshot() TransformSnapshot {
	return TransformSnapshot{Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix returns the local-to-world matrix.
func (s TransformSnapshot) Matrix() mgl32.Mat4 {
	return renderer.TRSMatrix(s.Position, s.Rotation, s.Scale)
}

// TransformPoint moves a local-space point into world space.
func (s TransformSnapshot) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	return renderer.ApplyModelTransformation(p, s.Position, s.Scale, renderer.EulerToQuat(s.Rotation))
}

// ApproxEqual reports whether every component matches within float tolerance.
func (s TransformSnapshot) ApproxEqual(o TransformSnapshot) bool {
	return s.Position.ApproxEqual(o.Position) &&
		s.Rotation.ApproxEqual(o.Rotation) &&
		s.Scale.ApproxEqual(o.Scale)
}

// Snapshot copies the current transform. Rotation is reported in [0, 360)
// per axis however far the stored angles have been accumulated.
func (t *Transform) Snapshot() TransformSnapshot {
	return TransformSnapshot{Position: t.Position, Rotation: renderer.NormalizeEuler(t.Rotation), Scale: t.Scale}
}

func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

// Rotate adds Euler angles in degrees.
func (t *Transform) Rotate(deltaEuler mgl32.Vec3) {
	t.Rotation = t.Rotation.Add(deltaEuler)
}

func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.Position = pos
}

func (t *Transform) SetRotation(euler mgl32.Vec3) {
	t.Rotation = euler
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
}

// GameObject methods
func NewGameObject(name string) *GameObject {
	obj := &GameObject{
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform: &Transform{
			Position: mgl32.Vec3{0, 0, 0},
			Rotation: mgl32.Vec3{0, 0, 0},
			Scale:    mgl32.Vec3{1, 1, 1},
		},
	}
	obj.Transform.SetGameObject(obj)
	return obj
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
	if obj.started && obj.Active {
		component.Start()
	}
}

// GetComponent returns the first component whose type name matches.
func (obj *GameObject) GetComponent(typeName string) Component {
	for _, comp := range obj.Components {
		if typed, ok := comp.(TypedComponent); ok && typed.GetTypeName() == typeName {
			return comp
		}
	}
	return nil
}

// GetComponents returns every component of the given category.
func (obj *GameObject) GetComponents(componentType ComponentType) []Component {
	var result []Component
	for _, comp := range obj.Components {
		if typed, ok := comp.(TypedComponent); ok && typed.GetComponentType() == componentType {
			result = append(result, comp)
		}
	}
	return result
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

func (obj *GameObject) SetModel(model interface{}) {
	obj.model = model
	if m, ok := model.(ModelInterface); ok {
		obj.Transform.Position = m.GetPosition()
		obj.Transform.Rotation = m.GetRotation()
		obj.Transform.Scale = m.GetScale()
	}
}

func (obj *GameObject) GetModel() interface{} {
	return obj.model
}

// ModelInterface is the renderer-side view of a model's transform.
type ModelInterface interface {
	GetPosition() mgl32.Vec3
	GetRotation() mgl32.Vec3
	GetScale() mgl32.Vec3
	SetPositionVec(mgl32.Vec3)
	SetRotationEuler(mgl32.Vec3)
	SetScaleVec(mgl32.Vec3)
	MarkDirty()
}

func (obj *GameObject) internalUpdate(deltaTime float32) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update(deltaTime)
		}
	}
}

func (obj *GameObject) internalFixedUpdate() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.FixedUpdate()
		}
	}
}

func (obj *GameObject) internalStart() {
	if !obj.Active {
		return
	}

	obj.started = true
	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Start()
		}
	}
}

func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Active = false
}
