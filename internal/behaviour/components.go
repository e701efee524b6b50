package behaviour

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeScript ComponentType = "Script"
	ComponentTypeWater  ComponentType = "Water"
	ComponentTypeCustom ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}
