package behaviour

import "sort"

// ScriptConstructor builds a script from its configured properties.
// Missing properties fall back to the script's defaults.
type ScriptConstructor func(props map[string]any) Component

var scriptRegistry = make(map[string]ScriptConstructor)

func RegisterScript(name string, constructor ScriptConstructor) {
	scriptRegistry[name] = constructor
}

func GetAvailableScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func CreateScript(name string, props map[string]any) Component {
	if constructor, exists := scriptRegistry[name]; exists {
		return constructor(props)
	}
	return nil
}

// FloatProp reads a numeric property, accepting the integer and float types
// produced by YAML and JSON decoders.
func FloatProp(props map[string]any, key string, def float32) float32 {
	switch v := props[key].(type) {
	case float64:
		return float32(v)
	case float32:
		return v
	case int:
		return float32(v)
	case int64:
		return float32(v)
	}
	return def
}
