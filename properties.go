package tetrabounds

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Properties is an unordered set of property names to values, used to carry custom data on Objects (for example, the "extras"
// block of a glTF node, or the properties section of an object in a YAML scene file).
type Properties struct {
	props map[string]*Property
}

// NewProperties returns a new Properties object.
func NewProperties() *Properties {
	return &Properties{map[string]*Property{}}
}

// Clone returns a copy of the Properties object.
func (props *Properties) Clone() *Properties {
	newProps := NewProperties()
	for k, v := range props.props {
		newProps.Get(k).Set(v.Value)
	}
	return newProps
}

// Remove removes the property specified from the Properties object.
func (props *Properties) Remove(propName string) {
	delete(props.props, propName)
}

// Has returns true if the Properties object has properties by all of the names specified, and false otherwise.
func (props *Properties) Has(propNames ...string) bool {
	for _, name := range propNames {
		if _, exists := props.props[name]; !exists {
			return false
		}
	}
	return true
}

// Get returns the Property associated with the specified property name, creating an empty one if it doesn't exist yet.
func (props *Properties) Get(propName string) *Property {
	if _, ok := props.props[propName]; !ok {
		props.props[propName] = &Property{}
	}
	return props.props[propName]
}

// Set sets the value of the property by the given name, creating it if necessary.
func (props *Properties) Set(propName string, value any) {
	props.Get(propName).Set(value)
}

// Names returns the names of all properties, sorted alphabetically.
func (props *Properties) Names() []string {
	names := make([]string, 0, len(props.props))
	for name := range props.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of properties.
func (props *Properties) Count() int {
	return len(props.props)
}

// Property represents a custom property on an Object.
type Property struct {
	Value any
}

// Set sets the property's value to the given value.
func (prop *Property) Set(value any) {
	prop.Value = value
}

// IsBool returns true if the Property is a boolean value.
func (prop *Property) IsBool() bool {
	_, ok := prop.Value.(bool)
	return ok
}

// AsBool returns the value associated with the Property as a bool, or false if it isn't one.
func (prop *Property) AsBool() bool {
	b, _ := prop.Value.(bool)
	return b
}

// IsString returns true if the Property is a string.
func (prop *Property) IsString() bool {
	_, ok := prop.Value.(string)
	return ok
}

// AsString returns the value associated with the Property as a string, or an empty string if it isn't one.
func (prop *Property) AsString() string {
	s, _ := prop.Value.(string)
	return s
}

// IsNumber returns true if the Property is a float64 or an int. Numbers decoded from JSON or YAML can be either.
func (prop *Property) IsNumber() bool {
	switch prop.Value.(type) {
	case float64, int:
		return true
	}
	return false
}

// AsFloat64 returns the value associated with the Property as a float64, converting ints. Other values return 0.
func (prop *Property) AsFloat64() float64 {
	switch v := prop.Value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// IsVector returns true if the Property is a 3D vector.
func (prop *Property) IsVector() bool {
	_, ok := prop.Value.(mgl64.Vec3)
	return ok
}

// AsVector returns the value associated with the Property as a 3D vector, or a zero vector if it isn't one.
func (prop *Property) AsVector() mgl64.Vec3 {
	v, _ := prop.Value.(mgl64.Vec3)
	return v
}

// IsColor returns true if the Property is a Color.
func (prop *Property) IsColor() bool {
	_, ok := prop.Value.(Color)
	return ok
}

// AsColor returns the value associated with the Property as a Color, or transparent black if it isn't one.
func (prop *Property) AsColor() Color {
	c, _ := prop.Value.(Color)
	return c
}

// setFromGeneric sets the Property from a value decoded from JSON or YAML, turning 3 or 4 element number lists into vectors and colors.
func (prop *Property) setFromGeneric(value any) {

	list, ok := value.([]any)
	if !ok || (len(list) != 3 && len(list) != 4) {
		prop.Set(value)
		return
	}

	nums := make([]float64, 0, len(list))
	for _, v := range list {
		switch n := v.(type) {
		case float64:
			nums = append(nums, n)
		case int:
			nums = append(nums, float64(n))
		default:
			prop.Set(value)
			return
		}
	}

	if len(nums) == 3 {
		prop.Set(mgl64.Vec3{nums[0], nums[1], nums[2]})
	} else {
		prop.Set(NewColor(float32(nums[0]), float32(nums[1]), float32(nums[2]), float32(nums[3])))
	}

}
