package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec loads and unmarshals one YAML spec file.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// DoorsSpec is the top-level doors.yaml document.
type DoorsSpec struct {
	Doors []DoorSpec `yaml:"doors"`
}

// DoorSpec is one door's creation record. Type is one of
// single_sliding, double_sliding, single_swinging, double_swinging.
// Swing's magnitude is the travel distance (sliding, world units) or
// rotation angle (swinging, radians); its sign is the direction.
type DoorSpec struct {
	Name      string        `yaml:"name"`
	Type      string        `yaml:"type"`
	Swing     float64       `yaml:"swing"`
	Length    float64       `yaml:"length"`
	Height    float64       `yaml:"height"`
	Thickness float64       `yaml:"thickness"`
	Transform TransformSpec `yaml:"transform"`
}

// TransformSpec is a door's base pose.
type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

// LoadDoorsSpec loads doors.yaml.
func LoadDoorsSpec() (*DoorsSpec, error) {
	spec, err := LoadSpec[DoorsSpec]("doors.yaml")
	if err != nil {
		return nil, err
	}
	for i, d := range spec.Doors {
		if d.Name == "" {
			return nil, fmt.Errorf("prefabs: doors.yaml entry %d has no name", i)
		}
	}
	return &spec, nil
}
