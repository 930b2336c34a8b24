package formats

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a maze file.
type YAMLLevel struct {
	ID     string  `yaml:"id"`
	Name   string  `yaml:"name"`
	Layout string  `yaml:"layout"`
	Ghosts []Ghost `yaml:"ghosts,omitempty"`
}

// ParseYAML parses a YAML maze file. Unknown keys are rejected.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&yl); err != nil {
		return Level{}, fmt.Errorf("yaml decode: %w", err)
	}
	return Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Rows:   splitLayout(yl.Layout),
		Ghosts: yl.Ghosts,
	}, nil
}
