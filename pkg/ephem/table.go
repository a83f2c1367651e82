package ephem

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sankalpsthakur/astronova/pkg/astro"
)

// TableEntry is one body's position in a YAML position table.
type TableEntry struct {
	Longitude float64 `yaml:"longitude" json:"longitude"`
	Speed     float64 `yaml:"speed" json:"speed"`
	Latitude  float64 `yaml:"latitude,omitempty" json:"latitude,omitempty"`
	Distance  float64 `yaml:"distance,omitempty" json:"distance,omitempty"`
}

// Table is a YAML-serializable set of fixed body positions keyed by body
// name.
type Table map[string]TableEntry

// Gateway converts the table into a static gateway. Unknown body names
// are rejected rather than ignored.
func (t Table) Gateway() (*Static, error) {
	positions := make([]astro.BodyPosition, 0, len(t))
	for name, e := range t {
		body := astro.Body(name)
		if !body.Known() {
			return nil, fmt.Errorf("position table: unknown body %q", name)
		}
		positions = append(positions, astro.BodyPosition{
			Body:      body,
			Longitude: e.Longitude,
			Speed:     e.Speed,
			Latitude:  e.Latitude,
			Distance:  e.Distance,
		})
	}
	return NewStatic(positions), nil
}

// LoadTable reads a position table from a YAML file.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading position table: %w", err)
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing position table YAML: %w", err)
	}
	return t, nil
}
