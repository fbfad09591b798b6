package calib

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads the named parametrization from an offline JSON file holding
// a map of parametrization name to object.
func LoadFile(path, name string) (*Parametrization, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("calib: read %s: %w", path, err)
	}
	var params map[string]*Parametrization
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("calib: parse %s: %w", path, err)
	}
	p, ok := params[name]
	if !ok {
		return nil, fmt.Errorf("calib: %s: %q: %w", path, name, ErrNotFound)
	}
	p.Name = name
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
