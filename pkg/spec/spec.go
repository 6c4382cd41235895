package spec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the parameter file looked up inside a project directory.
const ProjectFile = "array.yaml"

// Load reads a parameter set from a YAML file. Fields absent from the file keep
// their values from Defaults.
func Load(path string) (*CostParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML parameter set layered over Defaults. Unknown keys are
// an error; an empty document yields the defaults.
func Parse(data []byte) (*CostParameters, error) {
	params := Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing parameter YAML: %w", err)
	}
	return &params, nil
}

// LoadProject loads a parameter set from a project directory.
// It looks for array.yaml in the given directory.
func LoadProject(projectDir string) (*CostParameters, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}
