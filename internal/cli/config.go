package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/toyz/vtgen/internal/models"
)

// Manifest describes the generation units of a project, loaded from a
// vtgen.toml file. Each unit produces exactly one header.
type Manifest struct {
	Units []UnitConfig `toml:"unit"`

	// dir is the directory containing the manifest; relative paths in
	// unit entries resolve against it
	dir string
}

// UnitConfig declares one generation unit in the manifest
type UnitConfig struct {
	// Name is the unit's logical name; the include guard derives from it
	Name string `toml:"name"`

	// Inputs are the interface description files, merged in order
	Inputs []string `toml:"inputs"`

	// Output is the header path to write. Defaults to the unit name
	// with dots replaced by underscores plus "_generated.h".
	Output string `toml:"output"`
}

// Config holds the configuration for one CLI run
type Config struct {
	// ManifestPath is the vtgen.toml path; empty selects directory
	// scan mode
	ManifestPath string

	// Directories to scan for .vt files in scan mode; supports
	// Go-style "./..." patterns
	Directories []string

	// OutDir redirects generated headers; empty keeps manifest-relative
	// (or input-adjacent) outputs
	OutDir string

	// UnitFilter limits generation to the named units; empty means all
	UnitFilter []string

	// Verbose enables detailed logging and error reporting
	Verbose bool
}

// LoadManifest reads and validates a manifest file
func LoadManifest(path string) (*Manifest, error) {
	var manifest Manifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeConfiguration,
			File:    path,
			Message: "failed to parse manifest",
			Cause:   err,
		}
	}
	manifest.dir = filepath.Dir(path)

	if len(manifest.Units) == 0 {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeConfiguration,
			File:    path,
			Message: "manifest declares no [[unit]] entries",
			Suggestions: []string{
				"declare at least one unit with name, inputs and output",
			},
		}
	}

	seen := make(map[string]bool)
	for i := range manifest.Units {
		unit := &manifest.Units[i]
		if unit.Name == "" {
			return nil, &models.GeneratorError{
				Type:    models.ErrorTypeConfiguration,
				File:    path,
				Message: fmt.Sprintf("unit %d has no name", i+1),
			}
		}
		if seen[unit.Name] {
			return nil, &models.GeneratorError{
				Type:    models.ErrorTypeConfiguration,
				File:    path,
				Message: fmt.Sprintf("duplicate unit name '%s'", unit.Name),
			}
		}
		seen[unit.Name] = true

		if len(unit.Inputs) == 0 {
			return nil, &models.GeneratorError{
				Type:    models.ErrorTypeConfiguration,
				File:    path,
				Message: fmt.Sprintf("unit '%s' has no inputs", unit.Name),
			}
		}
		if unit.Output == "" {
			unit.Output = DefaultOutputName(unit.Name)
		}
	}

	return &manifest, nil
}

// DefaultOutputName derives a header filename from a unit's logical name
func DefaultOutputName(unitName string) string {
	return strings.ReplaceAll(unitName, ".", "_") + "_generated.h"
}

// InputPath resolves a unit input path against the manifest directory
func (m *Manifest) InputPath(input string) string {
	if filepath.IsAbs(input) {
		return input
	}
	return filepath.Join(m.dir, input)
}

// OutputPath resolves a unit output path, honoring an output directory
// override
func (m *Manifest) OutputPath(unit *UnitConfig, outDir string) string {
	if outDir != "" {
		return filepath.Join(outDir, filepath.Base(unit.Output))
	}
	if filepath.IsAbs(unit.Output) {
		return unit.Output
	}
	return filepath.Join(m.dir, unit.Output)
}
