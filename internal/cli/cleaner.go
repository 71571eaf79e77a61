package cli

import (
	"os"

	"github.com/toyz/vtgen/internal/models"
	"github.com/toyz/vtgen/internal/utils"
)

// Cleaner removes previously generated headers
type Cleaner struct {
	config      *Config
	scanner     *DirectoryScanner
	diagnostics *utils.DiagnosticSystem
}

// NewCleaner creates a cleaner with the given configuration
func NewCleaner(config *Config, diagnostics *utils.DiagnosticSystem) *Cleaner {
	return &Cleaner{
		config:      config,
		scanner:     NewDirectoryScanner(),
		diagnostics: diagnostics,
	}
}

// Run deletes the headers the current configuration would generate:
// manifest outputs in manifest mode, input-adjacent headers in scan mode
func (c *Cleaner) Run() error {
	var targets []string

	if c.config.ManifestPath != "" {
		manifest, err := LoadManifest(c.config.ManifestPath)
		if err != nil {
			return err
		}
		units, err := selectUnits(manifest, c.config.UnitFilter)
		if err != nil {
			return err
		}
		for _, unit := range units {
			targets = append(targets, manifest.OutputPath(unit, c.config.OutDir))
		}
	} else {
		files, err := c.scanner.FindDescriptionFiles(c.config.Directories)
		if err != nil {
			return err
		}
		for _, file := range files {
			targets = append(targets, GeneratedPathForFile(file))
		}
	}

	removed := 0
	for _, target := range targets {
		err := os.Remove(target)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return &models.GeneratorError{
				Type:    models.ErrorTypeFileSystem,
				File:    target,
				Message: "failed to remove generated header",
				Cause:   err,
			}
		}
		c.diagnostics.Verbose("removed %s", target)
		removed++
	}

	c.diagnostics.Success("removed %d generated header(s)", removed)
	return nil
}
