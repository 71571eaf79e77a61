package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/toyz/vtgen/internal/generator"
	"github.com/toyz/vtgen/internal/models"
	"github.com/toyz/vtgen/internal/parser"
	"github.com/toyz/vtgen/internal/utils"
)

// Generator orchestrates a full generation run: locate inputs, parse
// them into unit metadata, synthesize headers and write them to disk
type Generator struct {
	config      *Config
	scanner     *DirectoryScanner
	parser      *parser.Parser
	headers     generator.HeaderGenerator
	diagnostics *utils.DiagnosticSystem
	summary     GenerationSummary
}

// GenerationSummary collects statistics for the end-of-run report
type GenerationSummary struct {
	UnitsProcessed    int
	InterfacesFound   int
	WrappersGenerated int
	GeneratedFiles    []string
}

// NewGenerator creates a CLI generator with the given configuration
func NewGenerator(config *Config, diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		config:      config,
		scanner:     NewDirectoryScanner(),
		parser:      parser.NewParser(),
		headers:     generator.NewGenerator(),
		diagnostics: diagnostics,
	}
}

// Run executes the generation pass selected by the configuration:
// manifest mode when a manifest path is set, directory scan otherwise
func (g *Generator) Run() error {
	if g.config.ManifestPath != "" {
		return g.runManifest()
	}
	return g.runDirectories()
}

// Summary returns the statistics collected during Run
func (g *Generator) Summary() GenerationSummary {
	return g.summary
}

func (g *Generator) runManifest() error {
	manifest, err := LoadManifest(g.config.ManifestPath)
	if err != nil {
		return err
	}

	units, err := selectUnits(manifest, g.config.UnitFilter)
	if err != nil {
		return err
	}

	g.diagnostics.Section("Generating headers")
	for _, unit := range units {
		inputs := make([]string, len(unit.Inputs))
		for i, input := range unit.Inputs {
			inputs[i] = manifest.InputPath(input)
		}
		output := manifest.OutputPath(unit, g.config.OutDir)
		if err := g.generateUnit(unit.Name, inputs, output); err != nil {
			return err
		}
	}

	g.report()
	return nil
}

func (g *Generator) runDirectories() error {
	files, err := g.scanner.FindDescriptionFiles(g.config.Directories)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		g.diagnostics.Warn("no %s files found", DescriptionExtension)
		return nil
	}

	g.diagnostics.Section("Generating headers")
	for _, file := range files {
		output := GeneratedPathForFile(file)
		if g.config.OutDir != "" {
			output = filepath.Join(g.config.OutDir, filepath.Base(output))
		}
		if err := g.generateUnit(UnitNameForFile(file), []string{file}, output); err != nil {
			return err
		}
	}

	g.report()
	return nil
}

func (g *Generator) generateUnit(name string, inputs []string, output string) error {
	g.diagnostics.Verbose("processing unit '%s' (%d input(s))", name, len(inputs))

	unit := &models.UnitMetadata{}
	for _, input := range inputs {
		parsed, err := g.parser.ParseFile(input)
		if err != nil {
			return err
		}
		unit.Append(parsed)
	}

	header, err := g.headers.GenerateHeader(name, unit)
	if err != nil {
		return err
	}
	header.FilePath = output

	if err := writeFileAtomic(output, []byte(header.Content)); err != nil {
		return err
	}
	g.diagnostics.WritingFile(output)

	g.summary.UnitsProcessed++
	g.summary.InterfacesFound += len(unit.Interfaces)
	g.summary.WrappersGenerated += header.WrapperCount
	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, output)
	return nil
}

func (g *Generator) report() {
	g.diagnostics.Summary("Generation complete", []utils.SummaryStat{
		{Name: "Units", Value: fmt.Sprintf("%d", g.summary.UnitsProcessed)},
		{Name: "Interfaces", Value: fmt.Sprintf("%d", g.summary.InterfacesFound)},
		{Name: "Wrappers", Value: fmt.Sprintf("%d", g.summary.WrappersGenerated)},
		{Name: "Files written", Value: fmt.Sprintf("%d", len(g.summary.GeneratedFiles))},
	})
}

// selectUnits narrows the manifest units to the requested names; an
// empty filter selects everything
func selectUnits(manifest *Manifest, filter []string) ([]*UnitConfig, error) {
	if len(filter) == 0 {
		units := make([]*UnitConfig, len(manifest.Units))
		for i := range manifest.Units {
			units[i] = &manifest.Units[i]
		}
		return units, nil
	}

	byName := make(map[string]*UnitConfig, len(manifest.Units))
	for i := range manifest.Units {
		byName[manifest.Units[i].Name] = &manifest.Units[i]
	}

	var units []*UnitConfig
	for _, name := range filter {
		unit, ok := byName[name]
		if !ok {
			return nil, &models.GeneratorError{
				Type:    models.ErrorTypeConfiguration,
				Message: fmt.Sprintf("unknown unit '%s'", name),
				Suggestions: []string{
					"check the [[unit]] names declared in the manifest",
				},
			}
		}
		units = append(units, unit)
	}
	return units, nil
}

// writeFileAtomic writes content through a temporary file and a rename
// so collaborators never observe a half-written header
func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    path,
			Message: "failed to create output directory",
			Cause:   err,
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    path,
			Message: "failed to create temporary file",
			Cause:   err,
		}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    path,
			Message: "failed to write header",
			Cause:   err,
		}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    path,
			Message: "failed to close temporary file",
			Cause:   err,
		}
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    path,
			Message: "failed to set header permissions",
			Cause:   err,
		}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    path,
			Message: "failed to move header into place",
			Cause:   err,
		}
	}
	return nil
}
