package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/toyz/vtgen/internal/cli"
	"github.com/toyz/vtgen/internal/models"
	"github.com/toyz/vtgen/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		manifestFlag = flag.String("manifest", "", "Path to a vtgen.toml manifest describing generation units")
		outFlag      = flag.String("out", "", "Directory to write generated headers into (overrides manifest outputs)")
		unitFlag     = flag.String("unit", "", "Comma-separated unit names to generate (manifest mode, defaults to all)")
		verboseFlag  = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag    = flag.Bool("quiet", false, "Only show errors and final results")
		cleanFlag    = flag.Bool("clean", false, "Delete previously generated headers instead of generating")
		helpFlag     = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [directory-paths...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "vtgen C Header Generator\n")
		fmt.Fprintf(os.Stderr, "Translates .vt interface descriptions into C11 headers with vtable structs\n")
		fmt.Fprintf(os.Stderr, "and null-safe wrapper functions.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  directory-paths    Directories to scan for .vt files (ignored in manifest mode)\n")
		fmt.Fprintf(os.Stderr, "                     Supports Go-style patterns like './...' for recursive scanning\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./idl                                # Generate headers next to each .vt file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s ./idl/...                            # Scan recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --manifest vtgen.toml                # Generate every unit in the manifest\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --manifest vtgen.toml --unit shape   # Generate a single unit\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --manifest vtgen.toml --out include  # Redirect outputs to a directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --clean ./idl/...                    # Delete generated headers\n", os.Args[0])
	}

	flag.Parse()

	// Show help if requested
	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if *manifestFlag == "" && len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: a manifest or at least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// Create diagnostic system based on flags
	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	config := &cli.Config{
		ManifestPath: *manifestFlag,
		Directories:  args,
		OutDir:       *outFlag,
		Verbose:      *verboseFlag,
	}
	if *unitFlag != "" {
		for _, name := range strings.Split(*unitFlag, ",") {
			if name = strings.TrimSpace(name); name != "" {
				config.UnitFilter = append(config.UnitFilter, name)
			}
		}
	}

	diagnostics.Section("vtgen Header Generator")

	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		if config.ManifestPath != "" {
			diagnostics.List("Manifest: %s", config.ManifestPath)
		} else {
			diagnostics.List("Target directories: %s", strings.Join(args, ", "))
		}
		if config.OutDir != "" {
			diagnostics.List("Output directory: %s", config.OutDir)
		}
		if len(config.UnitFilter) > 0 {
			diagnostics.List("Units: %s", strings.Join(config.UnitFilter, ", "))
		}
	}

	// Handle clean operation
	if *cleanFlag {
		cleaner := cli.NewCleaner(config, diagnostics)
		if err := cleaner.Run(); err != nil {
			reportError(diagnostics, err, *verboseFlag)
			os.Exit(1)
		}
		return
	}

	generator := cli.NewGenerator(config, diagnostics)
	if err := generator.Run(); err != nil {
		reportError(diagnostics, err, *verboseFlag)
		os.Exit(1)
	}

	// Show generated files in verbose mode
	summary := generator.Summary()
	if *verboseFlag && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}

	diagnostics.Success("Headers are ready to include")
}

// reportError prints a generation failure, expanding the structured
// detail of GeneratorError values in verbose mode
func reportError(diagnostics *utils.DiagnosticSystem, err error, verbose bool) {
	diagnostics.Error("Generation failed: %v", err)

	var genErr *models.GeneratorError
	if verbose && errors.As(err, &genErr) {
		for _, suggestion := range genErr.Suggestions {
			diagnostics.List("hint: %s", suggestion)
		}
	}
}
