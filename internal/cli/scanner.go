package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/vtgen/internal/models"
)

// DescriptionExtension is the file extension of interface description files
const DescriptionExtension = ".vt"

// DirectoryScanner discovers interface description files on disk
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// FindDescriptionFiles locates .vt files in the given directories.
// A trailing "/..." on a directory requests recursive traversal.
// Results are sorted so repeated runs process files in the same order.
func (s *DirectoryScanner) FindDescriptionFiles(directories []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, dir := range directories {
		recursive := false
		if strings.HasSuffix(dir, "/...") {
			recursive = true
			dir = strings.TrimSuffix(dir, "/...")
		}
		if dir == "" {
			dir = "."
		}

		found, err := s.scanDirectory(dir, recursive)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func (s *DirectoryScanner) scanDirectory(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    dir,
			Message: "cannot access directory",
			Cause:   err,
		}
	}
	if !info.IsDir() {
		if strings.HasSuffix(dir, DescriptionExtension) {
			return []string{dir}, nil
		}
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    dir,
			Message: "not a directory or interface description file",
		}
	}

	var files []string
	if recursive {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				// skip hidden directories during traversal
				name := d.Name()
				if name != "." && strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(path, DescriptionExtension) {
				files = append(files, path)
			}
			return nil
		})
	} else {
		var entries []os.DirEntry
		entries, err = os.ReadDir(dir)
		if err == nil {
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), DescriptionExtension) {
					files = append(files, filepath.Join(dir, entry.Name()))
				}
			}
		}
	}
	if err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    dir,
			Message: "failed to scan directory",
			Cause:   err,
		}
	}

	return files, nil
}

// UnitNameForFile derives a unit's logical name from a description file
// path: the base name without the extension
func UnitNameForFile(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, DescriptionExtension)
}

// GeneratedPathForFile derives the header path written next to a
// description file in scan mode
func GeneratedPathForFile(path string) string {
	return strings.TrimSuffix(path, DescriptionExtension) + "_generated.h"
}
