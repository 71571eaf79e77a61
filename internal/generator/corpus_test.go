package generator

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/toyz/vtgen/internal/parser"
)

// TestGenerateHeader_Corpus runs every archive under testdata/corpus.
// Each archive holds one input description and the exact header it must
// produce; the archive comment names the generation unit.
func TestGenerateHeader_Corpus(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "corpus", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, archives, "corpus must contain at least one archive")

	for _, path := range archives {
		name := strings.TrimSuffix(filepath.Base(path), ".txtar")
		t.Run(name, func(t *testing.T) {
			archive, err := txtar.ParseFile(path)
			require.NoError(t, err)

			unitName := strings.TrimSpace(string(archive.Comment))
			require.NotEmpty(t, unitName, "archive comment must name the unit")

			var input, expected string
			for _, file := range archive.Files {
				switch file.Name {
				case "input.vt":
					input = string(file.Data)
				case "expected.h":
					expected = string(file.Data)
				}
			}
			require.NotEmpty(t, input, "archive must contain input.vt")
			require.NotEmpty(t, expected, "archive must contain expected.h")

			unit, err := parser.NewParser().ParseSource(name+".vt", input)
			require.NoError(t, err)

			header, err := NewGenerator().GenerateHeader(unitName, unit)
			require.NoError(t, err)

			if diff := cmp.Diff(expected, header.Content); diff != "" {
				t.Errorf("generated header mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
