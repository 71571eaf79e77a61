package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/vtgen/internal/models"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vtgen.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
[[unit]]
name = "ivan.basic"
inputs = ["idl/basic.vt"]
output = "include/basic_generated.h"

[[unit]]
name = "ducklogic.shape"
inputs = ["idl/shape.vt", "idl/shape_ext.vt"]
`)

	manifest, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, manifest.Units, 2)

	basic := manifest.Units[0]
	assert.Equal(t, "ivan.basic", basic.Name)
	assert.Equal(t, []string{"idl/basic.vt"}, basic.Inputs)
	assert.Equal(t, "include/basic_generated.h", basic.Output)

	shape := manifest.Units[1]
	assert.Len(t, shape.Inputs, 2)
	assert.Equal(t, "ducklogic_shape_generated.h", shape.Output, "missing output gets a derived default")
}

func TestLoadManifest_PathResolution(t *testing.T) {
	path := writeManifest(t, `
[[unit]]
name = "basic"
inputs = ["idl/basic.vt"]
output = "include/basic_generated.h"
`)
	dir := filepath.Dir(path)

	manifest, err := LoadManifest(path)
	require.NoError(t, err)

	unit := &manifest.Units[0]
	assert.Equal(t, filepath.Join(dir, "idl", "basic.vt"), manifest.InputPath("idl/basic.vt"))
	assert.Equal(t, filepath.Join(dir, "include", "basic_generated.h"), manifest.OutputPath(unit, ""))
	assert.Equal(t, filepath.Join("build", "basic_generated.h"), manifest.OutputPath(unit, "build"),
		"an output directory override keeps only the base name")
}

func TestLoadManifest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			name:    "no units",
			content: `# empty`,
			message: "no [[unit]] entries",
		},
		{
			name: "missing name",
			content: `
[[unit]]
inputs = ["a.vt"]
`,
			message: "has no name",
		},
		{
			name: "missing inputs",
			content: `
[[unit]]
name = "basic"
`,
			message: "has no inputs",
		},
		{
			name: "duplicate names",
			content: `
[[unit]]
name = "basic"
inputs = ["a.vt"]

[[unit]]
name = "basic"
inputs = ["b.vt"]
`,
			message: "duplicate unit name 'basic'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadManifest(writeManifest(t, tt.content))
			require.Error(t, err)
			assert.True(t, models.IsErrorType(err, models.ErrorTypeConfiguration))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadManifest_BadTOML(t *testing.T) {
	_, err := LoadManifest(writeManifest(t, `[[unit]`))
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeConfiguration))
}

func TestDefaultOutputName(t *testing.T) {
	assert.Equal(t, "ivan_basic_generated.h", DefaultOutputName("ivan.basic"))
	assert.Equal(t, "shape_generated.h", DefaultOutputName("shape"))
}
