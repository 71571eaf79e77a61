package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanDocComment(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "single line",
			raw:  "/** Runs a callback. */",
			want: []string{"Runs a callback."},
		},
		{
			name: "multi line",
			raw:  "/**\n * First line.\n * Second line.\n */",
			want: []string{"First line.", "Second line."},
		},
		{
			name: "bare star is an empty line",
			raw:  "/**\n * First.\n *\n * Second.\n */",
			want: []string{"First.", "", "Second."},
		},
		{
			name: "empty comment",
			raw:  "/** */",
			want: nil,
		},
		{
			name: "indentation stripped",
			raw:  "/**\n     * Deeply indented.\n     */",
			want: []string{"Deeply indented."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanDocComment(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanDocComment_RejectsUnmarkedLines(t *testing.T) {
	_, err := CleanDocComment("/**\n * fine\n broken\n */")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must start with '* '")
}
