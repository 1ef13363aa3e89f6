package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solstack-labs/solstyle/pkg/lint/source"
)

func TestLines(t *testing.T) {
	f := source.New("a.sol", "one\ntwo\nthree")
	assert.Equal(t, []string{"one", "two", "three"}, f.Lines())
	assert.Equal(t, "two", f.Line(2))
	assert.Equal(t, "", f.Line(0))
	assert.Equal(t, "", f.Line(4))
}

func TestLineAt(t *testing.T) {
	f := source.New("a.sol", "one\ntwo\nthree")

	tests := []struct {
		offset int
		want   int
	}{
		{0, 1},  // start of "one"
		{3, 1},  // the first newline itself
		{4, 2},  // start of "two"
		{8, 3},  // start of "three"
		{13, 3}, // end of text
		{-1, 1}, // clamped
		{99, 3}, // clamped past the end
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.LineAt(tt.offset), "offset %d", tt.offset)
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Token.sol")
	require.NoError(t, os.WriteFile(path, []byte("contract Token { }\n"), 0o644))

	f, err := source.Read(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)
	assert.Equal(t, "contract Token { }\n", f.Text)

	_, err = source.Read(filepath.Join(dir, "missing.sol"))
	assert.Error(t, err)
}
