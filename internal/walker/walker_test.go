package walker_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solstack-labs/solstyle/internal/walker"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("contract A { }\n"), 0o644))
}

func TestDiscoverWalksRecursively(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Token.sol"))
	writeFile(t, filepath.Join(dir, "vault", "Vault.sol"))
	writeFile(t, filepath.Join(dir, "README.md"))

	paths, err := walker.New(nil).Discover([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "Token.sol"),
		filepath.Join(dir, "vault", "Vault.sol"),
	}, paths)
}

func TestDiscoverSkipsVendoredAndBuildDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Token.sol"))
	writeFile(t, filepath.Join(dir, "lib", "forge-std", "Test.sol"))
	writeFile(t, filepath.Join(dir, "out", "Token.sol"))
	writeFile(t, filepath.Join(dir, "cache", "Cached.sol"))

	paths, err := walker.New(nil).Discover([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "Token.sol")}, paths)
}

func TestDiscoverExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "A.sol")
	b := filepath.Join(dir, "B.sol")
	writeFile(t, a)
	writeFile(t, b)

	// Explicit targets keep their given order.
	paths, err := walker.New(nil).Discover([]string{b, a})
	require.NoError(t, err)
	assert.Equal(t, []string{b, a}, paths)
}

func TestDiscoverMissingTarget(t *testing.T) {
	_, err := walker.New(nil).Discover([]string{filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}
