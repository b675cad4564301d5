package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCLIRegistersExpectedFlags(t *testing.T) {
	root := NewCLI()
	for _, name := range []string{"registry", "config", "dump-table", "export-cbor", "verbose"} {
		assert.NotNil(t, root.Flags().Lookup(name), "missing flag %q", name)
	}
}

func TestNewCLIRequiresExactlyOneArg(t *testing.T) {
	root := NewCLI()
	root.SetArgs([]string{})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}

func TestRunTokenizeEndToEnd(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "sample.c")
	require.NoError(t, os.WriteFile(srcPath, []byte("int myCounter = 0;"), 0o644))

	root := NewCLI()
	root.SetArgs([]string{
		"--registry", filepath.Join(dir, "vocab.bin"),
		srcPath,
	})
	var out bytes.Buffer
	root.SetOut(&out)

	require.NoError(t, root.Execute())

	info, err := os.Stat(filepath.Join(dir, "vocab.bin"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
