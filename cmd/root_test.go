package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommandWritesDocuments(t *testing.T) {
	root := filepath.Join(t.TempDir(), "project")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("world!"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dist.txt"), []byte("skipped"), 0644))
	outDir := t.TempDir()

	out, err := runRoot(t, "--dir", root, "--output-dir", outDir, "--identifier", "testrun", "--skip", "dist.txt")
	require.NoError(t, err)

	summaries, err := filepath.Glob(filepath.Join(outDir, "output_*_testrun_summary.txt"))
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	lengths, err := filepath.Glob(filepath.Join(outDir, "output_*_testrun_lengths.txt"))
	require.NoError(t, err)
	require.Len(t, lengths, 1)

	assert.Contains(t, out, "Summary written to "+summaries[0])
	assert.Contains(t, out, "Lengths written to "+lengths[0])

	summary, err := os.ReadFile(summaries[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(summary), "project/\n    a.txt\n    sub/\n        b.txt\n"))
	assert.NotContains(t, string(summary), "dist.txt")

	lengthsDoc, err := os.ReadFile(lengths[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(lengthsDoc), "Total Length: 11\n\n"))
}

func TestRootCommandRejectsArguments(t *testing.T) {
	_, err := runRoot(t, "unexpected")
	assert.Error(t, err)
}

func TestRootCommandInvalidIdentifier(t *testing.T) {
	_, err := runRoot(t, "--dir", t.TempDir(), "--output-dir", t.TempDir(), "--identifier", "a/b")
	assert.ErrorContains(t, err, "error loading configuration")
}

func TestRootCommandMissingDirectory(t *testing.T) {
	_, err := runRoot(t, "--dir", filepath.Join(t.TempDir(), "missing"), "--output-dir", t.TempDir())
	assert.Error(t, err)
}
