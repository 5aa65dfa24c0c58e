package snapshot

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"codesnap/pkg/ignore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestGenerateTree(t *testing.T) {
	root := newProject(t)
	writeFiles(t, root, map[string]string{
		"a.txt":                          "hello",
		"bin.dat":                        "\xff\xfe",
		".hidden":                        "secret",
		".git/config":                    "[core]",
		"Vm.json":                        "{}",
		"sub/b.txt":                      "world!",
		"sub/deeper/c.go":                "package c",
		"Vm.json.d/kept.txt":             "kept",
		"out_29ph50JZ7_dir/inner.txt":    "never listed",
		"output_x_29ph50JZ7_summary.txt": "old run",
	})
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0755))

	gi := ignore.NewMatcher("29ph50JZ7", []string{"Vm.json", "VmSafe.json"}, zaptest.NewLogger(t))
	tree, err := GenerateTree(root, gi, zaptest.NewLogger(t))
	require.NoError(t, err)

	expected := "project/\n" +
		"    a.txt\n" +
		"    bin.dat\n" +
		"    Vm.json.d/\n" +
		"        kept.txt\n" +
		"    empty/\n" +
		"    sub/\n" +
		"        b.txt\n" +
		"        deeper/\n" +
		"            c.go\n"
	assert.Equal(t, expected, tree)
}

func TestGenerateTreePrunesSkippedDirectories(t *testing.T) {
	root := newProject(t)
	writeFiles(t, root, map[string]string{
		"node/keep.txt":       "x",
		"VmSafe.json/a.txt":   "x",
		".cache/b/c/d.txt":    "x",
		"run_ID123/nested.md": "x",
	})

	gi := ignore.NewMatcher("ID123", []string{"VmSafe.json"}, nil)
	tree, err := GenerateTree(root, gi, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, "project/\n    node/\n        keep.txt\n", tree)
}

func TestGenerateTreeEmptyRoot(t *testing.T) {
	root := newProject(t)

	tree, err := GenerateTree(root, ignore.NewMatcher("id", nil, nil), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "project/\n", tree)
}

func TestGenerateTreeMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")

	_, err := GenerateTree(root, ignore.NewMatcher("id", nil, nil), zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestGenerateTreeSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on windows")
	}
	root := newProject(t)
	writeFiles(t, root, map[string]string{
		"real/file.txt": "x",
	})
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "linkdir")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.txt"), filepath.Join(root, "broken")))

	tree, err := GenerateTree(root, ignore.NewMatcher("id", nil, nil), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, "project/\n    broken\n    real/\n        file.txt\n", tree)
}

func TestGenerateTreeOmitsUnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for this user")
	}
	root := newProject(t)
	writeFiles(t, root, map[string]string{
		"a.txt":          "x",
		"locked/in.txt":  "x",
		"open/later.txt": "x",
	})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	tree, err := GenerateTree(root, ignore.NewMatcher("id", nil, nil), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, "project/\n    a.txt\n    open/\n        later.txt\n", tree)
}

func TestDirectoryLabel(t *testing.T) {
	assert.Equal(t, "project", directoryLabel(filepath.Join("tmp", "project")))
	if runtime.GOOS != "windows" {
		assert.Equal(t, "", directoryLabel("/"))
	}
}
