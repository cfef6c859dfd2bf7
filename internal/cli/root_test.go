package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args, returning stdout+stderr output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd("v0.0.1")
	require.NotNil(t, root)
	assert.Equal(t, "scrollmenu", root.Use)
	assert.Equal(t, "v0.0.1", root.Version)

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "demo")
	assert.Contains(t, names, "config")
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	require.FileExists(t, path)

	// A second init without --force refuses to clobber the file.
	_, err = execute(t, "config", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--config", path, "--force")
	require.NoError(t, err)

	out, err = execute(t, "config", "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "menu:")
	assert.Contains(t, out, "step: auto")
}

func TestConfigValidate_RepairsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
menu:
  step: sideways
  animation_ms: -10
  mouse: true
`), 0o600))

	out, err := execute(t, "config", "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Warning:")
	assert.Contains(t, out, "step: auto")
}

func TestDemo_RequiresTerminal(t *testing.T) {
	// Test stdout is never a terminal.
	_, err := execute(t, "demo", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestDemoItems_TitleCasesLabels(t *testing.T) {
	items := demoItems([]string{"new arrivals", "sale"})
	require.Len(t, items, 2)
	assert.Equal(t, "New Arrivals", items[0].Label)
	assert.Equal(t, "Sale", items[1].Label)
}

func TestDefaultConfigPath(t *testing.T) {
	path := defaultConfigPath()
	if path != "" {
		assert.Contains(t, path, ".scrollmenu")
	}
}
