package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/adventofcode/internal/hcl"
	"github.com/vk/adventofcode/internal/registry"
)

const (
	day1Example = "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n"
	day2Example = "A Y\nB X\nC Z\n"
)

// setupAppTest creates a new app instance and returns it with its output and
// log buffers.
func setupAppTest(t *testing.T, appConfig *Config, modules ...registry.Module) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	appConfig.LogLevel = "debug"

	testApp, err := NewApp(out, logs, appConfig, hcl.NewLoader(), modules...)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("AOC_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
