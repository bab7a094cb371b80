package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/nativex-launcher/src/config"
)

// fakeToolEnv turns the test binary into a stand-in for nativex.
const fakeToolEnv = "NATIVEX_FAKE_TOOL"

func TestMain(m *testing.M) {
	if mode := os.Getenv(fakeToolEnv); mode != "" {
		os.Exit(fakeTool(mode, os.Args[1:]))
	}
	os.Exit(m.Run())
}

func fakeTool(mode string, args []string) int {
	switch mode {
	case "lines":
		fmt.Println("line1")
		fmt.Println("line2")
		return 0
	case "exit1":
		return 1
	case "args":
		for _, a := range args {
			fmt.Println(a)
		}
		return 0
	default:
		return 2
	}
}

// fakeConfig writes a config whose tool is this test binary in mode.
func fakeConfig(t *testing.T, mode string) string {
	t.Helper()

	exe, err := os.Executable()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "launcher.yml")
	content := fmt.Sprintf("tool_path: %q\nenv:\n  %s: %s\nform:\n  jar_path: /srv/app.jar\n", exe, fakeToolEnv, mode)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.ToolPathEnv, "")
	t.Setenv("NO_COLOR", "1")
	t.Setenv("GITLAB_CI", "")

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuildStreamsToolOutput(t *testing.T) {
	out, err := execute(t, "build", "--config", fakeConfig(t, "lines"))
	require.NoError(t, err)

	assert.Contains(t, out, "launcher.yml", "context block names the config file")
	assert.Contains(t, out, "── Request")
	assert.Contains(t, out, "│ line1\n    │ line2\n    │ Process exited with code: 0\n")
	assert.Contains(t, out, "── Result")
}

func TestBuildNonZeroExitIsNotAnError(t *testing.T) {
	out, err := execute(t, "build", "--plain", "--config", fakeConfig(t, "exit1"))
	require.NoError(t, err)
	assert.Equal(t, "Process exited with code: 1\n", out)
}

func TestBuildPlain(t *testing.T) {
	out, err := execute(t, "build", "--plain", "--config", fakeConfig(t, "lines"))
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\nProcess exited with code: 0\n", out)
}

func TestBuildMissingTool(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nativex")
	out, err := execute(t, "build", "--plain", "--tool", missing, "--config", fakeConfig(t, "lines"))

	require.ErrorIs(t, err, errNotRun)
	assert.Contains(t, out, "Error: ")
	assert.NotContains(t, out, "Process exited")
}

func TestBuildFlagsOverrideConfig(t *testing.T) {
	out, err := execute(t, "build", "--plain",
		"--config", fakeConfig(t, "args"),
		"--os-name", "darwin",
		"--build-name", "my app",
	)
	require.NoError(t, err)

	assert.Equal(t, "--jre-path\n\n--jar-path\n/srv/app.jar\n--os-name\ndarwin\n--arch\namd64\n"+
		"--build-name\nmy app\n--build-location\n\nProcess exited with code: 0\n", out)
}

func TestBuildRejectsUnknownOS(t *testing.T) {
	_, err := execute(t, "build", "--config", fakeConfig(t, "lines"), "--os-name", "plan9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --os-name")
}

func TestConfigPrintsTOML(t *testing.T) {
	path := fakeConfig(t, "lines")
	out, err := execute(t, "config", "--format", "toml", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "# from "+path)
	assert.Contains(t, out, "[form]")
	assert.Regexp(t, `jar_path = ['"]/srv/app.jar['"]`, out)
}

func TestConfigPrintsYAML(t *testing.T) {
	out, err := execute(t, "config", "--config", fakeConfig(t, "lines"))
	require.NoError(t, err)
	assert.Contains(t, out, "os_name: linux")
}

func TestConfigRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "config", "--format", "json", "--config", fakeConfig(t, "lines"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown --format")
}

func TestVersionSkipsConfig(t *testing.T) {
	out, err := execute(t, "version", "--config", filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Contains(t, out, "nativex-launcher")
}
