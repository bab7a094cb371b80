package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/nativex-launcher/src/build"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// chdir changes the working directory for the rest of the test and
// restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(ToolPathEnv, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, build.DefaultToolPath, cfg.ToolPath)
	assert.Equal(t, "linux", cfg.Form.OS)
	assert.Equal(t, "amd64", cfg.Form.Arch)
	assert.Empty(t, cfg.Source)
	assert.Empty(t, cfg.EnvList())
}

func TestLoadYAML(t *testing.T) {
	t.Setenv(ToolPathEnv, "")
	path := writeConfig(t, "launcher.yml", `
version: 1
tool_path: ./nativex
env:
  GOFLAGS: -trimpath
  CGO_ENABLED: "0"
work_dir: /work
form:
  jre_path: /opt/jre
  os_name: darwin
  arch: arm64
  build_location: ./dist
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, "./nativex", cfg.ToolPath)
	assert.Equal(t, []string{"CGO_ENABLED=0", "GOFLAGS=-trimpath"}, cfg.EnvList())

	req := cfg.Request()
	assert.Equal(t, build.BuildRequest{
		ToolPath:      "./nativex",
		JREPath:       "/opt/jre",
		OS:            build.OSDarwin,
		Arch:          build.ArchARM64,
		BuildLocation: "./dist",
	}, req)

	l := cfg.NewLauncher()
	assert.Equal(t, "/work", l.Dir)
	assert.Equal(t, cfg.EnvList(), l.Env)
}

func TestLoadTOML(t *testing.T) {
	t.Setenv(ToolPathEnv, "")
	path := writeConfig(t, "launcher.toml", `
tool_path = "/opt/nativex/bin/nativex"

[form]
jar_path = "app.jar"
os_name = "windows"
build_name = "app.exe"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/nativex/bin/nativex", cfg.ToolPath)
	assert.Equal(t, "windows", cfg.Form.OS)
	assert.Equal(t, "amd64", cfg.Form.Arch, "unset keys keep their defaults")
	assert.Equal(t, "app.exe", cfg.Form.BuildName)
}

func TestLoadDefaultFileFallsBackToTOML(t *testing.T) {
	t.Setenv(ToolPathEnv, "")
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultTOMLFile), []byte(`tool_path = "./nx"`), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "./nx", cfg.ToolPath)
	assert.Equal(t, defaultTOMLFile, cfg.Source)
}

func TestLoadEnvOverridesToolPath(t *testing.T) {
	t.Setenv(ToolPathEnv, "/from/env")
	path := writeConfig(t, "launcher.yml", "tool_path: /from/file\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.ToolPath)
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	path := writeConfig(t, "launcher.yml", "version: 7\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config version 7")
}

func TestLoadRejectsBadEnums(t *testing.T) {
	path := writeConfig(t, "launcher.yml", `
form:
  os_name: plan9
  arch: mips
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "form.os_name")
	assert.Contains(t, err.Error(), "form.arch")
}

func TestLoadRejectsBadEnvName(t *testing.T) {
	path := writeConfig(t, "launcher.yml", "env:\n  \"A=B\": x\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid variable name")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "launcher.yml", "tool_path: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing "+path)
}

func TestValidateReportsEnvNamesInOrder(t *testing.T) {
	cfg := defaults()
	cfg.Env = map[string]string{"C D": "", "B=": "", "A\t": "", "": "", "OK": ""}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Equal(t,
		`env: invalid variable name ""; env: invalid variable name "A\t"; `+
			`env: invalid variable name "B="; env: invalid variable name "C D"`,
		err.Error())
}
