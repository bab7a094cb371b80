//go:build gui

package gui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/nativex-launcher/src/build"
)

func defaults() build.BuildRequest {
	return build.BuildRequest{
		ToolPath:      "./nativex",
		JREPath:       "/opt/jre",
		OS:            build.OSLinux,
		Arch:          build.ArchAMD64,
		BuildLocation: "dist",
	}
}

func TestRequestReadsWidgets(t *testing.T) {
	a := test.NewTempApp(t)
	w := NewWindow(a, build.NewLauncher(), defaults(), Options{EditableTool: true})

	w.toolEntry.SetText("/usr/bin/nativex")
	w.jarEntry.SetText("/srv/app.jar")
	w.osSelect.SetSelected("darwin")
	w.archSelect.SetSelected("arm64")
	w.nameEntry.SetText("app")

	assert.Equal(t, build.BuildRequest{
		ToolPath:      "/usr/bin/nativex",
		JREPath:       "/opt/jre",
		JARPath:       "/srv/app.jar",
		OS:            build.OSDarwin,
		Arch:          build.ArchARM64,
		BuildName:     "app",
		BuildLocation: "dist",
	}, w.Request())
}

func TestFixedToolPathIgnoresEntry(t *testing.T) {
	a := test.NewTempApp(t)
	w := NewWindow(a, build.NewLauncher(), defaults(), Options{})

	w.toolEntry.SetText("/elsewhere")

	assert.Equal(t, "./nativex", w.Request().ToolPath)
}

// snapshot reads the window state on the fyne thread.
func snapshot(w *Window) (lines []string, disabled bool) {
	fyne.DoAndWait(func() {
		lines = append([]string(nil), w.lines...)
		disabled = w.buildBtn.Disabled()
	})
	return lines, disabled
}

func TestBuildButtonRunsOnceAndReenables(t *testing.T) {
	dir := t.TempDir()
	gate := filepath.Join(dir, "gate")
	count := filepath.Join(dir, "count")

	exe, err := os.Executable()
	require.NoError(t, err)

	l := build.NewLauncher()
	l.Env = []string{
		fakeToolEnv + "=1",
		fakeGateEnv + "=" + gate,
		fakeCountEnv + "=" + count,
	}
	req := defaults()
	req.ToolPath = exe

	a := test.NewTempApp(t)
	w := NewWindow(a, l, req, Options{})

	w.buildBtn.OnTapped()
	w.buildBtn.OnTapped()
	_, disabled := snapshot(w)
	assert.True(t, disabled, "button stays disabled while building")

	require.NoError(t, os.WriteFile(gate, nil, 0o644))
	res := w.panel.Wait()
	require.NotNil(t, res)
	assert.Equal(t, 0, res.ExitCode)

	assert.Eventually(t, func() bool {
		_, disabled := snapshot(w)
		return !disabled
	}, 5*time.Second, 10*time.Millisecond)

	lines, _ := snapshot(w)
	assert.Equal(t, []string{"building", "done", build.ExitLine(0)}, lines)

	data, err := os.ReadFile(count)
	require.NoError(t, err)
	assert.Equal(t, "started\n", string(data))
}
