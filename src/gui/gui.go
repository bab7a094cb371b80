//go:build gui

// Package gui is the desktop front-end: a form, a Build button and a
// read-only log of the tool's output.
package gui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/sofmeright/nativex-launcher/src/build"
)

const appID = "com.sofmeright.nativex-launcher"

// Options controls which fields the window offers.
type Options struct {
	// EditableTool adds a tool path row with its own Browse button. When
	// false the path from the defaults is used unchanged.
	EditableTool bool
}

// Window holds the widgets of one builder window. It is the Display of its
// panel; every Display call is moved onto the fyne thread with fyne.Do.
type Window struct {
	win   fyne.Window
	panel *build.Panel
	opts  Options

	toolPath string

	toolEntry     *widget.Entry
	jreEntry      *widget.Entry
	jarEntry      *widget.Entry
	osSelect      *widget.Select
	archSelect    *widget.Select
	nameEntry     *widget.Entry
	locationEntry *widget.Entry
	buildBtn      *widget.Button

	lines []string
	log   *widget.List
}

// Run opens the builder window and blocks until it is closed.
func Run(l *build.Launcher, defaults build.BuildRequest, opts Options) error {
	a := app.NewWithID(appID)
	w := NewWindow(a, l, defaults, opts)
	w.win.ShowAndRun()
	return nil
}

// NewWindow builds the window without showing it.
func NewWindow(a fyne.App, l *build.Launcher, defaults build.BuildRequest, opts Options) *Window {
	w := &Window{
		win:      a.NewWindow("NativeX GUI Builder"),
		opts:     opts,
		toolPath: defaults.ToolPath,
	}
	w.panel = build.NewPanel(l, w)

	w.toolEntry = newEntry(defaults.ToolPath)
	w.jreEntry = newEntry(defaults.JREPath)
	w.jarEntry = newEntry(defaults.JARPath)
	w.nameEntry = newEntry(defaults.BuildName)
	w.locationEntry = newEntry(defaults.BuildLocation)

	w.osSelect = widget.NewSelect(build.OSNames(), nil)
	w.osSelect.SetSelected(string(defaults.OS))
	w.archSelect = widget.NewSelect(build.ArchNames(), nil)
	w.archSelect.SetSelected(string(defaults.Arch))

	w.buildBtn = widget.NewButton("Build", w.onBuild)
	w.buildBtn.Importance = widget.HighImportance

	w.log = widget.NewList(
		func() int { return len(w.lines) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(w.lines[id])
		},
	)

	form := widget.NewForm()
	if opts.EditableTool {
		form.Append("NativeX CLI Path:", withBrowse(w.toolEntry, w.pickTool))
	}
	form.Append("JRE Folder:", withBrowse(w.jreEntry, w.pickFolder(w.jreEntry)))
	form.Append("JAR File:", withBrowse(w.jarEntry, w.pickJar))
	form.Append("Target OS:", w.osSelect)
	form.Append("Architecture:", w.archSelect)
	form.Append("Build Name:", w.nameEntry)
	form.Append("Build Location:", withBrowse(w.locationEntry, w.pickFolder(w.locationEntry)))

	top := container.NewVBox(form, w.buildBtn)
	w.win.SetContent(container.NewBorder(top, nil, nil, nil, w.log))
	w.win.Resize(fyne.NewSize(720, 560))
	w.win.CenterOnScreen()
	return w
}

func newEntry(text string) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(text)
	return e
}

func withBrowse(entry *widget.Entry, browse func()) fyne.CanvasObject {
	return container.NewBorder(nil, nil, nil, widget.NewButton("Browse", browse), entry)
}

// Request snapshots the current widget values.
func (w *Window) Request() build.BuildRequest {
	tool := w.toolPath
	if w.opts.EditableTool {
		tool = w.toolEntry.Text
	}
	return build.BuildRequest{
		ToolPath:      tool,
		JREPath:       w.jreEntry.Text,
		JARPath:       w.jarEntry.Text,
		OS:            build.TargetOS(w.osSelect.Selected),
		Arch:          build.Arch(w.archSelect.Selected),
		BuildName:     w.nameEntry.Text,
		BuildLocation: w.locationEntry.Text,
	}
}

func (w *Window) onBuild() {
	// Disable on the click itself so a double click cannot get through
	// before the panel's own disable lands.
	w.buildBtn.Disable()
	err := w.panel.Trigger(w.Request())
	switch {
	case err == nil:
	case errors.Is(err, build.ErrBusy):
		// The running build re-enables the button when it ends.
		if !w.panel.Running() {
			w.buildBtn.Enable()
		}
	default:
		w.buildBtn.Enable()
		dialog.ShowError(err, w.win)
	}
}

func (w *Window) pickTool() {
	dialog.ShowFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		defer r.Close()
		w.toolEntry.SetText(r.URI().Path())
	}, w.win)
}

func (w *Window) pickJar() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		defer r.Close()
		w.jarEntry.SetText(r.URI().Path())
	}, w.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".jar"}))
	d.Show()
}

func (w *Window) pickFolder(entry *widget.Entry) func() {
	return func() {
		dialog.ShowFolderOpen(func(u fyne.ListableURI, err error) {
			if err != nil || u == nil {
				return
			}
			entry.SetText(u.Path())
		}, w.win)
	}
}

// Clear empties the log view.
func (w *Window) Clear() {
	fyne.Do(func() {
		w.lines = w.lines[:0]
		w.log.Refresh()
	})
}

// AppendLine adds a line to the log view and scrolls to it.
func (w *Window) AppendLine(line string) {
	fyne.Do(func() {
		w.lines = append(w.lines, line)
		w.log.Refresh()
		w.log.ScrollToBottom()
	})
}

// SetBuildEnabled toggles the Build button.
func (w *Window) SetBuildEnabled(enabled bool) {
	fyne.Do(func() {
		if enabled {
			w.buildBtn.Enable()
		} else {
			w.buildBtn.Disable()
		}
	})
}
