package tui

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/sofmeright/nativex-launcher/src/build"
)

// FormOptions controls how the form is laid out.
type FormOptions struct {
	// EditableTool shows the tool path as a form field. When false the
	// configured path is used as-is.
	EditableTool bool

	// Browse replaces path inputs with file pickers.
	Browse bool
}

type pickKind int

const (
	pickFile pickKind = iota // any file, directories hidden from selection
	pickDir                  // directories only
	pickJar                  // .jar files only
)

// RunForm asks for the build values, starting from req. It returns
// huh.ErrUserAborted if the user backs out.
func RunForm(req build.BuildRequest, opts FormOptions) (build.BuildRequest, error) {
	osName := string(req.OS)
	arch := string(req.Arch)

	var fields []huh.Field
	if opts.EditableTool {
		fields = append(fields, pathField("NativeX CLI Path", &req.ToolPath, pickFile, opts.Browse))
	}
	fields = append(fields,
		pathField("JRE Folder", &req.JREPath, pickDir, opts.Browse),
		pathField("JAR File", &req.JARPath, pickJar, opts.Browse),
		huh.NewSelect[string]().
			Title("Target OS").
			Options(huh.NewOptions(build.OSNames()...)...).
			Value(&osName),
		huh.NewSelect[string]().
			Title("Architecture").
			Options(huh.NewOptions(build.ArchNames()...)...).
			Value(&arch),
		huh.NewInput().
			Title("Build Name").
			Value(&req.BuildName),
		pathField("Build Location", &req.BuildLocation, pickDir, opts.Browse),
	)

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeCharm())
	if err := form.Run(); err != nil {
		return req, err
	}

	req.OS = build.TargetOS(osName)
	req.Arch = build.Arch(arch)
	return req, nil
}

func pathField(title string, value *string, kind pickKind, browse bool) huh.Field {
	if !browse {
		return huh.NewInput().Title(title).Value(value)
	}

	fp := huh.NewFilePicker().
		Title(title).
		CurrentDirectory(startDir(*value, kind)).
		Value(value)
	switch kind {
	case pickDir:
		fp = fp.DirAllowed(true).FileAllowed(false)
	case pickJar:
		fp = fp.AllowedTypes([]string{".jar"})
	}
	return fp
}

// startDir picks where a file picker opens: next to the current value if
// there is one, otherwise the working directory.
func startDir(value string, kind pickKind) string {
	if value == "" {
		return "."
	}
	if kind == pickDir {
		if fi, err := os.Stat(value); err == nil && fi.IsDir() {
			return value
		}
	}
	dir := filepath.Dir(value)
	if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
		return dir
	}
	return "."
}
