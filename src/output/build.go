package output

import (
	"io"
	"strconv"

	"github.com/sofmeright/nativex-launcher/src/build"
)

// RequestSection renders the form values a build is about to run with.
func RequestSection(w io.Writer, req build.BuildRequest, color bool) {
	sec := NewSection(w, "Request", 0, color)
	sec.Row("%-16s→ %s", "tool", req.ToolPath)
	sec.Row("%-16s→ %s", "jre", req.JREPath)
	sec.Row("%-16s→ %s", "jar", req.JARPath)
	sec.Row("%-16s→ %s/%s", "target", req.OS, req.Arch)
	sec.Row("%-16s→ %s", "build name", req.BuildName)
	sec.Row("%-16s→ %s", "build location", req.BuildLocation)
	sec.Separator()
	sec.Line(Dimmed(req.CommandLine(), color))
	sec.Close()
}

// ResultSection renders the outcome of a run. A non-zero exit code is
// shown as-is; only a failure to start or read is marked failed.
func ResultSection(w io.Writer, res *build.Result, color bool) {
	sec := NewSection(w, "Result", res.Duration, color)
	if res.Error != nil {
		RowStatus(sec, "launch", res.Error.Error(), res.Status, color)
	} else {
		RowStatus(sec, "exit code", Bold(strconv.Itoa(res.ExitCode), color), res.Status, color)
	}
	sec.Row("%-16s%s", "run", Dimmed(res.RunID, color))
	sec.Close()
}

// RowStatus writes a row with label, detail, and a status icon.
func RowStatus(sec *Section, label, detail, status string, color bool) {
	icon := StatusIcon(status, color)
	if detail != "" {
		sec.Row("%-16s%s %s", label, detail, icon)
	} else {
		sec.Row("%-16s%s", label, icon)
	}
}
