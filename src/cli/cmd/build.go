package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/nativex-launcher/src/build"
	"github.com/sofmeright/nativex-launcher/src/output"
	"github.com/sofmeright/nativex-launcher/src/version"
)

var (
	bTool     string
	bJRE      string
	bJAR      string
	bOS       string
	bArch     string
	bName     string
	bLocation string
	bPlain    bool
)

// errNotRun is returned when nativex could not be started or read. The
// reason has already been printed as the run's "Error:" line.
var errNotRun = errors.New("nativex did not run")

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run nativex once and stream its output",
	Long: `Run nativex with the given values and stream its combined stdout/stderr.

Values come from flags, then the config file's form section, then defaults.
Paths and names are passed through unchecked; nativex reports problems itself.
The exit code of nativex is printed, not propagated: this command only fails
when nativex could not be started.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringVar(&bTool, "tool", "", "nativex executable (default: config tool_path, then "+build.DefaultToolPath+")")
	f.StringVar(&bJRE, "jre-path", "", "JRE folder")
	f.StringVar(&bJAR, "jar-path", "", "JAR file")
	f.StringVar(&bOS, "os-name", "", "target OS: linux, windows, darwin")
	f.StringVar(&bArch, "arch", "", "target architecture: amd64, arm64")
	f.StringVar(&bName, "build-name", "", "name of the build output")
	f.StringVar(&bLocation, "build-location", "", "directory for the build output")
	f.BoolVar(&bPlain, "plain", false, "print only the tool's lines, without framing")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	req, err := resolveRequest(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	l := cfg.NewLauncher()

	if bPlain {
		if res := l.Execute(req, w); res.Error != nil {
			return errNotRun
		}
		return nil
	}

	color := output.UseColor()
	output.ContextBlock(w, buildContext())
	output.SectionStartCollapsed(w, "nativex_request", "Request")
	output.RequestSection(w, req, color)
	output.SectionEnd(w, "nativex_request")

	output.SectionStart(w, "nativex_build", "Build")
	sec := output.NewSection(w, "Output", 0, color)
	run := l.Start(req)
	for line := range run.Lines() {
		sec.Line(line)
	}
	sec.Close()
	output.SectionEnd(w, "nativex_build")

	res := run.Wait()
	output.ResultSection(w, res, color)
	if res.Error != nil {
		return errNotRun
	}
	return nil
}

func buildContext() []output.KV {
	source := cfg.Source
	if source == "" {
		source = "defaults"
	}
	dir := cfg.WorkDir
	if dir == "" {
		dir = "."
	}
	return []output.KV{
		{Key: "Launcher", Value: version.Short()},
		{Key: "Config", Value: source},
		{Key: "WorkDir", Value: dir},
	}
}

// resolveRequest layers explicitly set flags over the config defaults.
func resolveRequest(cmd *cobra.Command) (build.BuildRequest, error) {
	req := cfg.Request()
	f := cmd.Flags()

	if f.Changed("tool") {
		req.ToolPath = bTool
	}
	if f.Changed("jre-path") {
		req.JREPath = bJRE
	}
	if f.Changed("jar-path") {
		req.JARPath = bJAR
	}
	if f.Changed("os-name") {
		osName, err := build.ParseOS(bOS)
		if err != nil {
			return req, fmt.Errorf("invalid --os-name: %w", err)
		}
		req.OS = osName
	}
	if f.Changed("arch") {
		arch, err := build.ParseArch(bArch)
		if err != nil {
			return req, fmt.Errorf("invalid --arch: %w", err)
		}
		req.Arch = arch
	}
	if f.Changed("build-name") {
		req.BuildName = bName
	}
	if f.Changed("build-location") {
		req.BuildLocation = bLocation
	}
	return req, nil
}
