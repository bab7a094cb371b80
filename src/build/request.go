package build

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultToolPath is where the editable-path front-ends look for nativex.
const DefaultToolPath = "/usr/bin/nativex"

// TargetOS is the operating system the external tool cross-compiles for.
type TargetOS string

const (
	OSLinux   TargetOS = "linux"
	OSWindows TargetOS = "windows"
	OSDarwin  TargetOS = "darwin"
)

// Arch is the CPU architecture the external tool cross-compiles for.
type Arch string

const (
	ArchAMD64 Arch = "amd64"
	ArchARM64 Arch = "arm64"
)

// ErrUnknownOS and ErrUnknownArch are returned when a value falls outside
// the closed sets offered by the dropdowns.
var (
	ErrUnknownOS   = errors.New("unknown target os")
	ErrUnknownArch = errors.New("unknown target arch")
)

// OSNames lists the target operating systems in dropdown order.
func OSNames() []string {
	return []string{string(OSLinux), string(OSWindows), string(OSDarwin)}
}

// ArchNames lists the target architectures in dropdown order.
func ArchNames() []string {
	return []string{string(ArchAMD64), string(ArchARM64)}
}

// ParseOS maps a name onto a TargetOS.
func ParseOS(s string) (TargetOS, error) {
	for _, name := range OSNames() {
		if s == name {
			return TargetOS(s), nil
		}
	}
	return "", fmt.Errorf("%w %q (want %s)", ErrUnknownOS, s, strings.Join(OSNames(), ", "))
}

// ParseArch maps a name onto an Arch.
func ParseArch(s string) (Arch, error) {
	for _, name := range ArchNames() {
		if s == name {
			return Arch(s), nil
		}
	}
	return "", fmt.Errorf("%w %q (want %s)", ErrUnknownArch, s, strings.Join(ArchNames(), ", "))
}

// BuildRequest is a snapshot of the form at the moment a build is
// triggered. Path and name fields are passed through untouched; nativex
// owns their validation.
type BuildRequest struct {
	ToolPath      string
	JREPath       string
	JARPath       string
	OS            TargetOS
	Arch          Arch
	BuildName     string
	BuildLocation string
}

// Argv returns the full argument vector, executable first. The flag names
// and their order are the nativex command-line contract.
func (r BuildRequest) Argv() []string {
	return append([]string{r.ToolPath}, r.Args()...)
}

// Args returns the flags passed to the tool, without the executable.
func (r BuildRequest) Args() []string {
	return []string{
		"--jre-path", r.JREPath,
		"--jar-path", r.JARPath,
		"--os-name", string(r.OS),
		"--arch", string(r.Arch),
		"--build-name", r.BuildName,
		"--build-location", r.BuildLocation,
	}
}

// CommandLine renders the argv for display. Empty and spaced values are
// quoted so the rendered line can be pasted into a shell.
func (r BuildRequest) CommandLine() string {
	argv := r.Argv()
	parts := make([]string, len(argv))
	for i, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			parts[i] = fmt.Sprintf("%q", a)
			continue
		}
		parts[i] = a
	}
	return strings.Join(parts, " ")
}
