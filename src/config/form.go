package config

import "github.com/sofmeright/nativex-launcher/src/build"

// FormDefaults are the values a fresh form starts with.
type FormDefaults struct {
	JREPath       string `yaml:"jre_path,omitempty" toml:"jre_path,omitempty"`
	JARPath       string `yaml:"jar_path,omitempty" toml:"jar_path,omitempty"`
	OS            string `yaml:"os_name,omitempty" toml:"os_name,omitempty"`
	Arch          string `yaml:"arch,omitempty" toml:"arch,omitempty"`
	BuildName     string `yaml:"build_name,omitempty" toml:"build_name,omitempty"`
	BuildLocation string `yaml:"build_location,omitempty" toml:"build_location,omitempty"`
}

// DefaultFormDefaults matches the first entry of each dropdown.
func DefaultFormDefaults() FormDefaults {
	return FormDefaults{
		OS:   string(build.OSLinux),
		Arch: string(build.ArchAMD64),
	}
}

// Request builds a request from the configured tool path and form
// defaults. OS and Arch must already have passed Validate.
func (c *Config) Request() build.BuildRequest {
	return build.BuildRequest{
		ToolPath:      c.ToolPath,
		JREPath:       c.Form.JREPath,
		JARPath:       c.Form.JARPath,
		OS:            build.TargetOS(c.Form.OS),
		Arch:          build.Arch(c.Form.Arch),
		BuildName:     c.Form.BuildName,
		BuildLocation: c.Form.BuildLocation,
	}
}
