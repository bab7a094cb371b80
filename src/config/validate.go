package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sofmeright/nativex-launcher/src/build"
)

// Validate checks the fields that feed the closed dropdown sets. Paths and
// names are left to nativex.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Version != 0 && cfg.Version != latestVersion {
		errs = append(errs, fmt.Sprintf("version: must be %d, got %d", latestVersion, cfg.Version))
	}

	if _, err := build.ParseOS(cfg.Form.OS); err != nil {
		errs = append(errs, fmt.Sprintf("form.os_name: %v", err))
	}
	if _, err := build.ParseArch(cfg.Form.Arch); err != nil {
		errs = append(errs, fmt.Sprintf("form.arch: %v", err))
	}

	names := make([]string, 0, len(cfg.Env))
	for k := range cfg.Env {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		if k == "" || strings.ContainsAny(k, "= \t") {
			errs = append(errs, fmt.Sprintf("env: invalid variable name %q", k))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
