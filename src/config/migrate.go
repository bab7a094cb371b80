package config

import (
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const latestVersion = 1

// checkVersion reads the schema version of a raw config file.
//
// Version history:
//   1 → current
//
// A missing version field is read as the current one; the file is optional
// and most users only set tool_path.
func checkVersion(path string, data []byte) (int, error) {
	ver, err := peekVersion(path, data)
	if err != nil {
		return 0, err
	}

	switch ver {
	case 0, latestVersion:
		return latestVersion, nil
	default:
		return 0, fmt.Errorf("unknown config version %d (latest supported: %d)", ver, latestVersion)
	}
}

// peekVersion extracts the version field without full parsing.
// Returns 0 if no version field is present.
func peekVersion(path string, data []byte) (int, error) {
	var probe struct {
		Version int `yaml:"version" toml:"version"`
	}

	var err error
	if filepath.Ext(path) == ".toml" {
		err = toml.Unmarshal(data, &probe)
	} else {
		err = yaml.Unmarshal(data, &probe)
	}
	if err != nil {
		return 0, fmt.Errorf("reading version: %w", err)
	}
	return probe.Version, nil
}
