package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	for in, want := range map[string]string{
		"dev":          "dev",
		"1.2.3":        "v1.2.3",
		"v0.4.0-rc.1":  "v0.4.0-rc.1",
		"2.1":          "v2.1.0",
		"not-a-semver": "not-a-semver",
	} {
		Version = in
		assert.Equal(t, want, Short(), in)
	}
}

func TestString(t *testing.T) {
	assert.Contains(t, String(), "nativex-launcher ")
}
