package configcmd

import (
	"path/filepath"
	"testing"
)

// isolate clears every BBC_* override and returns a config path in a fresh
// temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
	}
	return filepath.Join(t.TempDir(), "bbc", "config.yml")
}
