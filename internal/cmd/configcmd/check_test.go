package configcmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/bbcode-cli/internal/config"
)

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		env     map[string]string
		wantErr string
		wantOut string
	}{
		{
			name:    "defaults",
			wantOut: "✓ Parser limits OK (max depth 64, max input 1048576 bytes)",
		},
		{
			name:    "valid file",
			cfg:     &config.Config{DefaultFormat: "markdown", ColorFormat: "rgb"},
			wantOut: "✓ All values valid",
		},
		{
			name:    "invalid format",
			cfg:     &config.Config{DefaultFormat: "pdf"},
			wantErr: "invalid render format",
			wantOut: "✗ Invalid value",
		},
		{
			name:    "bad env number",
			env:     map[string]string{"BBC_MAX_DEPTH": "deep"},
			wantErr: "invalid BBC_MAX_DEPTH",
			wantOut: "✗ Failed to load",
		},
		{
			name:    "depth too small for nested markup",
			env:     map[string]string{"BBC_MAX_DEPTH": "1"},
			wantErr: "tag nesting too deep",
			wantOut: "✗ Limits reject nested markup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := isolate(t)
			if tt.cfg != nil {
				require.NoError(t, tt.cfg.Save(path))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var out bytes.Buffer
			err := runCheck(&checkOptions{configPath: path, noColor: true, out: &out})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}
