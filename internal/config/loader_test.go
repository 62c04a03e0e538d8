package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clawbridge/regexhooks/internal/hooks"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileLoader_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *hooks.RawConfig
	}{
		{
			name: "string and object entries",
			content: `{
				"regexPermissions": {
					"deny": ["Bash(^sudo)", {"rule": "Edit(\\.env$)", "reason": "secrets", "flags": "i"}],
					"ask": ["Bash(^git\\s+push)"],
					"allow": ["Read(.*)"]
				}
			}`,
			want: &hooks.RawConfig{
				Deny: []hooks.RuleEntry{
					{Rule: `Bash(^sudo)`},
					{Rule: `Edit(\.env$)`, Reason: "secrets", Flags: "i"},
				},
				Ask:   []hooks.RuleEntry{{Rule: `Bash(^git\s+push)`}},
				Allow: []hooks.RuleEntry{{Rule: `Read(.*)`}},
			},
		},
		{
			name: "missing categories default to empty",
			content: `{
				"regexPermissions": {
					"deny": ["Bash(^sudo)"]
				}
			}`,
			want: &hooks.RawConfig{
				Deny: []hooks.RuleEntry{{Rule: `Bash(^sudo)`}},
			},
		},
		{
			name: "comments and trailing commas are tolerated",
			content: `{
				// project policy
				"regexPermissions": {
					"deny": [
						"Bash(^sudo)", // no root
					],
				},
			}`,
			want: &hooks.RawConfig{
				Deny: []hooks.RuleEntry{{Rule: `Bash(^sudo)`}},
			},
		},
		{
			name: "non-array category degrades to empty",
			content: `{
				"regexPermissions": {
					"deny": "Bash(^sudo)",
					"allow": ["Read(.*)"]
				}
			}`,
			want: &hooks.RawConfig{
				Allow: []hooks.RuleEntry{{Rule: `Read(.*)`}},
			},
		},
		{
			name: "non-string non-object entries are skipped",
			content: `{
				"regexPermissions": {
					"deny": [42, "Bash(^sudo)", null]
				}
			}`,
			want: &hooks.RawConfig{
				Deny: []hooks.RuleEntry{{Rule: `Bash(^sudo)`}},
			},
		},
		{
			name:    "missing regexPermissions key",
			content: `{"model": "opus"}`,
			want:    nil,
		},
		{
			name:    "unparsable file degrades to absent scope",
			content: `{"regexPermissions": `,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(zerolog.Nop())
			path := writeSettings(t, tt.content)

			got, err := loader.Load(path)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileLoader_Load_MissingFile(t *testing.T) {
	loader := NewLoader(zerolog.Nop())

	got, err := loader.Load(filepath.Join(t.TempDir(), "does-not-exist.json"))

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProjectSettingsPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/repo", ".claude", "settings.json"),
		ProjectSettingsPath("/repo"))
}

func TestGlobalSettingsPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := GlobalSettingsPath()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".claude", "settings.json"), got)
}
