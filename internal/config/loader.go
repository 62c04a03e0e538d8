// Package config locates and reads the Claude settings files that carry
// regex permission rules.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"

	"github.com/clawbridge/regexhooks/internal/hooks"
)

//go:generate mockgen -source=loader.go -destination=mock_loader.go -package=config

const permissionsKey = "regexPermissions"

// Loader reads one settings scope from disk.
type Loader interface {
	// Load returns the regexPermissions section of the settings file at
	// path, or nil when the file or the key is absent.
	Load(path string) (*hooks.RawConfig, error)
}

// ProjectSettingsPath returns the project-scope settings path under dir.
func ProjectSettingsPath(dir string) string {
	return filepath.Join(dir, ".claude", "settings.json")
}

// GlobalSettingsPath returns the user-scope settings path.
func GlobalSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "settings.json"), nil
}

type fileLoader struct {
	logger zerolog.Logger
}

// NewLoader creates a file-backed Loader reporting problems to logger.
func NewLoader(logger zerolog.Logger) Loader {
	return &fileLoader{logger: logger}
}

// Load reads a settings file and extracts its regex permission rules.
// Settings files are edited by hand, so comments and trailing commas are
// tolerated. A missing file, a missing regexPermissions key or an unparsable
// file all degrade to an absent scope.
func (l *fileLoader) Load(path string) (*hooks.RawConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if std, err := hujson.Standardize(data); err == nil {
		data = std
	}
	if !gjson.ValidBytes(data) {
		l.logger.Warn().Str("file", path).Msg("settings file is not valid JSON; ignoring")
		return nil, nil
	}

	section := gjson.GetBytes(data, permissionsKey)
	if !section.Exists() {
		return nil, nil
	}

	return &hooks.RawConfig{
		Deny:  l.entries(path, section, "deny"),
		Ask:   l.entries(path, section, "ask"),
		Allow: l.entries(path, section, "allow"),
	}, nil
}

// entries extracts one rule category. A category that is not an array
// degrades to empty with a warning instead of failing the whole scope.
func (l *fileLoader) entries(path string, section gjson.Result, category string) []hooks.RuleEntry {
	value := section.Get(category)
	if !value.Exists() {
		return nil
	}
	if !value.IsArray() {
		l.logger.Warn().
			Str("file", path).
			Str("category", category).
			Msg("permission category is not an array; treating as empty")
		return nil
	}

	var entries []hooks.RuleEntry
	for _, item := range value.Array() {
		switch {
		case item.Type == gjson.String:
			entries = append(entries, hooks.RuleEntry{Rule: item.String()})
		case item.IsObject():
			entries = append(entries, hooks.RuleEntry{
				Rule:   item.Get("rule").String(),
				Reason: item.Get("reason").String(),
				Flags:  item.Get("flags").String(),
			})
		default:
			l.logger.Warn().
				Str("file", path).
				Str("category", category).
				Msg("skipping permission entry that is neither a string nor an object")
		}
	}
	return entries
}
