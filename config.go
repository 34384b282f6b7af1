package kotodame

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const configDirName = "kotodame"

// ConfigFilePath resolves name under the user config directory
// (e.g. ~/.config/kotodame/name), creating parent directories as needed.
func ConfigFilePath(name string) (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(configDirName, name))
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path for %s: %w", name, err)
	}
	return path, nil
}

// LoadPatternSet reads an ordered rule list from a JSON file holding an
// array of arrays of tag prefixes. Order in the file is priority order.
func LoadPatternSet(path string) (PatternSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}
	var patterns PatternSet
	if err := json.Unmarshal(data, &patterns); err != nil {
		return nil, fmt.Errorf("failed to decode pattern file: %w", err)
	}
	return patterns, nil
}

// LoadBannedWords reads the banned surface list from a JSON string array.
func LoadBannedWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read banned word file: %w", err)
	}
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("failed to decode banned word file: %w", err)
	}
	return words, nil
}

// Config bundles the process-wide pieces that are loaded once at startup
// and never mutated afterwards; nothing synchronizes access because nothing
// writes after initialization.
type Config struct {
	Patterns PatternSet
	Banned   []string
	Dict     Dictionary
}

// LoadConfig assembles a Config from the standard files under the user
// config directory: patterns.json, banned.json and dictionary.csv. A
// missing file falls back to the built-in default (empty for banned words
// and dictionary).
func LoadConfig() (*Config, error) {
	cfg := &Config{Patterns: DefaultPatternSet()}

	if path, err := ConfigFilePath("patterns.json"); err == nil {
		if patterns, err := LoadPatternSet(path); err == nil && len(patterns) > 0 {
			cfg.Patterns = patterns
		}
	}
	if path, err := ConfigFilePath("banned.json"); err == nil {
		if words, err := LoadBannedWords(path); err == nil {
			cfg.Banned = words
		}
	}
	path, err := ConfigFilePath("dictionary.csv")
	if err != nil {
		return cfg, nil
	}
	dict, err := LoadDictionary(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	cfg.Dict = dict
	return cfg, nil
}
