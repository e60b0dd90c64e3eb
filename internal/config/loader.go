package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the configuration for a runner variant.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default
//
// Files are decoded on top of the hardcoded defaults, so a file only needs
// the keys it changes. A custom path that is missing or invalid is an error;
// the other locations are skipped silently.
func LoadRunner(gameID, customPath string) (RunnerConfig, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := DefaultFor(gameID)
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(gameID, path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultFor(gameID)
	if data := GetDefaultYAML(gameID); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil || cfg.Validate() != nil {
			return DefaultFor(gameID), nil // Fallback to hardcoded if embed fails
		}
	}
	return cfg, nil
}

func tryLoad(gameID, path string) (RunnerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, false
	}
	cfg := DefaultFor(gameID)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Ramp = false
		return
	}
	cfg.Difficulty.Ramp = true
	cfg.Difficulty.Level = LevelForPreset(preset)

	// Easy runs also get a wider pickup radius
	switch preset {
	case DifficultyEasy:
		cfg.Pickups.Radius *= 1.25
	case DifficultyHard:
		cfg.Speed.Max *= 1.2
	}
}
