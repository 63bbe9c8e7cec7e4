package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "colortable.yaml"

// Load loads the color table configuration.
// Search order: customPath -> ~/.labs/configs/colortable.yaml -> ./configs/colortable.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (ColorTableConfig, error) {
	cfg := DefaultColorTableConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, ok := decodeOverDefaults(data); ok {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if parsed, ok := decodeOverDefaults(data); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if parsed, ok := decodeOverDefaults(defaultColorTableYAML); ok {
		return parsed, nil
	}
	return DefaultColorTableConfig(), nil // Fallback to hardcoded if embed fails
}

// decodeOverDefaults parses data on top of the hardcoded defaults.
func decodeOverDefaults(data []byte) (ColorTableConfig, bool) {
	cfg := DefaultColorTableConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".labs", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg ColorTableConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
