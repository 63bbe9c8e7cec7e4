package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-labs/internal/colortable"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultColorTableConfig()) {
		t.Errorf("embedded YAML and DefaultColorTableConfig() differ:\n%+v\n%+v", cfg, DefaultColorTableConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "grid:\n  rows: 3\n  cols: 4\n  variant: 12\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid != (GridConfig{Rows: 3, Cols: 4, Variant: 12}) {
		t.Errorf("Grid = %+v", cfg.Grid)
	}
	// Keys missing from the file keep their defaults
	if cfg.Cell.Width != 6 || cfg.Input.DoubleClickMS != 400 {
		t.Errorf("defaults not preserved: cell=%+v input=%+v", cfg.Cell, cfg.Input)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "grid: [unclosed\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".labs", "configs", "colortable.yaml"), "grid:\n  variant: 1\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Variant != 1 {
		t.Errorf("Variant = %d, expected 1 from user config", cfg.Grid.Variant)
	}
}

func TestLoadUserConfigMalformedFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".labs", "configs", "colortable.yaml"), "grid: [\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Variant != 5 {
		t.Errorf("Variant = %d, expected default 5", cfg.Grid.Variant)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ColorTableConfig)
		widget bool // error should wrap colortable.ErrConfiguration
	}{
		{"variant out of range", func(c *ColorTableConfig) { c.Grid.Variant = 99 }, true},
		{"zero rows", func(c *ColorTableConfig) { c.Grid.Rows = 0 }, true},
		{"zero cell width", func(c *ColorTableConfig) { c.Cell.Width = 0 }, false},
		{"negative double click", func(c *ColorTableConfig) { c.Input.DoubleClickMS = -1 }, false},
		{"bad initial color", func(c *ColorTableConfig) { c.Picker.InitialColor = "blue" }, false},
		{"bad palette entry", func(c *ColorTableConfig) { c.Picker.Palette = []string{"#fff000", "nope"} }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultColorTableConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if tc.widget && !errors.Is(err, colortable.ErrConfiguration) {
				t.Errorf("Validate() error = %v, expected ErrConfiguration", err)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultColorTableConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	writeFile(t, path, string(data))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultColorTableConfig()) {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}

func TestDoubleClickInterval(t *testing.T) {
	cfg := DefaultColorTableConfig()
	if got := cfg.DoubleClickInterval().Milliseconds(); got != 400 {
		t.Errorf("DoubleClickInterval() = %dms, expected 400ms", got)
	}
}
