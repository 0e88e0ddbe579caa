package console

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	parsed, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig(nil) error = %v", err)
	}
	if parsed != cfg {
		t.Errorf("ParseConfig(nil) = %+v, want %+v", parsed, cfg)
	}
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    func(*Config)
		wantErr bool
	}{
		{"override width", "[console]\nwidth = 640\n", func(c *Config) { c.Width = 640 }, false},
		{"other sections ignored", "[video]\nwidth = 1\n[console]\nvisible_lines = 4\n", func(c *Config) { c.VisibleLines = 4 }, false},
		{"invalid scroll speed", "[console]\nscroll_speed = 0\n", nil, true},
		{"negative history", "[console]\nhistory_length = -2\n", nil, true},
		{"not a number", "[console]\nline_height = tall\n", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseConfig() = %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfig() error = %v", err)
			}
			want := DefaultConfig()
			tt.want(&want)
			if got != want {
				t.Errorf("ParseConfig() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestParseConfigValidationError(t *testing.T) {
	_, err := ParseConfig([]byte("[console]\nscroll_speed = -1\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.ini"))
	if err != nil || cfg != DefaultConfig() {
		t.Errorf("LoadConfig(missing) = %+v, %v", cfg, err)
	}

	want := DefaultConfig()
	want.HistoryLength = 50
	want.ScrollSpeed = 0.25
	var buf bytes.Buffer
	if _, err := want.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	path := filepath.Join(dir, "console.ini")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got != want {
		t.Errorf("LoadConfig() = %+v, want %+v", got, want)
	}
}

func TestConfigNew(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 300
	c, err := cfg.New(asciiTable())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Width() != 300 || c.VisibleLines() != cfg.VisibleLines || c.LineHeight() != cfg.LineHeight {
		t.Errorf("console width %v lines %d line height %v", c.Width(), c.VisibleLines(), c.LineHeight())
	}
}
