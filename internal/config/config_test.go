package config

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		ok   bool
	}{
		{"default", func(*Config) {}, true},
		{"small panel", func(c *Config) { c.PanelWidth, c.PanelHeight = SmallWidth, SmallHeight }, true},
		{"odd panel", func(c *Config) { c.PanelWidth = 800 }, false},
		{"altitude", func(c *Config) { c.AltitudeMeters = 9000 }, false},
		{"range", func(c *Config) { c.LocalMinHPa, c.LocalMaxHPa = 990, 1030 }, true},
		{"inverted range", func(c *Config) { c.LocalMinHPa, c.LocalMaxHPa = 1030, 990 }, false},
		{"half range", func(c *Config) { c.LocalMinHPa = 990 }, false},
	}
	for _, tt := range tests {
		c := Default()
		tt.mod(&c)
		err := c.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: err = %v, want ErrInvalid", tt.name, err)
		}
	}
}
