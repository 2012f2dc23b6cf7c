package meta

import (
	"errors"
	"testing"

	"github.com/coregx/regexfa/nfa"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"default", func(*Config) {}, ""},
		{"glushkov", func(c *Config) { c.Construction = nfa.Glushkov }, ""},
		{"bad construction", func(c *Config) { c.Construction = nfa.Construction(9) }, "Construction"},
		{"one dfa state", func(c *Config) { c.MaxDFAStates = 1 }, "MaxDFAStates"},
		{"too many dfa states", func(c *Config) { c.MaxDFAStates = 2_000_000 }, "MaxDFAStates"},
		{"negative clears", func(c *Config) { c.MaxCacheClears = -1 }, "MaxCacheClears"},
		{"zero determinization limit", func(c *Config) { c.DeterminizationLimit = 0 }, "DeterminizationLimit"},
		{"zero literals", func(c *Config) { c.MaxLiterals = 0 }, "MaxLiterals"},
		{"zero literal len", func(c *Config) { c.MaxLiteralLen = 0 }, "MaxLiteralLen"},
		{"dfa limits ignored when disabled", func(c *Config) {
			c.EnableDFA = false
			c.MaxDFAStates = 0
		}, ""},
		{"literal limits ignored when disabled", func(c *Config) {
			c.EnablePrefilter = false
			c.MaxLiterals = 0
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			err := c.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "MaxLiterals", Message: "must be between 1 and 1,000"}
	want := "regexp: invalid config: MaxLiterals: must be between 1 and 1,000"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
