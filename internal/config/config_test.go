package config

import (
	"testing"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadFrom(t *testing.T) {
	type testRow struct {
		name     string
		env      map[string]string
		expect   Config
		warnings int
	}

	testData := [...]testRow{
		{
			name:   "defaults",
			env:    nil,
			expect: Config{Addr: DefaultAddr, MaxBodyBytes: DefaultMaxBodyBytes},
		},
		{
			name:   "set",
			env:    map[string]string{"HUFF_ADDR": "127.0.0.1:9000", "HUFF_MAX_BODY": "1024", "HUFF_QUIET": "true"},
			expect: Config{Addr: "127.0.0.1:9000", MaxBodyBytes: 1024, Quiet: true},
		},
		{
			name:     "garbage",
			env:      map[string]string{"HUFF_MAX_BODY": "-5", "HUFF_QUIET": "maybe"},
			expect:   Config{Addr: DefaultAddr, MaxBodyBytes: DefaultMaxBodyBytes},
			warnings: 2,
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			cfg, warnings := LoadFrom(lookupMap(row.env))
			if cfg != row.expect {
				t.Errorf("wrong config:\n\texpect: %+v\n\tactual: %+v", row.expect, cfg)
			}
			if len(warnings) != row.warnings {
				t.Errorf("expected %d warnings, got %q", row.warnings, warnings)
			}
		})
	}
}
