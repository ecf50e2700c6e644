// Package config reads the daemon's settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	DefaultAddr         = ":8080"
	DefaultMaxBodyBytes = 64 << 20
)

// Config holds the settings for cmd/huffd.
type Config struct {
	// Addr is the listen address.  (HUFF_ADDR)
	Addr string

	// MaxBodyBytes caps the size of a request body.  (HUFF_MAX_BODY)
	MaxBodyBytes int64

	// Quiet suppresses per-request info logging.  (HUFF_QUIET)
	Quiet bool
}

// Load reads the configuration from the process environment.  Unparseable
// values are replaced by their defaults and reported in warnings.
func Load() (Config, []string) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom is Load with an arbitrary lookup function.
func LoadFrom(lookup func(string) (string, bool)) (Config, []string) {
	cfg := Config{
		Addr:         DefaultAddr,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
	var warnings []string

	if v, ok := lookup("HUFF_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("HUFF_MAX_BODY"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			warnings = append(warnings, fmt.Sprintf("HUFF_MAX_BODY=%q is not a positive integer; using %d", v, cfg.MaxBodyBytes))
		} else {
			cfg.MaxBodyBytes = n
		}
	}
	if v, ok := lookup("HUFF_QUIET"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("HUFF_QUIET=%q is not a boolean; using false", v))
		} else {
			cfg.Quiet = b
		}
	}
	return cfg, warnings
}
