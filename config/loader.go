// SPDX-License-Identifier: MIT
// Package: graphpad/config
//
// loader.go - layered loading: defaults, then YAML file, then environment.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GRAPHPAD_"

// LookupFunc reads one environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Load builds the configuration from defaults, the YAML file at path (if
// path is non-empty) and GRAPHPAD_* environment variables, in increasing
// priority, then validates it.
func Load(path string) (*Config, error) {
	return LoadWith(path, os.LookupEnv)
}

// LoadWith is Load with an explicit environment lookup.
func LoadWith(path string, lookup LookupFunc) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = cfg.decodeYAML(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}
	if lookup != nil {
		if err := cfg.applyEnv(lookup); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decodeYAML overlays a YAML document onto c. Unknown keys are rejected and
// an empty document leaves c untouched.
func (c *Config) decodeYAML(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// applyEnv overlays environment variables. Malformed numbers, booleans and
// durations fail with ErrInvalidConfig naming the variable.
func (c *Config) applyEnv(lookup LookupFunc) error {
	e := envReader{lookup: lookup}

	e.str("SERVER_ADDR", &c.Server.Addr)
	e.list("SERVER_CORS_ORIGINS", &c.Server.CORSOrigins)
	e.dur("SERVER_READ_TIMEOUT", &c.Server.ReadTimeout)
	e.dur("SERVER_WRITE_TIMEOUT", &c.Server.WriteTimeout)
	e.dur("SERVER_SHUTDOWN_TIMEOUT", &c.Server.ShutdownTimeout)

	e.str("LOG_LEVEL", &c.Log.Level)
	e.boolean("LOG_DEVELOPMENT", &c.Log.Development)

	e.str("STORAGE_DRIVER", &c.Storage.Driver)
	e.str("STORAGE_PATH", &c.Storage.Path)
	e.str("STORAGE_KEY", &c.Storage.Key)

	e.integer("HISTORY_LIMIT", &c.History.Limit)

	e.boolean("METRICS_ENABLED", &c.Metrics.Enabled)
	e.str("METRICS_NAMESPACE", &c.Metrics.Namespace)

	e.dur("PERSIST_SAVE_TIMEOUT", &c.Persist.SaveTimeout)
	e.count("PERSIST_BREAKER_FAILURES", &c.Persist.BreakerFailures)
	e.dur("PERSIST_BREAKER_TIMEOUT", &c.Persist.BreakerTimeout)

	return e.err
}

// envReader keeps the first parse error so applyEnv reads as a flat list.
type envReader struct {
	lookup LookupFunc
	err    error
}

func (e *envReader) get(name string) (string, bool) {
	if e.err != nil {
		return "", false
	}
	v, ok := e.lookup(EnvPrefix + name)
	if !ok {
		return "", false
	}

	return strings.TrimSpace(v), true
}

func (e *envReader) fail(name, raw string, err error) {
	e.err = fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidConfig, EnvPrefix, name, raw, err)
}

func (e *envReader) str(name string, dst *string) {
	if v, ok := e.get(name); ok {
		*dst = v
	}
}

func (e *envReader) list(name string, dst *[]string) {
	v, ok := e.get(name)
	if !ok {
		return
	}
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*dst = out
}

func (e *envReader) boolean(name string, dst *bool) {
	if v, ok := e.get(name); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			e.fail(name, v, err)
			return
		}
		*dst = b
	}
}

func (e *envReader) integer(name string, dst *int) {
	if v, ok := e.get(name); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			e.fail(name, v, err)
			return
		}
		*dst = n
	}
}

func (e *envReader) count(name string, dst *uint32) {
	if v, ok := e.get(name); ok {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			e.fail(name, v, err)
			return
		}
		*dst = uint32(n)
	}
}

func (e *envReader) dur(name string, dst *time.Duration) {
	if v, ok := e.get(name); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			e.fail(name, v, err)
			return
		}
		*dst = d
	}
}

// NewLogger builds the process logger: the zap development preset when
// Development is set, the production preset otherwise, at the configured level.
func (l LogConfig) NewLogger() (*zap.Logger, error) {
	var zc zap.Config
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	zc.Level = level

	return zc.Build()
}
