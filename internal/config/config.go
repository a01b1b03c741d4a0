/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads traygrid settings and tray configurations.
//
// Sources are merged in this order, later ones winning:
//
//  1. built-in defaults (8x12 at 0°, log level "info")
//  2. the config file (YAML or TOML, chosen by extension)
//  3. .env files (only TRAYGRID__ variables)
//  4. the process environment (TRAYGRID__ variables)
//
// Nested keys are separated by "__" in variable names, so
// TRAYGRID__DEFAULTS__ROTATION=90 sets defaults.rotation.
//
// schema_version is checked against SupportedSchema after every source has
// been merged, so TRAYGRID__SCHEMA_VERSION is held to the same range as the
// file.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/tray"
	"github.com/blang/semver/v4"
	"github.com/google/uuid"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix of environment variables read by Load.
	EnvPrefix = "TRAYGRID__"

	envDelim = "__"
)

// SupportedSchema is the range of schema_version values Load accepts.
var SupportedSchema = semver.MustParseRange(">=1.0.0 <2.0.0")

var defaultSchema = semver.MustParse("1.0.0")

// Layout is the tray shape and rotation used when a command is not given
// one explicitly.
type Layout struct {
	Shape    plate.GridShape
	Rotation plate.Rotation
}

// Config is the validated result of Load.
type Config struct {
	SchemaVersion  semver.Version
	LogLevel       string
	Defaults       Layout
	Configurations []tray.Configuration
}

// Find returns the configuration whose name (case-insensitive) or ID
// matches ref.
func (c Config) Find(ref string) (tray.Configuration, bool) {
	ref = strings.TrimSpace(ref)
	id, idErr := uuid.Parse(ref)
	for _, conf := range c.Configurations {
		if idErr == nil && conf.ID == id {
			return conf, true
		}
		if strings.EqualFold(conf.Name, ref) {
			return conf, true
		}
	}
	return tray.Configuration{}, false
}

type fileConfig struct {
	SchemaVersion  string                `koanf:"schema_version"`
	LogLevel       string                `koanf:"log_level"`
	Defaults       layoutConfig          `koanf:"defaults"`
	Configurations []configurationConfig `koanf:"configurations"`
}

type layoutConfig struct {
	Rows     int    `koanf:"rows"`
	Cols     int    `koanf:"cols"`
	Rotation string `koanf:"rotation"`
}

type configurationConfig struct {
	ID           string            `koanf:"id"`
	Name         string            `koanf:"name"`
	Experimental bool              `koanf:"experimental"`
	Trays        []placementConfig `koanf:"trays"`
}

type placementConfig struct {
	Order    int        `koanf:"order"`
	Rotation string     `koanf:"rotation"`
	Tray     trayConfig `koanf:"tray"`
}

type trayConfig struct {
	Name string `koanf:"name"`
	Rows int    `koanf:"rows"`
	Cols int    `koanf:"cols"`
}

// Loader loads configuration. The zero value reads ".env" from the working
// directory and TRAYGRID__ variables from the environment.
type Loader struct {
	// EnvPrefix overrides EnvPrefix.
	EnvPrefix string

	// DotEnvFiles lists .env files to read; nil means ".env". Missing
	// files are skipped.
	DotEnvFiles []string
}

// Load is Loader{}.Load(path).
func Load(path string) (Config, error) {
	return Loader{}.Load(path)
}

// Load reads path (if not empty), .env files and the environment, and
// returns the validated configuration.
func (l Loader) Load(path string) (Config, error) {
	prefix := l.EnvPrefix
	if prefix == "" {
		prefix = EnvPrefix
	}
	dotenvFiles := l.DotEnvFiles
	if dotenvFiles == nil {
		dotenvFiles = []string{".env"}
	}

	k := koanf.New(".")
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return Config{}, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := k.Load(dotenvProvider(prefix, envDelim, dotenvFiles...), nil); err != nil {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	if err := k.Load(env.Provider(prefix, envDelim, func(s string) string {
		return envKey(prefix, s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("config: load environment: %w", err)
	}

	schema, err := schemaVersion(k.String("schema_version"))
	if err != nil {
		return Config{}, err
	}

	var raw fileConfig
	if err := k.Unmarshal("", &raw); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	applyDefaults(&raw)

	cfg, err := raw.build()
	if err != nil {
		return Config{}, err
	}
	cfg.SchemaVersion = schema
	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return TOMLParser(), nil
	default:
		return nil, fmt.Errorf("config: unsupported file type %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

func schemaVersion(s string) (semver.Version, error) {
	if s == "" {
		return defaultSchema, nil
	}
	v, err := semver.ParseTolerant(s)
	if err != nil {
		return semver.Version{}, fmt.Errorf("config: schema_version %q: %w", s, err)
	}
	if !SupportedSchema(v) {
		return semver.Version{}, fmt.Errorf("config: schema_version %q not supported (want 1.x)", s)
	}
	return v, nil
}

func applyDefaults(c *fileConfig) {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Defaults.Rows == 0 {
		c.Defaults.Rows = plate.Plate96.Rows
	}
	if c.Defaults.Cols == 0 {
		c.Defaults.Cols = plate.Plate96.Cols
	}
	if c.Defaults.Rotation == "" {
		c.Defaults.Rotation = "0"
	}
}

func (c fileConfig) build() (Config, error) {
	shape, err := plate.NewGridShape(c.Defaults.Rows, c.Defaults.Cols)
	if err != nil {
		return Config{}, fmt.Errorf("config: defaults: %w", err)
	}
	rot, err := plate.ParseRotation(c.Defaults.Rotation)
	if err != nil {
		return Config{}, fmt.Errorf("config: defaults: %w", err)
	}

	out := Config{
		LogLevel: strings.ToLower(strings.TrimSpace(c.LogLevel)),
		Defaults: Layout{Shape: shape, Rotation: rot},
	}

	for i, rc := range c.Configurations {
		conf, err := rc.build()
		if err != nil {
			return Config{}, fmt.Errorf("config: configurations[%d]: %w", i, err)
		}
		out.Configurations = append(out.Configurations, conf)
	}

	confs := make([]*tray.Configuration, len(out.Configurations))
	for i := range out.Configurations {
		confs[i] = &out.Configurations[i]
	}
	if err := model.ValidateAll(confs); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := checkUnique(out.Configurations); err != nil {
		return Config{}, err
	}
	return out, nil
}

func (c configurationConfig) build() (tray.Configuration, error) {
	conf := tray.Configuration{
		Name:         strings.TrimSpace(c.Name),
		Experimental: c.Experimental,
	}
	if c.ID != "" {
		id, err := uuid.Parse(c.ID)
		if err != nil {
			return tray.Configuration{}, fmt.Errorf("id %q: %w", c.ID, err)
		}
		conf.ID = id
	} else if conf.Name != "" {
		conf.ID = tray.DeriveID(conf.Name)
	}

	for j, pc := range c.Trays {
		if strings.TrimSpace(pc.Rotation) == "" {
			pc.Rotation = "0"
		}
		rot, err := plate.ParseRotation(pc.Rotation)
		if err != nil {
			return tray.Configuration{}, fmt.Errorf("trays[%d]: %w", j, err)
		}
		conf.Trays = append(conf.Trays, tray.TrayPlacement{
			Order:    pc.Order,
			Rotation: rot,
			Tray: tray.Tray{
				Name: strings.TrimSpace(pc.Tray.Name),
				Rows: pc.Tray.Rows,
				Cols: pc.Tray.Cols,
			},
		})
	}
	return conf, nil
}

func checkUnique(confs []tray.Configuration) error {
	ids := make(map[uuid.UUID]string, len(confs))
	names := make(map[string]struct{}, len(confs))
	for _, c := range confs {
		if other, dup := ids[c.ID]; dup {
			return fmt.Errorf("config: configurations %q and %q share id %s", other, c.Name, c.ID)
		}
		ids[c.ID] = c.Name

		key := strings.ToLower(c.Name)
		if _, dup := names[key]; dup {
			return fmt.Errorf("config: configuration name %q is used more than once", c.Name)
		}
		names[key] = struct{}{}
	}
	return nil
}
