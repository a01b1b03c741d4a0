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

package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/EERL-EPFL/spice-ui-sub001/internal/config"
)

// newLogger creates a logger writing to w at level. Timestamps are
// formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// logLevel picks the level for a run: --verbose wins, then the configured
// level, then info.
func logLevel(verbose bool, configured string) log.Level {
	if verbose {
		return log.DebugLevel
	}
	if configured == "" {
		return log.InfoLevel
	}
	level, err := log.ParseLevel(configured)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger stored in ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the loaded configuration. Commands run outside
// Execute load the built-in defaults and the environment, and get any error
// from that load.
func configFromContext(ctx context.Context) (config.Config, error) {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg, nil
	}
	return config.Loader{DotEnvFiles: []string{}}.Load("")
}
