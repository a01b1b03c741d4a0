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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/EERL-EPFL/spice-ui-sub001/internal/config"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	logger.Info("tray checked", "wells", 96)

	out := buf.String()
	if !strings.Contains(out, "tray checked") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.Contains(out, appName) {
		t.Errorf("output %q missing prefix %q", out, appName)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("x") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("x") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("x") }, true},
		{"warn at error level", log.ErrorLevel, func(l *log.Logger) { l.Warn("x") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.wantLog, buf.String())
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		verbose    bool
		configured string
		want       log.Level
	}{
		{false, "", log.InfoLevel},
		{false, "warn", log.WarnLevel},
		{false, "debug", log.DebugLevel},
		{false, "nonsense", log.InfoLevel},
		{true, "error", log.DebugLevel},
		{true, "", log.DebugLevel},
	}

	for _, tt := range tests {
		if got := logLevel(tt.verbose, tt.configured); got != tt.want {
			t.Errorf("logLevel(%v, %q) = %v, want %v", tt.verbose, tt.configured, got, tt.want)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext() without a logger should return log.Default()")
	}

	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)
	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext() did not return the stored logger")
	}
}

func TestConfigFromContext(t *testing.T) {
	cfg, err := configFromContext(context.Background())
	if err != nil {
		t.Fatalf("configFromContext() error = %v", err)
	}
	if cfg.Defaults.Shape != plate.Plate96 {
		t.Errorf("default shape = %v, want %v", cfg.Defaults.Shape, plate.Plate96)
	}
	if cfg.Defaults.Rotation != plate.Rotate0 {
		t.Errorf("default rotation = %v, want %v", cfg.Defaults.Rotation, plate.Rotate0)
	}

	stored := config.Config{
		LogLevel: "warn",
		Defaults: config.Layout{Shape: plate.Plate384, Rotation: plate.Rotate180},
	}
	got, err := configFromContext(withConfig(context.Background(), stored))
	if err != nil || got.Defaults.Shape != plate.Plate384 || got.LogLevel != "warn" {
		t.Errorf("configFromContext() = %+v, %v; want the stored config", got, err)
	}
}

func TestConfigFromContext_ReportsLoadError(t *testing.T) {
	t.Setenv("TRAYGRID__DEFAULTS__ROTATION", "45")

	_, err := configFromContext(context.Background())
	if err == nil {
		t.Fatal("configFromContext() with a bad environment should fail")
	}
	if !strings.Contains(err.Error(), "Rotation") {
		t.Errorf("error %q should name the bad rotation", err)
	}

	// A stored configuration is used as is; the environment is not re-read.
	if _, err := configFromContext(withConfig(context.Background(), config.Config{})); err != nil {
		t.Errorf("configFromContext(stored) error = %v", err)
	}
}
