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

// Package cli implements the traygrid command-line interface.
//
// traygrid prints how a well tray looks on screen at a given rotation and
// answers the two lookups a tray widget needs: where a well is drawn, and
// which well a cell shows.
//
// # Commands
//
//   - layout: print the rotated grid with its headers
//   - locate: print the visual cell of one or more wells
//   - at: print the well shown at a visual cell
//   - check: verify the transform for configured trays or a shape
//
// # Configuration
//
// --config points at a YAML or TOML file (see package config). Without it,
// defaults come from TRAYGRID__ environment variables and .env.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log. --verbose (-v) switches to
// debug level; otherwise log_level from the configuration applies. The
// logger travels in the command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/EERL-EPFL/spice-ui-sub001/internal/config"
)

const appName = "traygrid"

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version. main
// calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs traygrid with os.Args and the standard streams.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree writing results to out and logs to
// errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "traygrid maps well trays between logical and on-screen coordinates",
		Long:          `traygrid prints rotated well-tray layouts and converts between well coordinates such as "C5" and the row and column at which a rotated tray draws them.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger := newLogger(errOut, logLevel(verbose, cfg.LogLevel))
			logger.Debug("configuration loaded",
				"path", configPath,
				"schema", cfg.SchemaVersion.String(),
				"configurations", len(cfg.Configurations),
				"defaults", fmt.Sprintf("%s@%s", cfg.Defaults.Shape, cfg.Defaults.Rotation),
			)

			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "tray configuration file (.yaml, .yml or .toml)")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newLocateCmd())
	root.AddCommand(newAtCmd())
	root.AddCommand(newCheckCmd())

	return root
}
