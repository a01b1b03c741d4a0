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
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EERL-EPFL/spice-ui-sub001/internal/config"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/display"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/tray"
)

// trayFlags selects the tray a command works on: either an explicit shape
// and rotation, or a placement from a loaded configuration.
type trayFlags struct {
	rows          int
	cols          int
	rotation      string
	configuration string
	tray          int
}

func (f *trayFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVar(&f.rows, "rows", plate.Plate96.Rows, "number of tray rows")
	fl.IntVar(&f.cols, "cols", plate.Plate96.Cols, "number of tray columns")
	fl.StringVarP(&f.rotation, "rotation", "r", "0", "display rotation: 0, 90, 180 or 270")
	fl.StringVar(&f.configuration, "configuration", "", "configuration name or ID (default: the only one)")
	fl.IntVarP(&f.tray, "tray", "t", 0, "use placement N of the configuration")
}

// explicit reports whether the user asked for a shape or rotation directly.
func (f *trayFlags) explicit(cmd *cobra.Command) bool {
	fl := cmd.Flags()
	return fl.Changed("rows") || fl.Changed("cols") || fl.Changed("rotation")
}

// layout returns the shape and rotation from flags, falling back to the
// configured defaults for anything not given.
func (f *trayFlags) layout(cmd *cobra.Command, cfg config.Config) (plate.GridShape, plate.Rotation, error) {
	shape := cfg.Defaults.Shape
	rotation := cfg.Defaults.Rotation
	fl := cmd.Flags()

	if fl.Changed("rows") {
		shape.Rows = f.rows
	}
	if fl.Changed("cols") {
		shape.Cols = f.cols
	}
	if err := shape.Validate(); err != nil {
		return plate.GridShape{}, 0, err
	}
	if fl.Changed("rotation") {
		r, err := plate.ParseRotation(f.rotation)
		if err != nil {
			return plate.GridShape{}, 0, err
		}
		rotation = r
	}
	return shape, rotation, nil
}

// view resolves the flags into a display.View.
func (f *trayFlags) view(cmd *cobra.Command) (*display.View, error) {
	ctx := cmd.Context()
	cfg, err := configFromContext(ctx)
	if err != nil {
		return nil, err
	}
	logger := loggerFromContext(ctx)

	if f.tray != 0 {
		if f.explicit(cmd) {
			return nil, errors.New("--tray cannot be combined with --rows, --cols or --rotation")
		}
		conf, err := pickConfiguration(cfg, f.configuration)
		if err != nil {
			return nil, err
		}
		p, ok := conf.Placement(f.tray)
		if !ok {
			return nil, fmt.Errorf("configuration %q has no tray %d", conf.Name, f.tray)
		}
		logger.Debug("using configured placement", "configuration", conf.Redacted(), "placement", p.String())
		return display.ForPlacement(p)
	}

	shape, rotation, err := f.layout(cmd, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("using explicit layout", "shape", shape.String(), "rotation", rotation.String())
	return display.New(shape, rotation, display.WithTitle(fmt.Sprintf("%s @ %s", shape, rotation)))
}

// pickConfiguration finds ref in cfg; an empty ref selects the only
// configuration.
func pickConfiguration(cfg config.Config, ref string) (tray.Configuration, error) {
	if ref != "" {
		conf, ok := cfg.Find(ref)
		if !ok {
			return tray.Configuration{}, fmt.Errorf("no configuration named %q", ref)
		}
		return conf, nil
	}
	switch len(cfg.Configurations) {
	case 0:
		return tray.Configuration{}, errors.New("no tray configurations loaded (use --config)")
	case 1:
		return cfg.Configurations[0], nil
	default:
		return tray.Configuration{}, fmt.Errorf("%d configurations loaded; choose one with --configuration", len(cfg.Configurations))
	}
}

// wellArg parses a well typed on the command line. Surrounding whitespace is
// dropped; case is not folded.
func wellArg(s string) (plate.WellCoordinate, error) {
	return plate.ParseWellCoordinate(strings.TrimSpace(s))
}
