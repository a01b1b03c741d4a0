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
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/EERL-EPFL/spice-ui-sub001/internal/config"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/transform"
)

type checkCase struct {
	label    string
	shape    plate.GridShape
	rotation plate.Rotation
}

func newCheckCmd() *cobra.Command {
	var tf trayFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the round trip and one-to-one mapping of tray layouts",
		Long: `check verifies, for every well, that the visual cell it is drawn in maps
back to the same well, and that every visual cell holds exactly one well.

With a configuration loaded it checks every placement of every configuration
(or only --configuration). Otherwise, or with --rows/--cols, it checks that
shape at all four rotations. It exits non-zero if any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromContext(cmd.Context())
			if err != nil {
				return err
			}
			cases, err := tf.checkCases(cmd, cfg)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()
			start := time.Now()
			failed := 0

			for _, c := range cases {
				report, err := transform.Verify(c.rotation, c.shape)
				if err != nil {
					failed++
					printFailure(out, "%s: %v", c.label, err)
					continue
				}
				printSuccess(out, "%s: %s", c.label, report)
			}

			logger.Info("check finished",
				"cases", len(cases),
				"failed", failed,
				"elapsed", time.Since(start).Round(time.Millisecond),
			)
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(cases))
			}
			return nil
		},
	}

	tf.register(cmd)
	return cmd
}

// checkCases lists what check should verify.
func (f *trayFlags) checkCases(cmd *cobra.Command, cfg config.Config) ([]checkCase, error) {
	fl := cmd.Flags()
	shapeGiven := fl.Changed("rows") || fl.Changed("cols")

	if !shapeGiven && (f.configuration != "" || len(cfg.Configurations) > 0) {
		confs := cfg.Configurations
		if f.configuration != "" {
			conf, err := pickConfiguration(cfg, f.configuration)
			if err != nil {
				return nil, err
			}
			confs = confs[:0:0]
			confs = append(confs, conf)
		}

		var cases []checkCase
		for _, conf := range confs {
			for _, p := range conf.Sorted() {
				if f.tray != 0 && p.Order != f.tray {
					continue
				}
				cases = append(cases, checkCase{
					label:    fmt.Sprintf("%s %s", conf.Name, p),
					shape:    p.Tray.Shape(),
					rotation: p.Rotation,
				})
			}
		}
		if len(cases) == 0 {
			return nil, fmt.Errorf("no placements match --tray %d", f.tray)
		}
		return cases, nil
	}

	shape, rotation, err := f.layout(cmd, cfg)
	if err != nil {
		return nil, err
	}
	rotations := plate.Rotations
	if fl.Changed("rotation") {
		rotations = []plate.Rotation{rotation}
	}

	cases := make([]checkCase, 0, len(rotations))
	for _, r := range rotations {
		cases = append(cases, checkCase{label: shape.String(), shape: shape, rotation: r})
	}
	return cases, nil
}
