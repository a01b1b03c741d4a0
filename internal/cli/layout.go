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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func newLayoutCmd() *cobra.Command {
	var (
		tf        trayFlags
		highlight []string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the rotated tray grid with its headers",
		Example: `  traygrid layout --rows 8 --cols 12 --rotation 90
  traygrid layout --config trays.yaml --tray 2 --highlight A1,H12
  traygrid layout --rotation 270 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := tf.view(cmd)
			if err != nil {
				return err
			}

			wells := make([]plate.WellCoordinate, 0, len(highlight))
			for _, s := range highlight {
				w, err := wellArg(s)
				if err != nil {
					return err
				}
				wells = append(wells, w)
			}
			if err := v.Highlight(wells...); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch output {
			case outputTable:
				printTitle(out, v.Title())
				fmt.Fprintln(out, renderView(v))
				return nil
			case outputJSON:
				snap := v.Snapshot()
				data, err := model.ToJSON(&snap)
				if err != nil {
					return err
				}
				var buf bytes.Buffer
				if err := json.Indent(&buf, data, "", "  "); err != nil {
					return err
				}
				buf.WriteByte('\n')
				_, err = buf.WriteTo(out)
				return err
			case outputYAML:
				snap := v.Snapshot()
				data, err := model.ToYAML(&snap)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			default:
				return fmt.Errorf("unknown output format %q (want table, json or yaml)", output)
			}
		},
	}

	tf.register(cmd)
	cmd.Flags().StringSliceVar(&highlight, "highlight", nil, "wells to highlight, e.g. A1,C5")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json or yaml")
	return cmd
}
