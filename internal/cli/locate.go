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
	"strconv"

	"github.com/spf13/cobra"
)

func newLocateCmd() *cobra.Command {
	var tf trayFlags

	cmd := &cobra.Command{
		Use:   "locate WELL...",
		Short: "Print the visual row and column of wells",
		Example: `  traygrid locate A1 H12 --rotation 90
  traygrid locate C5 --config trays.yaml --tray 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := tf.view(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			for _, arg := range args {
				w, err := wellArg(arg)
				if err != nil {
					return err
				}
				pos, err := v.CellOf(w)
				if err != nil {
					return err
				}
				logger.Debug("located well", "well", w.String(), "row", pos.Row, "col", pos.Col, "view", v.String())
				fmt.Fprintf(out, "%s\t%s\n", w, pos)
			}
			return nil
		},
	}

	tf.register(cmd)
	return cmd
}

func newAtCmd() *cobra.Command {
	var tf trayFlags

	cmd := &cobra.Command{
		Use:   "at ROW COL",
		Short: "Print the well drawn at a visual cell",
		Long:  `at converts a 0-based visual row and column (for example a click on a rotated tray) into the well drawn there, or prints "no well" when the cell is outside the grid.`,
		Example: `  traygrid at 0 0 --rotation 90
  traygrid at 3 5 --config trays.yaml --tray 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("row %q: %w", args[0], err)
			}
			col, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("col %q: %w", args[1], err)
			}

			v, err := tf.view(cmd)
			if err != nil {
				return err
			}

			w, ok := v.WellAt(row, col)
			if !ok {
				loggerFromContext(cmd.Context()).Debug("no well at cell", "row", row, "col", col, "shape", v.Shape().String())
				fmt.Fprintln(cmd.OutOrStdout(), "no well")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), w)
			return nil
		},
	}

	tf.register(cmd)
	return cmd
}
