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
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/EERL-EPFL/spice-ui-sub001/traycore/display"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - titles
	colorGreen = lipgloss.Color("35")  // Green - success, highlighted wells
	colorRed   = lipgloss.Color("167") // Soft red - failures
	colorGray  = lipgloss.Color("245") // Gray - headers
	colorDim   = lipgloss.Color("240") // Dim gray - borders, empty cells
)

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader    = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	styleCell      = lipgloss.NewStyle().Padding(0, 1)
	styleHighlight = lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Padding(0, 1)
	styleEmpty     = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
	styleSuccess   = lipgloss.NewStyle().Foreground(colorGreen)
	styleFailure   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	emptyCell   = "·"
)

// renderView draws v as a bordered table: the first column holds the row
// headers and the header row holds the column headers.
func renderView(v *display.View) string {
	rowHdrs, colHdrs := v.Headers()
	cells := v.Cells()

	rows := make([][]string, len(cells))
	for r, row := range cells {
		line := make([]string, 0, len(row)+1)
		line = append(line, rowHdrs[r])
		for _, c := range row {
			if c.Well == plate.NotFound {
				line = append(line, emptyCell)
				continue
			}
			line = append(line, c.Well.String())
		}
		rows[r] = line
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(append([]string{""}, colHdrs...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 || col == 0 {
				return styleHeader
			}
			if row < 0 || row >= len(cells) || col-1 >= len(cells[row]) {
				return styleCell
			}
			c := cells[row][col-1]
			switch {
			case c.Highlighted:
				return styleHighlight
			case c.Well == plate.NotFound:
				return styleEmpty
			default:
				return styleCell
			}
		})

	return t.Render()
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printFailure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleFailure.Render(iconError)+" "+fmt.Sprintf(format, args...))
}
