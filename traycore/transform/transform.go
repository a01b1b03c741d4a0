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

package transform

import (
	"fmt"
	"strconv"

	"github.com/EERL-EPFL/spice-ui-sub001/traycore/errors"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
)

// BuildLogicalMatrix returns the label table of the unrotated grid:
// cell (row, col) holds plate.RowLetter(row) followed by col+1.
// It fails only when shape is structurally invalid.
func BuildLogicalMatrix(shape plate.GridShape) (plate.LogicalWellMatrix, error) {
	return plate.NewLogicalWellMatrix(shape)
}

// LogicalPosition parses well and checks that it exists in shape.
func LogicalPosition(well plate.WellCoordinate, shape plate.GridShape) (plate.GridPosition, error) {
	if err := shape.Validate(); err != nil {
		return plate.GridPosition{}, err
	}
	w, err := plate.ParseWellCoordinate(string(well))
	if err != nil {
		return plate.GridPosition{}, err
	}
	if err := w.ValidateIn(shape); err != nil {
		return plate.GridPosition{}, err
	}
	return w.Position()
}

// WellToVisualPosition returns the visual cell in which well is drawn when
// a grid of the given shape is displayed at rotation.
//
// The result lies in shape.Visual(rotation), which for 90° and 270° has
// rows and columns swapped. At 0° the logical position is returned
// unchanged. A malformed well, or one outside shape, yields an error
// matching errors.ErrInvalidCoordinate.
func WellToVisualPosition(well plate.WellCoordinate, rotation plate.Rotation, shape plate.GridShape) (plate.GridPosition, error) {
	if err := rotation.Validate(); err != nil {
		return plate.GridPosition{}, err
	}
	logical, err := LogicalPosition(well, shape)
	if err != nil {
		return plate.GridPosition{}, err
	}
	if rotation == plate.Rotate0 {
		return logical, nil
	}
	return mapPosition(logical, rotation, shape, shape.Visual(rotation)), nil
}

// VisualPositionToWell returns the well drawn at visual cell position when
// a grid of the given shape is displayed at rotation.
//
// It is the inverse of WellToVisualPosition. A position outside the visual
// bounding box, or an invalid rotation or shape, yields plate.NotFound and
// false: there is simply no well there.
func VisualPositionToWell(position plate.GridPosition, rotation plate.Rotation, shape plate.GridShape) (plate.WellCoordinate, bool) {
	if rotation.Validate() != nil || shape.Validate() != nil {
		return plate.NotFound, false
	}
	visual := shape.Visual(rotation)
	if !visual.Contains(position) {
		return plate.NotFound, false
	}
	logical := mapPosition(position, rotation.Inverse(), visual, shape)
	if !shape.Contains(logical) {
		return plate.NotFound, false
	}
	w, err := plate.NewWellCoordinate(logical.Row, logical.Col)
	if err != nil {
		return plate.NotFound, false
	}
	return w, true
}

// BuildRotatedGrid returns the complete visual layout of shape at rotation,
// indexed [visualRow][visualCol]. Every cell agrees with
// VisualPositionToWell for the same position.
func BuildRotatedGrid(rotation plate.Rotation, shape plate.GridShape) (plate.VisualWellMatrix, error) {
	logical, err := BuildLogicalMatrix(shape)
	if err != nil {
		return plate.VisualWellMatrix{}, err
	}
	return rotateMatrix(logical, rotation)
}

func rotateMatrix(logical plate.LogicalWellMatrix, rotation plate.Rotation) (plate.VisualWellMatrix, error) {
	if err := rotation.Validate(); err != nil {
		return plate.VisualWellMatrix{}, err
	}
	shape := logical.Shape()
	visual := shape.Visual(rotation)

	cells := make([][]plate.WellCoordinate, visual.Rows)
	for i := range cells {
		cells[i] = make([]plate.WellCoordinate, visual.Cols)
	}
	for row, wells := range logical.Rows() {
		for col, w := range wells {
			p := mapPosition(plate.GridPosition{Row: row, Col: col}, rotation, shape, visual)
			if !visual.Contains(p) || cells[p.Row][p.Col] != plate.NotFound {
				return plate.VisualWellMatrix{}, &errors.ValidationError{
					Type:   "VisualWellMatrix",
					Reason: fmt.Sprintf("well %s maps to %s, which is outside %s or already taken", w, p, visual),
				}
			}
			cells[p.Row][p.Col] = w
		}
	}
	return plate.NewVisualWellMatrix(rotation, shape, cells)
}

// AxisLabels returns the header labels of the visual layout: one per visual
// row and one per visual column.
//
// At 0° and 180° visual rows are lettered and columns numbered; at 90° and
// 270° it is the other way round. Labels are read from the rotated grid
// itself, so they always match the wells beneath them (for example, at 180°
// the first row header is the last letter).
func AxisLabels(rotation plate.Rotation, shape plate.GridShape) (rowLabels, colLabels []string, err error) {
	grid, err := BuildRotatedGrid(rotation, shape)
	if err != nil {
		return nil, nil, err
	}
	return visualRowLabels(grid), visualColLabels(grid), nil
}

func visualRowLabels(grid plate.VisualWellMatrix) []string {
	visual := grid.Shape()
	labels := make([]string, visual.Rows)
	for r := range labels {
		w, _ := grid.At(plate.GridPosition{Row: r, Col: 0})
		labels[r] = wellLabel(w, grid.Rotation().SwapsAxes())
	}
	return labels
}

func visualColLabels(grid plate.VisualWellMatrix) []string {
	visual := grid.Shape()
	labels := make([]string, visual.Cols)
	for c := range labels {
		w, _ := grid.At(plate.GridPosition{Row: 0, Col: c})
		labels[c] = wellLabel(w, !grid.Rotation().SwapsAxes())
	}
	return labels
}

// wellLabel returns the column number of w when byNumber is set and its row
// letter otherwise.
func wellLabel(w plate.WellCoordinate, byNumber bool) string {
	if w == plate.NotFound {
		return ""
	}
	if byNumber {
		return strconv.Itoa(w.Number())
	}
	return w.Letter()
}

// Compose returns the net rotation of displaying at a and then turning the
// display by b.
func Compose(a, b plate.Rotation) plate.Rotation {
	return a.Add(b)
}
