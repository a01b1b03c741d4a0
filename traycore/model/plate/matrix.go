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

package plate

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/EERL-EPFL/spice-ui-sub001/traycore/errors"
)

// LogicalWellMatrix maps every logical (row, col) of a grid to its well
// label. It is immutable: accessors return copies.
type LogicalWellMatrix struct {
	shape GridShape
	wells [][]WellCoordinate
}

// NewLogicalWellMatrix labels every cell of shape: cell (row, col) holds
// RowLetter(row) followed by col+1.
func NewLogicalWellMatrix(shape GridShape) (LogicalWellMatrix, error) {
	if err := shape.Validate(); err != nil {
		return LogicalWellMatrix{}, err
	}
	wells := make([][]WellCoordinate, shape.Rows)
	for row := 0; row < shape.Rows; row++ {
		wells[row] = make([]WellCoordinate, shape.Cols)
		letter := RowLetter(row)
		for col := 0; col < shape.Cols; col++ {
			wells[row][col] = WellCoordinate(letter + strconv.Itoa(col+1))
		}
	}
	return LogicalWellMatrix{shape: shape, wells: wells}, nil
}

// Shape returns the logical grid dimensions.
func (m LogicalWellMatrix) Shape() GridShape {
	return m.shape
}

// At returns the well at logical position p, or NotFound and false if p is
// outside the grid.
func (m LogicalWellMatrix) At(p GridPosition) (WellCoordinate, bool) {
	if !m.shape.Contains(p) {
		return NotFound, false
	}
	return m.wells[p.Row][p.Col], true
}

// Rows returns a copy of the table, indexed [row][col].
func (m LogicalWellMatrix) Rows() [][]WellCoordinate {
	return copyCells(m.wells)
}

// Wells returns every well in row-major order.
func (m LogicalWellMatrix) Wells() []WellCoordinate {
	out := make([]WellCoordinate, 0, m.shape.Wells())
	for _, row := range m.wells {
		out = append(out, row...)
	}
	return out
}

// IsZero reports whether m was never built.
func (m LogicalWellMatrix) IsZero() bool {
	return m.wells == nil
}

// String returns a summary such as "LogicalWellMatrix{8x12}".
func (m LogicalWellMatrix) String() string {
	return "LogicalWellMatrix{" + m.shape.String() + "}"
}

// MarshalJSON encodes the table as a JSON array of rows.
func (m LogicalWellMatrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.wells)
}

// MarshalYAML encodes the table as a YAML sequence of rows.
func (m LogicalWellMatrix) MarshalYAML() (interface{}, error) {
	return m.Rows(), nil
}

// VisualWellMatrix is a well grid as it appears on screen at some rotation.
// Cells that hold no well contain NotFound; for a rotation of a complete
// rectangular plate there are none, but the type does not assume it.
type VisualWellMatrix struct {
	rotation Rotation
	logical  GridShape
	cells    [][]WellCoordinate
}

// NewVisualWellMatrix wraps cells as the visual layout of a logical grid
// displayed at rotation. cells must have the dimensions of
// logical.Visual(rotation); it is copied.
func NewVisualWellMatrix(rotation Rotation, logical GridShape, cells [][]WellCoordinate) (VisualWellMatrix, error) {
	if err := rotation.Validate(); err != nil {
		return VisualWellMatrix{}, err
	}
	if err := logical.Validate(); err != nil {
		return VisualWellMatrix{}, err
	}
	visual := logical.Visual(rotation)
	if len(cells) != visual.Rows {
		return VisualWellMatrix{}, &errors.ValidationError{
			Type:   "VisualWellMatrix",
			Field:  "Rows",
			Reason: fmt.Sprintf("got %d rows, want %d for %s at %s", len(cells), visual.Rows, logical, rotation),
		}
	}
	for i, row := range cells {
		if len(row) != visual.Cols {
			return VisualWellMatrix{}, &errors.ValidationError{
				Type:   "VisualWellMatrix",
				Field:  "Cols",
				Reason: fmt.Sprintf("row %d has %d cells, want %d", i, len(row), visual.Cols),
			}
		}
	}
	return VisualWellMatrix{rotation: rotation, logical: logical, cells: copyCells(cells)}, nil
}

// Rotation returns the rotation the layout was built for.
func (m VisualWellMatrix) Rotation() Rotation {
	return m.rotation
}

// LogicalShape returns the dimensions of the unrotated grid.
func (m VisualWellMatrix) LogicalShape() GridShape {
	return m.logical
}

// Shape returns the visual bounding box.
func (m VisualWellMatrix) Shape() GridShape {
	return m.logical.Visual(m.rotation)
}

// At returns the well shown at visual position p. It returns NotFound and
// false when p is outside the visual bounding box or the cell is empty.
func (m VisualWellMatrix) At(p GridPosition) (WellCoordinate, bool) {
	if !m.Shape().Contains(p) {
		return NotFound, false
	}
	w := m.cells[p.Row][p.Col]
	return w, w != NotFound
}

// Rows returns a copy of the layout, indexed [visualRow][visualCol].
func (m VisualWellMatrix) Rows() [][]WellCoordinate {
	return copyCells(m.cells)
}

// IsZero reports whether m was never built.
func (m VisualWellMatrix) IsZero() bool {
	return m.cells == nil
}

// String returns a summary such as "VisualWellMatrix{8x12@90°}".
func (m VisualWellMatrix) String() string {
	return "VisualWellMatrix{" + m.logical.String() + "@" + m.rotation.String() + "}"
}

// MarshalJSON encodes the layout with its rotation and logical shape.
func (m VisualWellMatrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(visualWire{Rotation: m.rotation, Shape: m.logical, Cells: m.cells})
}

// MarshalYAML encodes the layout with its rotation and logical shape.
func (m VisualWellMatrix) MarshalYAML() (interface{}, error) {
	return visualWire{Rotation: m.rotation, Shape: m.logical, Cells: m.Rows()}, nil
}

type visualWire struct {
	Rotation Rotation           `json:"rotation" yaml:"rotation"`
	Shape    GridShape          `json:"shape" yaml:"shape"`
	Cells    [][]WellCoordinate `json:"cells" yaml:"cells"`
}

func copyCells(cells [][]WellCoordinate) [][]WellCoordinate {
	out := make([][]WellCoordinate, len(cells))
	for i, row := range cells {
		out[i] = append([]WellCoordinate(nil), row...)
	}
	return out
}
