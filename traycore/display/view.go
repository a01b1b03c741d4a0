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

package display

import (
	"fmt"
	"slices"

	"dirpx.dev/rxmerr"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/tray"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/transform"
)

// shared backs every View that is not given its own Transformer.
var shared = transform.NewTransformer()

// Cell is one on-screen cell of a View.
type Cell struct {
	// Position is the visual (row, col) of the cell.
	Position plate.GridPosition

	// Well is the well drawn in the cell, or plate.NotFound.
	Well plate.WellCoordinate

	// Highlighted reports whether Well is in the highlighted set.
	Highlighted bool
}

// Option configures a View.
type Option func(*View)

// WithTransformer makes the View use tr instead of the package-wide
// Transformer.
func WithTransformer(tr *transform.Transformer) Option {
	return func(v *View) {
		if tr != nil {
			v.tr = tr
		}
	}
}

// WithTitle sets the caption shown above the grid.
func WithTitle(title string) Option {
	return func(v *View) {
		v.title = title
	}
}

// View is a tray as it appears on screen: a rotated well grid with its axis
// headers and an optional set of highlighted wells.
//
// The grid and headers are computed once at construction. Highlight mutates
// the view, so a View must not be shared between goroutines while it is
// being highlighted.
type View struct {
	tr       *transform.Transformer
	title    string
	logical  plate.GridShape
	rotation plate.Rotation
	grid     plate.VisualWellMatrix
	rowHdrs  []string
	colHdrs  []string
	marked   map[plate.WellCoordinate]struct{}
}

// New returns the view of a shape-sized tray drawn at rotation.
func New(shape plate.GridShape, rotation plate.Rotation, opts ...Option) (*View, error) {
	v := &View{tr: shared, logical: shape, rotation: rotation}
	for _, opt := range opts {
		opt(v)
	}

	grid, err := v.tr.RotatedGrid(rotation, shape)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	rows, cols, err := v.tr.AxisLabels(rotation, shape)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}

	v.grid = grid
	v.rowHdrs = rows
	v.colHdrs = cols
	v.marked = make(map[plate.WellCoordinate]struct{})
	return v, nil
}

// ForPlacement returns the view of a configured tray placement. The title
// defaults to the placement's description.
func ForPlacement(p tray.TrayPlacement, opts ...Option) (*View, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	return New(p.Tray.Shape(), p.Rotation, append([]Option{WithTitle(p.String())}, opts...)...)
}

// Title returns the caption of the view.
func (v *View) Title() string { return v.title }

// Rotation returns the display rotation.
func (v *View) Rotation() plate.Rotation { return v.rotation }

// LogicalShape returns the unrotated shape of the tray.
func (v *View) LogicalShape() plate.GridShape { return v.logical }

// Shape returns the on-screen shape, with rows and columns swapped at 90°
// and 270°.
func (v *View) Shape() plate.GridShape { return v.grid.Shape() }

// Headers returns the labels drawn along the left edge (one per visual row)
// and along the top edge (one per visual column).
func (v *View) Headers() (rows, cols []string) {
	return slices.Clone(v.rowHdrs), slices.Clone(v.colHdrs)
}

// Cells returns every visual cell in row-major order.
func (v *View) Cells() [][]Cell {
	grid := v.grid.Rows()
	out := make([][]Cell, len(grid))
	for r, row := range grid {
		out[r] = make([]Cell, len(row))
		for c, w := range row {
			_, hl := v.marked[w]
			out[r][c] = Cell{
				Position:    plate.GridPosition{Row: r, Col: c},
				Well:        w,
				Highlighted: hl && w != plate.NotFound,
			}
		}
	}
	return out
}

// WellAt maps a click on visual cell (row, col) to the well drawn there.
// It reports false for clicks outside the grid.
func (v *View) WellAt(row, col int) (plate.WellCoordinate, bool) {
	return v.tr.VisualPositionToWell(plate.GridPosition{Row: row, Col: col}, v.rotation, v.logical)
}

// CellOf returns the visual cell in which well is drawn.
func (v *View) CellOf(well plate.WellCoordinate) (plate.GridPosition, error) {
	return v.tr.WellToVisualPosition(well, v.rotation, v.logical)
}

// Highlight replaces the highlighted set with wells. Every well must belong
// to the tray; if any does not, the set is left unchanged and all offending
// wells are reported.
func (v *View) Highlight(wells ...plate.WellCoordinate) error {
	c := rxmerr.NewCollector()
	next := make(map[plate.WellCoordinate]struct{}, len(wells))
	for _, w := range wells {
		if err := w.ValidateIn(v.logical); err != nil {
			c.Append(err)
			continue
		}
		next[w] = struct{}{}
	}
	if err := c.Err(); err != nil {
		return err
	}
	v.marked = next
	return nil
}

// IsHighlighted reports whether well is in the highlighted set.
func (v *View) IsHighlighted(well plate.WellCoordinate) bool {
	_, ok := v.marked[well]
	return ok
}

// Highlighted returns the highlighted wells in logical row-major order.
func (v *View) Highlighted() []plate.WellCoordinate {
	out := make([]plate.WellCoordinate, 0, len(v.marked))
	for w := range v.marked {
		out = append(out, w)
	}
	cols := v.logical.Cols
	slices.SortFunc(out, func(a, b plate.WellCoordinate) int {
		pa, _ := a.Position()
		pb, _ := b.Position()
		return pa.Index(cols) - pb.Index(cols)
	})
	return out
}

// Rotate returns a new view of the same tray turned a further delta
// clockwise. The highlighted set and title carry over.
func (v *View) Rotate(delta plate.Rotation) (*View, error) {
	if err := delta.Validate(); err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	next, err := New(v.logical, transform.Compose(v.rotation, delta), WithTransformer(v.tr), WithTitle(v.title))
	if err != nil {
		return nil, err
	}
	for w := range v.marked {
		next.marked[w] = struct{}{}
	}
	return next, nil
}

// String returns e.g. "View{8x12@90°}".
func (v *View) String() string {
	return fmt.Sprintf("View{%s@%s}", v.logical, v.rotation)
}
