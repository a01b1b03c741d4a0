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
	"sync"

	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
)

// Transformer memoizes logical and rotated grids per shape and rotation.
//
// It returns exactly what the package-level functions return; it only
// avoids rebuilding a 96-cell table for every frame of a tray display.
// The zero value is ready to use and a Transformer is safe for concurrent
// use.
type Transformer struct {
	logical sync.Map // plate.GridShape -> plate.LogicalWellMatrix
	visual  sync.Map // gridKey -> plate.VisualWellMatrix
}

type gridKey struct {
	shape    plate.GridShape
	rotation plate.Rotation
}

// NewTransformer returns an empty Transformer.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// LogicalMatrix is the memoized form of BuildLogicalMatrix.
func (t *Transformer) LogicalMatrix(shape plate.GridShape) (plate.LogicalWellMatrix, error) {
	if m, ok := t.logical.Load(shape); ok {
		return m.(plate.LogicalWellMatrix), nil
	}
	m, err := BuildLogicalMatrix(shape)
	if err != nil {
		return plate.LogicalWellMatrix{}, err
	}
	actual, _ := t.logical.LoadOrStore(shape, m)
	return actual.(plate.LogicalWellMatrix), nil
}

// RotatedGrid is the memoized form of BuildRotatedGrid.
func (t *Transformer) RotatedGrid(rotation plate.Rotation, shape plate.GridShape) (plate.VisualWellMatrix, error) {
	key := gridKey{shape: shape, rotation: rotation}
	if m, ok := t.visual.Load(key); ok {
		return m.(plate.VisualWellMatrix), nil
	}
	logical, err := t.LogicalMatrix(shape)
	if err != nil {
		return plate.VisualWellMatrix{}, err
	}
	m, err := rotateMatrix(logical, rotation)
	if err != nil {
		return plate.VisualWellMatrix{}, err
	}
	actual, _ := t.visual.LoadOrStore(key, m)
	return actual.(plate.VisualWellMatrix), nil
}

// WellToVisualPosition is WellToVisualPosition; single lookups are O(1)
// and are not cached.
func (t *Transformer) WellToVisualPosition(well plate.WellCoordinate, rotation plate.Rotation, shape plate.GridShape) (plate.GridPosition, error) {
	return WellToVisualPosition(well, rotation, shape)
}

// VisualPositionToWell answers from the memoized rotated grid.
func (t *Transformer) VisualPositionToWell(position plate.GridPosition, rotation plate.Rotation, shape plate.GridShape) (plate.WellCoordinate, bool) {
	grid, err := t.RotatedGrid(rotation, shape)
	if err != nil {
		return plate.NotFound, false
	}
	return grid.At(position)
}

// AxisLabels is the memoized form of AxisLabels.
func (t *Transformer) AxisLabels(rotation plate.Rotation, shape plate.GridShape) (rowLabels, colLabels []string, err error) {
	grid, err := t.RotatedGrid(rotation, shape)
	if err != nil {
		return nil, nil, err
	}
	return visualRowLabels(grid), visualColLabels(grid), nil
}
