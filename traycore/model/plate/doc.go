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

// Package plate defines the value types describing a laboratory well plate
// and its on-screen orientation.
//
// A plate has a logical grid (GridShape): lettered rows and numbered
// columns, as printed on the plastic. Each cell is a WellCoordinate such as
// "A1" or "H12". When a tray is displayed it may be turned by a Rotation of
// 0, 90, 180 or 270 degrees clockwise, producing a visual grid whose
// bounding box swaps rows and columns for quarter turns. GridPosition
// indexes either grid, 0-based.
//
// LogicalWellMatrix and VisualWellMatrix hold complete label tables for the
// two grids. This package only labels cells; the mapping between logical
// and visual positions lives in traycore/transform.
//
// Every scalar type here implements model.Model: it validates itself and
// round-trips through JSON and YAML.
package plate
