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

// Package transform maps well coordinates between the logical layout of a
// plate and its rotated on-screen layout.
//
// What:
//
//   - BuildLogicalMatrix labels every cell of an unrotated grid.
//   - WellToVisualPosition finds the visual cell a well is drawn in.
//   - VisualPositionToWell finds the well drawn in a visual cell (click mapping).
//   - BuildRotatedGrid produces the whole visual layout at once.
//   - AxisLabels produces the row and column headers of the visual layout.
//
// How:
//
// A position is made relative to the centre of the logical grid,
// ((cols-1)/2, (rows-1)/2), multiplied by the clockwise rotation matrix
//
//	| cos θ  -sin θ |
//	| sin θ   cos θ |
//
// (screen coordinates, y pointing down) and moved back relative to the
// centre of the visual grid. For 0° and 180° both centres coincide; for 90°
// and 270° the visual grid has its rows and columns swapped, so its centre
// does too. Each resulting coordinate is rounded with math.Round, i.e. half
// away from zero. Centre offsets are always whole or half-integers, so the
// rotated offsets land on integers up to floating-point noise and the
// rounding only removes that noise.
//
// The inverse applies the rotation matrix of -θ about the visual centre.
// BuildRotatedGrid forward-maps every well, so the batch and per-cell
// results agree by construction.
//
// Every layout computation in this module, including header labels and
// click-to-well mapping in traycore/display, goes through these functions.
//
// Complexity:
//
//   - WellToVisualPosition, VisualPositionToWell: O(1).
//   - BuildLogicalMatrix, BuildRotatedGrid, AxisLabels: O(rows×cols).
//
// Errors:
//
//   - errors.ErrInvalidCoordinate: malformed well, or a well outside the shape.
//   - errors.ErrInvalidRotation: rotation other than 0, 90, 180, 270.
//   - errors.ErrInvalidShape: non-positive dimensions or more than 26 rows.
//
// A visual cell without a well is not an error: VisualPositionToWell
// returns plate.NotFound and false.
//
// All functions are pure and safe for concurrent use. Transformer adds
// optional memoization of whole grids for callers that render many frames.
package transform
