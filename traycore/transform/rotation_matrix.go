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
	"math"

	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
)

// rotationMatrix is the 2×2 clockwise rotation matrix for screen
// coordinates, stored row-major: [[m00, m01], [m10, m11]].
type rotationMatrix [2][2]float64

func newRotationMatrix(r plate.Rotation) rotationMatrix {
	rad := float64(r.Degrees()) * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return rotationMatrix{
		{c, -s},
		{s, c},
	}
}

func (m rotationMatrix) apply(x, y float64) (float64, float64) {
	return m[0][0]*x + m[0][1]*y, m[1][0]*x + m[1][1]*y
}

// centre returns the (x, y) centre of a grid, in cell units.
func centre(s plate.GridShape) (float64, float64) {
	return float64(s.Cols-1) / 2, float64(s.Rows-1) / 2
}

// mapPosition rotates p, a cell of the from grid, by r about the centre of
// from and re-anchors it on the centre of to. The result is rounded half
// away from zero.
func mapPosition(p plate.GridPosition, r plate.Rotation, from, to plate.GridShape) plate.GridPosition {
	fx, fy := centre(from)
	tx, ty := centre(to)
	x, y := newRotationMatrix(r).apply(float64(p.Col)-fx, float64(p.Row)-fy)
	return plate.GridPosition{
		Row: int(math.Round(y + ty)),
		Col: int(math.Round(x + tx)),
	}
}
