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

	"dirpx.dev/rxmerr"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
)

// Report summarizes a Verify run.
type Report struct {
	Shape    plate.GridShape
	Rotation plate.Rotation
	Wells    int // wells checked
	Cells    int // visual cells checked
}

// String returns e.g. "8x12@90°: 96 wells, 96 cells".
func (r Report) String() string {
	return fmt.Sprintf("%s@%s: %d wells, %d cells", r.Shape, r.Rotation, r.Wells, r.Cells)
}

// Verify checks that rotation maps shape's wells onto its visual grid
// one-to-one and that every well survives the round trip through
// WellToVisualPosition and VisualPositionToWell. Every failure is
// reported, not just the first.
func Verify(rotation plate.Rotation, shape plate.GridShape) (Report, error) {
	report := Report{Shape: shape, Rotation: rotation}

	logical, err := BuildLogicalMatrix(shape)
	if err != nil {
		return report, err
	}
	if err := rotation.Validate(); err != nil {
		return report, err
	}

	c := rxmerr.NewCollector()
	visual := shape.Visual(rotation)
	hits := make(map[plate.GridPosition]plate.WellCoordinate, shape.Wells())

	for _, w := range logical.Wells() {
		report.Wells++
		pos, err := WellToVisualPosition(w, rotation, shape)
		if err != nil {
			c.Append(fmt.Errorf("well %s: %w", w, err))
			continue
		}
		if !visual.Contains(pos) {
			c.Append(fmt.Errorf("well %s: visual position %s is outside %s", w, pos, visual))
			continue
		}
		if prev, dup := hits[pos]; dup {
			c.Append(fmt.Errorf("wells %s and %s both map to %s", prev, w, pos))
			continue
		}
		hits[pos] = w

		back, ok := VisualPositionToWell(pos, rotation, shape)
		if !ok || back != w {
			c.Append(fmt.Errorf("well %s: round trip through %s returned %q", w, pos, back))
		}
	}

	for row := 0; row < visual.Rows; row++ {
		for col := 0; col < visual.Cols; col++ {
			report.Cells++
			pos := plate.GridPosition{Row: row, Col: col}
			if _, ok := hits[pos]; !ok {
				c.Append(fmt.Errorf("visual cell %s holds no well", pos))
			}
		}
	}

	return report, c.Err()
}
