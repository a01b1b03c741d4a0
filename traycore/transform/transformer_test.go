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

package transform_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trayerrors "github.com/EERL-EPFL/spice-ui-sub001/traycore/errors"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/transform"
)

func TestTransformer_MatchesPackageFunctions(t *testing.T) {
	tr := transform.NewTransformer()
	for _, shape := range shapes {
		for _, rot := range plate.Rotations {
			want, err := transform.BuildRotatedGrid(rot, shape)
			require.NoError(t, err)

			// Twice: the second call is served from the cache.
			for i := 0; i < 2; i++ {
				got, err := tr.RotatedGrid(rot, shape)
				require.NoError(t, err)
				assert.Equal(t, want.Rows(), got.Rows())
			}

			wantRows, wantCols, err := transform.AxisLabels(rot, shape)
			require.NoError(t, err)
			gotRows, gotCols, err := tr.AxisLabels(rot, shape)
			require.NoError(t, err)
			assert.Equal(t, wantRows, gotRows)
			assert.Equal(t, wantCols, gotCols)

			visual := shape.Visual(rot)
			for idx := 0; idx < visual.Wells(); idx++ {
				pos := plate.PositionFromIndex(idx, visual.Cols)
				w1, ok1 := transform.VisualPositionToWell(pos, rot, shape)
				w2, ok2 := tr.VisualPositionToWell(pos, rot, shape)
				require.Equal(t, ok1, ok2)
				require.Equal(t, w1, w2)

				p, err := tr.WellToVisualPosition(w2, rot, shape)
				require.NoError(t, err)
				require.Equal(t, pos, p)
			}
		}
	}
}

func TestTransformer_Errors(t *testing.T) {
	var tr transform.Transformer

	_, err := tr.LogicalMatrix(plate.GridShape{Rows: -1, Cols: 1})
	assert.True(t, errors.Is(err, trayerrors.ErrInvalidShape))

	_, err = tr.RotatedGrid(plate.Rotation(1), plate.Plate96)
	assert.True(t, errors.Is(err, trayerrors.ErrInvalidRotation))

	w, ok := tr.VisualPositionToWell(plate.GridPosition{Row: 99}, plate.Rotate0, plate.Plate96)
	assert.False(t, ok)
	assert.Equal(t, plate.NotFound, w)
}

func TestTransformer_ConcurrentUse(t *testing.T) {
	tr := transform.NewTransformer()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(rot plate.Rotation) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				grid, err := tr.RotatedGrid(rot, plate.Plate96)
				if err != nil {
					t.Errorf("RotatedGrid: %v", err)
					return
				}
				if grid.Shape().Wells() != 96 {
					t.Errorf("grid has %d cells", grid.Shape().Wells())
					return
				}
			}
		}(plate.Rotations[i%len(plate.Rotations)])
	}
	wg.Wait()
}
