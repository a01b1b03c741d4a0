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
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model"
	"gopkg.in/yaml.v3"
)

// MaxRows is the largest number of rows a grid may have. Rows are labeled
// with a single letter, A to Z; wider alphabets are not supported and are
// rejected rather than wrapped.
const MaxRows = 26

// Standard plate layouts.
var (
	// Plate96 is the 8 x 12 layout of a 96-well plate.
	Plate96 = *model.MustValidate(&GridShape{Rows: 8, Cols: 12})

	// Plate384 is the 16 x 24 layout of a 384-well plate.
	Plate384 = *model.MustValidate(&GridShape{Rows: 16, Cols: 24})
)

// GridShape holds the dimensions of a logical, unrotated well grid.
//
// Rows counts lettered rows (A, B, ...), Cols counts numbered columns
// (1, 2, ...). A shape is valid when both are positive and Rows does not
// exceed MaxRows. The transform only checks this structural validity;
// business limits such as a maximum number of wells per tray belong to the
// configuration layer.
type GridShape struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
}

// Compile-time check that GridShape implements model.Model interface.
var _ model.Model = (*GridShape)(nil)

// NewGridShape returns a validated shape.
func NewGridShape(rows, cols int) (GridShape, error) {
	s := GridShape{Rows: rows, Cols: cols}
	if err := s.Validate(); err != nil {
		return GridShape{}, err
	}
	return s, nil
}

// Wells returns the number of wells in the grid.
func (s GridShape) Wells() int {
	return s.Rows * s.Cols
}

// Visual returns the bounding box of the grid once displayed at rotation r.
// Quarter and three-quarter turns exchange rows and columns.
func (s GridShape) Visual(r Rotation) GridShape {
	if r.SwapsAxes() {
		return GridShape{Rows: s.Cols, Cols: s.Rows}
	}
	return s
}

// Contains reports whether p lies inside the grid.
func (s GridShape) Contains(p GridPosition) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}

// String returns "{Rows}x{Cols}", for example "8x12".
func (s GridShape) String() string {
	return strconv.Itoa(s.Rows) + "x" + strconv.Itoa(s.Cols)
}

// Redacted returns the same text as String.
func (s GridShape) Redacted() string {
	return s.String()
}

// TypeName returns "GridShape".
func (s GridShape) TypeName() string {
	return "GridShape"
}

// IsZero reports whether both dimensions are zero.
func (s GridShape) IsZero() bool {
	return s.Rows == 0 && s.Cols == 0
}

// Equal reports whether both dimensions match.
func (s GridShape) Equal(other GridShape) bool {
	return s == other
}

// Validate checks that Rows is in [1, MaxRows] and Cols is positive.
// Failures are *errors.ValidationError values matching errors.ErrInvalidShape.
func (s GridShape) Validate() error {
	if s.Rows <= 0 {
		return &errors.ValidationError{Type: s.TypeName(), Field: "Rows", Reason: "must be positive", Value: s.Rows}
	}
	if s.Rows > MaxRows {
		return &errors.ValidationError{
			Type:   s.TypeName(),
			Field:  "Rows",
			Reason: fmt.Sprintf("must not exceed %d (single-letter row labels)", MaxRows),
			Value:  s.Rows,
		}
	}
	if s.Cols <= 0 {
		return &errors.ValidationError{Type: s.TypeName(), Field: "Cols", Reason: "must be positive", Value: s.Cols}
	}
	return nil
}

// MarshalJSON encodes the shape as {"rows":R,"cols":C}.
func (s GridShape) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias GridShape
	return json.Marshal(alias(s))
}

// UnmarshalJSON decodes and validates a shape.
func (s *GridShape) UnmarshalJSON(data []byte) error {
	type alias GridShape
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return &errors.UnmarshalError{Type: s.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := GridShape(decoded).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}
	*s = GridShape(decoded)
	return nil
}

// MarshalYAML encodes the shape as a mapping with rows and cols keys.
func (s GridShape) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias GridShape
	return alias(s), nil
}

// UnmarshalYAML decodes and validates a shape.
func (s *GridShape) UnmarshalYAML(node *yaml.Node) error {
	type alias GridShape
	var decoded alias
	if err := node.Decode(&decoded); err != nil {
		return &errors.UnmarshalError{Type: s.TypeName(), Reason: err.Error()}
	}
	if err := GridShape(decoded).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}
	*s = GridShape(decoded)
	return nil
}
