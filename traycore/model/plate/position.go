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

// GridPosition is a 0-based (row, column) index into either the logical or
// the visual grid. Which grid it refers to is up to the caller; the
// transform functions document the side they expect.
//
// The zero value is the top-left cell and is valid.
type GridPosition struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Compile-time check that GridPosition implements model.Model interface.
var _ model.Model = (*GridPosition)(nil)

// PositionFromIndex converts a row-major index in a grid with cols columns
// back into a position.
func PositionFromIndex(idx, cols int) GridPosition {
	return GridPosition{Row: idx / cols, Col: idx % cols}
}

// Index returns the row-major index of p in a grid with cols columns.
func (p GridPosition) Index(cols int) int {
	return p.Row*cols + p.Col
}

// String returns "(row,col)".
func (p GridPosition) String() string {
	return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) + ")"
}

// Redacted returns the same text as String.
func (p GridPosition) Redacted() string {
	return p.String()
}

// TypeName returns "GridPosition".
func (p GridPosition) TypeName() string {
	return "GridPosition"
}

// IsZero reports whether p is the top-left cell.
func (p GridPosition) IsZero() bool {
	return p.Row == 0 && p.Col == 0
}

// Equal reports whether both indices match.
func (p GridPosition) Equal(other GridPosition) bool {
	return p == other
}

// Validate rejects negative indices. Upper bounds depend on the grid and are
// checked with GridShape.Contains.
func (p GridPosition) Validate() error {
	if p.Row < 0 {
		return &errors.ValidationError{Type: p.TypeName(), Field: "Row", Reason: "must not be negative", Value: p.Row}
	}
	if p.Col < 0 {
		return &errors.ValidationError{Type: p.TypeName(), Field: "Col", Reason: "must not be negative", Value: p.Col}
	}
	return nil
}

// MarshalJSON encodes the position as {"row":R,"col":C}.
func (p GridPosition) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type alias GridPosition
	return json.Marshal(alias(p))
}

// UnmarshalJSON decodes and validates a position.
func (p *GridPosition) UnmarshalJSON(data []byte) error {
	type alias GridPosition
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := GridPosition(decoded).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", p.TypeName(), err)
	}
	*p = GridPosition(decoded)
	return nil
}

// MarshalYAML encodes the position as a mapping with row and col keys.
func (p GridPosition) MarshalYAML() (interface{}, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type alias GridPosition
	return alias(p), nil
}

// UnmarshalYAML decodes and validates a position.
func (p *GridPosition) UnmarshalYAML(node *yaml.Node) error {
	type alias GridPosition
	var decoded alias
	if err := node.Decode(&decoded); err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Reason: err.Error()}
	}
	if err := GridPosition(decoded).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", p.TypeName(), err)
	}
	*p = GridPosition(decoded)
	return nil
}
