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
	"regexp"
	"strconv"

	"github.com/EERL-EPFL/spice-ui-sub001/traycore/errors"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model"
	"gopkg.in/yaml.v3"
)

const (
	// wellPattern matches a canonical well coordinate: one upper-case row
	// letter followed by a 1-based column number without leading zeros.
	wellPattern = `^[A-Z][1-9][0-9]*$`
)

var (
	// WellRegexp is the compiled form of the well coordinate format. It is
	// safe for concurrent use.
	WellRegexp = regexp.MustCompile(wellPattern)
)

// NotFound is the WellCoordinate reported for a visual cell that holds no
// well. It is the zero value.
const NotFound WellCoordinate = ""

// WellCoordinate labels one well of a plate: a row letter and a 1-based
// column number, for example "A1" or "H12".
//
// The format is strict: upper-case letter, no zero padding, no separators.
// "a1", "A01", "A-1" and " A1" are all invalid. Neither ParseWellCoordinate
// nor the decoders trim or fold case; callers reading user input clean it
// up first.
//
// A well coordinate on its own only knows its format. Whether it exists on a
// given plate is checked with ValidateIn.
//
// The zero value is NotFound. Validate accepts it; ValidateIn and
// ParseWellCoordinate do not.
type WellCoordinate string

// Compile-time check that WellCoordinate implements model.Model interface.
var _ model.Model = (*WellCoordinate)(nil)

// RowLetter returns the letter labeling the 0-based logical row, or "" if
// row is outside [0, MaxRows).
func RowLetter(row int) string {
	if row < 0 || row >= MaxRows {
		return ""
	}
	return string(rune('A' + row))
}

// NewWellCoordinate returns the label of the well at the 0-based logical
// position (row, col).
func NewWellCoordinate(row, col int) (WellCoordinate, error) {
	letter := RowLetter(row)
	if letter == "" {
		return NotFound, &errors.CoordinateError{
			Value:  fmt.Sprintf("(%d,%d)", row, col),
			Reason: fmt.Sprintf("row index must be in [0,%d)", MaxRows),
		}
	}
	if col < 0 {
		return NotFound, &errors.CoordinateError{
			Value:  fmt.Sprintf("(%d,%d)", row, col),
			Reason: "column index must not be negative",
		}
	}
	return WellCoordinate(letter + strconv.Itoa(col+1)), nil
}

// ParseWellCoordinate checks that s is a well coordinate such as "C5".
// Nothing is trimmed or case-folded: " C5" and "c5" are rejected. Failures
// are *errors.CoordinateError values.
func ParseWellCoordinate(s string) (WellCoordinate, error) {
	w := WellCoordinate(s)
	if w == NotFound {
		return NotFound, &errors.CoordinateError{Value: s, Reason: "must not be empty"}
	}
	if err := w.Validate(); err != nil {
		return NotFound, err
	}
	return w, nil
}

// Row returns the 0-based logical row index, or -1 if w is malformed.
func (w WellCoordinate) Row() int {
	if !WellRegexp.MatchString(string(w)) {
		return -1
	}
	return int(w[0] - 'A')
}

// Number returns the 1-based column number, or 0 if w is malformed or the
// number does not fit an int.
func (w WellCoordinate) Number() int {
	if !WellRegexp.MatchString(string(w)) {
		return 0
	}
	n, err := strconv.Atoi(string(w[1:]))
	if err != nil {
		return 0
	}
	return n
}

// Column returns the 0-based logical column index, or -1 if w is malformed.
func (w WellCoordinate) Column() int {
	return w.Number() - 1
}

// Letter returns the row letter, or "" if w is malformed.
func (w WellCoordinate) Letter() string {
	if w.Row() < 0 {
		return ""
	}
	return string(w[:1])
}

// Position returns the 0-based logical position of w without checking it
// against any grid.
func (w WellCoordinate) Position() (GridPosition, error) {
	if err := w.validateFormat(); err != nil {
		return GridPosition{}, err
	}
	if w == NotFound {
		return GridPosition{}, &errors.CoordinateError{Value: string(w), Reason: "must not be empty"}
	}
	return GridPosition{Row: w.Row(), Col: w.Column()}, nil
}

// ValidateIn checks that w is well formed and names a well of shape.
func (w WellCoordinate) ValidateIn(shape GridShape) error {
	pos, err := w.Position()
	if err != nil {
		return err
	}
	if pos.Row >= shape.Rows {
		return &errors.CoordinateError{
			Value:  string(w),
			Rows:   shape.Rows,
			Cols:   shape.Cols,
			Reason: fmt.Sprintf("row %s is past the last row %s", w.Letter(), RowLetter(shape.Rows-1)),
		}
	}
	if pos.Col >= shape.Cols {
		return &errors.CoordinateError{
			Value:  string(w),
			Rows:   shape.Rows,
			Cols:   shape.Cols,
			Reason: fmt.Sprintf("column %d is past the last column %d", pos.Col+1, shape.Cols),
		}
	}
	return nil
}

// String returns the coordinate text.
func (w WellCoordinate) String() string {
	return string(w)
}

// Redacted returns the same text as String.
func (w WellCoordinate) Redacted() string {
	return w.String()
}

// TypeName returns "WellCoordinate".
func (w WellCoordinate) TypeName() string {
	return "WellCoordinate"
}

// IsZero reports whether w is NotFound.
func (w WellCoordinate) IsZero() bool {
	return w == NotFound
}

// Equal reports whether both coordinates are identical.
func (w WellCoordinate) Equal(other WellCoordinate) bool {
	return w == other
}

// Validate checks the coordinate format. NotFound is valid.
func (w WellCoordinate) Validate() error {
	if w == NotFound {
		return nil
	}
	return w.validateFormat()
}

func (w WellCoordinate) validateFormat() error {
	if w == NotFound {
		return nil
	}
	if !WellRegexp.MatchString(string(w)) {
		reason := "must be a row letter A-Z followed by a column number without leading zeros"
		if c := w[0]; c >= 'a' && c <= 'z' {
			reason = "row letter must be upper case"
		}
		return &errors.CoordinateError{Value: string(w), Reason: reason}
	}
	if _, err := strconv.Atoi(string(w[1:])); err != nil {
		return &errors.CoordinateError{Value: string(w), Reason: "column number is too large"}
	}
	return nil
}

// MarshalJSON encodes the coordinate as a JSON string.
func (w WellCoordinate) MarshalJSON() ([]byte, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", w.TypeName(), err)
	}
	return json.Marshal(string(w))
}

// UnmarshalJSON decodes a JSON string and validates its format.
func (w *WellCoordinate) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: w.TypeName(), Data: data, Reason: err.Error()}
	}
	parsed := WellCoordinate(str)
	if err := parsed.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", w.TypeName(), err)
	}
	*w = parsed
	return nil
}

// MarshalYAML encodes the coordinate as a YAML string.
func (w WellCoordinate) MarshalYAML() (interface{}, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", w.TypeName(), err)
	}
	return string(w), nil
}

// UnmarshalYAML decodes a YAML string and validates its format.
func (w *WellCoordinate) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: w.TypeName(), Reason: err.Error()}
	}
	parsed := WellCoordinate(str)
	if err := parsed.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", w.TypeName(), err)
	}
	*w = parsed
	return nil
}
