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
	"strings"

	"github.com/EERL-EPFL/spice-ui-sub001/traycore/errors"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model"
	"gopkg.in/yaml.v3"
)

// Rotation is the clockwise angle, in degrees, at which a tray is displayed.
//
// Only quarter turns exist: Rotate0, Rotate90, Rotate180 and Rotate270. Any
// other value is invalid; Validate rejects it and the transform functions
// refuse to use it. The zero value is Rotate0 and is valid.
//
// Rotation is encoded as the plain integer number of degrees in JSON, YAML
// and text form ("90"), which is also how tray setup forms store it.
type Rotation int

const (
	// Rotate0 displays the tray in its logical orientation: A1 top left.
	Rotate0 Rotation = 0

	// Rotate90 turns the tray a quarter clockwise: A1 ends up top right and
	// the visual grid is Cols rows by Rows columns.
	Rotate90 Rotation = 90

	// Rotate180 turns the tray upside down: A1 ends up bottom right.
	Rotate180 Rotation = 180

	// Rotate270 turns the tray a quarter counter-clockwise: A1 ends up
	// bottom left.
	Rotate270 Rotation = 270
)

// Rotations lists the valid rotations in increasing order.
var Rotations = []Rotation{Rotate0, Rotate90, Rotate180, Rotate270}

// Compile-time check that Rotation implements model.Model interface.
var _ model.Model = (*Rotation)(nil)

// NormalizeRotation maps any whole number of quarter turns, in degrees, onto
// one of the four canonical rotations. -90 becomes Rotate270 and 450
// becomes Rotate90. Values that are not multiples of 90 are rejected.
func NormalizeRotation(degrees int) (Rotation, error) {
	if degrees%90 != 0 {
		return Rotate0, &errors.ValidationError{
			Type:   "Rotation",
			Reason: fmt.Sprintf("%d degrees is not a quarter turn", degrees),
			Value:  degrees,
		}
	}
	d := degrees % 360
	if d < 0 {
		d += 360
	}
	return Rotation(d), nil
}

// ParseRotation parses a rotation written as degrees.
//
// Surrounding whitespace and a trailing "deg" or "°" unit are accepted, so
// "90", " 90deg " and "90°" all parse to Rotate90. The number is normalized
// with NormalizeRotation. Anything else yields a *errors.ParseError.
func ParseRotation(s string) (Rotation, error) {
	normalized := strings.TrimSpace(s)
	normalized = strings.TrimSuffix(normalized, "°")
	normalized = strings.TrimSuffix(strings.ToLower(normalized), "deg")
	normalized = strings.TrimSpace(normalized)

	degrees, err := strconv.Atoi(normalized)
	if err != nil {
		return Rotate0, &errors.ParseError{Type: "Rotation", Value: s}
	}
	r, err := NormalizeRotation(degrees)
	if err != nil {
		return Rotate0, &errors.ParseError{Type: "Rotation", Value: s}
	}
	return r, nil
}

// Degrees returns the rotation as an int.
func (r Rotation) Degrees() int {
	return int(r)
}

// QuarterTurns returns the number of clockwise quarter turns, 0 to 3.
func (r Rotation) QuarterTurns() int {
	return int(r) / 90
}

// SwapsAxes reports whether the rotation exchanges the grid's width and
// height, which is the case for Rotate90 and Rotate270.
func (r Rotation) SwapsAxes() bool {
	return r == Rotate90 || r == Rotate270
}

// Inverse returns the rotation that undoes r.
func (r Rotation) Inverse() Rotation {
	return Rotation((360 - int(r)) % 360)
}

// Add returns the net rotation of applying r and then other.
func (r Rotation) Add(other Rotation) Rotation {
	return Rotation((int(r) + int(other)) % 360)
}

// String returns the rotation with a degree sign, for example "90°".
// Invalid values render as "Rotation(45)".
func (r Rotation) String() string {
	if r.Validate() != nil {
		return fmt.Sprintf("Rotation(%d)", int(r))
	}
	return strconv.Itoa(int(r)) + "°"
}

// Redacted returns the same text as String.
func (r Rotation) Redacted() string {
	return r.String()
}

// TypeName returns "Rotation".
func (r Rotation) TypeName() string {
	return "Rotation"
}

// IsZero reports whether r is Rotate0.
func (r Rotation) IsZero() bool {
	return r == Rotate0
}

// Equal reports whether r and other are the same rotation.
func (r Rotation) Equal(other Rotation) bool {
	return r == other
}

// Validate returns nil for the four quarter turns and a
// *errors.ValidationError matching errors.ErrInvalidRotation otherwise.
func (r Rotation) Validate() error {
	switch r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return nil
	default:
		return &errors.ValidationError{
			Type:   r.TypeName(),
			Reason: fmt.Sprintf("%d is not one of 0, 90, 180, 270", int(r)),
			Value:  int(r),
		}
	}
}

// MarshalText encodes the rotation as its degree value.
func (r Rotation) MarshalText() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: r.TypeName(), Value: int(r)}
	}
	return []byte(strconv.Itoa(int(r))), nil
}

// UnmarshalText decodes a rotation using ParseRotation. It is used by
// configuration decoders and command-line flags.
func (r *Rotation) UnmarshalText(text []byte) error {
	parsed, err := ParseRotation(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalJSON encodes the rotation as a JSON number.
func (r Rotation) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: r.TypeName(), Value: int(r)}
	}
	return json.Marshal(int(r))
}

// UnmarshalJSON accepts a JSON number (90) or string ("90", "90deg").
func (r *Rotation) UnmarshalJSON(data []byte) error {
	var degrees int
	if err := json.Unmarshal(data, &degrees); err == nil {
		parsed, err := NormalizeRotation(degrees)
		if err != nil {
			return fmt.Errorf("unmarshaled %s is invalid: %w", r.TypeName(), err)
		}
		*r = parsed
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{
			Type:   r.TypeName(),
			Data:   data,
			Reason: "expected a number or string of degrees",
		}
	}
	return r.UnmarshalText([]byte(str))
}

// MarshalYAML encodes the rotation as a YAML integer.
func (r Rotation) MarshalYAML() (interface{}, error) {
	if err := r.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: r.TypeName(), Value: int(r)}
	}
	return int(r), nil
}

// UnmarshalYAML accepts a YAML integer or string of degrees.
func (r *Rotation) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{
			Type:   r.TypeName(),
			Reason: err.Error(),
		}
	}
	return r.UnmarshalText([]byte(str))
}
