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

package display

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"

	"github.com/EERL-EPFL/spice-ui-sub001/traycore/errors"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
)

// Snapshot is the serializable state of a View: what a renderer needs to
// draw the tray without calling back into the transform.
type Snapshot struct {
	Title       string                   `json:"title,omitempty" yaml:"title,omitempty"`
	Shape       plate.GridShape          `json:"shape" yaml:"shape"`
	Rotation    plate.Rotation           `json:"rotation" yaml:"rotation"`
	RowHeaders  []string                 `json:"row_headers" yaml:"row_headers"`
	ColHeaders  []string                 `json:"col_headers" yaml:"col_headers"`
	Cells       [][]plate.WellCoordinate `json:"cells" yaml:"cells"`
	Highlighted []plate.WellCoordinate   `json:"highlighted" yaml:"highlighted"`
}

// Compile-time check that Snapshot implements model.Model interface.
var _ model.Model = (*Snapshot)(nil)

// Snapshot captures the view, including its highlighted wells.
func (v *View) Snapshot() Snapshot {
	rows, cols := v.Headers()
	return Snapshot{
		Title:       v.title,
		Shape:       v.logical,
		Rotation:    v.rotation,
		RowHeaders:  rows,
		ColHeaders:  cols,
		Cells:       v.grid.Rows(),
		Highlighted: v.Highlighted(),
	}
}

// Validate checks that the headers and cells have the dimensions of the
// visual grid and that every cell and highlighted well belongs to Shape.
// All offending cells are reported.
func (s Snapshot) Validate() error {
	if err := s.Shape.Validate(); err != nil {
		return err
	}
	if err := s.Rotation.Validate(); err != nil {
		return err
	}

	visual := s.Shape.Visual(s.Rotation)
	switch {
	case len(s.RowHeaders) != visual.Rows:
		return s.invalid("RowHeaders", "got %d, want %d", len(s.RowHeaders), visual.Rows)
	case len(s.ColHeaders) != visual.Cols:
		return s.invalid("ColHeaders", "got %d, want %d", len(s.ColHeaders), visual.Cols)
	case len(s.Cells) != visual.Rows:
		return s.invalid("Cells", "got %d rows, want %d", len(s.Cells), visual.Rows)
	}

	c := rxmerr.NewCollector()
	for r, row := range s.Cells {
		if len(row) != visual.Cols {
			c.Append(s.invalid("Cells", "row %d has %d cells, want %d", r, len(row), visual.Cols))
			continue
		}
		for _, w := range row {
			if err := w.ValidateIn(s.Shape); err != nil {
				c.Append(err)
			}
		}
	}
	for _, w := range s.Highlighted {
		if err := w.ValidateIn(s.Shape); err != nil {
			c.Append(err)
		}
	}
	return c.Err()
}

func (s Snapshot) invalid(field, format string, args ...any) error {
	return &errors.ValidationError{Type: s.TypeName(), Field: field, Reason: fmt.Sprintf(format, args...)}
}

// String returns e.g. "Snapshot{8x12@90°, 2 highlighted}".
func (s Snapshot) String() string {
	return fmt.Sprintf("Snapshot{%s@%s, %d highlighted}", s.Shape, s.Rotation, len(s.Highlighted))
}

// Redacted returns the same text as String.
func (s Snapshot) Redacted() string {
	return s.String()
}

// TypeName returns "Snapshot".
func (s Snapshot) TypeName() string {
	return "Snapshot"
}

// IsZero reports whether s holds no layout.
func (s Snapshot) IsZero() bool {
	return s.Cells == nil && s.Shape.IsZero()
}

// MarshalJSON implements json.Marshaler.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type snapshot Snapshot
	return json.Marshal(snapshot(s))
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	type snapshot Snapshot
	var tmp snapshot
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", s.TypeName(), err)
	}
	if err := Snapshot(tmp).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}
	*s = Snapshot(tmp)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Snapshot) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type snapshot Snapshot
	return snapshot(s), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Snapshot) UnmarshalYAML(node *yaml.Node) error {
	type snapshot Snapshot
	var tmp snapshot
	if err := node.Decode(&tmp); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", s.TypeName(), err)
	}
	if err := Snapshot(tmp).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}
	*s = Snapshot(tmp)
	return nil
}
