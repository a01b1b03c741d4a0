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

package tray

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/EERL-EPFL/spice-ui-sub001/traycore/errors"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
	"gopkg.in/yaml.v3"
)

// Tray is a physical plate type: a named rectangular grid of wells.
//
// Rows and Cols are stored flat rather than as a GridShape so that tray
// definitions read naturally in configuration files:
//
//	name: 96-well
//	rows: 8
//	cols: 12
//
// The zero value is not valid; a tray needs a name and a valid shape.
type Tray struct {
	// Name identifies the tray type, e.g. "96-well". Surrounding
	// whitespace is not significant.
	Name string `json:"name" yaml:"name"`

	// Rows is the number of lettered rows (at most plate.MaxRows).
	Rows int `json:"rows" yaml:"rows"`

	// Cols is the number of numbered columns.
	Cols int `json:"cols" yaml:"cols"`
}

// Compile-time assertion that Tray implements model.Model.
var _ model.Model = (*Tray)(nil)

// NewTray returns a validated Tray.
func NewTray(name string, shape plate.GridShape) (Tray, error) {
	t := Tray{Name: strings.TrimSpace(name), Rows: shape.Rows, Cols: shape.Cols}
	if err := t.Validate(); err != nil {
		return Tray{}, err
	}
	return t, nil
}

// Shape returns the logical grid shape of the tray.
func (t Tray) Shape() plate.GridShape {
	return plate.GridShape{Rows: t.Rows, Cols: t.Cols}
}

// Wells returns the number of wells on the tray.
func (t Tray) Wells() int {
	return t.Shape().Wells()
}

// String returns "name (RxC)".
func (t Tray) String() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.Shape())
}

// Redacted returns the same as String; tray definitions carry nothing
// sensitive.
func (t Tray) Redacted() string {
	return t.String()
}

// TypeName returns "Tray".
func (t Tray) TypeName() string {
	return "Tray"
}

// IsZero reports whether t is the zero Tray.
func (t Tray) IsZero() bool {
	return t.Name == "" && t.Rows == 0 && t.Cols == 0
}

// Equal reports whether t and other describe the same tray.
func (t Tray) Equal(other Tray) bool {
	return strings.TrimSpace(t.Name) == strings.TrimSpace(other.Name) && t.Shape().Equal(other.Shape())
}

// Validate checks that the tray has a name and a valid shape.
func (t Tray) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return &errors.ValidationError{Type: t.TypeName(), Field: "Name", Reason: "must not be empty"}
	}
	if err := t.Shape().Validate(); err != nil {
		return fmt.Errorf("tray %q: %w", t.Name, err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Tray) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	type tray Tray
	return json.Marshal(tray(t))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tray) UnmarshalJSON(data []byte) error {
	type tray Tray
	var tmp tray
	if err := json.Unmarshal(data, &tmp); err != nil {
		return &errors.UnmarshalError{Type: t.TypeName(), Data: data, Reason: err.Error()}
	}
	decoded := Tray(tmp)
	decoded.Name = strings.TrimSpace(decoded.Name)
	if err := decoded.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", t.TypeName(), err)
	}
	*t = decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Tray) MarshalYAML() (interface{}, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	type tray Tray
	return tray(t), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tray) UnmarshalYAML(node *yaml.Node) error {
	type tray Tray
	var tmp tray
	if err := node.Decode(&tmp); err != nil {
		return &errors.UnmarshalError{Type: t.TypeName(), Reason: err.Error()}
	}
	decoded := Tray(tmp)
	decoded.Name = strings.TrimSpace(decoded.Name)
	if err := decoded.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", t.TypeName(), err)
	}
	*t = decoded
	return nil
}
