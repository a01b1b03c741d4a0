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

	"github.com/EERL-EPFL/spice-ui-sub001/traycore/errors"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
	"gopkg.in/yaml.v3"
)

// TrayPlacement is one tray mounted in a configuration.
//
// Order is the 1-based slot of the tray within its configuration and is
// what operators refer to ("tray 2"). Rotation is how the tray is drawn on
// screen; the logical coordinates of its wells never change with it.
type TrayPlacement struct {
	Order    int            `json:"order" yaml:"order"`
	Rotation plate.Rotation `json:"rotation" yaml:"rotation"`
	Tray     Tray           `json:"tray" yaml:"tray"`
}

// Compile-time assertion that TrayPlacement implements model.Model.
var _ model.Model = (*TrayPlacement)(nil)

// VisualShape returns the on-screen shape of the placed tray.
func (p TrayPlacement) VisualShape() plate.GridShape {
	return p.Tray.Shape().Visual(p.Rotation)
}

// String returns e.g. "#1 96-well (8x12) @ 90°".
func (p TrayPlacement) String() string {
	return fmt.Sprintf("#%d %s @ %s", p.Order, p.Tray, p.Rotation)
}

// Redacted returns the same as String.
func (p TrayPlacement) Redacted() string {
	return p.String()
}

// TypeName returns "TrayPlacement".
func (p TrayPlacement) TypeName() string {
	return "TrayPlacement"
}

// IsZero reports whether p is the zero TrayPlacement.
func (p TrayPlacement) IsZero() bool {
	return p.Order == 0 && p.Rotation.IsZero() && p.Tray.IsZero()
}

// Equal reports whether p and other are the same placement.
func (p TrayPlacement) Equal(other TrayPlacement) bool {
	return p.Order == other.Order && p.Rotation == other.Rotation && p.Tray.Equal(other.Tray)
}

// Validate checks the order, the rotation and the tray.
func (p TrayPlacement) Validate() error {
	if p.Order < 1 {
		return &errors.ValidationError{Type: p.TypeName(), Field: "Order", Reason: "must be 1 or greater", Value: p.Order}
	}
	if err := p.Rotation.Validate(); err != nil {
		return fmt.Errorf("placement #%d: %w", p.Order, err)
	}
	if err := p.Tray.Validate(); err != nil {
		return fmt.Errorf("placement #%d: %w", p.Order, err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p TrayPlacement) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type placement TrayPlacement
	return json.Marshal(placement(p))
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *TrayPlacement) UnmarshalJSON(data []byte) error {
	type placement TrayPlacement
	var tmp placement
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", p.TypeName(), err)
	}
	if err := TrayPlacement(tmp).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", p.TypeName(), err)
	}
	*p = TrayPlacement(tmp)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p TrayPlacement) MarshalYAML() (interface{}, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type placement TrayPlacement
	return placement(p), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *TrayPlacement) UnmarshalYAML(node *yaml.Node) error {
	type placement TrayPlacement
	var tmp placement
	if err := node.Decode(&tmp); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", p.TypeName(), err)
	}
	if err := TrayPlacement(tmp).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", p.TypeName(), err)
	}
	*p = TrayPlacement(tmp)
	return nil
}
