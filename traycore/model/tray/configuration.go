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
	"slices"
	"strings"

	"github.com/EERL-EPFL/spice-ui-sub001/traycore/errors"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// configurationNamespace scopes IDs derived from configuration names.
var configurationNamespace = uuid.MustParse("6f1c8a52-3b7e-4d0a-9e57-2c4b1d8f0a63")

// Configuration is a named set of trays mounted together, each at its own
// display rotation.
//
// Configuration implements model.Model. The zero value is not valid: a
// configuration needs an ID, a name and at least one placement, and no two
// placements may share an Order.
type Configuration struct {
	// ID identifies the configuration. Files that omit it get DeriveID(Name).
	ID uuid.UUID `json:"id" yaml:"id"`

	// Name is the human readable name, e.g. "Standard 2x96".
	Name string `json:"name" yaml:"name"`

	// Experimental marks configurations that are still being trialled.
	Experimental bool `json:"experimental,omitempty" yaml:"experimental,omitempty"`

	// Trays are the placements in the configuration, in file order.
	Trays []TrayPlacement `json:"trays" yaml:"trays"`
}

// Compile-time assertion that Configuration implements model.Model.
var _ model.Model = (*Configuration)(nil)

// DeriveID returns the name-based (version 5) UUID used for configurations
// that do not carry an explicit ID. The same name always yields the same ID.
func DeriveID(name string) uuid.UUID {
	return uuid.NewSHA1(configurationNamespace, []byte(strings.TrimSpace(name)))
}

// NewConfiguration returns a validated Configuration with a fresh random ID.
func NewConfiguration(name string, trays ...TrayPlacement) (Configuration, error) {
	c := Configuration{
		ID:    uuid.New(),
		Name:  strings.TrimSpace(name),
		Trays: slices.Clone(trays),
	}
	if err := c.Validate(); err != nil {
		return Configuration{}, err
	}
	return c, nil
}

// Placement returns the placement with the given order.
func (c Configuration) Placement(order int) (TrayPlacement, bool) {
	for _, p := range c.Trays {
		if p.Order == order {
			return p, true
		}
	}
	return TrayPlacement{}, false
}

// Sorted returns a copy of the placements ordered by Order.
func (c Configuration) Sorted() []TrayPlacement {
	out := slices.Clone(c.Trays)
	slices.SortStableFunc(out, func(a, b TrayPlacement) int {
		return a.Order - b.Order
	})
	return out
}

// Wells returns the total number of wells across all placements.
func (c Configuration) Wells() int {
	n := 0
	for _, p := range c.Trays {
		n += p.Tray.Wells()
	}
	return n
}

// String returns a one-line summary including the ID.
func (c Configuration) String() string {
	return fmt.Sprintf("%s %q (%d trays)", c.ID, c.Name, len(c.Trays))
}

// Redacted returns the summary without the ID.
func (c Configuration) Redacted() string {
	return fmt.Sprintf("%q (%d trays)", c.Name, len(c.Trays))
}

// TypeName returns "Configuration".
func (c Configuration) TypeName() string {
	return "Configuration"
}

// IsZero reports whether c is the zero Configuration.
func (c Configuration) IsZero() bool {
	return c.ID == uuid.Nil && c.Name == "" && !c.Experimental && len(c.Trays) == 0
}

// Equal reports whether c and other are identical, placement by placement.
func (c Configuration) Equal(other Configuration) bool {
	if c.ID != other.ID || c.Name != other.Name || c.Experimental != other.Experimental {
		return false
	}
	return slices.EqualFunc(c.Trays, other.Trays, TrayPlacement.Equal)
}

// Validate checks the name and ID, validates every placement and rejects
// duplicate orders. All placement failures are reported together.
func (c Configuration) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &errors.ValidationError{Type: c.TypeName(), Field: "Name", Reason: "must not be empty"}
	}
	if c.ID == uuid.Nil {
		return &errors.ValidationError{Type: c.TypeName(), Field: "ID", Reason: "must not be the nil UUID"}
	}
	if len(c.Trays) == 0 {
		return &errors.ValidationError{Type: c.TypeName(), Field: "Trays", Reason: "must contain at least one tray"}
	}
	placements := make([]*TrayPlacement, len(c.Trays))
	for i := range c.Trays {
		placements[i] = &c.Trays[i]
	}
	if err := model.ValidateAll(placements); err != nil {
		return fmt.Errorf("configuration %q: %w", c.Name, err)
	}

	seen := make(map[int]struct{}, len(c.Trays))
	for _, p := range c.Trays {
		if _, dup := seen[p.Order]; dup {
			return &errors.ValidationError{
				Type:   c.TypeName(),
				Field:  "Trays",
				Reason: fmt.Sprintf("order %d is used more than once", p.Order),
				Value:  p.Order,
			}
		}
		seen[p.Order] = struct{}{}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Configuration) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type configuration Configuration
	return json.Marshal(configuration(c))
}

// UnmarshalJSON implements json.Unmarshaler. A missing ID is derived from
// the name.
func (c *Configuration) UnmarshalJSON(data []byte) error {
	type configuration Configuration
	var tmp configuration
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", c.TypeName(), err)
	}
	return c.assign(Configuration(tmp))
}

// MarshalYAML implements yaml.Marshaler.
func (c Configuration) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type configuration Configuration
	return configuration(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A missing ID is derived from
// the name.
func (c *Configuration) UnmarshalYAML(node *yaml.Node) error {
	type configuration Configuration
	var tmp configuration
	if err := node.Decode(&tmp); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", c.TypeName(), err)
	}
	return c.assign(Configuration(tmp))
}

func (c *Configuration) assign(decoded Configuration) error {
	decoded.Name = strings.TrimSpace(decoded.Name)
	if decoded.ID == uuid.Nil && decoded.Name != "" {
		decoded.ID = DeriveID(decoded.Name)
	}
	if err := decoded.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", c.TypeName(), err)
	}
	*c = decoded
	return nil
}
