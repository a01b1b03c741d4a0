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

// Package model defines the contracts that every traycore value type
// implements: validation, JSON and YAML serialization, safe logging, type
// identification and zero-value detection.
//
// Tray value types (rotations, grid shapes, well coordinates, tray
// configurations) cross two boundaries: they are read from configuration
// files written by people, and they are handed to rendering code that must
// never see an inconsistent layout. The Model contract makes both
// boundaries checked. Values are validated when decoded and again before
// they are encoded, so an invalid Rotation or a 0x12 shape cannot leak
// into a config file or a layout computation.
//
// Model types are immutable values. Concurrent reads are safe; the Unmarshal
// methods mutate their receiver and need exclusive access.
//
// The generic helpers in this package (ValidateAll, MustValidate, ToJSON,
// ToYAML) accept any Model.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all contracts required for traycore
// value types.
//
// Example implementation:
//
//	type Tray struct {
//	    Name string
//	}
//
//	func (t Tray) Validate() error {
//	    if t.Name == "" {
//	        return &errors.ValidationError{Type: "Tray", Field: "Name", Reason: "must not be empty"}
//	    }
//	    return nil
//	}
//
//	func (t Tray) TypeName() string { return "Tray" }
//	func (t Tray) IsZero() bool     { return t.Name == "" }
//	func (t Tray) Redacted() string { return t.String() }
//	func (t Tray) String() string   { return "Tray{" + t.Name + "}" }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ model.Model = (*Tray)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is implemented by types that check their own invariants.
//
// Validate MUST be fast, deterministic and free of side effects. It returns
// nil if and only if the value is usable. Errors SHOULD be the typed values
// from traycore/errors so callers can match them with errors.Is.
type Validatable interface {
	Validate() error
}

// Serializable is implemented by types with JSON and YAML encodings.
//
// Marshal methods MUST validate before encoding. Unmarshal methods MUST
// validate after decoding and return the validation error rather than
// leaving an invalid value in place.
//
// Struct types use the local alias pattern to avoid recursion:
//
//	func (s GridShape) MarshalJSON() ([]byte, error) {
//	    if err := s.Validate(); err != nil {
//	        return nil, err
//	    }
//	    type alias GridShape
//	    return json.Marshal(alias(s))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by types that can be printed.
//
// Tray data carries no secrets, so most implementations return the same
// text from both methods. Redacted is still the one to use in logs: for
// large values (whole well matrices) it returns a summary.
type Loggable interface {
	// Redacted returns a short representation suitable for logs.
	Redacted() string

	// String returns the full representation.
	String() string
}

// Identifiable is implemented by types that know their own name.
//
// TypeName is constant per type, CamelCase, without a package prefix. It is
// used in error messages ("tray: invalid GridShape.Rows: ...").
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable is implemented by types that can report an empty state.
type ZeroCheckable interface {
	IsZero() bool
}
