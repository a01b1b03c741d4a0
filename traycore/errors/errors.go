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

// Package errors provides the error values shared by every traycore package.
//
// The tray transform has a deliberately small failure surface: a well
// coordinate can be malformed or out of range, a rotation can be outside the
// four quarter turns, and a grid shape can be structurally invalid. Each of
// these has a sentinel (for errors.Is) and a typed carrier (for errors.As)
// with a stable message format.
//
// A visual cell that holds no well is NOT an error. Lookups report it with a
// boolean and the zero WellCoordinate so that rendering code can skip the
// cell without unwrapping anything.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into an enum-like type fails
//     (for example, "45" as a Rotation).
//
//   - MarshalError
//     Returned when marshaling a value outside its known set fails.
//
//   - UnmarshalError
//     Returned when JSON or YAML input cannot be decoded into a type.
//
//   - ValidationError
//     Returned by Validate() methods on struct models (GridShape, Tray,
//     Configuration).
//
//   - CoordinateError
//     Returned when a well coordinate is malformed or does not fit the grid
//     shape it is resolved against. Matches ErrInvalidCoordinate.
//
// # Usage
//
//	pos, err := transform.WellToVisualPosition("Z9", plate.Rotate90, shape)
//	if errors.Is(err, trayerrors.ErrInvalidCoordinate) {
//	    // reject the user input
//	}
package errors

import (
	stderrors "errors"
	"strconv"
)

var (
	// ErrInvalidCoordinate is matched by every CoordinateError.
	ErrInvalidCoordinate = stderrors.New("tray: invalid well coordinate")

	// ErrInvalidRotation is matched by ParseError and ValidationError values
	// produced for Rotation.
	ErrInvalidRotation = stderrors.New("tray: invalid rotation")

	// ErrInvalidShape is matched by ValidationError values produced for
	// GridShape.
	ErrInvalidShape = stderrors.New("tray: invalid grid shape")

	// ErrInvalidConfiguration is matched by ValidationError values produced
	// for Tray, TrayPlacement and Configuration.
	ErrInvalidConfiguration = stderrors.New("tray: invalid configuration")
)

// sentinelFor maps a logical type name onto the sentinel that errors.Is
// should report for it.
func sentinelFor(typeName string) error {
	switch typeName {
	case "Rotation":
		return ErrInvalidRotation
	case "GridShape":
		return ErrInvalidShape
	case "WellCoordinate":
		return ErrInvalidCoordinate
	case "Tray", "TrayPlacement", "Configuration":
		return ErrInvalidConfiguration
	default:
		return nil
	}
}

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Rotation"),
// and Value contains the exact string that could not be interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Rotation").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"tray: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "tray: invalid " + e.Type + " value: " + e.Value
}

// Is reports whether target is the sentinel for the parsed type.
func (e *ParseError) Is(target error) bool {
	s := sentinelFor(e.Type)
	return s != nil && target == s
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, such as a
// Rotation constructed by conversion from an arbitrary integer and never
// validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"tray: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "tray: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Data is kept for callers that want to log the payload; it is not part of
// the formatted message.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal. It is nil for YAML
	// nodes.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"tray: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "tray: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Field is empty when the failure applies to the whole value.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"tray: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"tray: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "tray: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "tray: invalid " + e.Type + ": " + e.Reason
}

// Is reports whether target is the sentinel for the validated type.
func (e *ValidationError) Is(target error) bool {
	s := sentinelFor(e.Type)
	return s != nil && target == s
}

// CoordinateError reports a well coordinate that cannot be resolved.
//
// Rows and Cols describe the logical grid the coordinate was checked
// against; both are zero when only the textual format was checked.
type CoordinateError struct {
	// Value is the coordinate as supplied by the caller.
	Value string

	// Rows and Cols are the logical grid dimensions, if known.
	Rows, Cols int

	// Reason explains what is wrong with Value.
	Reason string
}

// Error implements the error interface for CoordinateError.
//
// The error message format is:
//
//	"tray: invalid well coordinate {Value}: {Reason}"
//	"tray: invalid well coordinate {Value} for {Rows}x{Cols} grid: {Reason}"
func (e *CoordinateError) Error() string {
	if e.Rows > 0 && e.Cols > 0 {
		return "tray: invalid well coordinate " + strconv.Quote(e.Value) +
			" for " + strconv.Itoa(e.Rows) + "x" + strconv.Itoa(e.Cols) + " grid: " + e.Reason
	}
	return "tray: invalid well coordinate " + strconv.Quote(e.Value) + ": " + e.Reason
}

// Is reports whether target is ErrInvalidCoordinate.
func (e *CoordinateError) Is(target error) bool {
	return target == ErrInvalidCoordinate
}
