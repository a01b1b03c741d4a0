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

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"Rotation type",
			&ParseError{Type: "Rotation", Value: "45"},
			"tray: invalid Rotation value: 45",
		},
		{
			"empty value",
			&ParseError{Type: "Rotation", Value: ""},
			"tray: invalid Rotation value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"positive value",
			&MarshalError{Type: "Rotation", Value: 45},
			"tray: cannot marshal invalid Rotation value: 45",
		},
		{
			"negative value",
			&MarshalError{Type: "Rotation", Value: -90},
			"tray: cannot marshal invalid Rotation value: -90",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	err := &UnmarshalError{Type: "GridShape", Data: []byte(`{broken`), Reason: "unexpected end of JSON input"}
	want := "tray: cannot unmarshal GridShape: unexpected end of JSON input"
	if got := err.Error(); got != want {
		t.Errorf("UnmarshalError.Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "GridShape", Field: "Rows", Reason: "must be positive"},
			"tray: invalid GridShape.Rows: must be positive",
		},
		{
			"without field",
			&ValidationError{Type: "Configuration", Reason: "no trays"},
			"tray: invalid Configuration: no trays",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCoordinateError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *CoordinateError
		want string
	}{
		{
			"format only",
			&CoordinateError{Value: "a1", Reason: "row letter must be A-Z"},
			`tray: invalid well coordinate "a1": row letter must be A-Z`,
		},
		{
			"with shape",
			&CoordinateError{Value: "I1", Rows: 8, Cols: 12, Reason: "row out of range"},
			`tray: invalid well coordinate "I1" for 8x12 grid: row out of range`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("CoordinateError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     bool
	}{
		{"coordinate", &CoordinateError{Value: "Z0"}, ErrInvalidCoordinate, true},
		{"rotation parse", &ParseError{Type: "Rotation", Value: "45"}, ErrInvalidRotation, true},
		{"rotation validation", &ValidationError{Type: "Rotation", Reason: "x"}, ErrInvalidRotation, true},
		{"shape validation", &ValidationError{Type: "GridShape", Reason: "x"}, ErrInvalidShape, true},
		{"tray validation is not shape", &ValidationError{Type: "Tray", Reason: "x"}, ErrInvalidShape, false},
		{"coordinate is not rotation", &CoordinateError{Value: "Z0"}, ErrInvalidRotation, false},
		{"placement validation", &ValidationError{Type: "TrayPlacement", Reason: "x"}, ErrInvalidConfiguration, true},
		{"configuration validation", &ValidationError{Type: "Configuration", Field: "Trays", Reason: "x"}, ErrInvalidConfiguration, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tt.err)
			if got := stderrors.Is(wrapped, tt.sentinel); got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", wrapped, tt.sentinel, got, tt.want)
			}
		})
	}
}

func TestErrors_Implements_Error_Interface(t *testing.T) {
	var _ error = (*ParseError)(nil)
	var _ error = (*MarshalError)(nil)
	var _ error = (*UnmarshalError)(nil)
	var _ error = (*ValidationError)(nil)
	var _ error = (*CoordinateError)(nil)
}
