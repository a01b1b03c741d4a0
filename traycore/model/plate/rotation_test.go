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

package plate_test

import (
	"encoding/json"
	"errors"
	"testing"

	trayerrors "github.com/EERL-EPFL/spice-ui-sub001/traycore/errors"
	"github.com/EERL-EPFL/spice-ui-sub001/traycore/model/plate"
	"gopkg.in/yaml.v3"
)

func TestParseRotation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    plate.Rotation
		wantErr bool
	}{
		{name: "zero", input: "0", want: plate.Rotate0},
		{name: "ninety", input: "90", want: plate.Rotate90},
		{name: "half", input: "180", want: plate.Rotate180},
		{name: "three_quarters", input: "270", want: plate.Rotate270},
		{name: "whitespace", input: "  90  ", want: plate.Rotate90},
		{name: "deg_suffix", input: "180deg", want: plate.Rotate180},
		{name: "upper_deg_suffix", input: "270 DEG", want: plate.Rotate270},
		{name: "degree_sign", input: "90°", want: plate.Rotate90},
		{name: "negative_normalized", input: "-90", want: plate.Rotate270},
		{name: "full_turn_normalized", input: "360", want: plate.Rotate0},
		{name: "over_full_turn", input: "450", want: plate.Rotate90},
		{name: "not_quarter", input: "45", wantErr: true},
		{name: "word", input: "ninety", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "fraction", input: "90.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := plate.ParseRotation(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRotation(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				var pe *trayerrors.ParseError
				if !errors.As(err, &pe) {
					t.Errorf("ParseRotation(%q) error type = %T, want *errors.ParseError", tt.input, err)
				}
				if !errors.Is(err, trayerrors.ErrInvalidRotation) {
					t.Errorf("ParseRotation(%q) error should match ErrInvalidRotation", tt.input)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseRotation(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		degrees int
		want    plate.Rotation
		wantErr bool
	}{
		{0, plate.Rotate0, false},
		{-270, plate.Rotate90, false},
		{-180, plate.Rotate180, false},
		{720, plate.Rotate0, false},
		{630, plate.Rotate270, false},
		{1, 0, true},
		{-45, 0, true},
	}

	for _, tt := range tests {
		got, err := plate.NormalizeRotation(tt.degrees)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizeRotation(%d) error = %v, wantErr %v", tt.degrees, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("NormalizeRotation(%d) = %v, want %v", tt.degrees, got, tt.want)
		}
	}
}

func TestRotation_Validate(t *testing.T) {
	for _, r := range plate.Rotations {
		if err := r.Validate(); err != nil {
			t.Errorf("Rotation(%d).Validate() = %v, want nil", int(r), err)
		}
	}
	for _, r := range []plate.Rotation{-90, 45, 360, 1} {
		err := r.Validate()
		if !errors.Is(err, trayerrors.ErrInvalidRotation) {
			t.Errorf("Rotation(%d).Validate() = %v, want ErrInvalidRotation", int(r), err)
		}
	}
}

func TestRotation_Arithmetic(t *testing.T) {
	tests := []struct {
		name  string
		r     plate.Rotation
		other plate.Rotation
		sum   plate.Rotation
		inv   plate.Rotation
		turns int
		swaps bool
	}{
		{"zero", plate.Rotate0, plate.Rotate90, plate.Rotate90, plate.Rotate0, 0, false},
		{"ninety", plate.Rotate90, plate.Rotate270, plate.Rotate0, plate.Rotate270, 1, true},
		{"half", plate.Rotate180, plate.Rotate180, plate.Rotate0, plate.Rotate180, 2, false},
		{"three_quarters", plate.Rotate270, plate.Rotate180, plate.Rotate90, plate.Rotate90, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Add(tt.other); got != tt.sum {
				t.Errorf("Add() = %v, want %v", got, tt.sum)
			}
			if got := tt.r.Inverse(); got != tt.inv {
				t.Errorf("Inverse() = %v, want %v", got, tt.inv)
			}
			if got := tt.r.Add(tt.r.Inverse()); got != plate.Rotate0 {
				t.Errorf("r + Inverse() = %v, want 0", got)
			}
			if got := tt.r.QuarterTurns(); got != tt.turns {
				t.Errorf("QuarterTurns() = %d, want %d", got, tt.turns)
			}
			if got := tt.r.SwapsAxes(); got != tt.swaps {
				t.Errorf("SwapsAxes() = %v, want %v", got, tt.swaps)
			}
		})
	}
}

func TestRotation_String(t *testing.T) {
	tests := []struct {
		r    plate.Rotation
		want string
	}{
		{plate.Rotate0, "0°"},
		{plate.Rotate90, "90°"},
		{plate.Rotate270, "270°"},
		{plate.Rotation(45), "Rotation(45)"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.r.Redacted(); got != tt.want {
			t.Errorf("Redacted() = %q, want %q", got, tt.want)
		}
	}

	if got := plate.Rotate90.TypeName(); got != "Rotation" {
		t.Errorf("TypeName() = %q, want %q", got, "Rotation")
	}
	if !plate.Rotate0.IsZero() || plate.Rotate90.IsZero() {
		t.Error("IsZero() should be true only for Rotate0")
	}
}

func TestRotation_JSON(t *testing.T) {
	type payload struct {
		Rotation plate.Rotation `json:"rotation"`
	}

	data, err := json.Marshal(payload{Rotation: plate.Rotate270})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"rotation":270}` {
		t.Errorf("json.Marshal() = %s, want %s", data, `{"rotation":270}`)
	}

	inputs := map[string]plate.Rotation{
		`{"rotation":90}`:      plate.Rotate90,
		`{"rotation":"180"}`:   plate.Rotate180,
		`{"rotation":"90deg"}`: plate.Rotate90,
		`{"rotation":-90}`:     plate.Rotate270,
	}
	for in, want := range inputs {
		var p payload
		if err := json.Unmarshal([]byte(in), &p); err != nil {
			t.Errorf("json.Unmarshal(%s) error = %v", in, err)
			continue
		}
		if p.Rotation != want {
			t.Errorf("json.Unmarshal(%s) = %v, want %v", in, p.Rotation, want)
		}
	}

	for _, in := range []string{`{"rotation":45}`, `{"rotation":"east"}`, `{"rotation":true}`} {
		var p payload
		if err := json.Unmarshal([]byte(in), &p); err == nil {
			t.Errorf("json.Unmarshal(%s) should fail", in)
		}
	}

	if _, err := json.Marshal(plate.Rotation(10)); err == nil {
		t.Error("json.Marshal(Rotation(10)) should fail")
	}
}

func TestRotation_YAML(t *testing.T) {
	type payload struct {
		Rotation plate.Rotation `yaml:"rotation"`
	}

	data, err := yaml.Marshal(payload{Rotation: plate.Rotate90})
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	if string(data) != "rotation: 90\n" {
		t.Errorf("yaml.Marshal() = %q, want %q", data, "rotation: 90\n")
	}

	var p payload
	if err := yaml.Unmarshal([]byte("rotation: \"180deg\"\n"), &p); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if p.Rotation != plate.Rotate180 {
		t.Errorf("yaml.Unmarshal() = %v, want %v", p.Rotation, plate.Rotate180)
	}

	if err := yaml.Unmarshal([]byte("rotation: 100\n"), &p); err == nil {
		t.Error("yaml.Unmarshal(100) should fail")
	}
}

func TestRotation_Text(t *testing.T) {
	text, err := plate.Rotate180.MarshalText()
	if err != nil || string(text) != "180" {
		t.Errorf("MarshalText() = %q, %v; want \"180\", nil", text, err)
	}

	var r plate.Rotation
	if err := r.UnmarshalText([]byte("270")); err != nil || r != plate.Rotate270 {
		t.Errorf("UnmarshalText(270) = %v, %v; want 270°, nil", r, err)
	}
}
