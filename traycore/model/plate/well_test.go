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

func TestParseWellCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    plate.WellCoordinate
		wantErr bool
	}{
		{name: "first", input: "A1", want: "A1"},
		{name: "last_96", input: "H12", want: "H12"},
		{name: "last_letter", input: "Z3", want: "Z3"},
		{name: "large_column", input: "B1536", want: "B1536"},
		{name: "leading_space", input: " C7", wantErr: true},
		{name: "trailing_tab", input: "C7\t", wantErr: true},
		{name: "trailing_newline", input: "A1\n", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "lower_case", input: "a1", wantErr: true},
		{name: "zero_padded", input: "A01", wantErr: true},
		{name: "column_zero", input: "A0", wantErr: true},
		{name: "no_column", input: "A", wantErr: true},
		{name: "no_row", input: "12", wantErr: true},
		{name: "two_letters", input: "AB1", wantErr: true},
		{name: "separator", input: "A:1", wantErr: true},
		{name: "number_first", input: "1A", wantErr: true},
		{name: "overflow", input: "A99999999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := plate.ParseWellCoordinate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWellCoordinate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, trayerrors.ErrInvalidCoordinate) {
					t.Errorf("ParseWellCoordinate(%q) error should match ErrInvalidCoordinate, got %v", tt.input, err)
				}
				if got != plate.NotFound {
					t.Errorf("ParseWellCoordinate(%q) = %q on error, want NotFound", tt.input, got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseWellCoordinate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWellCoordinate_Components(t *testing.T) {
	tests := []struct {
		well   plate.WellCoordinate
		row    int
		col    int
		number int
		letter string
	}{
		{"A1", 0, 0, 1, "A"},
		{"H12", 7, 11, 12, "H"},
		{"P24", 15, 23, 24, "P"},
		{"a1", -1, -1, 0, ""},
		{"", -1, -1, 0, ""},
	}

	for _, tt := range tests {
		if got := tt.well.Row(); got != tt.row {
			t.Errorf("%q.Row() = %d, want %d", tt.well, got, tt.row)
		}
		if got := tt.well.Column(); got != tt.col {
			t.Errorf("%q.Column() = %d, want %d", tt.well, got, tt.col)
		}
		if got := tt.well.Number(); got != tt.number {
			t.Errorf("%q.Number() = %d, want %d", tt.well, got, tt.number)
		}
		if got := tt.well.Letter(); got != tt.letter {
			t.Errorf("%q.Letter() = %q, want %q", tt.well, got, tt.letter)
		}
	}
}

func TestNewWellCoordinate(t *testing.T) {
	tests := []struct {
		row, col int
		want     plate.WellCoordinate
		wantErr  bool
	}{
		{0, 0, "A1", false},
		{7, 11, "H12", false},
		{25, 0, "Z1", false},
		{26, 0, "", true},
		{-1, 0, "", true},
		{0, -1, "", true},
	}

	for _, tt := range tests {
		got, err := plate.NewWellCoordinate(tt.row, tt.col)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewWellCoordinate(%d, %d) error = %v, wantErr %v", tt.row, tt.col, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NewWellCoordinate(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestWellCoordinate_RoundTripThroughPosition(t *testing.T) {
	for row := 0; row < plate.MaxRows; row++ {
		for col := 0; col < 30; col++ {
			w, err := plate.NewWellCoordinate(row, col)
			if err != nil {
				t.Fatalf("NewWellCoordinate(%d, %d) error = %v", row, col, err)
			}
			pos, err := w.Position()
			if err != nil {
				t.Fatalf("%q.Position() error = %v", w, err)
			}
			if pos.Row != row || pos.Col != col {
				t.Fatalf("%q.Position() = %v, want (%d,%d)", w, pos, row, col)
			}
		}
	}
}

func TestWellCoordinate_ValidateIn(t *testing.T) {
	tests := []struct {
		well    plate.WellCoordinate
		shape   plate.GridShape
		wantErr bool
	}{
		{"A1", plate.Plate96, false},
		{"H12", plate.Plate96, false},
		{"I1", plate.Plate96, true},
		{"A13", plate.Plate96, true},
		{"P24", plate.Plate384, false},
		{"Q1", plate.Plate384, true},
		{"", plate.Plate96, true},
		{"h1", plate.Plate96, true},
	}

	for _, tt := range tests {
		err := tt.well.ValidateIn(tt.shape)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q.ValidateIn(%s) error = %v, wantErr %v", tt.well, tt.shape, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, trayerrors.ErrInvalidCoordinate) {
			t.Errorf("%q.ValidateIn(%s) error should match ErrInvalidCoordinate, got %v", tt.well, tt.shape, err)
		}
	}

	var ce *trayerrors.CoordinateError
	err := plate.WellCoordinate("I3").ValidateIn(plate.Plate96)
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want *errors.CoordinateError", err)
	}
	if ce.Rows != 8 || ce.Cols != 12 {
		t.Errorf("CoordinateError shape = %dx%d, want 8x12", ce.Rows, ce.Cols)
	}
}

func TestWellCoordinate_Validate(t *testing.T) {
	if err := plate.NotFound.Validate(); err != nil {
		t.Errorf("NotFound.Validate() = %v, want nil", err)
	}
	if !plate.NotFound.IsZero() {
		t.Error("NotFound.IsZero() = false, want true")
	}
	if err := plate.WellCoordinate("b2").Validate(); err == nil {
		t.Error(`"b2".Validate() = nil, want error`)
	}
}

func TestWellCoordinate_JSONYAML(t *testing.T) {
	type payload struct {
		Well plate.WellCoordinate `json:"well" yaml:"well"`
	}

	data, err := json.Marshal(payload{Well: "C4"})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"well":"C4"}` {
		t.Errorf("json.Marshal() = %s", data)
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"well":"D5"}`), &p); err != nil || p.Well != "D5" {
		t.Errorf("json.Unmarshal() = %q, %v; want D5, nil", p.Well, err)
	}
	if err := json.Unmarshal([]byte(`{"well":" D5 "}`), &p); err == nil {
		t.Error("json.Unmarshal(\" D5 \") should fail")
	}
	if err := json.Unmarshal([]byte(`{"well":"d5"}`), &p); err == nil {
		t.Error("json.Unmarshal(d5) should fail")
	}
	if _, err := json.Marshal(payload{Well: "05"}); err == nil {
		t.Error("json.Marshal(05) should fail")
	}

	var y payload
	if err := yaml.Unmarshal([]byte("well: E6\n"), &y); err != nil || y.Well != "E6" {
		t.Errorf("yaml.Unmarshal() = %q, %v; want E6, nil", y.Well, err)
	}
	if err := yaml.Unmarshal([]byte("well: \"E6 \"\n"), &y); err == nil {
		t.Error("yaml.Unmarshal(\"E6 \") should fail")
	}
	out, err := yaml.Marshal(y)
	if err != nil || string(out) != "well: E6\n" {
		t.Errorf("yaml.Marshal() = %q, %v", out, err)
	}
}
