package api

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "single", input: "1", want: []int{1}},
		{name: "trims whitespace", input: " 1, 2 ,3 ", want: []int{1, 2, 3}},
		{name: "keeps duplicates and order", input: "3,1,3", want: []int{3, 1, 3}},
		{name: "negative ids", input: "-1,2", want: []int{-1, 2}},
		{name: "blank is empty", input: "   ", want: []int{}},
		{name: "blank entry", input: "1,,2", wantErr: true},
		{name: "trailing comma", input: "1,2,", wantErr: true},
		{name: "not a number", input: "1,bob", wantErr: true},
		{name: "decimal", input: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIDList("split", tt.input)
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("expected ParseError, got %v", err)
				}
				if pe.Field != "split" {
					t.Errorf("field = %q, want split", pe.Field)
				}
				if !errors.Is(err, ErrNotANumber) {
					t.Errorf("expected ErrNotANumber in chain, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID("user id", " 42 "); err != nil || id != 42 {
		t.Errorf("ParseID = %d, %v, want 42", id, err)
	}
	var pe *ParseError
	if _, err := ParseID("user id", "abc"); !errors.As(err, &pe) {
		t.Errorf("expected ParseError, got %v", err)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "50", want: 50},
		{input: " 12.5 ", want: 12.5},
		{input: "-3", want: -3},
		{input: "", wantErr: true},
		{input: "ten", wantErr: true},
		{input: "NaN", wantErr: true},
		{input: "Inf", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseAmount("amount", tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
