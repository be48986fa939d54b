package util

import (
	"encoding/json"
	"testing"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   int64
		wantOK bool
	}{
		{"nil", nil, 0, false},
		{"int64", int64(42), 42, true},
		{"int", int(7), 7, true},
		{"float64 integral", float64(3), 3, true},
		{"float64 fractional", float64(3.9), 0, false},
		{"json.Number", json.Number("12"), 12, true},
		{"json.Number fractional", json.Number("1.5"), 0, false},
		{"string valid", "123", 123, true},
		{"string invalid", "abc", 0, false},
		{"string empty", "", 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt64(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ToInt64(%v) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{"nil", nil, 0, false},
		{"float64", float64(3.14), 3.14, true},
		{"int64", int64(42), 42.0, true},
		{"int", int(7), 7.0, true},
		{"json.Number", json.Number("-0.25"), -0.25, true},
		{"string valid", "3.14", 3.14, true},
		{"string int", "42", 42.0, true},
		{"string invalid", "abc", 0, false},
		{"string empty", "", 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat64(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ToFloat64(%v) = %f, %v, want %f, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
