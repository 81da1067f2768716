package tikz

import "testing"

func TestPointString(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		want  string
	}{
		{
			name:  "whole values",
			point: XY(2, 2),
			want:  "(2, 2)",
		},
		{
			name:  "fractional values",
			point: XY(2.5, 3.0),
			want:  "(2.5, 3)",
		},
		{
			name:  "negative values",
			point: XY(-1.25, 0),
			want:  "(-1.25, 0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.point.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	p := XY(2, 3)

	if got := p.Add(XY(1, -1)); got != XY(3, 2) {
		t.Errorf("Add() = %v, want %v", got, XY(3, 2))
	}
	if got := p.Sub(XY(1, -1)); got != XY(1, 4) {
		t.Errorf("Sub() = %v, want %v", got, XY(1, 4))
	}
	if got := p.Scale(2); got != XY(4, 6) {
		t.Errorf("Scale() = %v, want %v", got, XY(4, 6))
	}
}

func TestPointEquality(t *testing.T) {
	if XY(2, 2) != XY(2, 2) {
		t.Error("equal points compare unequal")
	}
	if XY(2, 2) == XY(2, 2.0000001) {
		t.Error("distinct points compare equal")
	}
}
