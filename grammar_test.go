package teapot

import (
	"encoding/json"
	"math"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestPoint_String(t *testing.T) {
	tests := []struct {
		p    Point
		want string
	}{
		{Point{1.4, 2.25, 0}, "pt( 1.4, 2.25, 0.0 )"},
		{Point{-0.112, 2.55, -3}, "pt( -0.112, 2.55, -3.0 )"},
		{Point{1e-9, 0.5, 100}, "pt( 1e-09, 0.5, 100.0 )"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Got %s, want %s", got, tt.want)
		}
	}
}

func TestPoint_JSON(t *testing.T) {
	data, err := json.Marshal(Point{1.4, 2.25, 0})
	if err != nil {
		t.Fatalf("Couldn't marshal point: %v", err)
	}
	if string(data) != "[1.4,2.25,0]" {
		t.Errorf("Got %s", data)
	}

	var p Point
	if err := json.Unmarshal([]byte("[-0.2, 2.55, 0.112]"), &p); err != nil {
		t.Fatalf("Couldn't unmarshal point: %v", err)
	}
	if p != (Point{-0.2, 2.55, 0.112}) {
		t.Errorf("Got %v", p)
	}

	if err := json.Unmarshal([]byte("[1, 2]"), &p); err == nil {
		t.Error("Expected an error for a point with two coordinates")
	}
	if _, err := json.Marshal(Point{math.NaN(), 0, 0}); err == nil {
		t.Error("Expected an error for a NaN coordinate")
	}
}

func TestPoint_YAML(t *testing.T) {
	data, err := yaml.Marshal(Point{1.4, 2.25, 0})
	if err != nil {
		t.Fatalf("Couldn't marshal point: %v", err)
	}

	var p Point
	if err := yaml.Unmarshal(data, &p); err != nil {
		t.Fatalf("Couldn't unmarshal point: %v", err)
	}
	if p != (Point{1.4, 2.25, 0}) {
		t.Errorf("Got %v from %s", p, data)
	}

	if err := yaml.Unmarshal([]byte("[1, 2, 3, 4]"), &p); err == nil {
		t.Error("Expected an error for a point with four coordinates")
	}
}

func TestSurface_Dimensions(t *testing.T) {
	if rows, cols := (Surface{}).Dimensions(); rows != 0 || cols != 0 {
		t.Errorf("Got %dx%d for an empty surface", rows, cols)
	}
	s := Surface{ControlPoints: make([][]Point, 4)}
	for i := range s.ControlPoints {
		s.ControlPoints[i] = make([]Point, 4)
	}
	if rows, cols := s.Dimensions(); rows != 4 || cols != 4 {
		t.Errorf("Got %dx%d, want 4x4", rows, cols)
	}
}
