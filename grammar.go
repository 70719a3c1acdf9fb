package teapot

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Point is a control point of a patch
type Point struct {
	X, Y, Z float64
}

// Point stringifier, in the surface dialect's notation
func (p Point) String() string {
	out := "pt( "
	for i, coord := range p.array() {
		out += formatCoordinate(coord)
		if i != 2 {
			out += ", "
		}
	}
	out += " )"
	return out
}

// formatCoordinate keeps at least one fractional digit so that integral
// coordinates read like the dataset's ("0.0" rather than "0")
func formatCoordinate(v float64) string {
	s := strconv.FormatFloat(v, byte('g'), -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

func (p Point) array() []float64 {
	return []float64{p.X, p.Y, p.Z}
}

func pointFromArray(coords []float64) (Point, error) {
	if len(coords) != 3 {
		return Point{}, errors.Errorf("point has %d coordinates, want 3", len(coords))
	}
	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// MarshalJSON encodes the point as [x, y, z]
func (p Point) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, 32)
	out = append(out, '[')
	for i, coord := range p.array() {
		if math.IsNaN(coord) || math.IsInf(coord, 0) {
			return nil, errors.Errorf("unsupported coordinate value %v", coord)
		}
		out = strconv.AppendFloat(out, coord, 'g', -1, 64)
		if i != 2 {
			out = append(out, ',')
		}
	}
	return append(out, ']'), nil
}

// UnmarshalJSON decodes a [x, y, z] array
func (p *Point) UnmarshalJSON(data []byte) error {
	var coords []float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return errors.Wrap(err, "decoding point")
	}
	decoded, err := pointFromArray(coords)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// MarshalYAML encodes the point as a sequence [x, y, z]
func (p Point) MarshalYAML() (interface{}, error) {
	return p.array(), nil
}

// UnmarshalYAML decodes a [x, y, z] sequence
func (p *Point) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var coords []float64
	if err := unmarshal(&coords); err != nil {
		return errors.Wrap(err, "decoding point")
	}
	decoded, err := pointFromArray(coords)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// Surface is one bicubic patch: its per-direction metadata and its grid of control points.
// The grid is row-major; the dialect always carries 4x4 but the shape is taken from the data.
type Surface struct {
	UDegree       int       `json:"u_degree" yaml:"u_degree"`
	UKnotType     string    `json:"u_knot_type" yaml:"u_knot_type"`
	UBasis        string    `json:"u_basis" yaml:"u_basis"`
	VDegree       int       `json:"v_degree" yaml:"v_degree"`
	VKnotType     string    `json:"v_knot_type" yaml:"v_knot_type"`
	VBasis        string    `json:"v_basis" yaml:"v_basis"`
	ControlPoints [][]Point `json:"control_points" yaml:"control_points"`
}

// Dimensions returns the amount of rows and the amount of points in the first row
func (s Surface) Dimensions() (rows, cols int) {
	rows = len(s.ControlPoints)
	if rows > 0 {
		cols = len(s.ControlPoints[0])
	}
	return rows, cols
}

// Document is the result of a conversion, surfaces in source order
type Document struct {
	Surfaces []Surface `json:"TeaSrfs" yaml:"TeaSrfs"`
}
