// Package teapot reads the Utah teapot surface description into a Document of bicubic patches
package teapot

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Tokens of the surface dialect
const (
	SurfaceToken = "surface("
	ArrayToken   = "array("
	PointToken   = "pt("
)

const parameterCount = 6

// span is the text following one occurrence of a token, up to the next occurrence
type span struct {
	offset int // of the token itself
	text   string
}

// segment splits text on every occurrence of token, dropping what precedes the first one
func segment(text string, token string) []span {
	var spans []span
	start := strings.Index(text, token)
	for start != -1 {
		body := start + len(token)
		next := strings.Index(text[body:], token)
		if next == -1 {
			spans = append(spans, span{offset: start, text: text[body:]})
			break
		}
		spans = append(spans, span{offset: start, text: text[body : body+next]})
		start = body + next
	}
	return spans
}

/*
Parse converts a surface description into a Document.

Every surface block is parsed on its own: a block that fails is left out of the
document and reported in the returned slice (and logged as a warning), the others
are kept in source order. An empty text gives an empty document and no errors.
*/
func Parse(text string) (Document, []*BlockError) {
	logger := Logger()
	doc := Document{Surfaces: []Surface{}}

	blocks := segment(text, SurfaceToken)

	// Every block closes its own surface; the last one also closes whatever
	// was left open before the first surface (the root array)
	var rootDepth int
	if len(blocks) > 0 {
		rootDepth = netDepth(text[:blocks[0].offset])
	}

	var blockErrors []*BlockError
	for i, block := range blocks {
		closing := -1
		if i == len(blocks)-1 {
			closing = -1 - rootDepth
		}

		surface, err := parseBlock(block.text, closing)
		if err != nil {
			blockErr := &BlockError{
				Index:   i,
				Offset:  block.offset,
				Line:    1 + strings.Count(text[:block.offset], "\n"),
				Excerpt: excerpt(block.text),
				Err:     err,
			}
			logger.Warn("dropping surface block",
				"index", blockErr.Index,
				"line", blockErr.Line,
				"error", err,
				"excerpt", blockErr.Excerpt,
			)
			blockErrors = append(blockErrors, blockErr)
			continue
		}

		rows, cols := surface.Dimensions()
		logger.Debug("parsed surface block", "index", i, "rows", rows, "cols", cols)
		doc.Surfaces = append(doc.Surfaces, surface)
	}

	return doc, blockErrors
}

// netDepth is the amount of delimiters opened minus the amount closed in text
func netDepth(text string) int {
	return strings.Count(text, "(") - strings.Count(text, ")")
}

// parseBlock parses the text following a surface token, which must close `closing` more groups than it opens
func parseBlock(block string, closing int) (Surface, error) {
	arrayIndex := strings.Index(block, ArrayToken)
	if arrayIndex == -1 {
		return Surface{}, ErrMissingArrayToken
	}

	surface, err := parseParameters(block[:arrayIndex])
	if err != nil {
		return Surface{}, err
	}

	array, err := boundArray(block[arrayIndex+len(ArrayToken):])
	if err != nil {
		return Surface{}, err
	}
	if depth := netDepth(block); depth != closing {
		return Surface{}, errors.Wrapf(ErrUnbalancedDelimiters, "block ends at depth %d, want %d", depth, closing)
	}

	surface.ControlPoints, err = parseGrid(array)
	if err != nil {
		return Surface{}, err
	}
	return surface, nil
}

// parseParameters reads `u_degree, "u_knot_type", "u_basis", v_degree, "v_knot_type", "v_basis",`
func parseParameters(preamble string) (Surface, error) {
	tokens := strings.Split(strings.TrimSpace(preamble), ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	// The list is written with a trailing comma before the points array
	if n := len(tokens); n > 0 && tokens[n-1] == "" {
		tokens = tokens[:n-1]
	}
	if len(tokens) != parameterCount {
		return Surface{}, errors.Wrapf(ErrMalformedParameterList, "got %d parameters, want %d", len(tokens), parameterCount)
	}

	var surface Surface
	parameters := [parameterCount]struct {
		name   string
		degree *int
		tag    *string
	}{
		{name: "u_degree", degree: &surface.UDegree},
		{name: "u_knot_type", tag: &surface.UKnotType},
		{name: "u_basis", tag: &surface.UBasis},
		{name: "v_degree", degree: &surface.VDegree},
		{name: "v_knot_type", tag: &surface.VKnotType},
		{name: "v_basis", tag: &surface.VBasis},
	}
	for i, param := range parameters {
		token := tokens[i]
		if param.degree != nil {
			degree, err := strconv.Atoi(token)
			if err != nil || degree <= 0 {
				return Surface{}, errors.Wrapf(ErrMalformedParameterList, "%s %q is not a positive integer", param.name, token)
			}
			*param.degree = degree
			continue
		}

		if len(token) < 2 || token[0] != '"' || token[len(token)-1] != '"' {
			return Surface{}, errors.Wrapf(ErrMalformedParameterList, "%s %s is not a quoted string", param.name, token)
		}
		*param.tag = token[1 : len(token)-1]
	}

	return surface, nil
}

// boundArray returns the content of an array whose opening delimiter was just consumed.
// Nested groups are balanced, so the array ends where the nesting depth drops to 0.
func boundArray(text string) (string, error) {
	depth := 1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return strings.TrimSpace(text[:i]), nil
			}
		}
	}
	return "", ErrUnbalancedDelimiters
}

// parseGrid reads the rows of a points array; the shape comes from the data
func parseGrid(array string) ([][]Point, error) {
	rows := segment(array, ArrayToken)
	grid := make([][]Point, 0, len(rows))
	for r, row := range rows {
		points := segment(row.text, PointToken)
		line := make([]Point, 0, len(points))
		for c, point := range points {
			p, err := parsePoint(point.text)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d point %d", r, c)
			}
			line = append(line, p)
		}
		grid = append(grid, line)
	}
	return grid, nil
}

// parsePoint reads `x, y, z` up to the point's closing delimiter
func parsePoint(text string) (Point, error) {
	if end := strings.IndexByte(text, ')'); end != -1 {
		text = text[:end]
	}

	coords := strings.Split(text, ",")
	if len(coords) != 3 {
		return Point{}, errors.Wrapf(ErrMalformedCoordinate, "got %d coordinates, want 3", len(coords))
	}

	var xyz [3]float64
	for i, coord := range coords {
		coord = strings.TrimSpace(coord)
		v, err := strconv.ParseFloat(coord, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Point{}, errors.Wrapf(ErrMalformedCoordinate, "%c %q", "xyz"[i], coord)
		}
		xyz[i] = v
	}
	return Point{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}
