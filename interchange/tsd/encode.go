package tsd

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	teapot "github.com/antoniovini47/ifma-cg-utah-teapot"
	"github.com/antoniovini47/ifma-cg-utah-teapot/interchange"
	"github.com/pkg/errors"
)

var ensureEncoderCompliance interchange.Encoder = &Encoder{}

// RootName is the name the surfaces array is given in the written description
const RootName = "TeaSrfs"

// Tags can't hold characters that are part of the dialect's structure
const reservedTagCharacters = `",()`

// Encoder writes documents in the layout of the original teapot file
type Encoder struct {
	out io.Writer
}

func NewEncoder(out io.Writer) *Encoder {
	return &Encoder{out: out}
}

func (enc *Encoder) Encode(doc teapot.Document) error {
	// Check everything first so that nothing is written for an unrepresentable document
	for i, s := range doc.Surfaces {
		if s.UDegree <= 0 || s.VDegree <= 0 {
			return errors.Errorf("surface %d: degrees %d and %d must be positive", i, s.UDegree, s.VDegree)
		}
		for _, tag := range [...]struct{ name, value string }{
			{"u_knot_type", s.UKnotType},
			{"u_basis", s.UBasis},
			{"v_knot_type", s.VKnotType},
			{"v_basis", s.VBasis},
		} {
			if strings.ContainsAny(tag.value, reservedTagCharacters) {
				return errors.Errorf("surface %d: %s %q can't be written in the surface dialect", i, tag.name, tag.value)
			}
		}
		for r, row := range s.ControlPoints {
			for c, p := range row {
				if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
					return errors.Errorf("surface %d: point %d,%d %v isn't finite", i, r, c, p)
				}
			}
		}
	}

	w := bufio.NewWriter(enc.out)
	fmt.Fprintf(w, "%s: array(\n", RootName)
	for i, s := range doc.Surfaces {
		fmt.Fprintf(w, "    surface( %d, \"%s\", \"%s\", %d, \"%s\", \"%s\",\n", s.UDegree, s.UKnotType, s.UBasis, s.VDegree, s.VKnotType, s.VBasis)
		w.WriteString("\tarray(")
		for r, row := range s.ControlPoints {
			w.WriteString("\n\t    array( ")
			for c, p := range row {
				if c != 0 {
					w.WriteString(",\n                   ")
				}
				w.WriteString(p.String())
			}
			w.WriteString(" )")
			if r+1 != len(s.ControlPoints) {
				w.WriteString(",")
			}
		}
		w.WriteString(" ) )")
		if i+1 != len(doc.Surfaces) {
			w.WriteString(",")
		}
		w.WriteString("\n")
	}
	w.WriteString("    );\n")

	return errors.Wrap(w.Flush(), "writing surface description")
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
