// Package tsd reads & writes the teapot surface description dialect
//
//	TeaSrfs: array(
//	    surface( 4, "ec_open", "kv_bezier", 4, "ec_open", "kv_bezier",
//		array(
//		    array( pt( 1.4, 2.25, 0.0 ),
//		           ... ) ) ),
//	    ... );
package tsd

import (
	"io"

	teapot "github.com/antoniovini47/ifma-cg-utah-teapot"
	"github.com/antoniovini47/ifma-cg-utah-teapot/interchange"
	"github.com/pkg/errors"
)

var ensureDecoderCompliance interchange.Decoder = &Decoder{}

// Decoder reads a whole surface description from its input
type Decoder struct {
	in      io.Reader
	done    bool
	skipped []*teapot.BlockError
}

func NewDecoder(in io.Reader) *Decoder {
	return &Decoder{
		in: in,
	}
}

// Decode reads the input until EOF and parses it. Surface blocks that fail to
// parse don't make it fail, they are available through Skipped.
// A description is a single document, further calls return io.EOF.
func (dec *Decoder) Decode() (teapot.Document, error) {
	if dec.done {
		return teapot.Document{}, io.EOF
	}
	dec.done = true

	raw, err := io.ReadAll(dec.in)
	if err != nil {
		return teapot.Document{}, errors.Wrap(err, "reading surface description")
	}

	doc, skipped := teapot.Parse(string(raw))
	dec.skipped = skipped
	return doc, nil
}

// Skipped returns the surface blocks dropped by the last Decode
func (dec *Decoder) Skipped() []*teapot.BlockError {
	return dec.skipped
}
