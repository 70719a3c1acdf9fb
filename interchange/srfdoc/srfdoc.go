// Package srfdoc reads & writes teapot documents as structured interchange documents (JSON or YAML)
//
// A document has a single key, TeaSrfs, holding the surfaces in order. Every
// surface keeps its fields in the order u_degree, u_knot_type, u_basis, v_degree,
// v_knot_type, v_basis, control_points; control points are [x, y, z] arrays.
package srfdoc

import (
	"encoding/json"
	"io"
	"strings"

	teapot "github.com/antoniovini47/ifma-cg-utah-teapot"
	"github.com/antoniovini47/ifma-cg-utah-teapot/interchange"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var (
	ensureDecoderCompliance interchange.Decoder = &Decoder{}
	ensureEncoderCompliance interchange.Encoder = &Encoder{}
)

type Format int

const (
	JSON Format = iota
	YAML
)

// Indent is the JSON indentation, the one of the original converter's output
const Indent = "    "

var formatNames = map[Format]string{
	JSON: "json",
	YAML: "yaml",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat accepts a format name, case-insensitively ("yml" stands for YAML)
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return 0, errors.Errorf("unknown document format %q", name)
	}
}

type Encoder struct {
	out    io.Writer
	format Format
}

func NewEncoder(out io.Writer, format Format) *Encoder {
	return &Encoder{
		out:    out,
		format: format,
	}
}

func (enc *Encoder) Encode(doc teapot.Document) error {
	// Always write an array, even for an empty document
	if doc.Surfaces == nil {
		doc.Surfaces = []teapot.Surface{}
	}

	switch enc.format {
	case JSON:
		jsonEncoder := json.NewEncoder(enc.out)
		jsonEncoder.SetIndent("", Indent)
		return errors.Wrap(jsonEncoder.Encode(doc), "encoding json document")
	case YAML:
		yamlEncoder := yaml.NewEncoder(enc.out)
		if err := yamlEncoder.Encode(doc); err != nil {
			return errors.Wrap(err, "encoding yaml document")
		}
		return errors.Wrap(yamlEncoder.Close(), "flushing yaml document")
	default:
		return errors.Errorf("unsupported document format %v", enc.format)
	}
}

// Decoder reads a stream of documents, one after the other
type Decoder struct {
	in          io.Reader
	format      Format
	jsonDecoder *json.Decoder
	yamlDecoder *yaml.Decoder
}

func NewDecoder(in io.Reader, format Format) *Decoder {
	dec := &Decoder{
		in:     in,
		format: format,
	}
	switch format {
	case JSON:
		dec.jsonDecoder = json.NewDecoder(in)
		dec.jsonDecoder.DisallowUnknownFields()
	case YAML:
		dec.yamlDecoder = yaml.NewDecoder(in)
		dec.yamlDecoder.SetStrict(true)
	}
	return dec
}

// Decode reads the next document, returning io.EOF once the stream is exhausted
func (dec *Decoder) Decode() (teapot.Document, error) {
	var doc teapot.Document
	var err error
	switch dec.format {
	case JSON:
		err = dec.jsonDecoder.Decode(&doc)
	case YAML:
		err = dec.yamlDecoder.Decode(&doc)
	default:
		return teapot.Document{}, errors.Errorf("unsupported document format %v", dec.format)
	}

	if err == io.EOF {
		return teapot.Document{}, err
	} else if err != nil {
		return teapot.Document{}, errors.Wrapf(err, "decoding %v document", dec.format)
	}
	return doc, nil
}
