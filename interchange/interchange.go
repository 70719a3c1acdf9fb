// Package interchange reads & writes teapot documents in their various formats
package interchange

import teapot "github.com/antoniovini47/ifma-cg-utah-teapot"

type Decoder interface {
	Decode() (teapot.Document, error)
}

type Encoder interface {
	Encode(doc teapot.Document) error
}
