package teapot

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Block-level parse failures. A BlockError always unwraps to one of these.
var (
	ErrMissingArrayToken      = errors.New("points array not found")
	ErrUnbalancedDelimiters   = errors.New("unbalanced delimiters in points array")
	ErrMalformedParameterList = errors.New("malformed parameter list")
	ErrMalformedCoordinate    = errors.New("malformed coordinate")
)

// ExcerptLength is the maximum amount of bytes of a failing block kept in its BlockError
const ExcerptLength = 200

// BlockError reports a surface block that was dropped from the document
type BlockError struct {
	// Index is the position of the block among all surface blocks, starting at 0
	Index int

	// Offset is the byte offset of the block's surface token in the source, Line its 1-based line
	Offset int
	Line   int

	// Excerpt is the start of the block's text
	Excerpt string

	Err error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("surface block %d (line %d): %v", e.Index, e.Line, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

// Cause lets errors.Cause from github.com/pkg/errors see through the block error
func (e *BlockError) Cause() error {
	return e.Err
}

func excerpt(block string) string {
	if len(block) <= ExcerptLength {
		return block
	}
	// Don't cut a rune in half
	cut := ExcerptLength
	for cut > 0 && !utf8.RuneStart(block[cut]) {
		cut--
	}
	return block[:cut]
}
