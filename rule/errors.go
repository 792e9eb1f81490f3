package rule

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by Parse when given an empty (or all-whitespace)
// string, which has no valid rule tree.
var ErrEmptyInput = errors.New("rule: empty input")

// ParseError reports a malformed rule string: the byte offset where parsing
// failed and the token kinds that would have been accepted there.
type ParseError struct {
	Input    string
	Pos      int
	Expected []string
	Found    string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("rule: parse error at byte %d (near %q): expected %v, found %q",
		e.Pos, contextAt(e.Input, e.Pos), e.Expected, e.Found)
}

// contextAt returns a short window of the input around pos for error
// messages, never panicking on out-of-range positions.
func contextAt(input string, pos int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(input) {
		pos = len(input)
	}
	end := pos + 12
	if end > len(input) {
		end = len(input)
	}
	return input[pos:end]
}
