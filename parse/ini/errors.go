package ini

import (
	"errors"
	"fmt"
)

// =========================
// Errors
// =========================

// ErrConfig is wrapped by every configuration validation failure.
var ErrConfig = errors.New("invalid parser configuration")

// ErrKind identifies a fatal parse error. Fatal errors are not
// recoverable: the parse stops at the offending line and the input must
// be fixed instead.
type ErrKind uint8

const (
	ErrNone ErrKind = iota
	ErrNoSection
	ErrMalformed
	ErrMalformedList
	ErrTooLong
	ErrNested
	ErrNoList
	ErrEmptyList
	ErrMissingComma
	ErrRedundantComma
	ErrRedundantBracket
	ErrListNotStarted
	ErrListNotEnded
	errSentinel // greatest index in errKindStrings
)

var errKindStrings = [...]string{
	ErrNone:             "success",
	ErrNoSection:        "entry without section",
	ErrMalformed:        "malformed/syntactically incorrect",
	ErrMalformedList:    "malformed/syntactically incorrect list",
	ErrTooLong:          fmt.Sprintf("line length exceeds maximum acceptable length(%d)", MaxLineLen),
	ErrNested:           "illegal nesting (unterminated list?)",
	ErrNoList:           "list item without list",
	ErrEmptyList:        "malformed list (empty list?)",
	ErrMissingComma:     "malformed list entry (previous missing comma?)",
	ErrRedundantComma:   "malformed list entry (redundant comma?)",
	ErrRedundantBracket: "malformed list (redundant bracket ?)",
	ErrListNotStarted:   "malformed list (missing opening bracket ?)",
	ErrListNotEnded:     "malformed list (unterminated list ?)",
}

// String maps the kind to its diagnostic message. Kinds at or past the
// sentinel do not index the table.
func (k ErrKind) String() string {
	if k >= errSentinel {
		return fmt.Sprintf("invalid error kind (%d)", uint8(k))
	}
	return errKindStrings[k]
}

// ParseError is a fatal parse error bound to the 1-based line that
// triggered it.
type ParseError struct {
	Line uint32
	Kind ErrKind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ini:%d: %s", e.Line, e.Kind)
}
