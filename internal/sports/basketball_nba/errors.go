package basketball_nba

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies why a game block could not be interpreted
type ErrorKind int

const (
	MissingField ErrorKind = iota + 1
	MalformedCount
	NumericParse
	MalformedLeaderText
)

// Sentinels for errors.Is; every *ExtractionError matches the one for its kind.
var (
	ErrMissingField        = errors.New("missing field")
	ErrMalformedCount      = errors.New("malformed score cell count")
	ErrNumericParse        = errors.New("not a non-negative integer")
	ErrMalformedLeaderText = errors.New("malformed leader text")
)

// Field names used in extraction errors
const (
	fieldTeamNames     = "team_names"
	fieldScoreCells    = "score_cells"
	fieldLeaderCells   = "leader_cells"
	fieldTimezoneCells = "timezone_cells"
)

func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "MissingField"
	case MalformedCount:
		return "MalformedCount"
	case NumericParse:
		return "NumericParse"
	case MalformedLeaderText:
		return "MalformedLeaderText"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case MissingField:
		return ErrMissingField
	case MalformedCount:
		return ErrMalformedCount
	case NumericParse:
		return ErrNumericParse
	case MalformedLeaderText:
		return ErrMalformedLeaderText
	default:
		return nil
	}
}

// ExtractionError reports which field of a game block failed and why
type ExtractionError struct {
	Kind  ErrorKind
	Field string // Raw buffer the value came from, e.g. "score_cells"
	Index int    // Position within the buffer, -1 when not positional
	Value string // Offending text, if any
	Err   error  // Underlying cause, e.g. *strconv.NumError
}

func (e *ExtractionError) Error() string {
	var b strings.Builder
	b.WriteString(e.Field)
	if e.Index >= 0 {
		fmt.Fprintf(&b, "[%d]", e.Index)
	}
	b.WriteString(": ")
	if s := e.Kind.sentinel(); s != nil {
		b.WriteString(s.Error())
	} else {
		b.WriteString(e.Kind.String())
	}
	switch {
	case e.Kind == MalformedCount:
		fmt.Fprintf(&b, " (got %s)", e.Value)
	case e.Value != "":
		fmt.Fprintf(&b, " (%q)", e.Value)
	}
	return b.String()
}

// Is matches the sentinel error for the kind
func (e *ExtractionError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func missingField(field string, index int) *ExtractionError {
	return &ExtractionError{Kind: MissingField, Field: field, Index: index}
}

func malformedCount(count int) *ExtractionError {
	return &ExtractionError{
		Kind:  MalformedCount,
		Field: fieldScoreCells,
		Index: -1,
		Value: fmt.Sprintf("%d cells", count),
	}
}

func numericParse(field string, index int, value string, err error) *ExtractionError {
	return &ExtractionError{Kind: NumericParse, Field: field, Index: index, Value: value, Err: err}
}

func malformedLeaderText(index int, value string) *ExtractionError {
	return &ExtractionError{Kind: MalformedLeaderText, Field: fieldLeaderCells, Index: index, Value: value}
}
