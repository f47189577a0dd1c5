package v2

import (
	"fmt"
	"strings"
)

// Issue codes produced by this engine generation.
const (
	CodeRequired       = "required"
	CodeInvalidType    = "invalid_type"
	CodeInvalidLiteral = "invalid_literal"
	CodeCustom         = "custom"
)

// Issue is a single validation failure. Unlike the classic generation,
// this engine also records the offending input value.
type Issue struct {
	Path    []any
	Code    string
	Message string
	Input   any
}

func (i Issue) String() string {
	if len(i.Path) == 0 {
		return i.Message
	}
	parts := make([]string, len(i.Path))
	for n, p := range i.Path {
		parts[n] = fmt.Sprint(p)
	}
	return fmt.Sprintf("%s: %s", strings.Join(parts, "."), i.Message)
}

// Error carries the full ordered issue list for a failed parse.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Issues))
	for n, issue := range e.Issues {
		msgs[n] = issue.String()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// Result is the non-failing parse envelope. Exactly one of Data and Error
// is meaningful, selected by Success.
type Result struct {
	Success bool
	Data    any
	Error   *Error
}
