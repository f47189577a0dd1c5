package schema

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
	CodeAsync          = "async"
)

// Issue is a single validation failure, located by the path of keys and
// indices leading to the offending value.
type Issue struct {
	Path    []any
	Code    string
	Message string
}

func newIssue(path []any, code, message string) Issue {
	return Issue{Path: path, Code: code, Message: message}
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

// ValidationError carries the full ordered issue list for a failed parse.
type ValidationError struct {
	Issues []Issue
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Issues))
	for n, issue := range e.Issues {
		msgs[n] = issue.String()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// SafeParseResult is the non-failing parse envelope. Exactly one of Data
// and Error is meaningful, selected by Success.
type SafeParseResult struct {
	Success bool
	Data    any
	Error   *ValidationError
}
