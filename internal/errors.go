package internal

import (
	"fmt"
	"strings"
)

// ParseFailureError reports a transcript in which no line matched the
// line grammar. It is terminal: no partial records are produced.
type ParseFailureError struct {
	Lines int // physical lines examined
}

func (e *ParseFailureError) Error() string {
	return fmt.Sprintf("no transcript lines matched the chat export format (%d lines examined)", e.Lines)
}

// CardinalityError reports a transcript whose distinct author count is
// not exactly two. Analysis requires a one-on-one chat.
type CardinalityError struct {
	Authors []string
}

func (e *CardinalityError) Error() string {
	if len(e.Authors) == 0 {
		return "transcript has no authors; analysis requires exactly two"
	}
	return fmt.Sprintf("transcript has %d distinct author(s) (%s); analysis requires exactly two",
		len(e.Authors), strings.Join(e.Authors, ", "))
}

// UnknownUserError reports a requested user that never appears in the
// transcript.
type UnknownUserError struct {
	User string
}

func (e *UnknownUserError) Error() string {
	return fmt.Sprintf("user %q does not appear in the transcript", e.User)
}

// ExportError represents errors during report export.
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
