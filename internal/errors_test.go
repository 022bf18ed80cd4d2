package internal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseFailureError(t *testing.T) {
	err := &ParseFailureError{Lines: 12}
	if !strings.Contains(err.Error(), "12 lines") {
		t.Errorf("Error() = %q, want line count included", err.Error())
	}
}

func TestCardinalityError(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{"no authors", nil, "no authors"},
		{"one author", []string{"Alice"}, "1 distinct author(s) (Alice)"},
		{"three authors", []string{"Alice", "Bob", "Carol"}, "3 distinct author(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &CardinalityError{Authors: tt.authors}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error() = %q, want containing %q", err.Error(), tt.want)
			}
		})
	}
}

func TestExportError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &ExportError{Format: "json", Path: "report.json", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("ExportError should unwrap to its cause")
	}
	wrapped := fmt.Errorf("writing report: %w", err)
	var ee *ExportError
	if !errors.As(wrapped, &ee) {
		t.Error("errors.As should find ExportError through wrapping")
	}
}
