package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nvaswani/vibecheck/internal"
)

// JSONLExporter exports the normalized parsed records, one message per
// line, for downstream tooling that wants the transcript rather than
// the derived scores.
type JSONLExporter struct{}

// Export writes each parsed record to w as a single JSON line
func (e *JSONLExporter) Export(t *internal.Transcript, _ *internal.Report, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, msg := range t.Records {
		if err := enc.Encode(msg); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
