package export

import (
	"encoding/json"
	"io"

	"github.com/nvaswani/vibecheck/internal"
)

// JSONExporter exports the analysis report as pretty-printed JSON
type JSONExporter struct{}

// Export writes the report to w as JSON
func (e *JSONExporter) Export(_ *internal.Transcript, r *internal.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
