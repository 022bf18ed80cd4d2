package export

import (
	"fmt"
	"io"

	"github.com/nvaswani/vibecheck/internal"
)

// Exporter defines the interface for all export formats. Exporters
// receive both the parsed transcript and the derived report; most only
// serialize the report, while JSONL emits the raw parsed records.
type Exporter interface {
	Export(t *internal.Transcript, r *internal.Report, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml, md, jsonl)", format)
	}
}
