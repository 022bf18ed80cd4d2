package export

import (
	"io"

	"github.com/nvaswani/vibecheck/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports the analysis report as YAML
type YAMLExporter struct{}

// Export writes the report to w as YAML
func (e *YAMLExporter) Export(_ *internal.Transcript, r *internal.Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(r)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
