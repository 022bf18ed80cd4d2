package cmd

import (
	"fmt"
	"os"

	"github.com/nvaswani/vibecheck/internal"
	"github.com/nvaswani/vibecheck/internal/export"
	"github.com/spf13/cobra"
)

var (
	format     string
	outputPath string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <chat.txt>",
	Short: "Export the analysis report to a file",
	Long: `Run the analysis pipeline and serialize the full report.

Formats: json and yaml emit the structured report, md renders a
Markdown document, and jsonl emits the normalized parsed message
records, one per line. Writes to stdout unless --output is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		transcript, err := loadTranscript(args[0])
		if err != nil {
			return err
		}

		userA, userB, err := selectUsers(transcript)
		if err != nil {
			return err
		}

		report, err := internal.BuildReportFor(transcript, userA, userB)
		if err != nil {
			return fmt.Errorf("failed to analyze transcript: %w", err)
		}

		w := cmd.OutOrStdout()
		dest := "stdout"
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				return &internal.ExportError{Format: format, Path: outputPath, Err: err}
			}
			defer func() { _ = f.Close() }()
			w = f
			dest = outputPath
		}

		if err := exporter.Export(transcript, report, w); err != nil {
			return &internal.ExportError{Format: format, Path: dest, Err: err}
		}

		internal.LogDebug("Exported report %s as %s to %s", report.ID, format, dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&format, "format", "f", "json", "Export format (json, yaml, md, jsonl)")
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")
}
