package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/nvaswani/vibecheck/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	users   string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vibecheck",
	Short: "Score the dynamics of a two-person chat export",
	Long: `A CLI tool that analyzes an exported WhatsApp-style chat transcript
and derives relationship metrics for its two participants.

The engine parses the export's line format, extracts per-user base
metrics (reply latency, emoji rate, message share, day coverage), and
folds them into heuristic love and friendship scores, alongside
conversation-starter counts and engagement-balance signals.

Quick Start:
  vibecheck analyze chat.txt              # Full analysis with scores
  vibecheck stats chat.txt                # Quick transcript overview
  vibecheck export chat.txt --format md   # Export the report

Export a chat from WhatsApp via chat menu > More > Export chat
(choose "Without media").`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&users, "users", "", "Comma-separated participant pair, to override ordering (e.g. \"Bob,Alice\")")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadTranscript reads and parses a chat export, surfacing dropped-line
// diagnostics as a warning.
func loadTranscript(path string) (*internal.Transcript, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	transcript, err := internal.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transcript: %w", err)
	}

	if transcript.DroppedLines > 0 {
		internal.LogWarn("%d line(s) did not match the export format and were skipped (multi-line messages and unknown timestamp formats are dropped)", transcript.DroppedLines)
	}
	internal.LogDebug("Parsed %d record(s), %d media placeholder(s)", len(transcript.Records), transcript.MediaCount)

	return transcript, nil
}

// selectUsers resolves the participant pair. The transcript must have
// exactly two distinct authors; --users only overrides their order.
func selectUsers(transcript *internal.Transcript) (string, string, error) {
	authors := transcript.Authors()
	if len(authors) != 2 {
		return "", "", &internal.CardinalityError{Authors: authors}
	}

	if users != "" {
		pair := strings.Split(users, ",")
		if len(pair) != 2 {
			return "", "", fmt.Errorf("--users expects exactly two comma-separated names, got %q", users)
		}
		return strings.TrimSpace(pair[0]), strings.TrimSpace(pair[1]), nil
	}

	return authors[0], authors[1], nil
}
