package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/nvaswani/vibecheck/internal"
	"github.com/spf13/cobra"
)

var (
	statsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				Padding(0, 1)

	statsWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <chat.txt>",
	Short: "Show a quick transcript overview",
	Long: `Parse a chat export and print transcript-level statistics without
running the scoring pipeline: message and emoji totals, media count,
per-author message counts, and parse diagnostics.

Useful for checking that an export parses cleanly before analyzing it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		transcript, err := loadTranscript(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		authors := transcript.Authors()
		counts := transcript.MessageCounts()

		fmt.Fprintln(out, statsHeaderStyle.Render(fmt.Sprintf("📋 Transcript: %d message(s), %d author(s)", len(transcript.Records), len(authors))))
		fmt.Fprintln(out)

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "Author\tMessages\tShare")
		fmt.Fprintln(w, strings.Repeat("─", 40))
		for _, author := range authors {
			share := 0.0
			if len(transcript.Records) > 0 {
				share = float64(counts[author]) / float64(len(transcript.Records))
			}
			fmt.Fprintf(w, "%s\t%d\t%.0f%%\n", author, counts[author], share*100)
		}
		_ = w.Flush()
		fmt.Fprintln(out)

		w = tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Emojis\t%d\n", totalTranscriptEmojis(transcript))
		fmt.Fprintf(w, "Media shared\t%d\n", transcript.MediaCount)
		fmt.Fprintf(w, "Chatting days\t%d\n", internal.DistinctDays(transcript.Records))
		fmt.Fprintf(w, "Day coverage\t%.0f%%\n", internal.DayCoverage(transcript.Records)*100)
		_ = w.Flush()

		if transcript.DroppedLines > 0 {
			fmt.Fprintln(out, statsWarnStyle.Render(fmt.Sprintf("⚠ %d line(s) did not match the export format", transcript.DroppedLines)))
		}

		if len(authors) != 2 {
			fmt.Fprintln(out, statsWarnStyle.Render("⚠ Analysis requires exactly two participants; `vibecheck analyze` will refuse this transcript"))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func totalTranscriptEmojis(t *internal.Transcript) int {
	total := 0
	for _, m := range t.Records {
		total += internal.CountEmojis(m.Body)
	}
	return total
}
