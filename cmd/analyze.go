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
	// Styles for analyze command
	analyzeHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginTop(1)

	userStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	positiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	neutralStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	negativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <chat.txt>",
	Short: "Analyze a chat export and show scores",
	Long: `Run the full analysis pipeline over an exported chat transcript:
parse, extract per-user metrics, compute love and friendship scores,
classify the relationship status, and break down engagement balance,
conversation starters, and activity patterns.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		displayReport(cmd, report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func displayReport(cmd *cobra.Command, r *internal.Report) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, analyzeHeaderStyle.Render(fmt.Sprintf("💬 Chat Analysis: %s & %s", r.Users[0], r.Users[1])))

	// Overall status banner, emphasized by severity.
	status := fmt.Sprintf("%s  %s", r.Status.Label, r.Status.Description)
	switch r.Status.Severity {
	case internal.SeverityPositive:
		fmt.Fprintln(out, positiveStyle.Render(status))
	case internal.SeverityNegative:
		fmt.Fprintln(out, negativeStyle.Render(status))
	default:
		fmt.Fprintln(out, neutralStyle.Render(status))
	}
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("Average love score: %.1f", r.AverageLove)))

	fmt.Fprintln(out, sectionStyle.Render("📈 Overall Statistics"))
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Total messages\t%d\n", r.Stats.TotalMessages)
	fmt.Fprintf(w, "Total emojis\t%d\n", r.Stats.TotalEmojis)
	fmt.Fprintf(w, "Media shared\t%d\n", r.Stats.MediaShared)
	fmt.Fprintf(w, "Chatting days\t%d\n", r.Stats.ChattingDays)
	if r.Stats.DroppedLines > 0 {
		fmt.Fprintf(w, "Unparsed lines\t%d\n", r.Stats.DroppedLines)
	}
	_ = w.Flush()

	fmt.Fprintln(out, sectionStyle.Render("💘 Scores"))
	w = tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "User\tLove\tFriendship\tReply (min)\tEmoji rate\tShare\tDay coverage")
	fmt.Fprintln(w, strings.Repeat("─", 80))
	for _, ur := range r.UserReports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.2f\t%.2f\n",
			userStyle.Render(ur.User),
			scoreStyle.Render(fmt.Sprintf("%d", ur.Love.Total)),
			scoreStyle.Render(fmt.Sprintf("%d", ur.Friendship.Total)),
			formatReplyTime(ur.Metrics.ReplyTime),
			ur.Metrics.EmojiRate, ur.Metrics.MessageShare, ur.Metrics.DayCoverage)
	}
	_ = w.Flush()

	fmt.Fprintln(out, sectionStyle.Render("⚖️ Engagement Balance"))
	w = tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "User\tQuestions\tLow-effort\tAvg length\tStarted")
	fmt.Fprintln(w, strings.Repeat("─", 60))
	for _, user := range r.Users {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\t%d\n",
			userStyle.Render(user),
			r.Balance.Questions[user], r.Balance.LowEffort[user],
			r.Balance.AvgLength[user], r.Starters[user])
	}
	_ = w.Flush()

	fmt.Fprintln(out, sectionStyle.Render("⏰ When You Talk"))
	fmt.Fprintln(out, dimStyle.Render("Busiest hours: ")+formatPeaks(r.Activity))

	for _, ur := range r.UserReports {
		if len(ur.TopEmojis) == 0 {
			continue
		}
		parts := make([]string, 0, len(ur.TopEmojis))
		for _, ec := range ur.TopEmojis {
			parts = append(parts, fmt.Sprintf("%s ×%d", ec.Emoji, ec.Count))
		}
		fmt.Fprintf(out, "%s %s\n", userStyle.Render(ur.User+"'s top emojis:"), strings.Join(parts, "  "))
	}
}

// formatReplyTime renders the latency, flagging the no-replies sentinel.
func formatReplyTime(t float64) string {
	if t == internal.ReplyTimeSentinel {
		return dimStyle.Render("—")
	}
	return fmt.Sprintf("%.1f", t)
}

// formatPeaks lists the three busiest hours of the day.
func formatPeaks(act internal.Activity) string {
	type hourCount struct{ hour, count int }
	peaks := make([]hourCount, 0, 24)
	for h, c := range act.Hourly {
		if c > 0 {
			peaks = append(peaks, hourCount{h, c})
		}
	}
	if len(peaks) == 0 {
		return "no activity"
	}
	// Selection of the top three is enough; the list is tiny.
	for i := 0; i < len(peaks) && i < 3; i++ {
		max := i
		for j := i + 1; j < len(peaks); j++ {
			if peaks[j].count > peaks[max].count {
				max = j
			}
		}
		peaks[i], peaks[max] = peaks[max], peaks[i]
	}
	n := len(peaks)
	if n > 3 {
		n = 3
	}
	parts := make([]string, 0, n)
	for _, p := range peaks[:n] {
		parts = append(parts, fmt.Sprintf("%02d:00 (%d msgs)", p.hour, p.count))
	}
	return strings.Join(parts, ", ")
}
