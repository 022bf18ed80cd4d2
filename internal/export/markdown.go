package export

import (
	"fmt"
	"io"

	"github.com/nvaswani/vibecheck/internal"
)

// MarkdownExporter renders the analysis report as a Markdown document
type MarkdownExporter struct{}

// Export writes the report to w as Markdown
func (e *MarkdownExporter) Export(_ *internal.Transcript, r *internal.Report, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Chat Analysis: %s & %s\n\n", r.Users[0], r.Users[1])
	_, _ = fmt.Fprintf(w, "**Report:** %s  \n", r.ID)
	_, _ = fmt.Fprintf(w, "**Generated:** %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04 UTC"))

	_, _ = fmt.Fprintf(w, "## Overall Status\n\n")
	_, _ = fmt.Fprintf(w, "**%s** — %s (average love score %.1f)\n\n", r.Status.Label, r.Status.Description, r.AverageLove)

	_, _ = fmt.Fprintf(w, "## Chat Statistics\n\n")
	_, _ = fmt.Fprintf(w, "| Metric | Value |\n|---|---|\n")
	_, _ = fmt.Fprintf(w, "| Total messages | %d |\n", r.Stats.TotalMessages)
	_, _ = fmt.Fprintf(w, "| Total emojis | %d |\n", r.Stats.TotalEmojis)
	_, _ = fmt.Fprintf(w, "| Media shared | %d |\n", r.Stats.MediaShared)
	_, _ = fmt.Fprintf(w, "| Chatting days | %d |\n", r.Stats.ChattingDays)
	if r.Stats.DroppedLines > 0 {
		_, _ = fmt.Fprintf(w, "| Unparsed lines | %d |\n", r.Stats.DroppedLines)
	}
	_, _ = fmt.Fprintf(w, "\n")

	_, _ = fmt.Fprintf(w, "## Scores\n\n")
	_, _ = fmt.Fprintf(w, "| User | Love | Friendship | Reply Time (min) | Emoji Rate | Message Share | Day Coverage |\n")
	_, _ = fmt.Fprintf(w, "|---|---|---|---|---|---|---|\n")
	for _, ur := range r.UserReports {
		_, _ = fmt.Fprintf(w, "| %s | %d | %d | %.1f | %.2f | %.2f | %.2f |\n",
			ur.User, ur.Love.Total, ur.Friendship.Total,
			ur.Metrics.ReplyTime, ur.Metrics.EmojiRate, ur.Metrics.MessageShare, ur.Metrics.DayCoverage)
	}
	_, _ = fmt.Fprintf(w, "\n")

	_, _ = fmt.Fprintf(w, "## Engagement Balance\n\n")
	_, _ = fmt.Fprintf(w, "| User | Questions Asked | Low-Effort Replies | Avg Length (chars) | Conversations Started |\n")
	_, _ = fmt.Fprintf(w, "|---|---|---|---|---|\n")
	for _, user := range r.Users {
		_, _ = fmt.Fprintf(w, "| %s | %d | %d | %.1f | %d |\n",
			user, r.Balance.Questions[user], r.Balance.LowEffort[user],
			r.Balance.AvgLength[user], r.Starters[user])
	}
	_, _ = fmt.Fprintf(w, "\n")

	for _, ur := range r.UserReports {
		if len(ur.TopEmojis) == 0 && len(ur.TopWords) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "## Favorites: %s\n\n", ur.User)
		if len(ur.TopEmojis) > 0 {
			_, _ = fmt.Fprintf(w, "**Top emojis:** ")
			for i, ec := range ur.TopEmojis {
				if i > 0 {
					_, _ = fmt.Fprintf(w, ", ")
				}
				_, _ = fmt.Fprintf(w, "%s (%d)", ec.Emoji, ec.Count)
			}
			_, _ = fmt.Fprintf(w, "\n\n")
		}
		if len(ur.TopWords) > 0 {
			_, _ = fmt.Fprintf(w, "**Top words:** ")
			for i, wc := range ur.TopWords {
				if i > 0 {
					_, _ = fmt.Fprintf(w, ", ")
				}
				_, _ = fmt.Fprintf(w, "%s (%d)", wc.Word, wc.Count)
			}
			_, _ = fmt.Fprintf(w, "\n\n")
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
