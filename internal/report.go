package internal

import (
	"time"

	"github.com/google/uuid"
)

// topN is how many emoji/word frequency entries each user report keeps.
const topN = 10

// BuildReport runs the full analysis pipeline over a parsed transcript.
// The transcript must have exactly two distinct authors; otherwise a
// CardinalityError is returned before any metric is computed.
func BuildReport(t *Transcript) (*Report, error) {
	authors := t.Authors()
	if len(authors) != 2 {
		return nil, &CardinalityError{Authors: authors}
	}
	return BuildReportFor(t, authors[0], authors[1])
}

// BuildReportFor analyzes the transcript for an explicit user pair. Both
// users must appear in the transcript and must differ.
func BuildReportFor(t *Transcript, userA, userB string) (*Report, error) {
	if userA == userB {
		return nil, &CardinalityError{Authors: []string{userA}}
	}
	counts := t.MessageCounts()
	for _, user := range []string{userA, userB} {
		if counts[user] == 0 {
			return nil, &UnknownUserError{User: user}
		}
	}

	records := t.Records
	report := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Users:       [2]string{userA, userB},
		Stats: Stats{
			TotalMessages: len(records),
			TotalEmojis:   totalEmojis(records),
			MediaShared:   t.MediaCount,
			ChattingDays:  DistinctDays(records),
			DroppedLines:  t.DroppedLines,
		},
		Starters: DetectStarters(records),
		Balance:  AnalyzeBalance(records, userA, userB),
		Activity: BuildActivity(records),
	}

	for i, pair := range [2][2]string{{userA, userB}, {userB, userA}} {
		focal, counterpart := pair[0], pair[1]
		metrics := ExtractMetrics(records, focal, counterpart)
		report.UserReports[i] = UserReport{
			User:       focal,
			Metrics:    metrics,
			Love:       LoveScore(metrics),
			Friendship: FriendshipScore(metrics),
			TopEmojis:  TopEmojis(records, focal, topN),
			TopWords:   TopWords(records, focal, topN),
		}
	}

	report.AverageLove = float64(report.UserReports[0].Love.Total+report.UserReports[1].Love.Total) / 2
	report.Status = ClassifyStatus(report.AverageLove)

	return report, nil
}

func totalEmojis(records []Message) int {
	total := 0
	for _, m := range records {
		total += CountEmojis(m.Body)
	}
	return total
}
